package handlers

import (
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RecommendationHandler struct {
	recommendationService *services.RecommendationService
}

func NewRecommendationHandler(recommendationService *services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// Tips never rejects a body; anything unparsable counts as no concerns.
func (h *RecommendationHandler) Tips(c *fiber.Ctx) error {
	var req dto.RecommendationRequest
	dto.DecodeLenient(c.Body(), &req)
	return c.JSON(dto.TipsResponse{Tips: h.recommendationService.Tips(req.Concerns)})
}
