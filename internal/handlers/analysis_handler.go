package handlers

import (
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AnalysisHandler struct {
	analysisService *services.AnalysisService
}

func NewAnalysisHandler(analysisService *services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Analyze scores an uploaded photo. POST /api/analyze
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if verrs := dto.DecodeStrict(c.Body(), &req); verrs != nil {
		return badRequest(c, verrs)
	}

	analysis, err := h.analysisService.Analyze(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(analysis)
}

// List returns a user's analyses, newest first. GET /api/analyses?userId=
func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	analyses, err := h.analysisService.ListAnalyses(c.UserContext(), c.Query("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(analyses)
}
