package handlers

import (
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/gofiber/fiber/v2"
)

// DemoHandler serves the placeholder provider and product searches under /api/demo.
type DemoHandler struct {
	discoveryService *services.DiscoveryService
}

func NewDemoHandler(discoveryService *services.DiscoveryService) *DemoHandler {
	return &DemoHandler{discoveryService: discoveryService}
}

func (h *DemoHandler) Providers(c *fiber.Ctx) error {
	var req dto.ProvidersRequest
	dto.DecodeLenient(c.Body(), &req)
	return c.JSON(h.discoveryService.Providers(req))
}

func (h *DemoHandler) Products(c *fiber.Ctx) error {
	var req dto.DemoProductsRequest
	dto.DecodeLenient(c.Body(), &req)
	return c.JSON(h.discoveryService.Products(req))
}
