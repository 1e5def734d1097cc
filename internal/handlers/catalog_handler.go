package handlers

import (
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Products searches the catalog. GET /api/products?concern=&q=
func (h *CatalogHandler) Products(c *fiber.Ctx) error {
	products, err := h.catalogService.SearchProducts(c.UserContext(), store.ProductFilter{
		Concern: c.Query("concern"),
		Query:   c.Query("q"),
	})
	if err != nil {
		return err
	}
	return c.JSON(products)
}

func (h *CatalogHandler) Concerns(c *fiber.Ctx) error {
	concerns, err := h.catalogService.ListConcerns(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(concerns)
}
