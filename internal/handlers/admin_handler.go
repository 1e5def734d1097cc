package handlers

import (
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/seed"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	store          *store.Store
	catalogService *services.CatalogService
	seedFile       string
}

// NewAdminHandler wires catalog maintenance. seedFile may be empty to use the
// embedded seed data.
func NewAdminHandler(st *store.Store, catalogService *services.CatalogService, seedFile string) *AdminHandler {
	return &AdminHandler{store: st, catalogService: catalogService, seedFile: seedFile}
}

// Seed re-runs the seeder. POST /api/admin/seed
func (h *AdminHandler) Seed(c *fiber.Ctx) error {
	data, err := seed.Load(h.seedFile)
	if err != nil {
		return err
	}
	res, err := seed.Run(c.UserContext(), h.store, data)
	if err != nil {
		return err
	}
	h.catalogService.Invalidate(c.UserContext())

	slog.Info("admin seed", "request_id", requestID(c), "action", "seed",
		"concerns", res.Concerns, "products", res.Products, "users", res.Users)
	return c.JSON(dto.SeedResponse{
		Error:    false,
		Message:  "Seed completed",
		Concerns: res.Concerns,
		Products: res.Products,
		Users:    res.Users,
	})
}

// UpsertConcern creates or updates a concern by name. PUT /api/admin/concerns
func (h *AdminHandler) UpsertConcern(c *fiber.Ctx) error {
	var req dto.UpsertConcernRequest
	if verrs := dto.DecodeStrict(c.Body(), &req); verrs != nil {
		return badRequest(c, verrs)
	}
	concern, created, err := h.catalogService.UpsertConcern(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(upsertStatus(created)).JSON(concern)
}

// UpsertProduct creates or updates a product by (name, brand). PUT /api/admin/products
func (h *AdminHandler) UpsertProduct(c *fiber.Ctx) error {
	var req dto.UpsertProductRequest
	if verrs := dto.DecodeStrict(c.Body(), &req); verrs != nil {
		return badRequest(c, verrs)
	}
	product, created, err := h.catalogService.UpsertProduct(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(upsertStatus(created)).JSON(product)
}

func upsertStatus(created bool) int {
	if created {
		return fiber.StatusCreated
	}
	return fiber.StatusOK
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
