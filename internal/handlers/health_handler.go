package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/store"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.store.Ping(c.UserContext()); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
