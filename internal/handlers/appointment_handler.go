package handlers

import (
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AppointmentHandler struct {
	appointmentService *services.AppointmentService
}

func NewAppointmentHandler(appointmentService *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

func (h *AppointmentHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if verrs := dto.DecodeStrict(c.Body(), &req); verrs != nil {
		return badRequest(c, verrs)
	}

	appt, err := h.appointmentService.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appt)
}

func (h *AppointmentHandler) List(c *fiber.Ctx) error {
	appts, err := h.appointmentService.List(c.UserContext(), c.Query("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(appts)
}
