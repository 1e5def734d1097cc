package handlers

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/services"
	"github.com/gofiber/fiber/v2"
)

// respondError writes the 400/404 bodies the front end knows about. Anything else is
// handed to the fiber error handler, which answers 500.
func respondError(c *fiber.Ctx, err error) error {
	var verrs *dto.ValidationErrors
	if errors.As(err, &verrs) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationFailure{Error: verrs})
	}
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.NotFoundResponse{Error: err.Error()})
	}
	return err
}

func badRequest(c *fiber.Ctx, verrs *dto.ValidationErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationFailure{Error: verrs})
}
