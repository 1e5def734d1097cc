package middleware

import (
	"crypto/subtle"

	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/config"
	"github.com/ahmetcoskunkizilkaya/skincare-plus/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminRequired guards catalog maintenance. It accepts either:
// 1. an X-Admin-Token header equal to ADMIN_TOKEN
// 2. a Bearer JWT signed with JWT_SECRET whose role claim is "admin"
func AdminRequired(cfg *config.Config) fiber.Handler {
	var bearer fiber.Handler
	if cfg.JWTSecret != "" {
		bearer = jwtware.New(jwtware.Config{
			SigningKey:     jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
			SuccessHandler: requireAdminRole,
			ErrorHandler: func(c *fiber.Ctx, err error) error {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Unauthorized: invalid or expired token",
				})
			},
		})
	}

	return func(c *fiber.Ctx) error {
		if token := c.Get("X-Admin-Token"); cfg.AdminToken != "" && token != "" {
			if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.AdminToken)) == 1 {
				return c.Next()
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}
		if bearer == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		return bearer(c)
	}
}

func requireAdminRole(c *fiber.Ctx) error {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid claims",
		})
	}
	if role, _ := claims["role"].(string); role == "admin" {
		return c.Next()
	}
	return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
		Error: true, Message: "Admin access required",
	})
}
