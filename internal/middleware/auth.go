package middleware

import (
	"strings"

	"reminders-backend/internal/apperrors"
	"reminders-backend/internal/auth"
	"reminders-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UseToken memvalidasi header "Authorization: Bearer <token>" lewat Gate,
// lalu menyimpan principal di locals untuk dipakai handler berikutnya.
func UseToken(gate *auth.Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "No token provided",
				"success": false,
				"status":  fiber.StatusUnauthorized,
			})
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token format",
				"success": false,
				"status":  fiber.StatusUnauthorized,
			})
		}

		user, err := gate.AuthenticateBearer(parts[1])
		if err != nil {
			// Database tumbang bukan salah token: balas 500, bukan 401
			if apperrors.KindOf(err) == apperrors.KindInternal {
				logger.ErrorLogger.Error("Error validating bearer token", zap.Error(err))
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Internal server error",
					"success": false,
					"status":  fiber.StatusInternalServerError,
				})
			}
			logger.SecurityLogger.Warn("Invalid bearer token",
				zap.String("path", c.Path()),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid token",
				"success": false,
				"status":  fiber.StatusUnauthorized,
			})
		}

		// Simpan principal dan token yang dipakai request ini
		c.Locals("user", user)
		c.Locals("token", parts[1])
		return c.Next()
	}
}
