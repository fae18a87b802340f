package handlers

import (
	"runtime"

	"github.com/gofiber/fiber/v2"
)

// Utility handlers, tidak butuh autentikasi.

func (h *Handler) Ping(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "It works!",
		"success": true,
		"status":  fiber.StatusOK,
	})
}

// DBVersion mengembalikan versi PostgreSQL yang sedang dipakai.
func (h *Handler) DBVersion(c *fiber.Ctx) error {
	var version string
	if err := h.Store.DB.QueryRow("SELECT version()").Scan(&version); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "No database connection",
			"success": false,
			"status":  fiber.StatusInternalServerError,
		})
	}
	return c.JSON(fiber.Map{
		"message": "Database version fetched successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data": fiber.Map{
			"version": version,
		},
	})
}

// OperatingSystem mengembalikan OS tempat aplikasi berjalan.
func (h *Handler) OperatingSystem(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Operating system fetched successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data": fiber.Map{
			"operating_system": runtime.GOOS,
		},
	})
}
