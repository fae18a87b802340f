package handlers

import (
	"reminders-backend/internal/access"
	"reminders-backend/internal/apperrors"
	"reminders-backend/internal/auth"
	"reminders-backend/internal/events"
	"reminders-backend/internal/store"
	"reminders-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler memegang semua dependency yang dibutuhkan endpoint.
// Dibuat sekali di main dan dioper lewat routes (tidak ada global).
type Handler struct {
	Store    *store.Store
	Gate     *auth.Gate
	Resolver *access.Resolver
	Cache    *redis.Client
	Hub      *events.Hub
	Validate *validator.Validate
}

func New(s *store.Store, gate *auth.Gate, resolver *access.Resolver, cache *redis.Client, hub *events.Hub) *Handler {
	return &Handler{
		Store:    s,
		Gate:     gate,
		Resolver: resolver,
		Cache:    cache,
		Hub:      hub,
		Validate: validator.New(),
	}
}

// fail memetakan error domain ke response JSON dengan status code yang
// sesuai. Detail error internal hanya masuk log, tidak dikirim ke client.
func fail(c *fiber.Ctx, err error, logMsg string) error {
	status := apperrors.StatusCode(err)
	if status == fiber.StatusInternalServerError {
		logger.ErrorLogger.Error(logMsg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"message": apperrors.Message(err),
		"success": false,
		"status":  status,
	})
}

// badNotFound membalas 404 dengan pesan custom. Dipakai juga untuk
// resource milik user lain, keberadaannya tidak boleh kelihatan beda
// dengan resource yang memang tidak ada.
func badNotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  fiber.StatusNotFound,
	})
}

// badRequest adalah shortcut untuk error validasi dengan pesan custom.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  fiber.StatusBadRequest,
	})
}
