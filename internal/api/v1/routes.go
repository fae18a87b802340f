package v1

import (
	"reminders-backend/internal/api/v1/handlers"
	"reminders-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api/v1")

	// Utility
	api.Get("/ping", h.Ping)
	api.Get("/dbversion", h.DBVersion)
	api.Get("/os", h.OperatingSystem)

	// Auth
	api.Post("/users", h.Register)
	api.Post("/users/login", h.Login)
	api.Post("/users/logout", middleware.UseToken(h.Gate), h.Logout)
	api.Get("/users/me", middleware.UseToken(h.Gate), h.Me)

	// List
	listRoutes := api.Group("/lists", middleware.UseToken(h.Gate))
	listRoutes.Post("/", h.CreateList)
	listRoutes.Get("/", h.GetLists)
	listRoutes.Get("/:id", h.GetList)
	listRoutes.Get("/:id/tasks", h.GetListTasks)
	listRoutes.Patch("/:id", h.UpdateList)
	listRoutes.Delete("/:id", h.DeleteList)

	// Task
	taskRoutes := api.Group("/tasks", middleware.UseToken(h.Gate))
	taskRoutes.Post("/", h.CreateTask)
	taskRoutes.Get("/:id", h.GetTask)
	taskRoutes.Patch("/:id", h.UpdateTask)
	taskRoutes.Delete("/:id", h.DeleteTask)
}
