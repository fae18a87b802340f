package handlers

import (
	"encoding/json"
	"fmt"

	"reminders-backend/internal/models"
	"reminders-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func taskCacheKey(id int) string {
	return fmt.Sprintf("task:%d", id)
}

// CreateTask membuat task baru di dalam list milik principal.
// listId yang tidak dimiliki principal dibalas 404, sama seperti
// listId yang memang tidak ada.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var inc models.TaskIncoming
	if err := c.BodyParser(&inc); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return badRequest(c, "Bad request")
	}
	if err := inc.ValidateForCreate(); err != nil {
		return fail(c, err, "")
	}

	// Validasi kepemilikan list tujuan SEBELUM task dibuat
	if _, err := h.Resolver.ResolveTaskCreationTarget(user, inc.ListID); err != nil {
		logger.SecurityLogger.Warn("Task creation against unowned list",
			zap.Int("user_id", user.ID), zap.Int("list_id", inc.ListID))
		return fail(c, err, "")
	}

	task, err := h.Store.CreateTask(inc.NewTask())
	if err != nil {
		return fail(c, err, "Error creating task")
	}

	h.Hub.Publish("task", "created", task.ID, user.ID)
	logger.AuditLogger.Info("Task created successfully", zap.Int("task_id", task.ID), zap.Int("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Task created successfully",
		"success": true,
		"status":  fiber.StatusCreated,
		"data":    task,
	})
}

// GetTask mengambil satu task milik principal (lewat list induknya).
func (h *Handler) GetTask(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	// Coba ambil dari cache Redis dulu
	cacheKey := taskCacheKey(taskID)
	if cached, err := h.Cache.Get(cacheCtx, cacheKey).Result(); err == nil {
		var task models.Task
		if err = json.Unmarshal([]byte(cached), &task); err == nil {
			// Kepemilikan task dari cache tetap dicek lewat list induknya
			if _, err := h.Resolver.ResolveList(user, task.ListID); err != nil {
				return badNotFound(c, "Task not found")
			}
			return c.JSON(fiber.Map{
				"message": "Task found (from cache)",
				"success": true,
				"status":  fiber.StatusOK,
				"data":    task,
			})
		}
	}

	task, err := h.Resolver.ResolveTask(user, taskID)
	if err != nil {
		return fail(c, err, "Error fetching task")
	}

	// Simpan ke cache selama 1 jam
	if taskJSON, err := json.Marshal(task); err == nil {
		h.Cache.SetEX(cacheCtx, cacheKey, taskJSON, cacheTTL)
	}

	logger.AuditLogger.Info("Task found", zap.Int("task_id", task.ID))
	return c.JSON(fiber.Map{
		"message": "Task found",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    task,
	})
}

// UpdateTask menerapkan PATCH parsial ke sebuah task.
// Hanya field yang dikirim yang diganti; listId tidak bisa diubah.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	var inc models.TaskIncoming
	if err := c.BodyParser(&inc); err != nil {
		logger.ErrorLogger.Error("Bad request in update task", zap.Error(err))
		return badRequest(c, "Bad request")
	}
	if err := inc.Validate(); err != nil {
		return fail(c, err, "")
	}

	task, err := h.Resolver.ResolveTask(user, taskID)
	if err != nil {
		return fail(c, err, "Error fetching task")
	}

	updated, err := h.Store.UpdateTask(task.Patched(inc))
	if err != nil {
		return fail(c, err, "Error updating task")
	}

	// Perbarui cache Redis untuk task ini
	cacheKey := taskCacheKey(taskID)
	h.Cache.Del(cacheCtx, cacheKey)
	if taskJSON, err := json.Marshal(updated); err == nil {
		h.Cache.SetEX(cacheCtx, cacheKey, taskJSON, cacheTTL)
	}

	h.Hub.Publish("task", "updated", updated.ID, user.ID)
	logger.AuditLogger.Info("Task updated successfully", zap.Int("task_id", updated.ID))
	return c.JSON(fiber.Map{
		"message": "Task updated successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    updated,
	})
}

// DeleteTask menghapus satu task milik principal.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	task, err := h.Resolver.ResolveTask(user, taskID)
	if err != nil {
		return fail(c, err, "Error fetching task")
	}

	if err := h.Store.DeleteTask(task.ID); err != nil {
		return fail(c, err, "Error deleting task")
	}

	// Hapus cache Redis untuk task ini
	h.Cache.Del(cacheCtx, taskCacheKey(task.ID))

	h.Hub.Publish("task", "deleted", task.ID, user.ID)
	logger.AuditLogger.Info("Task deleted successfully", zap.Int("task_id", task.ID))
	return c.JSON(fiber.Map{
		"message": "Task deleted successfully",
		"success": true,
		"status":  fiber.StatusOK,
	})
}
