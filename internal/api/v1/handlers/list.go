package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reminders-backend/internal/models"
	"reminders-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var cacheCtx = context.Background()

const cacheTTL = time.Hour

func listCacheKey(id int) string {
	return fmt.Sprintf("list:%d", id)
}

// CreateList membuat list baru milik principal.
// user_id diambil dari token, bukan dari body request.
func (h *Handler) CreateList(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	var inc models.ListIncoming
	if err := c.BodyParser(&inc); err != nil {
		logger.ErrorLogger.Error("Bad request in create list", zap.Error(err))
		return badRequest(c, "Bad request")
	}
	if err := h.Validate.Struct(inc); err != nil {
		return badRequest(c, "Validation error")
	}
	if err := inc.Validate(); err != nil {
		return fail(c, err, "")
	}

	list, err := h.Store.CreateList(inc.NewList(user.ID))
	if err != nil {
		return fail(c, err, "Error creating list")
	}

	h.Hub.Publish("list", "created", list.ID, user.ID)
	logger.AuditLogger.Info("List created successfully", zap.Int("list_id", list.ID), zap.Int("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "List created successfully",
		"success": true,
		"status":  fiber.StatusCreated,
		"data":    list,
	})
}

// GetLists mengambil semua list milik principal.
// Query param ?title= memfilter dengan substring case-insensitive.
func (h *Handler) GetLists(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	lists, err := h.Resolver.AccessibleLists(user, c.Query("title"))
	if err != nil {
		return fail(c, err, "Error fetching lists")
	}

	logger.AuditLogger.Info("Lists fetched successfully", zap.Int("user_id", user.ID))
	return c.JSON(fiber.Map{
		"message": "Lists fetched successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    lists,
	})
}

// GetList mengambil satu list milik principal.
func (h *Handler) GetList(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	listID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid list ID")
	}

	// Coba ambil dari cache Redis dulu
	cacheKey := listCacheKey(listID)
	if cached, err := h.Cache.Get(cacheCtx, cacheKey).Result(); err == nil {
		var list models.List
		if err = json.Unmarshal([]byte(cached), &list); err == nil {
			// Cek kepemilikan tetap wajib untuk data dari cache.
			// List milik user lain dibalas not found, bukan forbidden.
			if list.UserID != user.ID {
				return badNotFound(c, "List not found")
			}
			return c.JSON(fiber.Map{
				"message": "List found (from cache)",
				"success": true,
				"status":  fiber.StatusOK,
				"data":    list,
			})
		}
	}

	list, err := h.Resolver.ResolveList(user, listID)
	if err != nil {
		return fail(c, err, "Error fetching list")
	}

	// Simpan ke cache selama 1 jam
	if listJSON, err := json.Marshal(list); err == nil {
		h.Cache.SetEX(cacheCtx, cacheKey, listJSON, cacheTTL)
	}

	logger.AuditLogger.Info("List found", zap.Int("list_id", list.ID))
	return c.JSON(fiber.Map{
		"message": "List found",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    list,
	})
}

// GetListTasks mengambil semua task dari satu list milik principal.
func (h *Handler) GetListTasks(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	listID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid list ID")
	}

	tasks, err := h.Resolver.AccessibleTasks(user, listID)
	if err != nil {
		return fail(c, err, "Error fetching tasks")
	}

	return c.JSON(fiber.Map{
		"message": "Tasks fetched successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    tasks,
	})
}

// UpdateList mengganti title sebuah list (PATCH).
func (h *Handler) UpdateList(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	listID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid list ID")
	}

	var inc models.ListIncoming
	if err := c.BodyParser(&inc); err != nil {
		logger.ErrorLogger.Error("Bad request in update list", zap.Error(err))
		return badRequest(c, "Bad request")
	}
	if err := inc.Validate(); err != nil {
		return fail(c, err, "")
	}

	// Resolve dulu, merge setelahnya: list yang tidak dimiliki principal
	// tidak pernah sampai ke tahap merge.
	list, err := h.Resolver.ResolveList(user, listID)
	if err != nil {
		return fail(c, err, "Error fetching list")
	}

	updated, err := h.Store.UpdateList(list.Patched(inc))
	if err != nil {
		return fail(c, err, "Error updating list")
	}

	// Perbarui cache Redis untuk list ini
	cacheKey := listCacheKey(listID)
	h.Cache.Del(cacheCtx, cacheKey)
	if listJSON, err := json.Marshal(updated); err == nil {
		h.Cache.SetEX(cacheCtx, cacheKey, listJSON, cacheTTL)
	}

	h.Hub.Publish("list", "updated", updated.ID, user.ID)
	logger.AuditLogger.Info("List updated successfully", zap.Int("list_id", updated.ID))
	return c.JSON(fiber.Map{
		"message": "List updated successfully",
		"success": true,
		"status":  fiber.StatusOK,
		"data":    updated,
	})
}

// DeleteList menghapus list beserta semua task anaknya.
// Dua langkah eksplisit: hapus anak dulu, baru list-nya,
// schema tidak memakai cascade otomatis.
func (h *Handler) DeleteList(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	listID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid list ID")
	}

	list, err := h.Resolver.ResolveList(user, listID)
	if err != nil {
		return fail(c, err, "Error fetching list")
	}

	// Ambil task anak dulu supaya cache per-task bisa ikut dibersihkan
	tasks, err := h.Store.TasksByList(list.ID)
	if err != nil {
		return fail(c, err, "Error fetching tasks")
	}

	if err := h.Store.DeleteTasksByList(list.ID); err != nil {
		return fail(c, err, "Error deleting tasks")
	}
	if err := h.Store.DeleteList(list.ID); err != nil {
		return fail(c, err, "Error deleting list")
	}

	// Hapus cache list dan semua task anaknya
	h.Cache.Del(cacheCtx, listCacheKey(list.ID))
	for _, task := range tasks {
		h.Cache.Del(cacheCtx, taskCacheKey(task.ID))
	}

	h.Hub.Publish("list", "deleted", list.ID, user.ID)
	logger.AuditLogger.Info("List deleted successfully", zap.Int("list_id", list.ID))
	return c.JSON(fiber.Map{
		"message": "List deleted successfully",
		"success": true,
		"status":  fiber.StatusOK,
	})
}
