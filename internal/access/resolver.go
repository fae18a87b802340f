// Package access memusatkan pemeriksaan kepemilikan resource.
// Semua entry point (read/update/delete/create) wajib lewat resolver ini,
// jalurnya selalu dari principal ke bawah: User -> List -> Task.
package access

import (
	"reminders-backend/internal/apperrors"
	"reminders-backend/internal/models"
	"reminders-backend/internal/store"
)

type Resolver struct {
	Store *store.Store
}

func NewResolver(s *store.Store) *Resolver {
	return &Resolver{Store: s}
}

// ResolveList mengambil list milik user.
// List yang tidak ada dan list milik user lain sama-sama dikembalikan
// sebagai not found, supaya keberadaan resource user lain tidak bocor.
func (r *Resolver) ResolveList(user models.User, listID int) (models.List, error) {
	list, err := r.Store.FindListByID(listID)
	if err != nil {
		return models.List{}, err
	}
	if list.UserID != user.ID {
		return models.List{}, apperrors.New(apperrors.KindNotFound, "List not found")
	}
	return list, nil
}

// ResolveTask mengambil task milik user, lewat list induknya.
// Task tanpa list induk (baris yatim) atau dengan induk milik user lain
// diperlakukan sama dengan task yang tidak ada.
func (r *Resolver) ResolveTask(user models.User, taskID int) (models.Task, error) {
	task, err := r.Store.FindTaskByID(taskID)
	if err != nil {
		return models.Task{}, err
	}
	if _, err := r.ResolveList(user, task.ListID); err != nil {
		return models.Task{}, apperrors.New(apperrors.KindNotFound, "Task not found")
	}
	return task, nil
}

// ResolveTaskCreationTarget memvalidasi listId tujuan sebelum task baru
// dibuat di dalamnya.
func (r *Resolver) ResolveTaskCreationTarget(user models.User, listID int) (models.List, error) {
	return r.ResolveList(user, listID)
}

// AccessibleLists mengambil semua list milik user, opsional difilter
// substring case-insensitive pada title.
func (r *Resolver) AccessibleLists(user models.User, titleFilter string) ([]models.List, error) {
	return r.Store.ListsByUser(user.ID, titleFilter)
}

// AccessibleTasks mengambil semua task dari sebuah list milik user.
func (r *Resolver) AccessibleTasks(user models.User, listID int) ([]models.Task, error) {
	if _, err := r.ResolveList(user, listID); err != nil {
		return nil, err
	}
	return r.Store.TasksByList(listID)
}
