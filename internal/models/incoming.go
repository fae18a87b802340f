package models

import (
	"strings"

	"reminders-backend/internal/apperrors"
)

// Incoming adalah representasi parsial sebuah entity yang dikirim client,
// dipakai untuk create dan PATCH. Field pointer (*) menandakan field
// tersebut boleh tidak dikirim.

type ListIncoming struct {
	Title string `json:"title" validate:"required"`
}

// Validate memeriksa field yang dikirim untuk ListIncoming.
func (inc ListIncoming) Validate() error {
	if strings.TrimSpace(inc.Title) == "" {
		return apperrors.New(apperrors.KindValidation, "Title must not be empty")
	}
	return nil
}

// NewList membuat List baru dari data incoming.
// UserID diisi dari principal yang sudah terautentikasi, bukan dari body.
func (inc ListIncoming) NewList(userID int) List {
	return List{
		UserID: userID,
		Title:  strings.TrimSpace(inc.Title),
	}
}

type TaskIncoming struct {
	Title    *string   `json:"title"`
	Priority *Priority `json:"priority"`
	DueDate  *int64    `json:"dueDate"`
	IsDone   *bool     `json:"isDone"`
	ListID   int       `json:"listId"`
}

// Validate memeriksa field yang dikirim. Field yang tidak dikirim
// tidak divalidasi (semantik PATCH).
func (inc TaskIncoming) Validate() error {
	if inc.Title != nil && strings.TrimSpace(*inc.Title) == "" {
		return apperrors.New(apperrors.KindValidation, "Title must not be empty")
	}
	if inc.Priority != nil && !inc.Priority.Valid() {
		return apperrors.New(apperrors.KindValidation, "Invalid priority")
	}
	return nil
}

// ValidateForCreate memeriksa field wajib saat membuat task baru.
func (inc TaskIncoming) ValidateForCreate() error {
	if inc.Title == nil || strings.TrimSpace(*inc.Title) == "" {
		return apperrors.New(apperrors.KindValidation, "Title is required")
	}
	if inc.ListID == 0 {
		return apperrors.New(apperrors.KindValidation, "listId is required")
	}
	return inc.Validate()
}

// NewTask membuat Task baru dari data incoming dengan nilai default:
// priority "none" dan isDone false.
func (inc TaskIncoming) NewTask() Task {
	task := Task{
		ListID:   inc.ListID,
		Priority: PriorityNone,
	}
	if inc.Title != nil {
		task.Title = strings.TrimSpace(*inc.Title)
	}
	if inc.Priority != nil {
		task.Priority = *inc.Priority
	}
	task.DueDate = inc.DueDate
	if inc.IsDone != nil {
		task.IsDone = *inc.IsDone
	}
	return task
}
