package models

import (
	"time"
)

// Priority adalah enum prioritas sebuah task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityNone   Priority = "none"
)

// Valid mengembalikan true jika priority termasuk salah satu dari:
// - low
// - medium
// - high
// - none
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityNone:
		return true
	default:
		return false
	}
}

type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // hash bcrypt, jangan pernah dikirim ke client
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type List struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Task struct {
	ID        int       `json:"id"`
	ListID    int       `json:"listId"`
	Title     string    `json:"title"`
	Priority  Priority  `json:"priority"`
	DueDate   *int64    `json:"dueDate"` // epoch seconds, boleh null
	IsDone    bool      `json:"isDone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Token adalah credential bearer yang disimpan di database.
// Satu user boleh punya beberapa token aktif (multi-device).
type Token struct {
	ID        int       `json:"id"`
	Token     string    `json:"token"`
	UserID    int       `json:"userId"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired mengembalikan true jika token sudah lewat masa berlakunya.
func (t Token) Expired() bool {
	return time.Now().After(t.ExpiresAt)
}
