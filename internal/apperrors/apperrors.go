package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind mengelompokkan error domain supaya handler bisa memetakan
// ke status code HTTP di satu tempat saja.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Error yang dipakai berulang di banyak tempat.
// Catatan: email tidak ditemukan dan password salah sengaja memakai
// error yang sama persis, supaya user tidak bisa di-enumerate.
var (
	ErrInvalidCredentials = New(KindAuth, "Invalid credentials")
	ErrInvalidToken       = New(KindAuth, "Invalid token")
)

// KindOf mengembalikan Kind dari sebuah error.
// Error yang bukan *Error dianggap internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusCode memetakan error domain ke status code HTTP.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindAuth:
		return fiber.StatusUnauthorized
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// Message mengembalikan pesan yang aman untuk dikirim ke client.
// Detail error internal tidak boleh bocor keluar.
func Message(err error) string {
	if KindOf(err) == KindInternal {
		return "Internal server error"
	}
	var appErr *Error
	errors.As(err, &appErr)
	return appErr.Message
}
