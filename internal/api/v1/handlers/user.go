package handlers

import (
	"reminders-backend/internal/apperrors"
	"reminders-backend/internal/auth"
	"reminders-backend/internal/models"
	"reminders-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register membuat user baru sekaligus menerbitkan token pertamanya.
func (h *Handler) Register(c *fiber.Ctx) error {
	// struct RegisterRequest menerima inputan dari user
	type RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		return badRequest(c, "Bad request")
	}

	// Validasi dengan validator
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return badRequest(c, "Validation error")
	}

	// Hash the password using bcrypt with default cost
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, apperrors.Wrap(apperrors.KindInternal, "Error hashing password", err), "Error hashing password")
	}

	user, err := h.Store.CreateUser(models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
	})
	if err != nil {
		// Email sudah terpakai -> 409
		if apperrors.KindOf(err) == apperrors.KindConflict {
			logger.SecurityLogger.Warn("Duplicate email", zap.String("email", req.Email))
			return fail(c, apperrors.New(apperrors.KindConflict, "Email already exists"), "")
		}
		return fail(c, err, "Error creating user")
	}

	// Token pertama langsung diterbitkan saat registrasi
	token, err := h.Gate.IssueToken(user)
	if err != nil {
		return fail(c, err, "Error generating token")
	}

	logger.AuditLogger.Info("User registered successfully", zap.Int("user_id", user.ID))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"success": true,
		"status":  fiber.StatusCreated,
		"data": fiber.Map{
			"email": user.Email,
			"token": token.Token,
		},
	})
}

// Login memakai header "Authorization: Basic base64(email:password)" dan
// menerbitkan token bearer baru (token lama tetap berlaku, multi-device).
func (h *Handler) Login(c *fiber.Ctx) error {
	email, password, err := auth.ParseBasicAuth(c.Get("Authorization"))
	if err != nil {
		logger.SecurityLogger.Warn("Malformed basic auth header")
		return fail(c, err, "")
	}

	user, err := h.Gate.AuthenticateBasic(email, password)
	if err != nil {
		// email tidak terdaftar dan password salah dibalas sama persis
		logger.SecurityLogger.Warn("Invalid credentials", zap.String("email", email))
		return fail(c, err, "")
	}

	token, err := h.Gate.IssueToken(user)
	if err != nil {
		return fail(c, err, "Error generating token")
	}

	logger.AuditLogger.Info("Login success", zap.Int("user_id", user.ID))
	return c.JSON(fiber.Map{
		"message": "Login success",
		"success": true,
		"status":  fiber.StatusOK,
		"data": fiber.Map{
			"email": user.Email,
			"token": token.Token,
		},
	})
}

// Logout mencabut token yang dipakai request ini saja.
// Token milik device lain tetap berlaku.
func (h *Handler) Logout(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)
	tokenString := c.Locals("token").(string)

	if err := h.Gate.RevokeToken(tokenString); err != nil {
		return fail(c, err, "Error revoking token")
	}

	logger.AuditLogger.Info("Logout success", zap.Int("user_id", user.ID))
	return c.JSON(fiber.Map{
		"message": "Logout success",
		"success": true,
		"status":  fiber.StatusOK,
	})
}

// Me mengembalikan identitas principal beserta token aktif terbarunya
// (diambil dari database, tidak selalu token yang dipakai request ini).
func (h *Handler) Me(c *fiber.Ctx) error {
	user := c.Locals("user").(models.User)

	token, err := h.Store.FindTokenByUser(user.ID)
	if err != nil {
		return fail(c, err, "Error fetching token")
	}

	return c.JSON(fiber.Map{
		"message": "User found",
		"success": true,
		"status":  fiber.StatusOK,
		"data": fiber.Map{
			"email": user.Email,
			"token": token.Token,
		},
	})
}
