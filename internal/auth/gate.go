package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"time"

	"reminders-backend/internal/apperrors"
	"reminders-backend/internal/models"
	"reminders-backend/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// tokenBytes adalah jumlah byte random untuk satu token bearer.
// 32 byte entropy, di-encode hex menjadi 64 karakter.
const tokenBytes = 32

// maxIssueAttempts membatasi retry saat nilai random tabrakan dengan
// token yang sudah ada (praktis tidak pernah terjadi).
const maxIssueAttempts = 3

// Gate memvalidasi credential dan menerbitkan/mencabut token bearer.
type Gate struct {
	Store    *store.Store
	TokenTTL time.Duration
}

func NewGate(s *store.Store, tokenTTL time.Duration) *Gate {
	return &Gate{Store: s, TokenTTL: tokenTTL}
}

// AuthenticateBasic memeriksa email + password.
// Email tidak ditemukan dan password salah mengembalikan error yang
// sama persis, supaya response tidak bisa dipakai menebak email terdaftar.
func (g *Gate) AuthenticateBasic(email, password string) (models.User, error) {
	user, err := g.Store.FindUserByEmail(email)
	if err != nil {
		// Kegagalan database bukan berarti credential salah
		if apperrors.KindOf(err) == apperrors.KindInternal {
			return models.User{}, err
		}
		return models.User{}, apperrors.ErrInvalidCredentials
	}
	// bcrypt.CompareHashAndPassword melakukan perbandingan constant-time
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// AuthenticateBearer memeriksa token opaque dan mengembalikan user pemiliknya.
// Token kadaluarsa ditolak dan sekalian dihapus dari database.
func (g *Gate) AuthenticateBearer(tokenString string) (models.User, error) {
	token, err := g.Store.FindToken(tokenString)
	if err != nil {
		// Kegagalan database bukan berarti token salah
		if apperrors.KindOf(err) == apperrors.KindInternal {
			return models.User{}, err
		}
		return models.User{}, apperrors.ErrInvalidToken
	}
	if token.Expired() {
		_ = g.Store.DeleteToken(token.Token)
		return models.User{}, apperrors.ErrInvalidToken
	}
	user, err := g.Store.FindUserByID(token.UserID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			return models.User{}, err
		}
		return models.User{}, apperrors.ErrInvalidToken
	}
	return user, nil
}

// IssueToken membuat token bearer baru untuk user.
// Kalau nilai random kebetulan tabrakan dengan token lain (unique
// violation), generate ulang.
func (g *Gate) IssueToken(user models.User) (models.Token, error) {
	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		raw := make([]byte, tokenBytes)
		if _, err := rand.Read(raw); err != nil {
			return models.Token{}, apperrors.Wrap(apperrors.KindInternal, "Error generating token", err)
		}

		token := models.Token{
			Token:     hex.EncodeToString(raw),
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(g.TokenTTL),
		}
		created, err := g.Store.CreateToken(token)
		if err != nil {
			if store.IsConflict(err) {
				continue
			}
			return models.Token{}, err
		}
		return created, nil
	}
	return models.Token{}, apperrors.New(apperrors.KindInternal, "Error generating token")
}

// RevokeToken menghapus satu token (logout device yang bersangkutan saja,
// token di device lain tetap berlaku).
func (g *Gate) RevokeToken(tokenString string) error {
	return g.Store.DeleteToken(tokenString)
}

// RevokeAllTokens menghapus semua token milik user.
func (g *Gate) RevokeAllTokens(userID int) error {
	return g.Store.DeleteTokensByUser(userID)
}

// ParseBasicAuth membongkar header "Authorization: Basic base64(email:password)".
func ParseBasicAuth(header string) (string, string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Basic" {
		return "", "", apperrors.ErrInvalidCredentials
	}
	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}
	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", apperrors.ErrInvalidCredentials
	}
	return email, password, nil
}
