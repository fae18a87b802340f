package store

import (
	"reminders-backend/internal/models"
)

// CreateToken menyimpan token baru. Kolom token punya unique constraint;
// tabrakan nilai random dikembalikan sebagai conflict supaya caller
// bisa generate ulang.
func (s *Store) CreateToken(token models.Token) (models.Token, error) {
	err := s.DB.QueryRow(
		`INSERT INTO tokens (token, user_id, expires_at) VALUES ($1, $2, $3)
		 RETURNING id`,
		token.Token, token.UserID, token.ExpiresAt,
	).Scan(&token.ID)
	if err != nil {
		return models.Token{}, wrapErr(err, "Token not found")
	}
	return token, nil
}

// FindToken mencari token berdasarkan string token (exact match).
func (s *Store) FindToken(tokenString string) (models.Token, error) {
	var token models.Token
	err := s.DB.QueryRow(
		`SELECT id, token, user_id, expires_at FROM tokens WHERE token = $1`,
		tokenString,
	).Scan(&token.ID, &token.Token, &token.UserID, &token.ExpiresAt)
	if err != nil {
		return models.Token{}, wrapErr(err, "Token not found")
	}
	return token, nil
}

// FindTokenByUser mengambil salah satu token aktif milik user.
func (s *Store) FindTokenByUser(userID int) (models.Token, error) {
	var token models.Token
	err := s.DB.QueryRow(
		`SELECT id, token, user_id, expires_at FROM tokens
		 WHERE user_id = $1 AND expires_at > CURRENT_TIMESTAMP
		 ORDER BY id DESC LIMIT 1`,
		userID,
	).Scan(&token.ID, &token.Token, &token.UserID, &token.ExpiresAt)
	if err != nil {
		return models.Token{}, wrapErr(err, "Token not found")
	}
	return token, nil
}

// DeleteToken menghapus satu token (logout single-device).
func (s *Store) DeleteToken(tokenString string) error {
	if _, err := s.DB.Exec("DELETE FROM tokens WHERE token = $1", tokenString); err != nil {
		return wrapErr(err, "Token not found")
	}
	return nil
}

// DeleteTokensByUser menghapus semua token milik user (logout semua device).
func (s *Store) DeleteTokensByUser(userID int) error {
	if _, err := s.DB.Exec("DELETE FROM tokens WHERE user_id = $1", userID); err != nil {
		return wrapErr(err, "Token not found")
	}
	return nil
}

// DeleteExpiredTokens membersihkan token yang sudah kadaluarsa.
func (s *Store) DeleteExpiredTokens() error {
	if _, err := s.DB.Exec("DELETE FROM tokens WHERE expires_at <= CURRENT_TIMESTAMP"); err != nil {
		return wrapErr(err, "Token not found")
	}
	return nil
}
