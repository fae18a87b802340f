package store

import (
	"reminders-backend/internal/models"
)

// CreateUser menyimpan user baru dan mengembalikan user dengan ID terisi.
// Email harus unik (constraint di database); pelanggaran dikembalikan
// sebagai conflict.
func (s *Store) CreateUser(user models.User) (models.User, error) {
	err := s.DB.QueryRow(
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		user.Name, user.Email, user.Password,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, wrapErr(err, "User not found")
	}
	return user, nil
}

// FindUserByEmail mencari user berdasarkan email (exact match, case-sensitive).
func (s *Store) FindUserByEmail(email string) (models.User, error) {
	var user models.User
	err := s.DB.QueryRow(
		`SELECT id, name, email, password, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, wrapErr(err, "User not found")
	}
	return user, nil
}

// FindUserByID mencari user berdasarkan primary key.
func (s *Store) FindUserByID(id int) (models.User, error) {
	var user models.User
	err := s.DB.QueryRow(
		`SELECT id, name, email, password, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return models.User{}, wrapErr(err, "User not found")
	}
	return user, nil
}
