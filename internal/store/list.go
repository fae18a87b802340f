package store

import (
	"strings"

	"reminders-backend/internal/models"
)

// likeEscaper meng-escape karakter wildcard LIKE/ILIKE supaya filter
// dari user diperlakukan sebagai substring literal, bukan pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// CreateList menyimpan list baru dan mengembalikan list dengan ID terisi.
func (s *Store) CreateList(list models.List) (models.List, error) {
	err := s.DB.QueryRow(
		`INSERT INTO lists (user_id, title) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		list.UserID, list.Title,
	).Scan(&list.ID, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return models.List{}, wrapErr(err, "List not found")
	}
	return list, nil
}

// FindListByID mencari list berdasarkan primary key.
func (s *Store) FindListByID(id int) (models.List, error) {
	var list models.List
	err := s.DB.QueryRow(
		`SELECT id, user_id, title, created_at, updated_at
		 FROM lists WHERE id = $1`,
		id,
	).Scan(&list.ID, &list.UserID, &list.Title, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return models.List{}, wrapErr(err, "List not found")
	}
	return list, nil
}

// ListsByUser mengambil semua list milik satu user.
// Jika titleFilter tidak kosong, hasil difilter dengan substring
// case-insensitive (ILIKE) pada kolom title.
func (s *Store) ListsByUser(userID int, titleFilter string) ([]models.List, error) {
	query := `SELECT id, user_id, title, created_at, updated_at
		 FROM lists WHERE user_id = $1 ORDER BY id`
	args := []interface{}{userID}
	if titleFilter != "" {
		query = `SELECT id, user_id, title, created_at, updated_at
		 FROM lists WHERE user_id = $1 AND title ILIKE '%' || $2 || '%' ORDER BY id`
		args = append(args, likeEscaper.Replace(titleFilter))
	}

	rows, err := s.DB.Query(query, args...)
	if err != nil {
		return nil, wrapErr(err, "List not found")
	}
	// .Close() digunakan untuk menutup koneksi setelah selesai digunakan
	defer rows.Close()

	lists := []models.List{}
	for rows.Next() {
		var list models.List
		if err := rows.Scan(&list.ID, &list.UserID, &list.Title, &list.CreatedAt, &list.UpdatedAt); err != nil {
			return nil, wrapErr(err, "List not found")
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "List not found")
	}
	return lists, nil
}

// UpdateList menyimpan perubahan title sebuah list.
func (s *Store) UpdateList(list models.List) (models.List, error) {
	err := s.DB.QueryRow(
		`UPDATE lists SET title = $1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $2
		 RETURNING id, user_id, title, created_at, updated_at`,
		list.Title, list.ID,
	).Scan(&list.ID, &list.UserID, &list.Title, &list.CreatedAt, &list.UpdatedAt)
	if err != nil {
		return models.List{}, wrapErr(err, "List not found")
	}
	return list, nil
}

// DeleteList menghapus sebuah list. Task anak harus dihapus lebih dulu
// lewat DeleteTasksByList, tidak ada cascade otomatis di schema.
func (s *Store) DeleteList(id int) error {
	if _, err := s.DB.Exec("DELETE FROM lists WHERE id = $1", id); err != nil {
		return wrapErr(err, "List not found")
	}
	return nil
}
