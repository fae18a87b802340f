package store

import (
	"database/sql"

	"reminders-backend/internal/models"
)

// scanTask membaca satu baris task; due_date nullable sehingga
// di-scan lewat sql.NullInt64.
func scanTask(row interface{ Scan(...interface{}) error }) (models.Task, error) {
	var task models.Task
	var dueDate sql.NullInt64
	err := row.Scan(&task.ID, &task.ListID, &task.Title, &task.Priority,
		&dueDate, &task.IsDone, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return models.Task{}, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Int64
	}
	return task, nil
}

func nullDueDate(dueDate *int64) sql.NullInt64 {
	if dueDate == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *dueDate, Valid: true}
}

// CreateTask menyimpan task baru dan mengembalikan task dengan ID terisi.
func (s *Store) CreateTask(task models.Task) (models.Task, error) {
	err := s.DB.QueryRow(
		`INSERT INTO tasks (list_id, title, priority, due_date, is_done)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		task.ListID, task.Title, task.Priority, nullDueDate(task.DueDate), task.IsDone,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return models.Task{}, wrapErr(err, "Task not found")
	}
	return task, nil
}

// FindTaskByID mencari task berdasarkan primary key.
func (s *Store) FindTaskByID(id int) (models.Task, error) {
	row := s.DB.QueryRow(
		`SELECT id, list_id, title, priority, due_date, is_done, created_at, updated_at
		 FROM tasks WHERE id = $1`,
		id,
	)
	task, err := scanTask(row)
	if err != nil {
		return models.Task{}, wrapErr(err, "Task not found")
	}
	return task, nil
}

// TasksByList mengambil semua task milik satu list.
func (s *Store) TasksByList(listID int) ([]models.Task, error) {
	rows, err := s.DB.Query(
		`SELECT id, list_id, title, priority, due_date, is_done, created_at, updated_at
		 FROM tasks WHERE list_id = $1 ORDER BY id`,
		listID,
	)
	if err != nil {
		return nil, wrapErr(err, "Task not found")
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, wrapErr(err, "Task not found")
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, "Task not found")
	}
	return tasks, nil
}

// UpdateTask menyimpan seluruh field task hasil patch.
// list_id sengaja tidak ikut di-update, task tidak bisa pindah list.
func (s *Store) UpdateTask(task models.Task) (models.Task, error) {
	row := s.DB.QueryRow(
		`UPDATE tasks
		 SET title = $1, priority = $2, due_date = $3, is_done = $4,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5
		 RETURNING id, list_id, title, priority, due_date, is_done, created_at, updated_at`,
		task.Title, task.Priority, nullDueDate(task.DueDate), task.IsDone, task.ID,
	)
	updated, err := scanTask(row)
	if err != nil {
		return models.Task{}, wrapErr(err, "Task not found")
	}
	return updated, nil
}

// DeleteTask menghapus satu task.
func (s *Store) DeleteTask(id int) error {
	if _, err := s.DB.Exec("DELETE FROM tasks WHERE id = $1", id); err != nil {
		return wrapErr(err, "Task not found")
	}
	return nil
}

// DeleteTasksByList menghapus semua task anak sebuah list.
// Dipanggil sebelum DeleteList (hapus anak dulu, baru induknya).
func (s *Store) DeleteTasksByList(listID int) error {
	if _, err := s.DB.Exec("DELETE FROM tasks WHERE list_id = $1", listID); err != nil {
		return wrapErr(err, "Task not found")
	}
	return nil
}
