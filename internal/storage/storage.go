// Package storage implements todo.Store on an in-process SQLite database.
// The database is opened in memory and is gone when the store is closed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"duelist/internal/todo"
)

type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ todo.Store = (*Store)(nil)

// Open opens the named in-memory database. A nil clock means time.Now.
func Open(name string, now func() time.Time) (*Store, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("db name is empty")
	}
	if now == nil {
		now = time.Now
	}
	db, err := sql.Open("sqlite", memoryDSN(name))
	if err != nil {
		return nil, err
	}
	// One connection keeps the in-memory database alive and serializes access.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{db: db, now: now}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	const ddl = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	due_date TEXT NOT NULL DEFAULT '',
	days_remaining INTEGER DEFAULT NULL
);`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *Store) Add(title, due string) (todo.Task, error) {
	days := todo.DaysUntil(due, s.now())
	res, err := s.db.Exec(`INSERT INTO tasks (title, due_date, days_remaining) VALUES (?, ?, ?);`,
		title, due, nullDays(days))
	if err != nil {
		return todo.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return todo.Task{}, err
	}
	return todo.Task{ID: id, Title: title, DueDate: due, DaysRemaining: days}, nil
}

func (s *Store) All() ([]todo.Task, error) {
	rows, err := s.db.Query(`SELECT id, title, due_date, days_remaining FROM tasks ORDER BY id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []todo.Task
	for rows.Next() {
		var t todo.Task
		var days sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Title, &t.DueDate, &days); err != nil {
			return nil, err
		}
		if days.Valid {
			t.DaysRemaining = todo.Days{N: int(days.Int64), Valid: true}
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) UpdateAt(index int, title, due string) (bool, error) {
	id, ok, err := s.idAt(index)
	if err != nil || !ok {
		return false, err
	}
	return s.Update(id, title, due)
}

func (s *Store) RemoveAt(index int) (bool, error) {
	id, ok, err := s.idAt(index)
	if err != nil || !ok {
		return false, err
	}
	return s.Remove(id)
}

func (s *Store) Update(id int64, title, due string) (bool, error) {
	days := todo.DaysUntil(due, s.now())
	res, err := s.db.Exec(`UPDATE tasks SET title = ?, due_date = ?, days_remaining = ? WHERE id = ?;`,
		title, due, nullDays(days), id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *Store) Remove(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?;`, id)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM tasks;`)
	return err
}

func (s *Store) idAt(index int) (int64, bool, error) {
	if index < 0 {
		return 0, false, nil
	}
	var id int64
	err := s.db.QueryRow(`SELECT id FROM tasks ORDER BY id LIMIT 1 OFFSET ?;`, index).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullDays(d todo.Days) sql.NullInt64 {
	if !d.Valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(d.N), Valid: true}
}

func memoryDSN(name string) string {
	if strings.HasPrefix(name, "file:") {
		return name
	}
	u := url.URL{
		Scheme: "file",
		Opaque: url.PathEscape(name),
	}
	q := url.Values{}
	q.Set("mode", "memory")
	q.Set("cache", "shared")
	q.Set("_pragma", "busy_timeout(5000)")
	u.RawQuery = q.Encode()
	return u.String()
}
