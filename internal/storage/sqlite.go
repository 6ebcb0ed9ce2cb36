package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meltforce/liftlog/internal/models"
	_ "modernc.org/sqlite"
)

// SQLite is a Store backed by a single-file sqlite database, the default
// backend for a personal install.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dir/liftlog.db and
// creates the schema if missing.
func OpenSQLite(dir string) (*SQLite, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "liftlog.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS templates (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			payload    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			status     TEXT NOT NULL,
			start_time TIMESTAMP NOT NULL,
			payload    TEXT NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) LoadTemplates(ctx context.Context) ([]models.WorkoutTemplate, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM templates ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutTemplate
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		var t models.WorkoutTemplate
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, fmt.Errorf("decoding template: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (s *SQLite) SaveTemplate(ctx context.Context, t models.WorkoutTemplate) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO templates (id, name, created_at, updated_at, payload) VALUES (?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.CreatedAt, t.UpdatedAt, string(payload))
	if err != nil {
		return fmt.Errorf("upserting template: %w", err)
	}
	return nil
}

func (s *SQLite) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM templates WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

func (s *SQLite) LoadSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT payload FROM sessions ORDER BY start_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSession
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		var sess models.WorkoutSession
		if err := json.Unmarshal([]byte(payload), &sess); err != nil {
			return nil, fmt.Errorf("decoding session: %w", err)
		}
		result = append(result, sess)
	}
	return result, rows.Err()
}

func (s *SQLite) SaveSession(ctx context.Context, sess models.WorkoutSession) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions (id, name, status, start_time, payload) VALUES (?, ?, ?, ?, ?)`,
		sess.ID, sess.Name, string(sess.Status), sess.StartTime, string(payload))
	if err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}
	return nil
}
