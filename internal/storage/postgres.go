package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meltforce/liftlog/internal/models"
)

// Postgres is a Store backed by a pgx connection pool. Templates and
// sessions are stored as full JSONB documents alongside the columns the
// queries filter on.
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres creates a Postgres store with a connection pool.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Postgres{Pool: pool}, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	p.Pool.Close()
}

// RunMigrations applies all pending migrations from the given directory.
func RunMigrations(dsn, migrationsPath string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (p *Postgres) LoadTemplates(ctx context.Context) ([]models.WorkoutTemplate, error) {
	rows, err := p.Pool.Query(ctx, `SELECT payload FROM templates ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutTemplate
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		var t models.WorkoutTemplate
		if err := json.Unmarshal(payload, &t); err != nil {
			return nil, fmt.Errorf("decoding template: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (p *Postgres) SaveTemplate(ctx context.Context, t models.WorkoutTemplate) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding template: %w", err)
	}
	_, err = p.Pool.Exec(ctx,
		`INSERT INTO templates (id, name, created_at, updated_at, payload)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO UPDATE SET name = $2, updated_at = $4, payload = $5`,
		t.ID, t.Name, t.CreatedAt, t.UpdatedAt, payload)
	if err != nil {
		return fmt.Errorf("upserting template: %w", err)
	}
	return nil
}

func (p *Postgres) DeleteTemplate(ctx context.Context, id string) error {
	if _, err := p.Pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return nil
}

func (p *Postgres) LoadSessions(ctx context.Context) ([]models.WorkoutSession, error) {
	rows, err := p.Pool.Query(ctx, `SELECT payload FROM sessions ORDER BY start_time ASC`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.WorkoutSession
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		var s models.WorkoutSession
		if err := json.Unmarshal(payload, &s); err != nil {
			return nil, fmt.Errorf("decoding session: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (p *Postgres) SaveSession(ctx context.Context, s models.WorkoutSession) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	_, err = p.Pool.Exec(ctx,
		`INSERT INTO sessions (id, name, status, start_time, end_time, payload)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET status = $3, end_time = $5, payload = $6`,
		s.ID, s.Name, string(s.Status), s.StartTime, s.EndTime, payload)
	if err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}
	return nil
}
