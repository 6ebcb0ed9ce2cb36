// Package storage provides the persistence backends behind the engine's
// Store interface: postgres (pgx), a single-file sqlite database, and an
// in-memory store for tests and throwaway runs.
package storage

import (
	"context"
	"sync"

	"github.com/meltforce/liftlog/internal/models"
)

// Memory is a Store backed by process memory. Nothing survives restart.
type Memory struct {
	mu        sync.Mutex
	templates map[string]models.WorkoutTemplate
	sessions  map[string]models.WorkoutSession
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		templates: make(map[string]models.WorkoutTemplate),
		sessions:  make(map[string]models.WorkoutSession),
	}
}

func (m *Memory) LoadTemplates(_ context.Context) ([]models.WorkoutTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.WorkoutTemplate, 0, len(m.templates))
	for _, t := range m.templates {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (m *Memory) SaveTemplate(_ context.Context, t models.WorkoutTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[t.ID] = t.Clone()
	return nil
}

func (m *Memory) DeleteTemplate(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.templates, id)
	return nil
}

func (m *Memory) LoadSessions(_ context.Context) ([]models.WorkoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.WorkoutSession, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (m *Memory) SaveSession(_ context.Context, s models.WorkoutSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s.Clone()
	return nil
}
