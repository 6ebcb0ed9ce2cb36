package workout

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// TemplateStore owns the catalog of workout templates. The catalog is
// held in memory and written through to the Store on every mutation.
type TemplateStore struct {
	mu        sync.RWMutex
	templates map[string]models.WorkoutTemplate
	store     Store
	clock     Clock
}

// NewTemplateStore loads the catalog from the backing store.
func NewTemplateStore(ctx context.Context, store Store, clock Clock) (*TemplateStore, error) {
	list, err := store.LoadTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	templates := make(map[string]models.WorkoutTemplate, len(list))
	for _, t := range list {
		templates[t.ID] = t
	}
	return &TemplateStore{templates: templates, store: store, clock: clock}, nil
}

// List returns all templates. Order is unspecified.
func (ts *TemplateStore) List() []models.WorkoutTemplate {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	out := make([]models.WorkoutTemplate, 0, len(ts.templates))
	for _, t := range ts.templates {
		out = append(out, t.Clone())
	}
	return out
}

// GetByID returns the template with the given id.
func (ts *TemplateStore) GetByID(id string) (models.WorkoutTemplate, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	t, ok := ts.templates[id]
	if !ok {
		return models.WorkoutTemplate{}, &NotFoundError{Kind: "template", ID: id}
	}
	return t.Clone(), nil
}

// Create assigns a fresh id and timestamps and persists the template.
func (ts *TemplateStore) Create(ctx context.Context, t models.WorkoutTemplate) (models.WorkoutTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return models.WorkoutTemplate{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	now := ts.clock.Now()
	t.ID = uuid.NewString()
	t.CreatedAt = now
	t.UpdatedAt = now
	t.LastUsedAt = nil
	t.UseCount = 0
	if t.Exercises == nil {
		t.Exercises = []models.TemplateExercise{}
	}
	t.NormalizeOrder()

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if err := ts.store.SaveTemplate(ctx, t); err != nil {
		return models.WorkoutTemplate{}, fmt.Errorf("saving template: %w", err)
	}
	ts.templates[t.ID] = t
	return t.Clone(), nil
}

// Update replaces the stored template with the same id and bumps
// updatedAt. Exercise order is normalized to match list position.
func (ts *TemplateStore) Update(ctx context.Context, t models.WorkoutTemplate) (models.WorkoutTemplate, error) {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return models.WorkoutTemplate{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()
	prev, ok := ts.templates[t.ID]
	if !ok {
		return models.WorkoutTemplate{}, &NotFoundError{Kind: "template", ID: t.ID}
	}

	t.CreatedAt = prev.CreatedAt
	t.UseCount = prev.UseCount
	t.LastUsedAt = prev.LastUsedAt
	t.UpdatedAt = ts.clock.Now()
	t.NormalizeOrder()

	if err := ts.store.SaveTemplate(ctx, t); err != nil {
		return models.WorkoutTemplate{}, fmt.Errorf("saving template: %w", err)
	}
	ts.templates[t.ID] = t
	return t.Clone(), nil
}

// Delete removes a template. Deleting an absent id is a no-op.
func (ts *TemplateStore) Delete(ctx context.Context, id string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if _, ok := ts.templates[id]; !ok {
		return nil
	}
	if err := ts.store.DeleteTemplate(ctx, id); err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	delete(ts.templates, id)
	return nil
}

// MarkUsed records that a session was started from this template.
func (ts *TemplateStore) MarkUsed(ctx context.Context, id string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	t, ok := ts.templates[id]
	if !ok {
		return &NotFoundError{Kind: "template", ID: id}
	}
	now := ts.clock.Now()
	t.UseCount++
	t.LastUsedAt = &now
	if err := ts.store.SaveTemplate(ctx, t); err != nil {
		return fmt.Errorf("saving template: %w", err)
	}
	ts.templates[id] = t
	return nil
}
