package workout

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/meltforce/liftlog/internal/models"
)

// ErrMsgEmptyWorkout is the failure message for a finish with no logged sets.
const ErrMsgEmptyWorkout = "Cannot save an empty workout."

// Manager owns the single in-progress session. It instantiates sessions
// from templates, applies set-logging mutations, and drives the
// active -> processing -> completed/failed state machine on finish.
//
// The one-active-session invariant is strict: starting a session while
// another is active fails with ConflictError. All slot access is
// serialized under a single mutex, so two concurrent Start calls can
// never both succeed.
type Manager struct {
	mu        sync.Mutex
	current   *models.WorkoutSession
	templates *TemplateStore
	archive   *Archive
	clock     Clock
	log       *slog.Logger
}

// NewManager creates a Manager with an empty active slot.
func NewManager(templates *TemplateStore, archive *Archive, clock Clock, log *slog.Logger) *Manager {
	return &Manager{templates: templates, archive: archive, clock: clock, log: log}
}

// Start instantiates a new active session from the given template and
// marks the template used.
func (m *Manager) Start(ctx context.Context, templateID string) (models.WorkoutSession, error) {
	template, err := m.templates.GetByID(templateID)
	if err != nil {
		return models.WorkoutSession{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current != nil {
		return models.WorkoutSession{}, &ConflictError{Reason: fmt.Sprintf("session %q is already active", m.current.ID)}
	}

	exercises := append([]models.TemplateExercise(nil), template.Exercises...)
	sort.SliceStable(exercises, func(i, j int) bool {
		return exercises[i].Order < exercises[j].Order
	})

	session := models.WorkoutSession{
		ID:        uuid.NewString(),
		Name:      template.Name,
		StartTime: m.clock.Now(),
		Status:    models.StatusActive,
		Exercises: make([]models.SessionExercise, 0, len(exercises)),
	}
	for i, ex := range exercises {
		session.Exercises = append(session.Exercises, models.SessionExercise{
			ID:         uuid.NewString(),
			ExerciseID: ex.ExerciseID,
			Name:       ex.Name,
			Order:      i,
			Notes:      ex.Notes,
			Sets:       []models.WorkoutSet{},
		})
	}

	if err := m.templates.MarkUsed(ctx, templateID); err != nil {
		return models.WorkoutSession{}, fmt.Errorf("marking template used: %w", err)
	}

	m.current = &session
	m.log.Info("session started", "session_id", session.ID, "template_id", templateID, "exercises", len(session.Exercises))
	return session.Clone(), nil
}

// Current returns the active session, or false if none exists.
func (m *Manager) Current() (models.WorkoutSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.WorkoutSession{}, false
	}
	return m.current.Clone(), true
}

// LogSet appends a set to the matching exercise of the active session
// and returns the updated session.
func (m *Manager) LogSet(exerciseID string, set models.WorkoutSet) (models.WorkoutSession, error) {
	if set.Reps < 0 {
		return models.WorkoutSession{}, &ValidationError{Field: "reps", Reason: "must not be negative"}
	}
	if set.Weight < 0 {
		return models.WorkoutSession{}, &ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	if set.RPE != nil && (*set.RPE < 1 || *set.RPE > 10) {
		return models.WorkoutSession{}, &ValidationError{Field: "rpe", Reason: "must be between 1 and 10"}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.WorkoutSession{}, &InvalidStateError{Op: "log set", Reason: "no active session"}
	}
	if m.current.Status != models.StatusActive {
		return models.WorkoutSession{}, &InvalidStateError{Op: "log set", Reason: fmt.Sprintf("session status is %q", m.current.Status)}
	}

	ex := m.current.Exercise(exerciseID)
	if ex == nil {
		return models.WorkoutSession{}, &NotFoundError{Kind: "exercise", ID: exerciseID}
	}

	if set.Timestamp.IsZero() {
		set.Timestamp = m.clock.Now()
	}
	ex.Sets = append(ex.Sets, set)
	return m.current.Clone(), nil
}

// Finish ends the active session and runs aggregation. Exercises with no
// logged sets are dropped from the final record. The returned session is
// terminal: completed with aggregated data, or failed with an error
// message. Aggregation and storage problems surface as the failed status
// rather than as a returned error; only calling Finish with no active
// session is an error.
func (m *Manager) Finish(ctx context.Context) (models.WorkoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return models.WorkoutSession{}, &InvalidStateError{Op: "finish", Reason: "no active session"}
	}
	if m.current.Status != models.StatusActive {
		return models.WorkoutSession{}, &InvalidStateError{Op: "finish", Reason: fmt.Sprintf("session status is %q", m.current.Status)}
	}

	session := *m.current
	now := m.clock.Now()
	session.EndTime = &now
	session.Status = models.StatusProcessing

	performed := make([]models.SessionExercise, 0, len(session.Exercises))
	for _, ex := range session.Exercises {
		if len(ex.Sets) > 0 {
			performed = append(performed, ex)
		}
	}

	// The failed record keeps the exercise list as the user had it, so
	// history shows what was open when the save was rejected.
	if len(performed) == 0 {
		return m.fail(ctx, session, ErrMsgEmptyWorkout), nil
	}
	session.Exercises = performed

	agg, err := Aggregate(session.Exercises, session.StartTime, *session.EndTime, m.archive.PriorBests())
	if err != nil {
		return m.fail(ctx, session, fmt.Sprintf("aggregation failed: %v", err)), nil
	}

	session.Status = models.StatusCompleted
	session.AggregatedData = &agg
	processedAt := m.clock.Now()
	session.ProcessedAt = &processedAt

	if err := m.archive.Append(ctx, session); err != nil {
		session.Status = models.StatusProcessing
		session.AggregatedData = nil
		session.ProcessedAt = nil
		return m.fail(ctx, session, fmt.Sprintf("saving workout: %v", err)), nil
	}

	m.current = nil
	m.log.Info("session completed", "session_id", session.ID,
		"volume", agg.TotalVolume, "sets", agg.TotalSets, "prs", len(agg.PrsAchieved))
	return session.Clone(), nil
}

// fail marks the session failed, records it in history, and clears the
// active slot. Called with m.mu held.
func (m *Manager) fail(ctx context.Context, session models.WorkoutSession, msg string) models.WorkoutSession {
	session.Status = models.StatusFailed
	session.ErrorMessage = msg
	if err := m.archive.RecordFailure(ctx, session); err != nil {
		m.log.Warn("could not record failed session", "session_id", session.ID, "error", err)
	}
	m.current = nil
	m.log.Info("session failed", "session_id", session.ID, "reason", msg)
	return session.Clone()
}

// Discard drops the active session without persisting it and without
// running aggregation.
func (m *Manager) Discard() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return &InvalidStateError{Op: "discard", Reason: "no active session"}
	}
	m.log.Info("session discarded", "session_id", m.current.ID)
	m.current = nil
	return nil
}
