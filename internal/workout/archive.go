package workout

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// Archive persists terminal sessions and answers historical queries.
// Completed sessions are the analytic record; failed sessions are kept
// too so history can show them with their error message, but they never
// participate in range queries or PR comparisons.
type Archive struct {
	mu       sync.RWMutex
	sessions []models.WorkoutSession
	store    Store
}

// NewArchive loads existing sessions from the backing store.
func NewArchive(ctx context.Context, store Store) (*Archive, error) {
	sessions, err := store.LoadSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	return &Archive{sessions: sessions, store: store}, nil
}

// Append stores a completed session. Sessions in any other status are
// rejected.
func (a *Archive) Append(ctx context.Context, s models.WorkoutSession) error {
	if s.Status != models.StatusCompleted {
		return &InvalidStateError{Op: "archive append", Reason: fmt.Sprintf("session status is %q, want %q", s.Status, models.StatusCompleted)}
	}
	return a.record(ctx, s)
}

// RecordFailure stores a failed session so it stays visible in history.
func (a *Archive) RecordFailure(ctx context.Context, s models.WorkoutSession) error {
	if s.Status != models.StatusFailed {
		return &InvalidStateError{Op: "archive record failure", Reason: fmt.Sprintf("session status is %q, want %q", s.Status, models.StatusFailed)}
	}
	return a.record(ctx, s)
}

func (a *Archive) record(ctx context.Context, s models.WorkoutSession) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.store.SaveSession(ctx, s); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	a.sessions = append(a.sessions, s.Clone())
	return nil
}

// ListAll returns every archived session, newest first.
func (a *Archive) ListAll() []models.WorkoutSession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]models.WorkoutSession, 0, len(a.sessions))
	for _, s := range a.sessions {
		out = append(out, s.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}

// ListByRange returns completed sessions with startTime in [start, end],
// ordered by startTime ascending.
func (a *Archive) ListByRange(start, end time.Time) []models.WorkoutSession {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []models.WorkoutSession
	for _, s := range a.sessions {
		if s.Status != models.StatusCompleted {
			continue
		}
		if s.StartTime.Before(start) || s.StartTime.After(end) {
			continue
		}
		out = append(out, s.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

// PriorBests returns the best working-set weight per exercise across all
// completed sessions. Exercises never seen before are absent from the
// map, which is how Aggregate knows not to emit a first-occurrence PR.
func (a *Archive) PriorBests() map[string]float64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	bests := make(map[string]float64)
	for _, s := range a.sessions {
		if s.Status != models.StatusCompleted {
			continue
		}
		for _, ex := range s.Exercises {
			for _, set := range ex.Sets {
				if set.IsWarmup {
					continue
				}
				if best, ok := bests[ex.ExerciseID]; !ok || set.Weight > best {
					bests[ex.ExerciseID] = set.Weight
				}
			}
		}
	}
	return bests
}
