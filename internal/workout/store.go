package workout

import (
	"context"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// Store is the persistence collaborator the engine writes through. The
// engine only needs read-your-writes consistency within the process;
// backends may be postgres, sqlite, or plain memory.
type Store interface {
	LoadTemplates(ctx context.Context) ([]models.WorkoutTemplate, error)
	SaveTemplate(ctx context.Context, t models.WorkoutTemplate) error
	DeleteTemplate(ctx context.Context, id string) error
	LoadSessions(ctx context.Context) ([]models.WorkoutSession, error)
	SaveSession(ctx context.Context, s models.WorkoutSession) error
}

// Clock supplies the current time. Injectable for deterministic tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
