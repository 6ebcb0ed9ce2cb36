package workout

import (
	"context"
	"testing"
	"time"

	"github.com/meltforce/liftlog/internal/models"
	"github.com/meltforce/liftlog/internal/storage"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := NewArchive(context.Background(), storage.NewMemory())
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func completedSession(id string, start time.Time, exerciseID string, weight float64) models.WorkoutSession {
	end := start.Add(time.Hour)
	return models.WorkoutSession{
		ID:        id,
		Name:      "Workout",
		StartTime: start,
		EndTime:   &end,
		Status:    models.StatusCompleted,
		Exercises: []models.SessionExercise{
			{ID: id + "-ex", ExerciseID: exerciseID, Name: exerciseID, Sets: []models.WorkoutSet{
				{Reps: 5, Weight: weight},
			}},
		},
		AggregatedData: &models.AggregatedData{TotalVolume: 5 * weight, TotalSets: 1, TotalReps: 5, MaxWeight: weight, PrsAchieved: []models.PrRecord{}},
	}
}

// TestArchiveAppendRejectsNonCompleted verifies append only accepts
// completed sessions.
func TestArchiveAppendRejectsNonCompleted(t *testing.T) {
	a := newTestArchive(t)
	ctx := context.Background()

	for _, status := range []models.SessionStatus{models.StatusActive, models.StatusProcessing, models.StatusFailed} {
		s := completedSession("s1", time.Now(), "bench", 100)
		s.Status = status
		if err := a.Append(ctx, s); !IsInvalidState(err) {
			t.Errorf("append(status=%q) error = %v, want InvalidStateError", status, err)
		}
	}
	if got := len(a.ListAll()); got != 0 {
		t.Errorf("archive has %d sessions, want 0", got)
	}
}

// TestArchiveListByRange verifies inclusive range filtering and
// ascending ordering, and that failed sessions are excluded.
func TestArchiveListByRange(t *testing.T) {
	a := newTestArchive(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	for i, day := range []int{4, 0, 2} {
		s := completedSession(string(rune('a'+i)), base.AddDate(0, 0, day), "bench", 100)
		if err := a.Append(ctx, s); err != nil {
			t.Fatal(err)
		}
	}
	failed := completedSession("f", base.AddDate(0, 0, 1), "bench", 100)
	failed.Status = models.StatusFailed
	failed.AggregatedData = nil
	failed.ErrorMessage = "Cannot save an empty workout."
	if err := a.RecordFailure(ctx, failed); err != nil {
		t.Fatal(err)
	}

	got := a.ListByRange(base, base.AddDate(0, 0, 2))
	if len(got) != 2 {
		t.Fatalf("range returned %d sessions, want 2", len(got))
	}
	if !got[0].StartTime.Before(got[1].StartTime) {
		t.Error("range results not in ascending startTime order")
	}
	for _, s := range got {
		if s.Status != models.StatusCompleted {
			t.Errorf("range returned status %q", s.Status)
		}
	}

	// Range bounds are inclusive
	exact := a.ListByRange(base.AddDate(0, 0, 4), base.AddDate(0, 0, 4))
	if len(exact) != 1 {
		t.Errorf("inclusive bound returned %d sessions, want 1", len(exact))
	}
}

// TestArchiveListAll verifies newest-first history including failed
// sessions with their error messages.
func TestArchiveListAll(t *testing.T) {
	a := newTestArchive(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	if err := a.Append(ctx, completedSession("old", base, "bench", 100)); err != nil {
		t.Fatal(err)
	}
	failed := completedSession("new", base.AddDate(0, 0, 3), "bench", 100)
	failed.Status = models.StatusFailed
	failed.AggregatedData = nil
	failed.ErrorMessage = "aggregation failed: boom"
	if err := a.RecordFailure(ctx, failed); err != nil {
		t.Fatal(err)
	}

	all := a.ListAll()
	if len(all) != 2 {
		t.Fatalf("listAll returned %d sessions, want 2", len(all))
	}
	if all[0].ID != "new" {
		t.Errorf("first session = %q, want newest %q", all[0].ID, "new")
	}
	if all[0].ErrorMessage == "" {
		t.Error("failed session lost its error message")
	}
}

// TestArchivePriorBests verifies per-exercise best working weights over
// completed history, ignoring warmups and failed sessions.
func TestArchivePriorBests(t *testing.T) {
	a := newTestArchive(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 8, 0, 0, 0, time.UTC)
	s1 := completedSession("s1", base, "bench", 100)
	s1.Exercises[0].Sets = append(s1.Exercises[0].Sets, models.WorkoutSet{Reps: 1, Weight: 140, IsWarmup: true})
	if err := a.Append(ctx, s1); err != nil {
		t.Fatal(err)
	}
	if err := a.Append(ctx, completedSession("s2", base.AddDate(0, 0, 2), "bench", 110)); err != nil {
		t.Fatal(err)
	}
	if err := a.Append(ctx, completedSession("s3", base.AddDate(0, 0, 4), "squat", 150)); err != nil {
		t.Fatal(err)
	}

	bests := a.PriorBests()
	if bests["bench"] != 110 {
		t.Errorf("bench best = %v, want 110 (warmup 140 ignored)", bests["bench"])
	}
	if bests["squat"] != 150 {
		t.Errorf("squat best = %v, want 150", bests["squat"])
	}
	if _, ok := bests["deadlift"]; ok {
		t.Error("unseen exercise has a prior best")
	}
}
