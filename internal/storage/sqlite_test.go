package storage

import (
	"context"
	"testing"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// TestSQLiteTemplateRoundTrip verifies templates survive a save/load
// cycle and that re-saving replaces in place.
func TestSQLiteTemplateRoundTrip(t *testing.T) {
	db, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tpl := models.WorkoutTemplate{
		ID:        "tpl-1",
		Name:      "Push Day",
		CreatedAt: now,
		UpdatedAt: now,
		Exercises: []models.TemplateExercise{
			{ExerciseID: "bench", Name: "Bench Press", Order: 0, TargetSets: 3, TargetReps: "8-12"},
		},
	}
	if err := db.SaveTemplate(ctx, tpl); err != nil {
		t.Fatalf("save error: %v", err)
	}

	tpl.Name = "Push Day A"
	tpl.UseCount = 2
	if err := db.SaveTemplate(ctx, tpl); err != nil {
		t.Fatalf("re-save error: %v", err)
	}

	loaded, err := db.LoadTemplates(ctx)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("loaded %d templates, want 1", len(loaded))
	}
	got := loaded[0]
	if got.Name != "Push Day A" {
		t.Errorf("name = %q, want %q", got.Name, "Push Day A")
	}
	if got.UseCount != 2 {
		t.Errorf("useCount = %d, want 2", got.UseCount)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].TargetReps != "8-12" {
		t.Errorf("exercises not preserved: %+v", got.Exercises)
	}
}

// TestSQLiteDeleteTemplate verifies deletion, including of absent ids.
func TestSQLiteDeleteTemplate(t *testing.T) {
	db, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC()
	if err := db.SaveTemplate(ctx, models.WorkoutTemplate{ID: "tpl-1", Name: "Doomed", CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatal(err)
	}
	if err := db.DeleteTemplate(ctx, "tpl-1"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if err := db.DeleteTemplate(ctx, "ghost"); err != nil {
		t.Fatalf("delete of absent id error: %v", err)
	}

	loaded, err := db.LoadTemplates(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 0 {
		t.Errorf("loaded %d templates after delete, want 0", len(loaded))
	}
}

// TestSQLiteSessionRoundTrip verifies terminal sessions round-trip with
// aggregates and error messages intact.
func TestSQLiteSessionRoundTrip(t *testing.T) {
	db, err := OpenSQLite(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ctx := context.Background()
	start := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	end := start.Add(50 * time.Minute)
	completed := models.WorkoutSession{
		ID:        "sess-1",
		Name:      "Push Day",
		StartTime: start,
		EndTime:   &end,
		Status:    models.StatusCompleted,
		Exercises: []models.SessionExercise{
			{ID: "e1", ExerciseID: "bench", Name: "Bench Press", Sets: []models.WorkoutSet{
				{Reps: 8, Weight: 50, Timestamp: start.Add(5 * time.Minute)},
			}},
		},
		AggregatedData: &models.AggregatedData{TotalVolume: 400, TotalSets: 1, TotalReps: 8, DurationMinutes: 50, MaxWeight: 50, PrsAchieved: []models.PrRecord{}},
	}
	failed := models.WorkoutSession{
		ID:           "sess-2",
		Name:         "Push Day",
		StartTime:    start.Add(24 * time.Hour),
		EndTime:      &end,
		Status:       models.StatusFailed,
		Exercises:    []models.SessionExercise{},
		ErrorMessage: "Cannot save an empty workout.",
	}

	if err := db.SaveSession(ctx, completed); err != nil {
		t.Fatalf("save error: %v", err)
	}
	if err := db.SaveSession(ctx, failed); err != nil {
		t.Fatalf("save error: %v", err)
	}

	loaded, err := db.LoadSessions(ctx)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("loaded %d sessions, want 2", len(loaded))
	}
	// LoadSessions orders by start_time ascending
	if loaded[0].ID != "sess-1" {
		t.Errorf("first session = %q, want sess-1", loaded[0].ID)
	}
	if loaded[0].AggregatedData == nil || loaded[0].AggregatedData.TotalVolume != 400 {
		t.Errorf("aggregates not preserved: %+v", loaded[0].AggregatedData)
	}
	if loaded[1].ErrorMessage != "Cannot save an empty workout." {
		t.Errorf("errorMessage = %q, want the empty-workout message", loaded[1].ErrorMessage)
	}
}
