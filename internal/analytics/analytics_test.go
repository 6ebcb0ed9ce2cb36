package analytics

import (
	"testing"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

func session(day time.Time, volume float64, sets, duration int) models.WorkoutSession {
	return models.WorkoutSession{
		ID:        day.Format("id-2006-01-02-15"),
		StartTime: day,
		Status:    models.StatusCompleted,
		AggregatedData: &models.AggregatedData{
			TotalVolume:     volume,
			TotalSets:       sets,
			DurationMinutes: duration,
		},
	}
}

// TestComputeStats verifies headline totals and rounded average
// duration.
func TestComputeStats(t *testing.T) {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		session(base, 1200, 12, 45),
		session(base.AddDate(0, 0, 1), 800, 9, 50),
		{ID: "failed", StartTime: base, Status: models.StatusFailed}, // no aggregates
	}

	stats := Compute(sessions)
	if stats.TotalSessions != 2 {
		t.Errorf("totalSessions = %d, want 2", stats.TotalSessions)
	}
	if stats.TotalVolume != 2000 {
		t.Errorf("totalVolume = %v, want 2000", stats.TotalVolume)
	}
	if stats.TotalSets != 21 {
		t.Errorf("totalSets = %d, want 21", stats.TotalSets)
	}
	if stats.AvgDuration != 48 {
		t.Errorf("avgDuration = %d, want 48", stats.AvgDuration)
	}
}

// TestComputeStatsEmpty verifies the zero value for no sessions.
func TestComputeStatsEmpty(t *testing.T) {
	stats := Compute(nil)
	if stats.TotalSessions != 0 || stats.TotalVolume != 0 || stats.AvgDuration != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
}

// TestVolumeByDay verifies same-day sessions merge into one bucket and
// buckets come out chronologically.
func TestVolumeByDay(t *testing.T) {
	day1 := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 1, 18, 0, 0, 0, time.UTC)
	sessions := []models.WorkoutSession{
		session(day1, 500, 5, 30),
		session(day1.Add(8*time.Hour), 300, 3, 20), // same calendar day
		session(day2, 1000, 10, 60),
	}

	points := VolumeByDay(sessions)
	if len(points) != 2 {
		t.Fatalf("points = %d, want 2", len(points))
	}
	if points[0].Date != "2026-08-01" || points[0].Volume != 1000 {
		t.Errorf("point 0 = %+v, want 2026-08-01/1000", points[0])
	}
	if points[1].Date != "2026-08-03" || points[1].Volume != 800 {
		t.Errorf("point 1 = %+v, want 2026-08-03/800", points[1])
	}
}

// TestRangeStart verifies named range resolution.
func TestRangeStart(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	if got := RangeStart("7d", now); !got.Equal(now.AddDate(0, 0, -7)) {
		t.Errorf("7d start = %v", got)
	}
	if got := RangeStart("30d", now); !got.Equal(now.AddDate(0, 0, -30)) {
		t.Errorf("30d start = %v", got)
	}
	if got := RangeStart("all", now); !got.IsZero() {
		t.Errorf("all start = %v, want zero time", got)
	}
}
