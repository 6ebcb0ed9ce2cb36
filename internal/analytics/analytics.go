// Package analytics computes range statistics over archived sessions for
// the dashboard: headline numbers and a day-bucketed volume series.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/meltforce/liftlog/internal/models"
)

// Stats holds headline numbers for a set of completed sessions.
type Stats struct {
	TotalSessions int     `json:"totalSessions"`
	TotalVolume   float64 `json:"totalVolume"`
	TotalSets     int     `json:"totalSets"`
	AvgDuration   int     `json:"avgDuration"`
}

// VolumePoint is total volume for one calendar day.
type VolumePoint struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
}

// Compute returns headline stats for the given sessions. Sessions
// without aggregated data (failed saves) contribute nothing.
func Compute(sessions []models.WorkoutSession) Stats {
	var stats Stats
	var totalDuration int
	for _, s := range sessions {
		if s.AggregatedData == nil {
			continue
		}
		stats.TotalSessions++
		stats.TotalVolume += s.AggregatedData.TotalVolume
		stats.TotalSets += s.AggregatedData.TotalSets
		totalDuration += s.AggregatedData.DurationMinutes
	}
	if stats.TotalSessions > 0 {
		stats.AvgDuration = int(math.Round(float64(totalDuration) / float64(stats.TotalSessions)))
	}
	return stats
}

// VolumeByDay buckets session volume per calendar day, in chronological
// order. Days with no sessions are absent rather than zero.
func VolumeByDay(sessions []models.WorkoutSession) []VolumePoint {
	byDay := make(map[string]float64)
	for _, s := range sessions {
		if s.AggregatedData == nil {
			continue
		}
		day := s.StartTime.Format("2006-01-02")
		byDay[day] += s.AggregatedData.TotalVolume
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]VolumePoint, 0, len(days))
	for _, day := range days {
		out = append(out, VolumePoint{Date: day, Volume: math.Round(byDay[day])})
	}
	return out
}

// RangeStart resolves a named range ("7d", "30d", "all") to a start
// time. "all" returns the zero time, which matches everything.
func RangeStart(name string, now time.Time) time.Time {
	switch name {
	case "7d":
		return now.AddDate(0, 0, -7)
	case "30d":
		return now.AddDate(0, 0, -30)
	default:
		return time.Time{}
	}
}
