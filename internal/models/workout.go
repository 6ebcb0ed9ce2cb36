package models

import "time"

// SessionStatus is the lifecycle state of a workout session.
// Transitions are active -> processing -> completed or failed;
// completed and failed are terminal.
type SessionStatus string

const (
	StatusActive     SessionStatus = "active"
	StatusProcessing SessionStatus = "processing"
	StatusCompleted  SessionStatus = "completed"
	StatusFailed     SessionStatus = "failed"
)

// Terminal reports whether the status permits no further transitions.
func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// WorkoutSet is one performed reps-and-weight unit within an exercise.
type WorkoutSet struct {
	Reps      int       `json:"reps"`
	Weight    float64   `json:"weight"`
	RPE       *float64  `json:"rpe,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	IsWarmup  bool      `json:"isWarmup"`
}

// RPEFromRIR converts a reps-in-reserve value to RPE (rpe = 10 - rir).
func RPEFromRIR(rir float64) float64 {
	return 10 - rir
}

// SessionExercise is one exercise instance inside a session. Sets are
// append-only while the session is active.
type SessionExercise struct {
	ID         string       `json:"id"`
	ExerciseID string       `json:"exerciseId"`
	Name       string       `json:"name"`
	Order      int          `json:"order"`
	Notes      string       `json:"notes,omitempty"`
	Sets       []WorkoutSet `json:"sets"`
}

// PrRecord is one detected personal-record improvement.
type PrRecord struct {
	ExerciseID    string  `json:"exerciseId"`
	ExerciseName  string  `json:"exerciseName"`
	Description   string  `json:"description"`
	PreviousValue float64 `json:"previousValue"`
	NewValue      float64 `json:"newValue"`
}

// AggregatedData holds the summary statistics computed once at session
// completion. It is write-once; nothing edits it after the fact.
type AggregatedData struct {
	TotalVolume     float64    `json:"totalVolume"`
	TotalSets       int        `json:"totalSets"`
	TotalReps       int        `json:"totalReps"`
	DurationMinutes int        `json:"durationMinutes"`
	MaxWeight       float64    `json:"maxWeight"`
	PrsAchieved     []PrRecord `json:"prsAchieved"`
}

// WorkoutSession is one concrete execution of a workout. Mutable while
// active, an immutable record once terminal.
type WorkoutSession struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	StartTime      time.Time         `json:"startTime"`
	EndTime        *time.Time        `json:"endTime"`
	Status         SessionStatus     `json:"status"`
	Exercises      []SessionExercise `json:"exercises"`
	AggregatedData *AggregatedData   `json:"aggregatedData"`
	ProcessedAt    *time.Time        `json:"processedAt,omitempty"`
	ErrorMessage   string            `json:"errorMessage,omitempty"`
}

// Exercise returns the session exercise with the given id, or nil.
func (s *WorkoutSession) Exercise(exerciseID string) *SessionExercise {
	for i := range s.Exercises {
		if s.Exercises[i].ID == exerciseID || s.Exercises[i].ExerciseID == exerciseID {
			return &s.Exercises[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the session so callers can hand it out
// without exposing internal state to mutation.
func (s WorkoutSession) Clone() WorkoutSession {
	out := s
	out.Exercises = make([]SessionExercise, len(s.Exercises))
	for i, ex := range s.Exercises {
		c := ex
		c.Sets = append([]WorkoutSet(nil), ex.Sets...)
		out.Exercises[i] = c
	}
	if s.EndTime != nil {
		t := *s.EndTime
		out.EndTime = &t
	}
	if s.ProcessedAt != nil {
		t := *s.ProcessedAt
		out.ProcessedAt = &t
	}
	if s.AggregatedData != nil {
		agg := *s.AggregatedData
		agg.PrsAchieved = append([]PrRecord(nil), s.AggregatedData.PrsAchieved...)
		out.AggregatedData = &agg
	}
	return out
}
