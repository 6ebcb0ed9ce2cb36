package models

import "time"

// TemplateExercise is one planned exercise inside a workout template.
// Name is denormalized from the exercise catalog and may drift.
type TemplateExercise struct {
	ExerciseID   string   `json:"exerciseId"`
	Name         string   `json:"name"`
	Order        int      `json:"order"`
	TargetSets   int      `json:"targetSets"`
	TargetReps   string   `json:"targetReps"`
	TargetWeight *float64 `json:"targetWeight,omitempty"`
	RestSeconds  *int     `json:"restSeconds,omitempty"`
	Notes        string   `json:"notes,omitempty"`
}

// WorkoutTemplate is a reusable workout plan.
type WorkoutTemplate struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Exercises   []TemplateExercise `json:"exercises"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	LastUsedAt  *time.Time         `json:"lastUsedAt"`
	UseCount    int                `json:"useCount"`
}

// Clone returns a deep copy of the template.
func (t WorkoutTemplate) Clone() WorkoutTemplate {
	out := t
	out.Exercises = append([]TemplateExercise(nil), t.Exercises...)
	if t.LastUsedAt != nil {
		ts := *t.LastUsedAt
		out.LastUsedAt = &ts
	}
	return out
}

// NormalizeOrder rewrites exercise order fields to contiguous zero-based
// values matching list position.
func (t *WorkoutTemplate) NormalizeOrder() {
	for i := range t.Exercises {
		t.Exercises[i].Order = i
	}
}
