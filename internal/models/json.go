package models

import (
	"encoding/json"
	"time"
)

// The HTTP API, MCP results, and persisted payloads all encode
// timestamps as Unix milliseconds, matching the client wire format.
// Internally the structs keep time.Time; these marshalers translate at
// the boundary. A zero time encodes as 0 and decodes back to the zero
// time.

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

func toMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := toMillis(*t)
	return &ms
}

func fromMillisPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := fromMillis(*ms)
	return &t
}

// MarshalJSON encodes the set timestamp as Unix milliseconds.
func (s WorkoutSet) MarshalJSON() ([]byte, error) {
	type alias WorkoutSet
	return json.Marshal(struct {
		alias
		Timestamp int64 `json:"timestamp"`
	}{alias(s), toMillis(s.Timestamp)})
}

// UnmarshalJSON decodes the set timestamp from Unix milliseconds.
func (s *WorkoutSet) UnmarshalJSON(data []byte) error {
	type alias WorkoutSet
	aux := struct {
		*alias
		Timestamp int64 `json:"timestamp"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Timestamp = fromMillis(aux.Timestamp)
	return nil
}

// MarshalJSON encodes startTime, endTime, and processedAt as Unix
// milliseconds. Set timestamps are handled by WorkoutSet.
func (s WorkoutSession) MarshalJSON() ([]byte, error) {
	type alias WorkoutSession
	return json.Marshal(struct {
		alias
		StartTime   int64  `json:"startTime"`
		EndTime     *int64 `json:"endTime"`
		ProcessedAt *int64 `json:"processedAt,omitempty"`
	}{alias(s), toMillis(s.StartTime), toMillisPtr(s.EndTime), toMillisPtr(s.ProcessedAt)})
}

// UnmarshalJSON decodes the session timestamps from Unix milliseconds.
func (s *WorkoutSession) UnmarshalJSON(data []byte) error {
	type alias WorkoutSession
	aux := struct {
		*alias
		StartTime   int64  `json:"startTime"`
		EndTime     *int64 `json:"endTime"`
		ProcessedAt *int64 `json:"processedAt"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.StartTime = fromMillis(aux.StartTime)
	s.EndTime = fromMillisPtr(aux.EndTime)
	s.ProcessedAt = fromMillisPtr(aux.ProcessedAt)
	return nil
}

// MarshalJSON encodes createdAt, updatedAt, and lastUsedAt as Unix
// milliseconds.
func (t WorkoutTemplate) MarshalJSON() ([]byte, error) {
	type alias WorkoutTemplate
	return json.Marshal(struct {
		alias
		CreatedAt  int64  `json:"createdAt"`
		UpdatedAt  int64  `json:"updatedAt"`
		LastUsedAt *int64 `json:"lastUsedAt"`
	}{alias(t), toMillis(t.CreatedAt), toMillis(t.UpdatedAt), toMillisPtr(t.LastUsedAt)})
}

// UnmarshalJSON decodes the template timestamps from Unix milliseconds.
func (t *WorkoutTemplate) UnmarshalJSON(data []byte) error {
	type alias WorkoutTemplate
	aux := struct {
		*alias
		CreatedAt  int64  `json:"createdAt"`
		UpdatedAt  int64  `json:"updatedAt"`
		LastUsedAt *int64 `json:"lastUsedAt"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.CreatedAt = fromMillis(aux.CreatedAt)
	t.UpdatedAt = fromMillis(aux.UpdatedAt)
	t.LastUsedAt = fromMillisPtr(aux.LastUsedAt)
	return nil
}
