package shift

import (
	"time"
)

// Shift is a named work-time template owned by an HR admin. Duration is
// derived from Start/End and recomputed by the write path on every save.
type Shift struct {
	ID              string
	Name            string
	Start           time.Time
	End             time.Time
	Duration        float64 // hours, End - Start
	MaxWorkHours    int
	AllowedOvertime bool
	TimeZone        string
	BreakStart      *time.Time
	BreakEnd        *time.Time
	BreakDuration   int // minutes
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ComputeDuration derives the shift duration in hours from its boundaries.
// Invoked explicitly by the write path rather than hidden in a persistence
// hook so it stays unit-testable.
func ComputeDuration(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}
