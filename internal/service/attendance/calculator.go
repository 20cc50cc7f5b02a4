package attendance

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/shift"
)

// WorkHours is the whole-hour count between check-in and check-out,
// truncated. A missing check-out yields zero.
func WorkHours(checkIn time.Time, checkOut *time.Time) int {
	if checkOut == nil {
		return 0
	}
	diff := checkOut.Sub(checkIn)
	if diff < 0 {
		return 0
	}
	return int(diff.Hours())
}

// OvertimeHours is the excess of worked hours over the shift duration,
// never negative.
func OvertimeHours(workHours int, shiftDuration float64) float64 {
	if float64(workHours) > shiftDuration {
		return float64(workHours) - shiftDuration
	}
	return 0
}

// UndertimeHours is the shortfall of worked hours under the shift duration,
// never negative.
func UndertimeHours(workHours int, shiftDuration float64) float64 {
	if float64(workHours) < shiftDuration {
		return shiftDuration - float64(workHours)
	}
	return 0
}

// IsLate reports whether the check-in instant falls after the shift start.
// Both sides are compared on the clock of the check-in's own day so shifts
// defined on an arbitrary calendar date still apply.
func IsLate(checkIn time.Time, s shift.Shift) bool {
	return checkIn.After(onDay(s.Start, checkIn))
}

// IsEarlyDeparture reports whether the departure instant falls before the
// shift end. A missing check-out substitutes the evaluation time, so an open
// day evaluated before shift end counts as an early departure.
func IsEarlyDeparture(checkOut *time.Time, now time.Time, s shift.Shift) bool {
	departure := now
	if checkOut != nil {
		departure = *checkOut
	}
	return departure.Before(onDay(s.End, departure))
}

// onDay transplants the clock component of t onto the calendar day of ref,
// in ref's location.
func onDay(t, ref time.Time) time.Time {
	return time.Date(
		ref.Year(), ref.Month(), ref.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		ref.Location(),
	)
}

// DateOnly truncates an instant to midnight of its own day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
