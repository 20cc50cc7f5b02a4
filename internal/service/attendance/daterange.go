package attendance

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

// RangeBounds resolves a named date filter to inclusive day boundaries.
// Supported filters: today, yesterday, week, month, year, custom. The custom
// filter requires both from and to as YYYY-MM-DD dates.
func RangeBounds(filter, from, to string, now time.Time) (time.Time, time.Time, error) {
	today := DateOnly(now)

	switch filter {
	case "", "today":
		return today, today, nil
	case "yesterday":
		y := today.AddDate(0, 0, -1)
		return y, y, nil
	case "week":
		// Week starts on Monday.
		offset := int(today.Weekday()) - 1
		if offset < 0 {
			offset = 6
		}
		start := today.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 6), nil
	case "month":
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return start, start.AddDate(0, 1, -1), nil
	case "year":
		start := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, today.Location())
		return start, time.Date(today.Year(), 12, 31, 0, 0, 0, 0, today.Location()), nil
	case "custom":
		start, ok := validator.IsValidDate(from)
		if !ok {
			return time.Time{}, time.Time{}, attendance.ErrCustomRangeRequired
		}
		end, ok := validator.IsValidDate(to)
		if !ok {
			return time.Time{}, time.Time{}, attendance.ErrCustomRangeRequired
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, attendance.ErrInvalidDateFilter
		}
		return start, end, nil
	default:
		return time.Time{}, time.Time{}, attendance.ErrInvalidDateFilter
	}
}

// EachDay lists every calendar day from start through end inclusive.
func EachDay(start, end time.Time) []time.Time {
	start = DateOnly(start)
	end = DateOnly(end)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
