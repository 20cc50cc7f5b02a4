package shift

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

// CreateShiftRequest carries the fields an HR admin submits when defining a
// new shift. Start/End are ISO8601 timestamps; only the time-of-day portion
// is meaningful for lateness checks but the full instants are stored.
type CreateShiftRequest struct {
	Name            string  `json:"shift_name"`
	Start           string  `json:"shift_start"`
	End             string  `json:"shift_end"`
	MaxWorkHours    int     `json:"max_work_hours"`
	AllowedOvertime bool    `json:"allowed_overtime"`
	TimeZone        string  `json:"time_zone"`
	BreakStart      *string `json:"break_start,omitempty"`
	BreakEnd        *string `json:"break_end,omitempty"`
	BreakDuration   int     `json:"break_duration"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_name",
			Message: "shift_name is required",
		})
	}

	start, startOK := validator.IsValidDateTime(r.Start)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_start",
			Message: "shift_start must be a valid ISO8601 timestamp",
		})
	}

	end, endOK := validator.IsValidDateTime(r.End)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be a valid ISO8601 timestamp",
		})
	}

	if startOK && endOK && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_end",
			Message: "shift_end must be after shift_start",
		})
	}

	if r.MaxWorkHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_work_hours",
			Message: "max_work_hours must be greater than zero",
		})
	}

	if r.BreakStart != nil {
		if _, ok := validator.IsValidDateTime(*r.BreakStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_start",
				Message: "break_start must be a valid ISO8601 timestamp",
			})
		}
	}
	if r.BreakEnd != nil {
		if _, ok := validator.IsValidDateTime(*r.BreakEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "break_end",
				Message: "break_end must be a valid ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Times returns the parsed Start/End. Call after Validate.
func (r *CreateShiftRequest) Times() (time.Time, time.Time) {
	start, _ := validator.IsValidDateTime(r.Start)
	end, _ := validator.IsValidDateTime(r.End)
	return start, end
}

// UpdateShiftRequest carries partial updates; nil fields are left untouched.
type UpdateShiftRequest struct {
	ID              string  `json:"-"`
	Name            *string `json:"shift_name,omitempty"`
	Start           *string `json:"shift_start,omitempty"`
	End             *string `json:"shift_end,omitempty"`
	MaxWorkHours    *int    `json:"max_work_hours,omitempty"`
	AllowedOvertime *bool   `json:"allowed_overtime,omitempty"`
	TimeZone        *string `json:"time_zone,omitempty"`
	BreakStart      *string `json:"break_start,omitempty"`
	BreakEnd        *string `json:"break_end,omitempty"`
	BreakDuration   *int    `json:"break_duration,omitempty"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_name",
			Message: "shift_name must not be empty",
		})
	}

	if r.Start != nil {
		if _, ok := validator.IsValidDateTime(*r.Start); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_start",
				Message: "shift_start must be a valid ISO8601 timestamp",
			})
		}
	}
	if r.End != nil {
		if _, ok := validator.IsValidDateTime(*r.End); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shift_end",
				Message: "shift_end must be a valid ISO8601 timestamp",
			})
		}
	}

	if r.MaxWorkHours != nil && *r.MaxWorkHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_work_hours",
			Message: "max_work_hours must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ShiftResponse represents shift data in API responses
type ShiftResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"shift_name"`
	Start           string  `json:"shift_start"`
	End             string  `json:"shift_end"`
	Duration        float64 `json:"shift_duration"`
	MaxWorkHours    int     `json:"max_work_hours"`
	AllowedOvertime bool    `json:"allowed_overtime"`
	TimeZone        string  `json:"time_zone,omitempty"`
	BreakStart      *string `json:"break_start,omitempty"`
	BreakEnd        *string `json:"break_end,omitempty"`
	BreakDuration   int     `json:"break_duration"`
	CreatedBy       string  `json:"created_by"`
}
