package shift

import (
	"context"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/shift"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

type ShiftServiceImpl struct {
	shift.ShiftRepository
	employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		ShiftRepository:    shiftRepo,
		EmployeeRepository: employeeRepo,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, hrAdminID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.ShiftRepository.GetByName(ctx, req.Name)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if existing != nil {
		return shift.ShiftResponse{}, shift.ErrShiftNameExists
	}

	start, end := req.Times()

	newShift := shift.Shift{
		Name:            req.Name,
		Start:           start,
		End:             end,
		Duration:        shift.ComputeDuration(start, end),
		MaxWorkHours:    req.MaxWorkHours,
		AllowedOvertime: req.AllowedOvertime,
		TimeZone:        req.TimeZone,
		BreakDuration:   req.BreakDuration,
		CreatedBy:       hrAdminID,
	}
	if req.BreakStart != nil {
		t, _ := validator.IsValidDateTime(*req.BreakStart)
		newShift.BreakStart = &t
	}
	if req.BreakEnd != nil {
		t, _ := validator.IsValidDateTime(*req.BreakEnd)
		newShift.BreakEnd = &t
	}

	created, err := s.ShiftRepository.Create(ctx, newShift)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(created), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context, hrAdminID string) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.ListByCreatedBy(ctx, hrAdminID)
	if err != nil {
		return nil, err
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// Update implements shift.ShiftService. Duration is recomputed whenever
// either boundary moves.
func (s *ShiftServiceImpl) Update(ctx context.Context, hrAdminID string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	if existing.CreatedBy != hrAdminID {
		return shift.ShiftResponse{}, shift.ErrNotShiftOwner
	}

	if req.Name != nil && *req.Name != existing.Name {
		duplicate, err := s.ShiftRepository.GetByName(ctx, *req.Name)
		if err != nil {
			return shift.ShiftResponse{}, err
		}
		if duplicate != nil {
			return shift.ShiftResponse{}, shift.ErrShiftNameExists
		}
		existing.Name = *req.Name
	}

	if req.Start != nil {
		t, _ := validator.IsValidDateTime(*req.Start)
		existing.Start = t
	}
	if req.End != nil {
		t, _ := validator.IsValidDateTime(*req.End)
		existing.End = t
	}
	if req.MaxWorkHours != nil {
		existing.MaxWorkHours = *req.MaxWorkHours
	}
	if req.AllowedOvertime != nil {
		existing.AllowedOvertime = *req.AllowedOvertime
	}
	if req.TimeZone != nil {
		existing.TimeZone = *req.TimeZone
	}
	if req.BreakStart != nil {
		t, _ := validator.IsValidDateTime(*req.BreakStart)
		existing.BreakStart = &t
	}
	if req.BreakEnd != nil {
		t, _ := validator.IsValidDateTime(*req.BreakEnd)
		existing.BreakEnd = &t
	}
	if req.BreakDuration != nil {
		existing.BreakDuration = *req.BreakDuration
	}

	existing.Duration = shift.ComputeDuration(existing.Start, existing.End)

	if err := s.ShiftRepository.Update(ctx, existing); err != nil {
		return shift.ShiftResponse{}, err
	}

	return toShiftResponse(existing), nil
}

// ResolveShift implements shift.ShiftService.
func (s *ShiftServiceImpl) ResolveShift(ctx context.Context, employeeID string) (shift.Shift, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return shift.Shift{}, err
	}

	if emp.ShiftID == nil || *emp.ShiftID == "" {
		return shift.Shift{}, shift.ErrShiftNotAssigned
	}

	return s.ShiftRepository.GetByID(ctx, *emp.ShiftID)
}

func toShiftResponse(s shift.Shift) shift.ShiftResponse {
	resp := shift.ShiftResponse{
		ID:              s.ID,
		Name:            s.Name,
		Start:           s.Start.Format(time.RFC3339),
		End:             s.End.Format(time.RFC3339),
		Duration:        s.Duration,
		MaxWorkHours:    s.MaxWorkHours,
		AllowedOvertime: s.AllowedOvertime,
		TimeZone:        s.TimeZone,
		BreakDuration:   s.BreakDuration,
		CreatedBy:       s.CreatedBy,
	}
	if s.BreakStart != nil {
		t := s.BreakStart.Format(time.RFC3339)
		resp.BreakStart = &t
	}
	if s.BreakEnd != nil {
		t := s.BreakEnd.Format(time.RFC3339)
		resp.BreakEnd = &t
	}
	return resp
}
