package shift

import "context"

// ShiftService defines business logic for shift templates. Every mutation is
// scoped to the HR admin that owns the shift.
type ShiftService interface {
	Create(ctx context.Context, hrAdminID string, req CreateShiftRequest) (ShiftResponse, error)
	List(ctx context.Context, hrAdminID string) ([]ShiftResponse, error)
	Update(ctx context.Context, hrAdminID string, req UpdateShiftRequest) (ShiftResponse, error)

	// ResolveShift returns the shift assigned to an employee. Fails with
	// ErrShiftNotAssigned when the employee has no shift.
	ResolveShift(ctx context.Context, employeeID string) (Shift, error)
}
