package shift

import "context"

type ShiftRepository interface {
	// Create creates a new shift; the shift name is unique system-wide.
	Create(ctx context.Context, shift Shift) (Shift, error)

	// GetByID retrieves a shift by its ID.
	GetByID(ctx context.Context, id string) (Shift, error)

	// GetByName retrieves a shift by its unique name.
	GetByName(ctx context.Context, name string) (*Shift, error)

	// ListByCreatedBy lists every shift owned by an HR admin.
	ListByCreatedBy(ctx context.Context, createdBy string) ([]Shift, error)

	// Update rewrites the mutable fields of an existing shift.
	Update(ctx context.Context, shift Shift) error
}
