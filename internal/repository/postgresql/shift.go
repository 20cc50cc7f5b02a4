package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/shift"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, shift_name, shift_start, shift_end, shift_duration,
	max_work_hours, allowed_overtime, time_zone,
	break_start, break_end, break_duration,
	created_by, created_at, updated_at
`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.Name, &s.Start, &s.End, &s.Duration,
		&s.MaxWorkHours, &s.AllowedOvertime, &s.TimeZone,
		&s.BreakStart, &s.BreakEnd, &s.BreakDuration,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			shift_name, shift_start, shift_end, shift_duration,
			max_work_hours, allowed_overtime, time_zone,
			break_start, break_end, break_duration, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newShift.Name,
		newShift.Start,
		newShift.End,
		newShift.Duration,
		newShift.MaxWorkHours,
		newShift.AllowedOvertime,
		newShift.TimeZone,
		newShift.BreakStart,
		newShift.BreakEnd,
		newShift.BreakDuration,
		newShift.CreatedBy,
	).Scan(&newShift.ID, &newShift.CreatedAt, &newShift.UpdatedAt)

	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return newShift, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepository) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE id = $1`, shiftColumns)

	s, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift by id: %w", err)
	}

	return s, nil
}

// GetByName implements shift.ShiftRepository.
func (r *shiftRepository) GetByName(ctx context.Context, name string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE shift_name = $1`, shiftColumns)

	s, err := scanShift(q.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shift by name: %w", err)
	}

	return &s, nil
}

// ListByCreatedBy implements shift.ShiftRepository.
func (r *shiftRepository) ListByCreatedBy(ctx context.Context, createdBy string) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM shifts WHERE created_by = $1 ORDER BY created_at DESC`, shiftColumns)

	rows, err := q.Query(ctx, query, createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			shift_name = $1, shift_start = $2, shift_end = $3, shift_duration = $4,
			max_work_hours = $5, allowed_overtime = $6, time_zone = $7,
			break_start = $8, break_end = $9, break_duration = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		s.Name, s.Start, s.End, s.Duration,
		s.MaxWorkHours, s.AllowedOvertime, s.TimeZone,
		s.BreakStart, s.BreakEnd, s.BreakDuration,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}
