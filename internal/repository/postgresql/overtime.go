package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/overtime"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

const overtimeColumns = `
	id, overtime_id, employee_id, overtime_date,
	regular_hours, weekend_hours, holiday_hours,
	reason, status, approver_id, approval_date, rejection_reason,
	submitted_at, created_at, updated_at
`

func scanOvertime(row pgx.Row) (overtime.Overtime, error) {
	var o overtime.Overtime
	err := row.Scan(
		&o.ID, &o.OvertimeID, &o.EmployeeID, &o.Date,
		&o.RegularHours, &o.WeekendHours, &o.HolidayHours,
		&o.Reason, &o.Status, &o.ApproverID, &o.ApprovalDate, &o.RejectionReason,
		&o.SubmittedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

// Create implements overtime.OvertimeRepository.
func (r *overtimeRepository) Create(ctx context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtimes (
			overtime_id, employee_id, overtime_date,
			regular_hours, weekend_hours, holiday_hours,
			reason, status, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		o.OvertimeID,
		o.EmployeeID,
		o.Date,
		o.RegularHours,
		o.WeekendHours,
		o.HolidayHours,
		o.Reason,
		o.Status,
		o.SubmittedAt,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)

	if err != nil {
		return overtime.Overtime{}, fmt.Errorf("failed to create overtime: %w", err)
	}

	return o, nil
}

// GetByOvertimeID implements overtime.OvertimeRepository.
func (r *overtimeRepository) GetByOvertimeID(ctx context.Context, overtimeID string) (*overtime.Overtime, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM overtimes WHERE overtime_id = $1`, overtimeColumns)

	o, err := scanOvertime(q.QueryRow(ctx, query, overtimeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, overtime.ErrOvertimeNotFound
		}
		return nil, fmt.Errorf("failed to get overtime by id: %w", err)
	}

	return &o, nil
}

// Update implements overtime.OvertimeRepository.
func (r *overtimeRepository) Update(ctx context.Context, o overtime.Overtime) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtimes SET
			status = $1, approver_id = $2, approval_date = $3,
			rejection_reason = $4, updated_at = NOW()
		WHERE overtime_id = $5
	`

	tag, err := q.Exec(ctx, query,
		o.Status, o.ApproverID, o.ApprovalDate, o.RejectionReason, o.OvertimeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeNotFound
	}

	return nil
}

// ListByStatus implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByStatus(ctx context.Context, employeeIDs []string, status overtime.OvertimeStatus, page, limit int) ([]overtime.Overtime, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE employee_id = ANY($1)"
	args := []interface{}{employeeIDs}
	argIndex := 2

	if status != "" {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM overtimes %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtimes: %w", err)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM overtimes
		%s
		ORDER BY submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, overtimeColumns, whereClause, argIndex, argIndex+1)

	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtimes: %w", err)
	}
	defer rows.Close()

	var overtimes []overtime.Overtime
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime: %w", err)
		}
		overtimes = append(overtimes, o)
	}

	return overtimes, total, rows.Err()
}

// ListByEmployee implements overtime.OvertimeRepository.
func (r *overtimeRepository) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]overtime.Overtime, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM overtimes WHERE employee_id = $1`

	var total int64
	if err := q.QueryRow(ctx, countQuery, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count overtimes: %w", err)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM overtimes
		WHERE employee_id = $1
		ORDER BY submitted_at DESC
		LIMIT $2 OFFSET $3
	`, overtimeColumns)

	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list overtimes by employee: %w", err)
	}
	defer rows.Close()

	var overtimes []overtime.Overtime
	for rows.Next() {
		o, err := scanOvertime(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan overtime: %w", err)
		}
		overtimes = append(overtimes, o)
	}

	return overtimes, total, rows.Err()
}
