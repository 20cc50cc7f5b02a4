package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	id, leave_id, employee_id, leave_type, start_date, end_date, days,
	reason, status, approver_id, approval_date, rejection_reason,
	submitted_at, created_at, updated_at
`

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.LeaveID, &l.EmployeeID, &l.Type, &l.StartDate, &l.EndDate, &l.Days,
		&l.Reason, &l.Status, &l.ApproverID, &l.ApprovalDate, &l.RejectionReason,
		&l.SubmittedAt, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepository) Create(ctx context.Context, l leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (
			leave_id, employee_id, leave_type, start_date, end_date, days,
			reason, status, submitted_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.LeaveID,
		l.EmployeeID,
		l.Type,
		l.StartDate,
		l.EndDate,
		l.Days,
		l.Reason,
		l.Status,
		l.SubmittedAt,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return l, nil
}

// GetByLeaveID implements leave.LeaveRepository.
func (r *leaveRepository) GetByLeaveID(ctx context.Context, leaveID string) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM leaves WHERE leave_id = $1`, leaveColumns)

	l, err := scanLeave(q.QueryRow(ctx, query, leaveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave by id: %w", err)
	}

	return &l, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepository) Update(ctx context.Context, l leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves SET
			status = $1, approver_id = $2, approval_date = $3,
			rejection_reason = $4, updated_at = NOW()
		WHERE leave_id = $5
	`

	tag, err := q.Exec(ctx, query,
		l.Status, l.ApproverID, l.ApprovalDate, l.RejectionReason, l.LeaveID,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// ListByStatus implements leave.LeaveRepository.
func (r *leaveRepository) ListByStatus(ctx context.Context, employeeIDs []string, status leave.LeaveStatus, page, limit int) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE employee_id = ANY($1)"
	args := []interface{}{employeeIDs}
	argIndex := 2

	if status != "" {
		whereClause += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, status)
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leaves %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM leaves
		%s
		ORDER BY submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, whereClause, argIndex, argIndex+1)

	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, total, rows.Err()
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepository) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM leaves WHERE employee_id = $1`

	var total int64
	if err := q.QueryRow(ctx, countQuery, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM leaves
		WHERE employee_id = $1
		ORDER BY submitted_at DESC
		LIMIT $2 OFFSET $3
	`, leaveColumns)

	rows, err := q.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves by employee: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}

	return leaves, total, rows.Err()
}
