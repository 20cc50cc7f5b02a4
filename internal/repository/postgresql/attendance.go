package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, attendance_date, check_in, check_out, shift_type,
	late_arrival, early_departure, missed_check_in, missed_check_out,
	work_hours, overtime_hours, undertime_hours, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.ShiftType,
		&att.LateArrival, &att.EarlyDeparture, &att.MissedCheckIn, &att.MissedCheckOut,
		&att.WorkHours, &att.OvertimeHours, &att.UndertimeHours, &att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

// Upsert implements attendance.AttendanceRepository. The unique index on
// (employee_id, attendance_date) makes re-marking a day a single atomic
// statement instead of a read-then-write pair.
func (r *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (
			employee_id, attendance_date, check_in, check_out, shift_type,
			late_arrival, early_departure, missed_check_in, missed_check_out,
			work_hours, overtime_hours, undertime_hours
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		ON CONFLICT (employee_id, attendance_date) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			shift_type = EXCLUDED.shift_type,
			late_arrival = EXCLUDED.late_arrival,
			early_departure = EXCLUDED.early_departure,
			missed_check_in = EXCLUDED.missed_check_in,
			missed_check_out = EXCLUDED.missed_check_out,
			work_hours = EXCLUDED.work_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			undertime_hours = EXCLUDED.undertime_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.CheckIn,
		att.CheckOut,
		att.ShiftType,
		att.LateArrival,
		att.EarlyDeparture,
		att.MissedCheckIn,
		att.MissedCheckOut,
		att.WorkHours,
		att.OvertimeHours,
		att.UndertimeHours,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		WHERE employee_id = $1 AND attendance_date = $2
	`, attendanceColumns)

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// FindInRange implements attendance.AttendanceRepository.
func (r *attendanceRepository) FindInRange(ctx context.Context, filter attendance.RangeFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE attendance_date >= $1 AND attendance_date <= $2"
	args := []interface{}{filter.Start, filter.End}
	argIndex := 3

	if len(filter.EmployeeIDs) > 0 {
		whereClause += fmt.Sprintf(" AND employee_id = ANY($%d)", argIndex)
		args = append(args, filter.EmployeeIDs)
		argIndex++
	}

	if filter.ShiftType != nil {
		whereClause += fmt.Sprintf(" AND shift_type = $%d", argIndex)
		args = append(args, *filter.ShiftType)
		argIndex++
	}

	if filter.LateArrival != nil {
		whereClause += fmt.Sprintf(" AND late_arrival = $%d", argIndex)
		args = append(args, *filter.LateArrival)
		argIndex++
	}

	if filter.EarlyDeparture != nil {
		whereClause += fmt.Sprintf(" AND early_departure = $%d", argIndex)
		args = append(args, *filter.EarlyDeparture)
		argIndex++
	}

	if filter.OvertimeOnly {
		whereClause += " AND overtime_hours > 0"
	}

	orderBy := "attendance_date"
	switch filter.SortBy {
	case "check_in", "check_out", "work_hours", "overtime_hours":
		orderBy = filter.SortBy
	}
	direction := "ASC"
	if filter.SortDirection == "desc" {
		direction = "DESC"
	}

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		%s
		ORDER BY %s %s
	`, attendanceColumns, whereClause, orderBy, direction)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances in range: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, rows.Err()
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByDate(ctx context.Context, employeeIDs []string, date time.Time, page, limit int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE attendance_date = $1 AND employee_id = ANY($2)"
	args := []interface{}{date, employeeIDs}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendances %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM attendances
		%s
		ORDER BY check_in ASC
		LIMIT $3 OFFSET $4
	`, attendanceColumns, whereClause)

	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances by date: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}
