package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// Profile sections live in jsonb columns; identity and access fields stay
// relational so lookups and joins never touch the documents.
const employeeColumns = `
	id, employee_id, email, password, role, created_by, shift_id,
	personal, employment, compensation, attendance_and_leave,
	performance, documents, emergency_contact, system_access,
	created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Email, &e.Password, &e.Role, &e.CreatedBy, &e.ShiftID,
		&e.Personal, &e.Employment, &e.Compensation, &e.AttendanceAndLeave,
		&e.Performance, &e.Documents, &e.EmergencyContact, &e.SystemAccess,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			employee_id, email, password, role, created_by, shift_id,
			personal, employment, compensation, attendance_and_leave,
			performance, documents, emergency_contact, system_access
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.EmployeeID,
		e.Email,
		e.Password,
		e.Role,
		e.CreatedBy,
		e.ShiftID,
		e.Personal,
		e.Employment,
		e.Compensation,
		e.AttendanceAndLeave,
		e.Performance,
		e.Documents,
		e.EmergencyContact,
		e.SystemAccess,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_id = $1`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return &e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE email = $1`, employeeColumns)

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return &e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			email = $1, password = $2, role = $3, shift_id = $4,
			personal = $5, employment = $6, compensation = $7,
			attendance_and_leave = $8, performance = $9, documents = $10,
			emergency_contact = $11, system_access = $12,
			updated_at = NOW()
		WHERE employee_id = $13
	`

	tag, err := q.Exec(ctx, query,
		e.Email, e.Password, e.Role, e.ShiftID,
		e.Personal, e.Employment, e.Compensation,
		e.AttendanceAndLeave, e.Performance, e.Documents,
		e.EmergencyContact, e.SystemAccess,
		e.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepository) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListByCreatedBy implements employee.EmployeeRepository.
func (r *employeeRepository) ListByCreatedBy(ctx context.Context, createdBy string, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	whereClause := "WHERE created_by = $1"
	args := []interface{}{createdBy}
	argIndex := 2

	if filter.Name != "" {
		whereClause += fmt.Sprintf(" AND personal->>'full_name' ILIKE $%d", argIndex)
		args = append(args, "%"+filter.Name+"%")
		argIndex++
	}
	if filter.Role != "" {
		whereClause += fmt.Sprintf(" AND role = $%d", argIndex)
		args = append(args, filter.Role)
		argIndex++
	}
	if filter.Department != "" {
		whereClause += fmt.Sprintf(" AND employment->>'department' = $%d", argIndex)
		args = append(args, filter.Department)
		argIndex++
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM employees %s`, whereClause)

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	page := filter.Page
	if page == 0 {
		page = 1
	}
	limit := filter.Limit
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM employees
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, argIndex, argIndex+1)

	rows, err := q.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

// ListEmployeeIDsByCreatedBy implements employee.EmployeeRepository.
func (r *employeeRepository) ListEmployeeIDsByCreatedBy(ctx context.Context, createdBy string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT employee_id FROM employees WHERE created_by = $1`, createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
