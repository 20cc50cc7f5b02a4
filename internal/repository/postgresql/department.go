package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplehq/hrm-backend-go/internal/domain/department"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

const departmentColumns = `
	id, department_code, department_name, description, head, budget, status,
	established_date, employees, created_by, created_at, updated_at
`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID, &d.Code, &d.Name, &d.Description, &d.Head, &d.Budget, &d.Status,
		&d.EstablishedDate, &d.Employees, &d.CreatedBy, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// Create implements department.DepartmentRepository.
func (r *departmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (
			department_code, department_name, description, head, budget, status,
			established_date, employees, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	if d.Employees == nil {
		d.Employees = []string{}
	}

	err := q.QueryRow(ctx, query,
		d.Code,
		d.Name,
		d.Description,
		d.Head,
		d.Budget,
		d.Status,
		d.EstablishedDate,
		d.Employees,
		d.CreatedBy,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return d, nil
}

// GetByCode implements department.DepartmentRepository.
func (r *departmentRepository) GetByCode(ctx context.Context, code string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM departments WHERE department_code = $1`, departmentColumns)

	d, err := scanDepartment(q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, department.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department by code: %w", err)
	}

	return &d, nil
}

// GetByName implements department.DepartmentRepository.
func (r *departmentRepository) GetByName(ctx context.Context, createdBy, name string) (*department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM departments WHERE created_by = $1 AND department_name = $2
	`, departmentColumns)

	d, err := scanDepartment(q.QueryRow(ctx, query, createdBy, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department by name: %w", err)
	}

	return &d, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepository) Update(ctx context.Context, d department.Department) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments SET
			department_name = $1, description = $2, head = $3, budget = $4,
			status = $5, updated_at = NOW()
		WHERE department_code = $6
	`

	tag, err := q.Exec(ctx, query,
		d.Name, d.Description, d.Head, d.Budget, d.Status, d.Code,
	)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// UpdateEmployees implements department.DepartmentRepository.
func (r *departmentRepository) UpdateEmployees(ctx context.Context, code string, employees []string) error {
	q := GetQuerier(ctx, r.db)

	if employees == nil {
		employees = []string{}
	}

	query := `UPDATE departments SET employees = $1, updated_at = NOW() WHERE department_code = $2`

	tag, err := q.Exec(ctx, query, employees, code)
	if err != nil {
		return fmt.Errorf("failed to update department employees: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepository) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE department_code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// ListByCreatedBy implements department.DepartmentRepository.
func (r *departmentRepository) ListByCreatedBy(ctx context.Context, createdBy string, page, limit int) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, r.db)

	countQuery := `SELECT COUNT(*) FROM departments WHERE created_by = $1`

	var total int64
	if err := q.QueryRow(ctx, countQuery, createdBy).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count departments: %w", err)
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := fmt.Sprintf(`
		SELECT %s FROM departments
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, departmentColumns)

	rows, err := q.Query(ctx, query, createdBy, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	return departments, total, rows.Err()
}
