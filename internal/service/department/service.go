package department

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peoplehq/hrm-backend-go/internal/domain/department"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
	employee.EmployeeRepository
	tx  database.TxManager
	now func() time.Time
}

func NewDepartmentService(
	departmentRepo department.DepartmentRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.TxManager,
) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
		EmployeeRepository:   employeeRepo,
		tx:                   tx,
		now:                  time.Now,
	}
}

func generateDepartmentCode() string {
	return "DEP-" + strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, hrAdminID string, req *department.CreateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.DepartmentRepository.GetByName(ctx, hrAdminID, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, department.ErrDepartmentNameExists
	}

	status := department.DepartmentStatus(req.Status)
	if status == "" {
		status = department.StatusActive
	}

	newDepartment := department.Department{
		Code:            generateDepartmentCode(),
		Name:            req.Name,
		Description:     req.Description,
		Head:            req.Head,
		Budget:          req.Budget,
		Status:          status,
		EstablishedDate: req.Established(),
		Employees:       []string{},
		CreatedBy:       hrAdminID,
	}

	created, err := s.DepartmentRepository.Create(ctx, newDepartment)
	if err != nil {
		return nil, err
	}

	resp := department.ToDepartmentResponse(&created)
	return &resp, nil
}

// GetByCode implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByCode(ctx context.Context, hrAdminID, code string) (*department.DepartmentResponse, error) {
	dept, err := s.ownedDepartment(ctx, hrAdminID, code)
	if err != nil {
		return nil, err
	}

	resp := department.ToDepartmentResponse(dept)
	return &resp, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, hrAdminID, code string, req *department.UpdateDepartmentRequest) (*department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.ownedDepartment(ctx, hrAdminID, code)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != dept.Name {
		duplicate, err := s.DepartmentRepository.GetByName(ctx, hrAdminID, *req.Name)
		if err != nil {
			return nil, err
		}
		if duplicate != nil {
			return nil, department.ErrDepartmentNameExists
		}
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}
	if req.Head != nil {
		dept.Head = *req.Head
	}
	if req.Budget != nil {
		dept.Budget = *req.Budget
	}
	if req.Status != nil {
		dept.Status = department.DepartmentStatus(*req.Status)
	}

	if err := s.DepartmentRepository.Update(ctx, *dept); err != nil {
		return nil, err
	}

	resp := department.ToDepartmentResponse(dept)
	return &resp, nil
}

// Delete implements department.DepartmentService. Members are detached, not
// deleted; their profiles simply lose the department reference.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, hrAdminID, code string) error {
	dept, err := s.ownedDepartment(ctx, hrAdminID, code)
	if err != nil {
		return err
	}

	return s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, employeeID := range dept.Employees {
			emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
			if err != nil {
				return err
			}
			emp.Employment.Department = ""
			if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
				return err
			}
		}
		return s.DepartmentRepository.Delete(ctx, code)
	})
}

// AssignEmployees implements department.DepartmentService. An employee sits
// in at most one department, so assignment removes them from any previous
// one inside the same transaction.
func (s *DepartmentServiceImpl) AssignEmployees(ctx context.Context, hrAdminID, code string, req *department.AssignEmployeesRequest) (*department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	dept, err := s.ownedDepartment(ctx, hrAdminID, code)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, employeeID := range req.EmployeeIDs {
			emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
			if err != nil {
				return err
			}
			if emp.CreatedBy != hrAdminID {
				return department.ErrEmployeeNotInCompany
			}

			if emp.Employment.Department != "" && emp.Employment.Department != code {
				if err := s.removeFromDepartment(ctx, emp.Employment.Department, employeeID); err != nil {
					return err
				}
			}

			emp.Employment.Department = code
			if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
				return err
			}

			if !contains(dept.Employees, employeeID) {
				dept.Employees = append(dept.Employees, employeeID)
			}
		}

		return s.DepartmentRepository.UpdateEmployees(ctx, code, dept.Employees)
	})
	if err != nil {
		return nil, err
	}

	resp := department.ToDepartmentResponse(dept)
	return &resp, nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context, hrAdminID string, page, limit int) (*department.ListDepartmentResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	departments, total, err := s.DepartmentRepository.ListByCreatedBy(ctx, hrAdminID, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &department.ListDepartmentResponse{
		TotalCount:  total,
		Page:        page,
		Limit:       limit,
		Departments: []department.DepartmentResponse{},
	}
	if limit > 0 {
		resp.TotalPages = int(total) / limit
		if int(total)%limit != 0 {
			resp.TotalPages++
		}
	}
	for i := range departments {
		resp.Departments = append(resp.Departments, department.ToDepartmentResponse(&departments[i]))
	}

	return resp, nil
}

// Report implements department.DepartmentService.
func (s *DepartmentServiceImpl) Report(ctx context.Context, hrAdminID string) (*department.DepartmentReport, error) {
	departments, _, err := s.DepartmentRepository.ListByCreatedBy(ctx, hrAdminID, 1, 1000)
	if err != nil {
		return nil, err
	}

	report := &department.DepartmentReport{
		GeneratedAt: s.now().Format(time.RFC3339),
		Departments: []department.DepartmentReportEntry{},
	}

	for i := range departments {
		d := &departments[i]
		report.TotalDepartments++
		report.TotalEmployees += d.NumEmployees()
		report.TotalBudget += d.Budget
		report.Departments = append(report.Departments, department.DepartmentReportEntry{
			Code:         d.Code,
			Name:         d.Name,
			Head:         d.Head,
			Status:       string(d.Status),
			NumEmployees: d.NumEmployees(),
			Budget:       d.Budget,
		})
	}

	return report, nil
}

func (s *DepartmentServiceImpl) ownedDepartment(ctx context.Context, hrAdminID, code string) (*department.Department, error) {
	dept, err := s.DepartmentRepository.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if dept.CreatedBy != hrAdminID {
		return nil, department.ErrNotDepartmentOwner
	}
	return dept, nil
}

func (s *DepartmentServiceImpl) removeFromDepartment(ctx context.Context, code, employeeID string) error {
	dept, err := s.DepartmentRepository.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	members := dept.Employees[:0]
	for _, id := range dept.Employees {
		if id != employeeID {
			members = append(members, id)
		}
	}

	return s.DepartmentRepository.UpdateEmployees(ctx, code, members)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
