package employee

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/shift"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/storage"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	shift.ShiftRepository
	files storage.FileStorage
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	files storage.FileStorage,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		ShiftRepository:    shiftRepo,
		files:              files,
	}
}

// GenerateEmployeeID produces a public identifier of the form "Emp" followed
// by eight lowercase hex digits.
func GenerateEmployeeID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "Emp" + hex.EncodeToString(buf)
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, hrAdminID string, req *employee.CreateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, employee.ErrEmailExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.Role(req.Role)
	if req.Role == "" {
		role = user.RoleEmployee
	}

	newEmployee := employee.Employee{
		EmployeeID:         GenerateEmployeeID(),
		Email:              req.Email,
		Password:           string(hashed),
		Role:               role,
		CreatedBy:          hrAdminID,
		Personal:           req.Personal,
		Employment:         req.Employment,
		Compensation:       req.Compensation,
		AttendanceAndLeave: req.AttendanceAndLeave,
		EmergencyContact:   req.EmergencyContact,
		SystemAccess: employee.SystemAccess{
			Email:     req.Email,
			Role:      string(role),
			CreatedBy: hrAdminID,
		},
	}

	created, err := s.EmployeeRepository.Create(ctx, newEmployee)
	if err != nil {
		return nil, err
	}

	resp := employee.ToEmployeeResponse(&created)
	return &resp, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, callerID string, callerRole user.Role, employeeID string) (*employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if !user.HasRequiredRights(callerRole, callerID, employeeID, user.PermissionViewProfile) {
		return nil, user.ErrPermissionDenied
	}
	if callerRole != user.RoleEmployee && callerID != employeeID && emp.CreatedBy != callerID {
		return nil, employee.ErrNotManagedByYou
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

// Update implements employee.EmployeeService. Sections present in the
// request replace the stored sections wholesale.
func (s *EmployeeServiceImpl) Update(ctx context.Context, callerID string, callerRole user.Role, employeeID string, req *employee.UpdateEmployeeRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if !user.HasRequiredRights(callerRole, callerID, employeeID, user.PermissionUpdateProfile) {
		return nil, user.ErrPermissionDenied
	}
	if callerRole != user.RoleEmployee && callerID != employeeID && emp.CreatedBy != callerID {
		return nil, employee.ErrNotManagedByYou
	}

	if req.Personal != nil {
		emp.Personal = *req.Personal
	}
	if req.Employment != nil {
		emp.Employment = *req.Employment
	}
	if req.Compensation != nil {
		emp.Compensation = *req.Compensation
	}
	if req.AttendanceAndLeave != nil {
		emp.AttendanceAndLeave = *req.AttendanceAndLeave
	}
	if req.Performance != nil {
		emp.Performance = *req.Performance
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = *req.EmergencyContact
	}

	if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
		return nil, err
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, hrAdminID, employeeID string) error {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp.CreatedBy != hrAdminID {
		return employee.ErrNotManagedByYou
	}

	return s.EmployeeRepository.Delete(ctx, employeeID)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, hrAdminID string, filter employee.ListFilter) (*employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Page == 0 {
		filter.Page = 1
	}
	if filter.Limit == 0 {
		filter.Limit = 10
	}

	employees, total, err := s.EmployeeRepository.ListByCreatedBy(ctx, hrAdminID, filter)
	if err != nil {
		return nil, err
	}

	resp := &employee.ListEmployeeResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Employees:  []employee.EmployeeResponse{},
	}
	if filter.Limit > 0 {
		resp.TotalPages = int(total) / filter.Limit
		if int(total)%filter.Limit != 0 {
			resp.TotalPages++
		}
	}
	for i := range employees {
		resp.Employees = append(resp.Employees, employee.ToEmployeeResponse(&employees[i]))
	}

	return resp, nil
}

// AssignShift implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AssignShift(ctx context.Context, hrAdminID, employeeID string, req *employee.AssignShiftRequest) (*employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CreatedBy != hrAdminID {
		return nil, employee.ErrNotManagedByYou
	}

	assigned, err := s.ShiftRepository.GetByID(ctx, req.ShiftID)
	if err != nil {
		return nil, err
	}
	if assigned.CreatedBy != hrAdminID {
		return nil, shift.ErrNotShiftOwner
	}

	emp.ShiftID = &assigned.ID
	emp.Employment.ShiftID = &assigned.ID
	if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
		return nil, err
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

// UploadDocument implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadDocument(ctx context.Context, hrAdminID, employeeID, field, filename string, file io.Reader) (*employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CreatedBy != hrAdminID {
		return nil, employee.ErrNotManagedByYou
	}

	target, err := documentSlot(&emp.Documents, field)
	if err != nil {
		return nil, err
	}

	storedPath := path.Join("documents", employeeID, field+path.Ext(filename))
	url, err := s.files.Upload(ctx, file, storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	*target = url
	if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
		return nil, err
	}

	resp := employee.ToEmployeeResponse(emp)
	return &resp, nil
}

func documentSlot(docs *employee.Documents, field string) (*string, error) {
	switch field {
	case "contract":
		return &docs.Contract, nil
	case "id_proof":
		return &docs.IDProof, nil
	case "tax_document":
		return &docs.TaxDocument, nil
	case "employee_agreement":
		return &docs.EmployeeAgreement, nil
	case "work_permit":
		return &docs.WorkPermit, nil
	default:
		return nil, employee.ErrUnknownDocument
	}
}
