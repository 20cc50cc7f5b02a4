package department

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	Name            string  `json:"department_name"`
	Description     string  `json:"description"`
	Head            string  `json:"head"`
	Budget          float64 `json:"budget"`
	Status          string  `json:"status"`
	EstablishedDate string  `json:"established_date"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name is required",
		})
	}

	if r.Budget < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: "budget must not be negative",
		})
	}

	if r.Status != "" && r.Status != string(StatusActive) && r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if r.EstablishedDate != "" {
		if _, ok := validator.IsValidDate(r.EstablishedDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "established_date",
				Message: "established_date must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Established returns the parsed established date, or nil when absent.
// Call after Validate.
func (r *CreateDepartmentRequest) Established() *time.Time {
	if r.EstablishedDate == "" {
		return nil
	}
	d, _ := validator.IsValidDate(r.EstablishedDate)
	return &d
}

type UpdateDepartmentRequest struct {
	Name        *string  `json:"department_name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Head        *string  `json:"head,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name must not be empty",
		})
	}

	if r.Budget != nil && *r.Budget < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: "budget must not be negative",
		})
	}

	if r.Status != nil && *r.Status != string(StatusActive) && *r.Status != string(StatusInactive) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignEmployeesRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *AssignEmployeesRequest) Validate() error {
	if len(r.EmployeeIDs) == 0 {
		return validator.ValidationErrors{{
			Field:   "employee_ids",
			Message: "employee_ids must not be empty",
		}}
	}
	for _, id := range r.EmployeeIDs {
		if !validator.IsValidEmployeeID(id) {
			return validator.ValidationErrors{{
				Field:   "employee_ids",
				Message: "employee_ids contains an invalid employee id",
			}}
		}
	}
	return nil
}

type DepartmentResponse struct {
	Code            string   `json:"department_code"`
	Name            string   `json:"department_name"`
	Description     string   `json:"description,omitempty"`
	Head            string   `json:"head,omitempty"`
	Budget          float64  `json:"budget"`
	Status          string   `json:"status"`
	EstablishedDate *string  `json:"established_date,omitempty"`
	Employees       []string `json:"employees"`
	NumEmployees    int      `json:"num_employees"`
	CreatedAt       string   `json:"created_at"`
}

type ListDepartmentResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"total_pages"`
	Departments []DepartmentResponse `json:"departments"`
}

// DepartmentReport aggregates headcount and budget across one admin's
// departments.
type DepartmentReport struct {
	GeneratedAt      string                  `json:"generated_at"`
	TotalDepartments int                     `json:"total_departments"`
	TotalEmployees   int                     `json:"total_employees"`
	TotalBudget      float64                 `json:"total_budget"`
	Departments      []DepartmentReportEntry `json:"departments"`
}

type DepartmentReportEntry struct {
	Code         string  `json:"department_code"`
	Name         string  `json:"department_name"`
	Head         string  `json:"head,omitempty"`
	Status       string  `json:"status"`
	NumEmployees int     `json:"num_employees"`
	Budget       float64 `json:"budget"`
}

func ToDepartmentResponse(d *Department) DepartmentResponse {
	resp := DepartmentResponse{
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		Head:         d.Head,
		Budget:       d.Budget,
		Status:       string(d.Status),
		Employees:    d.Employees,
		NumEmployees: d.NumEmployees(),
		CreatedAt:    d.CreatedAt.Format(time.RFC3339),
	}
	if resp.Employees == nil {
		resp.Employees = []string{}
	}
	if d.EstablishedDate != nil {
		e := d.EstablishedDate.Format("2006-01-02")
		resp.EstablishedDate = &e
	}
	return resp
}
