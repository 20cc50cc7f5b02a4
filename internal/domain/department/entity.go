package department

import "time"

type DepartmentStatus string

const (
	StatusActive   DepartmentStatus = "active"
	StatusInactive DepartmentStatus = "inactive"
)

type Department struct {
	ID              string
	Code            string // public identifier, "DEP-" prefixed
	Name            string
	Description     string
	Head            string
	Budget          float64
	Status          DepartmentStatus
	EstablishedDate *time.Time
	Employees       []string // employee public IDs
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NumEmployees is derived from the membership list, never stored.
func (d *Department) NumEmployees() int {
	return len(d.Employees)
}
