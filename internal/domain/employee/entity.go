package employee

import (
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
)

// Employee groups the profile into sections stored as JSONB documents,
// with the identity and access columns kept relational for lookups.
type Employee struct {
	ID         string
	EmployeeID string // public identifier, "Emp" prefixed
	Email      string
	Password   string // bcrypt hash, never serialized
	Role       user.Role
	CreatedBy  string
	ShiftID    *string

	Personal           Personal           `json:"personal_information"`
	Employment         Employment         `json:"employment_information"`
	Compensation       Compensation       `json:"compensation_and_benefits"`
	AttendanceAndLeave AttendanceAndLeave `json:"attendance_and_leave"`
	Performance        Performance        `json:"performance_and_evaluations"`
	Documents          Documents          `json:"documents_and_compliance"`
	EmergencyContact   EmergencyContact   `json:"emergency_contact"`
	SystemAccess       SystemAccess       `json:"system_and_access_information"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ContactInformation struct {
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Address     string `json:"address"`
}

type Personal struct {
	FullName           string             `json:"full_name"`
	DateOfBirth        string             `json:"date_of_birth,omitempty"`
	Gender             string             `json:"gender,omitempty"`
	MaritalStatus      string             `json:"marital_status,omitempty"`
	Nationality        string             `json:"nationality,omitempty"`
	ContactInformation ContactInformation `json:"contact_information"`
}

type Employment struct {
	Department     string  `json:"department,omitempty"` // department code
	JobTitle       string  `json:"job_title,omitempty"`
	DateOfHire     string  `json:"date_of_hire,omitempty"`
	EmploymentType string  `json:"employment_type,omitempty"`
	SupervisorID   string  `json:"supervisor_id,omitempty"`
	Status         string  `json:"status,omitempty"`
	WorkLocation   string  `json:"work_location,omitempty"`
	ShiftID        *string `json:"shift_id,omitempty"`
}

type Salary struct {
	Base     float64 `json:"base"`
	Currency string  `json:"currency,omitempty"`
}

type Compensation struct {
	Salary       Salary `json:"salary"`
	PayFrequency string `json:"pay_frequency,omitempty"`
	BankAccount  string `json:"bank_account,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
}

type LeaveBalance struct {
	Annual    int `json:"annual"`
	Sick      int `json:"sick"`
	Maternity int `json:"maternity"`
	Paternity int `json:"paternity"`
}

type AttendanceAndLeave struct {
	AnnualLeaveQuota int          `json:"annual_leave_quota"`
	LeaveBalance     LeaveBalance `json:"leave_balance"`
}

type Performance struct {
	LastReviewDate   string `json:"last_review_date,omitempty"`
	PerformanceScore int    `json:"performance_score,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

type Documents struct {
	Contract          string `json:"contract,omitempty"`
	IDProof           string `json:"id_proof,omitempty"`
	TaxDocument       string `json:"tax_document,omitempty"`
	EmployeeAgreement string `json:"employee_agreement,omitempty"`
	WorkPermit        string `json:"work_permit,omitempty"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
}

type SystemAccess struct {
	Email         string `json:"email"`
	Role          string `json:"role"`
	CreatedBy     string `json:"created_by,omitempty"`
	EmailVerified bool   `json:"email_verified"`
}
