package leave

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/database"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/email"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
	tx     database.TxManager
	mailer email.EmailService
	logger *slog.Logger
	now    func() time.Time
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	tx database.TxManager,
	mailer email.EmailService,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
		tx:                 tx,
		mailer:             mailer,
		logger:             logger,
		now:                time.Now,
	}
}

func generateLeaveID() string {
	return "LV-" + strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, callerID string, callerRole user.Role, req *leave.SubmitLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if callerRole == user.RoleEmployee && callerID != req.EmployeeID {
		return nil, user.ErrPermissionDenied
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	start, end := req.Dates()

	newLeave := leave.Leave{
		LeaveID:     generateLeaveID(),
		EmployeeID:  req.EmployeeID,
		Type:        leave.LeaveType(req.Type),
		StartDate:   start,
		EndDate:     end,
		Days:        leave.InclusiveDays(start, end),
		Reason:      req.Reason,
		Status:      leave.StatusPending,
		SubmittedAt: s.now(),
	}

	created, err := s.LeaveRepository.Create(ctx, newLeave)
	if err != nil {
		return nil, err
	}

	resp := leave.ToLeaveResponse(&created)
	return &resp, nil
}

// Approve implements leave.LeaveService. Status flip and balance deduction
// commit together; a balance is allowed to go negative and is surfaced in
// the response so the approver sees the overdraft.
func (s *LeaveServiceImpl) Approve(ctx context.Context, hrAdminID, leaveID string) (*leave.ApproveLeaveResponse, error) {
	var approved leave.Leave
	var remaining int
	var notifyEmail string

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		l, err := s.LeaveRepository.GetByLeaveID(ctx, leaveID)
		if err != nil {
			return err
		}
		if l.Status != leave.StatusPending {
			return leave.ErrLeaveNotPending
		}

		emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, l.EmployeeID)
		if err != nil {
			return err
		}
		if emp.CreatedBy != hrAdminID {
			return employee.ErrNotManagedByYou
		}

		remaining = deductBalance(&emp.AttendanceAndLeave.LeaveBalance, l.Type, l.Days)
		if err := s.EmployeeRepository.Update(ctx, *emp); err != nil {
			return err
		}

		now := s.now()
		l.Status = leave.StatusApproved
		l.ApproverID = &hrAdminID
		l.ApprovalDate = &now
		if err := s.LeaveRepository.Update(ctx, *l); err != nil {
			return err
		}

		approved = *l
		notifyEmail = emp.Email
		return nil
	})
	if err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendLeaveApproval(notifyEmail, string(approved.Type), approved.StartDate, approved.EndDate); err != nil {
			s.logger.Warn("leave approval email failed",
				slog.String("leave_id", approved.LeaveID),
				slog.Any("error", err),
			)
		}
	}()

	return &leave.ApproveLeaveResponse{
		Leave:            leave.ToLeaveResponse(&approved),
		RemainingBalance: remaining,
	}, nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, hrAdminID, leaveID string, req *leave.RejectLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.LeaveRepository.GetByLeaveID(ctx, leaveID)
	if err != nil {
		return nil, err
	}
	if l.Status != leave.StatusPending {
		return nil, leave.ErrLeaveNotPending
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, l.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp.CreatedBy != hrAdminID {
		return nil, employee.ErrNotManagedByYou
	}

	// ApprovalDate stays null on rejection, it marks approvals only.
	l.Status = leave.StatusRejected
	l.ApproverID = &hrAdminID
	l.RejectionReason = &req.RejectionReason
	if err := s.LeaveRepository.Update(ctx, *l); err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendLeaveRejection(emp.Email, string(l.Type), req.RejectionReason); err != nil {
			s.logger.Warn("leave rejection email failed",
				slog.String("leave_id", l.LeaveID),
				slog.Any("error", err),
			)
		}
	}()

	resp := leave.ToLeaveResponse(l)
	return &resp, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, hrAdminID, status string, page, limit int) (*leave.ListLeaveResponse, error) {
	if status != "" && status != string(leave.StatusPending) &&
		status != string(leave.StatusApproved) && status != string(leave.StatusRejected) {
		return nil, leave.ErrLeaveNotFound
	}

	employeeIDs, err := s.EmployeeRepository.ListEmployeeIDsByCreatedBy(ctx, hrAdminID)
	if err != nil {
		return nil, err
	}

	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	resp := &leave.ListLeaveResponse{
		Page:   page,
		Limit:  limit,
		Leaves: []leave.LeaveResponse{},
	}

	if len(employeeIDs) == 0 {
		return resp, nil
	}

	leaves, total, err := s.LeaveRepository.ListByStatus(ctx, employeeIDs, leave.LeaveStatus(status), page, limit)
	if err != nil {
		return nil, err
	}

	resp.TotalCount = total
	resp.TotalPages = totalPages(total, limit)
	for i := range leaves {
		resp.Leaves = append(resp.Leaves, leave.ToLeaveResponse(&leaves[i]))
	}

	return resp, nil
}

// ListOwn implements leave.LeaveService.
func (s *LeaveServiceImpl) ListOwn(ctx context.Context, employeeID string, page, limit int) (*leave.ListLeaveResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	leaves, total, err := s.LeaveRepository.ListByEmployee(ctx, employeeID, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &leave.ListLeaveResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
		Leaves:     []leave.LeaveResponse{},
	}
	for i := range leaves {
		resp.Leaves = append(resp.Leaves, leave.ToLeaveResponse(&leaves[i]))
	}

	return resp, nil
}

// deductBalance subtracts the approved days from the bucket matching the
// leave type and returns the new value. The "other" type has no bucket and
// leaves balances untouched.
func deductBalance(b *employee.LeaveBalance, t leave.LeaveType, days int) int {
	switch t {
	case leave.TypeAnnual:
		b.Annual -= days
		return b.Annual
	case leave.TypeSick:
		b.Sick -= days
		return b.Sick
	case leave.TypeMaternity:
		b.Maternity -= days
		return b.Maternity
	case leave.TypePaternity:
		b.Paternity -= days
		return b.Paternity
	default:
		return 0
	}
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
