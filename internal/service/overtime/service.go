package overtime

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/overtime"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/email"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRepository
	employee.EmployeeRepository
	mailer email.EmailService
	logger *slog.Logger
	now    func() time.Time
}

func NewOvertimeService(
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	mailer email.EmailService,
	logger *slog.Logger,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRepository: overtimeRepo,
		EmployeeRepository: employeeRepo,
		mailer:             mailer,
		logger:             logger,
		now:                time.Now,
	}
}

func generateOvertimeID() string {
	return "OT-" + strings.ToUpper(strings.Split(uuid.NewString(), "-")[0])
}

// Submit implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Submit(ctx context.Context, callerID string, callerRole user.Role, req *overtime.SubmitOvertimeRequest) (*overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if callerRole == user.RoleEmployee && callerID != req.EmployeeID {
		return nil, user.ErrPermissionDenied
	}

	if req.RegularHours+req.WeekendHours+req.HolidayHours <= 0 {
		return nil, overtime.ErrZeroHours
	}

	if _, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	newOvertime := overtime.Overtime{
		OvertimeID:   generateOvertimeID(),
		EmployeeID:   req.EmployeeID,
		Date:         req.ParsedDate(),
		RegularHours: req.RegularHours,
		WeekendHours: req.WeekendHours,
		HolidayHours: req.HolidayHours,
		Reason:       req.Reason,
		Status:       overtime.StatusPending,
		SubmittedAt:  s.now(),
	}

	created, err := s.OvertimeRepository.Create(ctx, newOvertime)
	if err != nil {
		return nil, err
	}

	resp := overtime.ToOvertimeResponse(&created)
	return &resp, nil
}

// Approve implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, hrAdminID, overtimeID string) (*overtime.OvertimeResponse, error) {
	o, emp, err := s.pendingManagedOvertime(ctx, hrAdminID, overtimeID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	o.Status = overtime.StatusApproved
	o.ApproverID = &hrAdminID
	o.ApprovalDate = &now
	if err := s.OvertimeRepository.Update(ctx, *o); err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendOvertimeApproval(emp.Email, o.Date, o.TotalHours()); err != nil {
			s.logger.Warn("overtime approval email failed",
				slog.String("overtime_id", o.OvertimeID),
				slog.Any("error", err),
			)
		}
	}()

	resp := overtime.ToOvertimeResponse(o)
	return &resp, nil
}

// Reject implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, hrAdminID, overtimeID string, req *overtime.RejectOvertimeRequest) (*overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	o, emp, err := s.pendingManagedOvertime(ctx, hrAdminID, overtimeID)
	if err != nil {
		return nil, err
	}

	// ApprovalDate stays null on rejection, it marks approvals only.
	o.Status = overtime.StatusRejected
	o.ApproverID = &hrAdminID
	o.RejectionReason = &req.RejectionReason
	if err := s.OvertimeRepository.Update(ctx, *o); err != nil {
		return nil, err
	}

	go func() {
		if err := s.mailer.SendOvertimeRejection(emp.Email, req.RejectionReason); err != nil {
			s.logger.Warn("overtime rejection email failed",
				slog.String("overtime_id", o.OvertimeID),
				slog.Any("error", err),
			)
		}
	}()

	resp := overtime.ToOvertimeResponse(o)
	return &resp, nil
}

// List implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) List(ctx context.Context, hrAdminID, status string, page, limit int) (*overtime.ListOvertimeResponse, error) {
	if status != "" && status != string(overtime.StatusPending) &&
		status != string(overtime.StatusApproved) && status != string(overtime.StatusRejected) {
		return nil, overtime.ErrOvertimeNotFound
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

	resp := &overtime.ListOvertimeResponse{
		Page:      page,
		Limit:     limit,
		Overtimes: []overtime.OvertimeResponse{},
	}

	if len(employeeIDs) == 0 {
		return resp, nil
	}

	overtimes, total, err := s.OvertimeRepository.ListByStatus(ctx, employeeIDs, overtime.OvertimeStatus(status), page, limit)
	if err != nil {
		return nil, err
	}

	resp.TotalCount = total
	resp.TotalPages = totalPages(total, limit)
	for i := range overtimes {
		resp.Overtimes = append(resp.Overtimes, overtime.ToOvertimeResponse(&overtimes[i]))
	}

	return resp, nil
}

// ListOwn implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) ListOwn(ctx context.Context, employeeID string, page, limit int) (*overtime.ListOvertimeResponse, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 10
	}

	overtimes, total, err := s.OvertimeRepository.ListByEmployee(ctx, employeeID, page, limit)
	if err != nil {
		return nil, err
	}

	resp := &overtime.ListOvertimeResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
		Overtimes:  []overtime.OvertimeResponse{},
	}
	for i := range overtimes {
		resp.Overtimes = append(resp.Overtimes, overtime.ToOvertimeResponse(&overtimes[i]))
	}

	return resp, nil
}

// pendingManagedOvertime loads an overtime request and checks that it is
// still pending and that its employee is managed by the caller.
func (s *OvertimeServiceImpl) pendingManagedOvertime(ctx context.Context, hrAdminID, overtimeID string) (*overtime.Overtime, *employee.Employee, error) {
	o, err := s.OvertimeRepository.GetByOvertimeID(ctx, overtimeID)
	if err != nil {
		return nil, nil, err
	}
	if o.Status != overtime.StatusPending {
		return nil, nil, overtime.ErrOvertimeNotPending
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, o.EmployeeID)
	if err != nil {
		return nil, nil, err
	}
	if emp.CreatedBy != hrAdminID {
		return nil, nil, employee.ErrNotManagedByYou
	}

	return o, emp, nil
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
