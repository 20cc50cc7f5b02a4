package leave

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/leave"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLeaveRepo struct {
	leaves map[string]*leave.Leave
}

func (r *stubLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	l.ID = "row-" + l.LeaveID
	r.leaves[l.LeaveID] = &l
	return l, nil
}

func (r *stubLeaveRepo) GetByLeaveID(_ context.Context, leaveID string) (*leave.Leave, error) {
	l, ok := r.leaves[leaveID]
	if !ok {
		return nil, leave.ErrLeaveNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *stubLeaveRepo) Update(_ context.Context, l leave.Leave) error {
	r.leaves[l.LeaveID] = &l
	return nil
}

func (r *stubLeaveRepo) ListByStatus(_ context.Context, _ []string, status leave.LeaveStatus, _, _ int) ([]leave.Leave, int64, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if status == "" || l.Status == status {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubLeaveRepo) ListByEmployee(_ context.Context, employeeID string, _, _ int) ([]leave.Leave, int64, error) {
	var out []leave.Leave
	for _, l := range r.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, *l)
		}
	}
	return out, int64(len(out)), nil
}

type stubEmployeeRepo struct {
	employees map[string]*employee.Employee
	updates   []employee.Employee
}

func (r *stubEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (r *stubEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (*employee.Employee, error) {
	emp, ok := r.employees[employeeID]
	if !ok {
		return nil, employee.ErrEmployeeNotFound
	}
	cp := *emp
	return &cp, nil
}

func (r *stubEmployeeRepo) GetByEmail(context.Context, string) (*employee.Employee, error) {
	return nil, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	r.updates = append(r.updates, e)
	cp := e
	r.employees[e.EmployeeID] = &cp
	return nil
}

func (r *stubEmployeeRepo) Delete(context.Context, string) error { return nil }

func (r *stubEmployeeRepo) ListByCreatedBy(context.Context, string, employee.ListFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (r *stubEmployeeRepo) ListEmployeeIDsByCreatedBy(_ context.Context, createdBy string) ([]string, error) {
	var ids []string
	for id, emp := range r.employees {
		if emp.CreatedBy == createdBy {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

type stubTxManager struct{}

func (stubTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// stubMailer records sends behind a mutex; notifications fire from a
// goroutine after the workflow returns.
type stubMailer struct {
	mu         sync.Mutex
	approvals  []string
	rejections []string
}

func (m *stubMailer) SendLeaveApproval(to, _ string, _, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.approvals = append(m.approvals, to)
	return nil
}

func (m *stubMailer) SendLeaveRejection(to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejections = append(m.rejections, to)
	return nil
}

func (m *stubMailer) SendOvertimeApproval(string, time.Time, float64) error { return nil }
func (m *stubMailer) SendOvertimeRejection(string, string) error            { return nil }
func (m *stubMailer) SendPasswordReset(string, string, string) error        { return nil }
func (m *stubMailer) SendVerification(string, string, string) error         { return nil }

type leaveFixture struct {
	svc       *LeaveServiceImpl
	leaveRepo *stubLeaveRepo
	empRepo   *stubEmployeeRepo
	mailer    *stubMailer
}

func newLeaveFixture() *leaveFixture {
	leaveRepo := &stubLeaveRepo{leaves: map[string]*leave.Leave{}}
	empRepo := &stubEmployeeRepo{
		employees: map[string]*employee.Employee{
			"Empaa11bb22": {
				EmployeeID: "Empaa11bb22",
				Email:      "jane@acme.test",
				Role:       user.RoleEmployee,
				CreatedBy:  "Empadmin001",
				AttendanceAndLeave: employee.AttendanceAndLeave{
					AnnualLeaveQuota: 12,
					LeaveBalance: employee.LeaveBalance{
						Annual: 12, Sick: 10, Maternity: 90, Paternity: 14,
					},
				},
			},
		},
	}
	mailer := &stubMailer{}

	svc := NewLeaveService(leaveRepo, empRepo, stubTxManager{}, mailer, slog.New(slog.NewTextHandler(io.Discard, nil))).(*LeaveServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 6, 17, 10, 0, 0, 0, time.UTC) }

	return &leaveFixture{svc: svc, leaveRepo: leaveRepo, empRepo: empRepo, mailer: mailer}
}

func (f *leaveFixture) seedPending(t *testing.T, leaveType string, days int) string {
	t.Helper()
	resp, err := f.svc.Submit(context.Background(), "Empaa11bb22", user.RoleEmployee, &leave.SubmitLeaveRequest{
		EmployeeID: "Empaa11bb22",
		Type:       leaveType,
		StartDate:  "2026-10-01",
		EndDate:    time.Date(2026, 10, days, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		Reason:     "family matters",
	})
	require.NoError(t, err)
	return resp.LeaveID
}

func TestInclusiveDays(t *testing.T) {
	t.Parallel()

	oct := func(day int) time.Time {
		return time.Date(2026, 10, day, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 5, leave.InclusiveDays(oct(1), oct(5)))
	assert.Equal(t, 1, leave.InclusiveDays(oct(1), oct(1)))

	// A partial final day still counts in full.
	assert.Equal(t, 3, leave.InclusiveDays(oct(1), oct(2).Add(6*time.Hour)))
}

func TestSubmit_CreatesPendingLeave(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "annual", 5)

	assert.Regexp(t, regexp.MustCompile(`^LV-[0-9A-F]{8}$`), id)

	stored := f.leaveRepo.leaves[id]
	require.NotNil(t, stored)
	assert.Equal(t, leave.StatusPending, stored.Status)
	assert.Equal(t, 5, stored.Days)
}

func TestSubmit_EndBeforeStart(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	_, err := f.svc.Submit(context.Background(), "Empaa11bb22", user.RoleEmployee, &leave.SubmitLeaveRequest{
		EmployeeID: "Empaa11bb22",
		Type:       "annual",
		StartDate:  "2026-10-05",
		EndDate:    "2026-10-01",
		Reason:     "family matters",
	})

	assert.ErrorIs(t, err, leave.ErrEndBeforeStart)
}

func TestSubmit_EmployeeCannotSubmitForOthers(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	_, err := f.svc.Submit(context.Background(), "Empcc33dd44", user.RoleEmployee, &leave.SubmitLeaveRequest{
		EmployeeID: "Empaa11bb22",
		Type:       "annual",
		StartDate:  "2026-10-01",
		EndDate:    "2026-10-05",
		Reason:     "family matters",
	})

	assert.ErrorIs(t, err, user.ErrPermissionDenied)
}

func TestApprove_DeductsTypedBalance(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "annual", 5)

	resp, err := f.svc.Approve(context.Background(), "Empadmin001", id)

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusApproved), resp.Leave.Status)
	assert.Equal(t, 7, resp.RemainingBalance)

	emp := f.empRepo.employees["Empaa11bb22"]
	assert.Equal(t, 7, emp.AttendanceAndLeave.LeaveBalance.Annual)
	assert.Equal(t, 10, emp.AttendanceAndLeave.LeaveBalance.Sick)
}

func TestApprove_BalanceMayGoNegative(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	f.empRepo.employees["Empaa11bb22"].AttendanceAndLeave.LeaveBalance.Sick = 2
	id := f.seedPending(t, "sick", 5)

	resp, err := f.svc.Approve(context.Background(), "Empadmin001", id)

	require.NoError(t, err)
	assert.Equal(t, -3, resp.RemainingBalance)
}

func TestApprove_OtherTypeLeavesBalancesUntouched(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "other", 3)

	resp, err := f.svc.Approve(context.Background(), "Empadmin001", id)

	require.NoError(t, err)
	assert.Equal(t, 0, resp.RemainingBalance)

	balance := f.empRepo.employees["Empaa11bb22"].AttendanceAndLeave.LeaveBalance
	assert.Equal(t, employee.LeaveBalance{Annual: 12, Sick: 10, Maternity: 90, Paternity: 14}, balance)
}

func TestApprove_NotPending(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "annual", 5)

	_, err := f.svc.Approve(context.Background(), "Empadmin001", id)
	require.NoError(t, err)

	_, err = f.svc.Approve(context.Background(), "Empadmin001", id)
	assert.ErrorIs(t, err, leave.ErrLeaveNotPending)
}

func TestApprove_ForeignEmployee(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "annual", 5)

	_, err := f.svc.Approve(context.Background(), "Empadmin999", id)

	assert.ErrorIs(t, err, employee.ErrNotManagedByYou)
	assert.Empty(t, f.empRepo.updates)
}

func TestApprove_NotFound(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	_, err := f.svc.Approve(context.Background(), "Empadmin001", "LV-DEADBEEF")

	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)
}

func TestReject_SetsReason(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "annual", 5)

	resp, err := f.svc.Reject(context.Background(), "Empadmin001", id, &leave.RejectLeaveRequest{
		RejectionReason: "quarter-end freeze",
	})

	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "quarter-end freeze", *resp.RejectionReason)

	// Rejection never touches balances.
	assert.Empty(t, f.empRepo.updates)
}

func TestReject_ApprovalDateStaysNull(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "annual", 5)

	resp, err := f.svc.Reject(context.Background(), "Empadmin001", id, &leave.RejectLeaveRequest{
		RejectionReason: "quarter-end freeze",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.ApprovalDate)
	assert.Nil(t, f.leaveRepo.leaves[id].ApprovalDate)
}

func TestReject_RequiresReason(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	id := f.seedPending(t, "annual", 5)

	_, err := f.svc.Reject(context.Background(), "Empadmin001", id, &leave.RejectLeaveRequest{})

	assert.Error(t, err)
	assert.Equal(t, leave.StatusPending, f.leaveRepo.leaves[id].Status)
}

func TestList_UnknownStatus(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	_, err := f.svc.List(context.Background(), "Empadmin001", "cancelled", 1, 10)

	assert.Error(t, err)
}

func TestList_EmptyScope(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	f.seedPending(t, "annual", 5)

	resp, err := f.svc.List(context.Background(), "Empnobody99", "", 0, 0)

	require.NoError(t, err)
	assert.Empty(t, resp.Leaves)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
}

func TestListOwn(t *testing.T) {
	t.Parallel()

	f := newLeaveFixture()
	f.seedPending(t, "annual", 5)
	f.seedPending(t, "sick", 2)

	resp, err := f.svc.ListOwn(context.Background(), "Empaa11bb22", 1, 10)

	require.NoError(t, err)
	assert.Len(t, resp.Leaves, 2)
	assert.Equal(t, int64(2), resp.TotalCount)
}
