package overtime

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/overtime"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOvertimeRepo struct {
	overtimes map[string]*overtime.Overtime
}

func (r *stubOvertimeRepo) Create(_ context.Context, o overtime.Overtime) (overtime.Overtime, error) {
	o.ID = "row-" + o.OvertimeID
	r.overtimes[o.OvertimeID] = &o
	return o, nil
}

func (r *stubOvertimeRepo) GetByOvertimeID(_ context.Context, overtimeID string) (*overtime.Overtime, error) {
	o, ok := r.overtimes[overtimeID]
	if !ok {
		return nil, overtime.ErrOvertimeNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *stubOvertimeRepo) Update(_ context.Context, o overtime.Overtime) error {
	r.overtimes[o.OvertimeID] = &o
	return nil
}

func (r *stubOvertimeRepo) ListByStatus(_ context.Context, _ []string, status overtime.OvertimeStatus, _, _ int) ([]overtime.Overtime, int64, error) {
	var out []overtime.Overtime
	for _, o := range r.overtimes {
		if status == "" || o.Status == status {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubOvertimeRepo) ListByEmployee(_ context.Context, employeeID string, _, _ int) ([]overtime.Overtime, int64, error) {
	var out []overtime.Overtime
	for _, o := range r.overtimes {
		if o.EmployeeID == employeeID {
			out = append(out, *o)
		}
	}
	return out, int64(len(out)), nil
}

type stubEmployeeRepo struct {
	employees map[string]*employee.Employee
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

func (r *stubEmployeeRepo) Update(context.Context, employee.Employee) error { return nil }

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

type stubMailer struct {
	mu sync.Mutex
}

func (m *stubMailer) SendLeaveApproval(string, string, time.Time, time.Time) error { return nil }
func (m *stubMailer) SendLeaveRejection(string, string, string) error              { return nil }

func (m *stubMailer) SendOvertimeApproval(string, time.Time, float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return nil
}

func (m *stubMailer) SendOvertimeRejection(string, string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return nil
}

func (m *stubMailer) SendPasswordReset(string, string, string) error { return nil }
func (m *stubMailer) SendVerification(string, string, string) error  { return nil }

func newOvertimeService() (*OvertimeServiceImpl, *stubOvertimeRepo) {
	repo := &stubOvertimeRepo{overtimes: map[string]*overtime.Overtime{}}
	empRepo := &stubEmployeeRepo{
		employees: map[string]*employee.Employee{
			"Empaa11bb22": {
				EmployeeID: "Empaa11bb22",
				Email:      "jane@acme.test",
				Role:       user.RoleEmployee,
				CreatedBy:  "Empadmin001",
			},
		},
	}

	svc := NewOvertimeService(repo, empRepo, &stubMailer{}, slog.New(slog.NewTextHandler(io.Discard, nil))).(*OvertimeServiceImpl)
	svc.now = func() time.Time { return time.Date(2026, 6, 17, 10, 0, 0, 0, time.UTC) }
	return svc, repo
}

func submitPending(t *testing.T, svc *OvertimeServiceImpl) string {
	t.Helper()
	resp, err := svc.Submit(context.Background(), "Empaa11bb22", user.RoleEmployee, &overtime.SubmitOvertimeRequest{
		EmployeeID:   "Empaa11bb22",
		Date:         "2026-06-13",
		RegularHours: 2,
		WeekendHours: 4,
		Reason:       "release weekend",
	})
	require.NoError(t, err)
	return resp.OvertimeID
}

func TestSubmit_CreatesPendingOvertime(t *testing.T) {
	t.Parallel()

	svc, repo := newOvertimeService()
	id := submitPending(t, svc)

	assert.Regexp(t, regexp.MustCompile(`^OT-[0-9A-F]{8}$`), id)

	stored := repo.overtimes[id]
	require.NotNil(t, stored)
	assert.Equal(t, overtime.StatusPending, stored.Status)
	assert.Equal(t, 6.0, stored.TotalHours())
}

func TestSubmit_ZeroHours(t *testing.T) {
	t.Parallel()

	svc, repo := newOvertimeService()
	_, err := svc.Submit(context.Background(), "Empaa11bb22", user.RoleEmployee, &overtime.SubmitOvertimeRequest{
		EmployeeID: "Empaa11bb22",
		Date:       "2026-06-13",
		Reason:     "nothing worked",
	})

	assert.ErrorIs(t, err, overtime.ErrZeroHours)
	assert.Empty(t, repo.overtimes)
}

func TestSubmit_NegativeBucketRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newOvertimeService()
	_, err := svc.Submit(context.Background(), "Empaa11bb22", user.RoleEmployee, &overtime.SubmitOvertimeRequest{
		EmployeeID:   "Empaa11bb22",
		Date:         "2026-06-13",
		RegularHours: -2,
		WeekendHours: 4,
		Reason:       "bad math",
	})

	assert.Error(t, err)
}

func TestSubmit_EmployeeCannotSubmitForOthers(t *testing.T) {
	t.Parallel()

	svc, _ := newOvertimeService()
	_, err := svc.Submit(context.Background(), "Empcc33dd44", user.RoleEmployee, &overtime.SubmitOvertimeRequest{
		EmployeeID:   "Empaa11bb22",
		Date:         "2026-06-13",
		RegularHours: 2,
		Reason:       "release weekend",
	})

	assert.ErrorIs(t, err, user.ErrPermissionDenied)
}

func TestApprove_TransitionsToApproved(t *testing.T) {
	t.Parallel()

	svc, repo := newOvertimeService()
	id := submitPending(t, svc)

	resp, err := svc.Approve(context.Background(), "Empadmin001", id)

	require.NoError(t, err)
	assert.Equal(t, string(overtime.StatusApproved), resp.Status)
	assert.Equal(t, 6.0, resp.TotalHours)
	require.NotNil(t, resp.ApproverID)
	assert.Equal(t, "Empadmin001", *resp.ApproverID)
	assert.Equal(t, overtime.StatusApproved, repo.overtimes[id].Status)
}

func TestApprove_Twice(t *testing.T) {
	t.Parallel()

	svc, _ := newOvertimeService()
	id := submitPending(t, svc)

	_, err := svc.Approve(context.Background(), "Empadmin001", id)
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), "Empadmin001", id)
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotPending)
}

func TestApprove_ForeignEmployee(t *testing.T) {
	t.Parallel()

	svc, _ := newOvertimeService()
	id := submitPending(t, svc)

	_, err := svc.Approve(context.Background(), "Empadmin999", id)

	assert.ErrorIs(t, err, employee.ErrNotManagedByYou)
}

func TestReject_SetsReason(t *testing.T) {
	t.Parallel()

	svc, repo := newOvertimeService()
	id := submitPending(t, svc)

	resp, err := svc.Reject(context.Background(), "Empadmin001", id, &overtime.RejectOvertimeRequest{
		RejectionReason: "not pre-approved",
	})

	require.NoError(t, err)
	assert.Equal(t, string(overtime.StatusRejected), resp.Status)
	require.NotNil(t, resp.RejectionReason)
	assert.Equal(t, "not pre-approved", *resp.RejectionReason)
	assert.Equal(t, overtime.StatusRejected, repo.overtimes[id].Status)
}

func TestReject_ApprovalDateStaysNull(t *testing.T) {
	t.Parallel()

	svc, repo := newOvertimeService()
	id := submitPending(t, svc)

	resp, err := svc.Reject(context.Background(), "Empadmin001", id, &overtime.RejectOvertimeRequest{
		RejectionReason: "not pre-approved",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.ApprovalDate)
	assert.Nil(t, repo.overtimes[id].ApprovalDate)
}

func TestReject_AfterApproval(t *testing.T) {
	t.Parallel()

	svc, _ := newOvertimeService()
	id := submitPending(t, svc)

	_, err := svc.Approve(context.Background(), "Empadmin001", id)
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), "Empadmin001", id, &overtime.RejectOvertimeRequest{
		RejectionReason: "changed my mind",
	})
	assert.ErrorIs(t, err, overtime.ErrOvertimeNotPending)
}

func TestList_FiltersByStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newOvertimeService()
	first := submitPending(t, svc)
	submitPending(t, svc)

	_, err := svc.Approve(context.Background(), "Empadmin001", first)
	require.NoError(t, err)

	pending, err := svc.List(context.Background(), "Empadmin001", "pending", 1, 10)
	require.NoError(t, err)
	assert.Len(t, pending.Overtimes, 1)

	all, err := svc.List(context.Background(), "Empadmin001", "", 1, 10)
	require.NoError(t, err)
	assert.Len(t, all.Overtimes, 2)
}

func TestListOwn(t *testing.T) {
	t.Parallel()

	svc, _ := newOvertimeService()
	submitPending(t, svc)

	resp, err := svc.ListOwn(context.Background(), "Empaa11bb22", 0, 0)

	require.NoError(t, err)
	assert.Len(t, resp.Overtimes, 1)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
}
