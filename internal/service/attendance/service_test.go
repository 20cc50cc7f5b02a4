package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehq/hrm-backend-go/internal/domain/department"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/shift"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records   []attendance.Attendance
	upserts   []attendance.Attendance
	findCalls int
}

func (r *stubAttendanceRepo) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	att.ID = "att-1"
	r.upserts = append(r.upserts, att)
	return att, nil
}

func (r *stubAttendanceRepo) GetByEmployeeAndDate(context.Context, string, time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (r *stubAttendanceRepo) FindInRange(_ context.Context, _ attendance.RangeFilter) ([]attendance.Attendance, error) {
	r.findCalls++
	return r.records, nil
}

func (r *stubAttendanceRepo) ListByDate(context.Context, []string, time.Time, int, int) ([]attendance.Attendance, int64, error) {
	return r.records, int64(len(r.records)), nil
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
	return emp, nil
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

type stubShiftRepo struct {
	shifts map[string]shift.Shift
}

func (r *stubShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) { return s, nil }

func (r *stubShiftRepo) GetByID(_ context.Context, id string) (shift.Shift, error) {
	s, ok := r.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
}

func (r *stubShiftRepo) GetByName(context.Context, string) (*shift.Shift, error) { return nil, nil }

func (r *stubShiftRepo) ListByCreatedBy(context.Context, string) ([]shift.Shift, error) {
	return nil, nil
}

func (r *stubShiftRepo) Update(context.Context, shift.Shift) error { return nil }

type stubDepartmentRepo struct {
	departments map[string]*department.Department
}

func (r *stubDepartmentRepo) Create(_ context.Context, d department.Department) (department.Department, error) {
	return d, nil
}

func (r *stubDepartmentRepo) GetByCode(_ context.Context, code string) (*department.Department, error) {
	d, ok := r.departments[code]
	if !ok {
		return nil, department.ErrDepartmentNotFound
	}
	return d, nil
}

func (r *stubDepartmentRepo) GetByName(context.Context, string, string) (*department.Department, error) {
	return nil, nil
}

func (r *stubDepartmentRepo) Update(context.Context, department.Department) error { return nil }

func (r *stubDepartmentRepo) UpdateEmployees(context.Context, string, []string) error { return nil }

func (r *stubDepartmentRepo) Delete(context.Context, string) error { return nil }

func (r *stubDepartmentRepo) ListByCreatedBy(context.Context, string, int, int) ([]department.Department, int64, error) {
	return nil, 0, nil
}

type attendanceFixture struct {
	svc     *AttendanceServiceImpl
	attRepo *stubAttendanceRepo
	empRepo *stubEmployeeRepo
}

func newAttendanceFixture(now time.Time) *attendanceFixture {
	shiftID := "shift-1"
	attRepo := &stubAttendanceRepo{}
	empRepo := &stubEmployeeRepo{
		employees: map[string]*employee.Employee{
			"Empaa11bb22": {
				EmployeeID: "Empaa11bb22",
				Email:      "jane@acme.test",
				Role:       user.RoleEmployee,
				CreatedBy:  "Empadmin001",
				ShiftID:    &shiftID,
				Personal:   employee.Personal{FullName: "Jane Smith"},
			},
			"Empcc33dd44": {
				EmployeeID: "Empcc33dd44",
				Email:      "other@elsewhere.test",
				Role:       user.RoleEmployee,
				CreatedBy:  "Empadmin999",
				ShiftID:    &shiftID,
				Personal:   employee.Personal{FullName: "Someone Else"},
			},
		},
	}
	shiftRepo := &stubShiftRepo{shifts: map[string]shift.Shift{shiftID: mkShift(9, 17)}}
	deptRepo := &stubDepartmentRepo{departments: map[string]*department.Department{
		"DEP-1A2B3C4D": {
			Code:      "DEP-1A2B3C4D",
			Name:      "Engineering",
			CreatedBy: "Empadmin001",
			Employees: []string{"Empaa11bb22"},
		},
	}}

	svc := NewAttendanceService(attRepo, empRepo, shiftRepo, deptRepo).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }

	return &attendanceFixture{svc: svc, attRepo: attRepo, empRepo: empRepo}
}

func TestMarkAttendance_DerivesFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC)
	f := newAttendanceFixture(now)

	checkOut := "2026-06-15T17:30:00Z"
	resp, err := f.svc.MarkAttendance(ctx, "Empadmin001", user.RoleHRAdmin, &attendance.MarkAttendanceRequest{
		EmployeeID: "Empaa11bb22",
		CheckIn:    "2026-06-15T09:05:00Z",
		CheckOut:   &checkOut,
	})

	require.NoError(t, err)
	require.Len(t, f.attRepo.upserts, 1)

	assert.Equal(t, "2026-06-15", resp.Date)
	assert.True(t, resp.LateArrival)
	assert.False(t, resp.EarlyDeparture)
	assert.False(t, resp.MissedCheckOut)
	assert.Equal(t, 8, resp.WorkHours)
	assert.Equal(t, 0.0, resp.OvertimeHours)
	assert.Equal(t, 0.0, resp.UndertimeHours)
	assert.Equal(t, "Morning Shift", resp.ShiftType)
}

func TestMarkAttendance_OpenDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Evaluated mid-shift, so the open day reads as an early departure.
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	f := newAttendanceFixture(now)

	resp, err := f.svc.MarkAttendance(ctx, "Empaa11bb22", user.RoleEmployee, &attendance.MarkAttendanceRequest{
		EmployeeID: "Empaa11bb22",
		CheckIn:    "2026-06-15T09:00:00Z",
	})

	require.NoError(t, err)
	assert.Nil(t, resp.CheckOut)
	assert.True(t, resp.MissedCheckOut)
	assert.True(t, resp.EarlyDeparture)
	assert.False(t, resp.LateArrival)
	assert.Equal(t, 0, resp.WorkHours)
	assert.Equal(t, 8.0, resp.UndertimeHours)
}

func TestMarkAttendance_CheckOutBeforeCheckIn(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC))

	checkOut := "2026-06-15T08:00:00Z"
	_, err := f.svc.MarkAttendance(ctx, "Empadmin001", user.RoleHRAdmin, &attendance.MarkAttendanceRequest{
		EmployeeID: "Empaa11bb22",
		CheckIn:    "2026-06-15T09:00:00Z",
		CheckOut:   &checkOut,
	})

	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
	assert.Empty(t, f.attRepo.upserts)
}

func TestMarkAttendance_NoShiftAssigned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC))
	f.empRepo.employees["Empaa11bb22"].ShiftID = nil

	_, err := f.svc.MarkAttendance(ctx, "Empadmin001", user.RoleHRAdmin, &attendance.MarkAttendanceRequest{
		EmployeeID: "Empaa11bb22",
		CheckIn:    "2026-06-15T09:00:00Z",
	})

	assert.ErrorIs(t, err, shift.ErrShiftNotAssigned)
}

func TestMarkAttendance_EmployeeCannotMarkOthers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 15, 18, 0, 0, 0, time.UTC))

	_, err := f.svc.MarkAttendance(ctx, "Empcc33dd44", user.RoleEmployee, &attendance.MarkAttendanceRequest{
		EmployeeID: "Empaa11bb22",
		CheckIn:    "2026-06-15T09:00:00Z",
	})

	assert.ErrorIs(t, err, user.ErrPermissionDenied)
	assert.Empty(t, f.attRepo.upserts)
}

func presentRecord(employeeID string, day time.Time) attendance.Attendance {
	checkIn := day.Add(9 * time.Hour)
	checkOut := day.Add(17 * time.Hour)
	return attendance.Attendance{
		ID:         "att-" + day.Format("20060102"),
		EmployeeID: employeeID,
		Date:       day,
		CheckIn:    checkIn,
		CheckOut:   &checkOut,
		ShiftType:  "Morning Shift",
		WorkHours:  8,
	}
}

func TestGenerateReport_FullCalendar(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC))
	f.attRepo.records = []attendance.Attendance{
		presentRecord("Empaa11bb22", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)),
		presentRecord("Empaa11bb22", time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC)),
	}

	report, err := f.svc.GenerateReport(ctx, "Empadmin001", &attendance.ReportQuery{
		From:           "2026-06-15",
		To:             "2026-06-21",
		EmployeeID:     "Empaa11bb22",
		ShowAbsentDays: true,
	})

	require.NoError(t, err)
	// Seven calendar days: two present, five filled in as absent.
	require.Len(t, report.AttendanceSummary, 7)
	assert.Equal(t, "present", report.AttendanceSummary[0].Status)
	assert.Equal(t, "absent", report.AttendanceSummary[1].Status)
	assert.Equal(t, "2026-06-16", report.AttendanceSummary[1].Date)
	assert.Nil(t, report.AttendanceSummary[1].CheckIn)

	assert.Equal(t, int64(2), report.ReportMeta.Pagination.TotalResults)
	assert.Equal(t, 1, report.ReportMeta.Pagination.Page)
	assert.Equal(t, "attendance_date", report.ReportMeta.Sorting.SortBy)
	assert.Equal(t, "asc", report.ReportMeta.Sorting.SortDirection)

	require.NotNil(t, report.Employee)
	assert.Equal(t, "Jane Smith", report.Employee.FullName)
	assert.Equal(t, 2, report.Employee.TotalPresentDays)
	assert.Equal(t, 5, report.Employee.TotalAbsentDays)
	assert.Equal(t, "28.57%", report.Employee.AverageAttendance)
}

func TestGenerateReport_HideAbsentDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC))
	f.attRepo.records = []attendance.Attendance{
		presentRecord("Empaa11bb22", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)),
	}

	report, err := f.svc.GenerateReport(ctx, "Empadmin001", &attendance.ReportQuery{
		From:           "2026-06-15",
		To:             "2026-06-21",
		EmployeeID:     "Empaa11bb22",
		ShowAbsentDays: false,
	})

	require.NoError(t, err)
	require.Len(t, report.AttendanceSummary, 1)
	assert.Equal(t, "present", report.AttendanceSummary[0].Status)

	// The employee aggregates still span the full range.
	require.NotNil(t, report.Employee)
	assert.Equal(t, 1, report.Employee.TotalPresentDays)
	assert.Equal(t, 6, report.Employee.TotalAbsentDays)
}

func TestGenerateReport_ConflictingFilters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC))

	_, err := f.svc.GenerateReport(ctx, "Empadmin001", &attendance.ReportQuery{
		From:           "2026-06-15",
		To:             "2026-06-21",
		EmployeeID:     "Empaa11bb22",
		Department:     "DEP-1A2B3C4D",
		ShowAbsentDays: true,
	})

	assert.ErrorIs(t, err, attendance.ErrConflictingFilters)
}

func TestGenerateReport_ForeignEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC))

	_, err := f.svc.GenerateReport(ctx, "Empadmin001", &attendance.ReportQuery{
		From:           "2026-06-15",
		To:             "2026-06-21",
		EmployeeID:     "Empcc33dd44",
		ShowAbsentDays: true,
	})

	assert.ErrorIs(t, err, employee.ErrNotManagedByYou)
}

func TestGenerateReport_EmptyScopeFetchesNothing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC))

	// An admin who manages nobody must not see other admins' records.
	report, err := f.svc.GenerateReport(ctx, "Empnobody99", &attendance.ReportQuery{
		From:           "2026-06-15",
		To:             "2026-06-17",
		ShowAbsentDays: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, f.attRepo.findCalls)
	assert.Equal(t, int64(0), report.ReportMeta.Pagination.TotalResults)
	for _, day := range report.AttendanceSummary {
		assert.Equal(t, "absent", day.Status)
	}
}

func TestGetSummary_Counters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 6, 17, 12, 0, 0, 0, time.UTC)
	f := newAttendanceFixture(now)

	late := presentRecord("Empaa11bb22", time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC))
	late.LateArrival = true
	early := presentRecord("Empaa11bb22", time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC))
	early.EarlyDeparture = true
	long := presentRecord("Empaa11bb22", time.Date(2026, 6, 17, 0, 0, 0, 0, time.UTC))
	long.OvertimeHours = 1.5
	f.attRepo.records = []attendance.Attendance{late, early, long}

	summary, err := f.svc.GetSummary(ctx, "Empadmin001", "Empaa11bb22", "week", "", "")

	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", summary.Employee.FullName)
	assert.Equal(t, 3, summary.Summary.PresentDays)
	assert.Equal(t, 4, summary.Summary.AbsentDays)
	assert.Equal(t, 1, summary.Summary.LateArrivals)
	assert.Equal(t, 1, summary.Summary.EarlyDepartures)
	assert.Equal(t, 1.5, summary.Summary.TotalOvertimeHours)
}

func TestGetSummary_ForeignEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 17, 12, 0, 0, 0, time.UTC))

	_, err := f.svc.GetSummary(ctx, "Empadmin001", "Empcc33dd44", "week", "", "")

	assert.ErrorIs(t, err, attendance.ErrNotRecordOwner)
}

func TestGetEmployeeDetail_AlwaysShowsAbsentDays(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 6, 17, 12, 0, 0, 0, time.UTC)
	f := newAttendanceFixture(now)
	f.attRepo.records = []attendance.Attendance{
		presentRecord("Empaa11bb22", time.Date(2026, 6, 16, 0, 0, 0, 0, time.UTC)),
	}

	detail, err := f.svc.GetEmployeeDetail(ctx, "Empadmin001", "Empaa11bb22", "week", "", "")

	require.NoError(t, err)
	assert.Len(t, detail.AttendanceDetails, 7)
}

func TestGetByDate_InvalidDate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 17, 12, 0, 0, 0, time.UTC))

	_, err := f.svc.GetByDate(ctx, "Empadmin001", "17-06-2026", 1, 10)

	assert.ErrorIs(t, err, attendance.ErrInvalidDateFilter)
}

func TestGetByDate_EmptyScope(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newAttendanceFixture(time.Date(2026, 6, 17, 12, 0, 0, 0, time.UTC))

	resp, err := f.svc.GetByDate(ctx, "Empnobody99", "2026-06-17", 0, 0)

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.Limit)
	assert.Empty(t, resp.Attendances)
}
