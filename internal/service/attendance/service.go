package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/peoplehq/hrm-backend-go/internal/domain/attendance"
	"github.com/peoplehq/hrm-backend-go/internal/domain/department"
	"github.com/peoplehq/hrm-backend-go/internal/domain/employee"
	"github.com/peoplehq/hrm-backend-go/internal/domain/shift"
	"github.com/peoplehq/hrm-backend-go/internal/domain/user"
	"github.com/peoplehq/hrm-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	shift.ShiftRepository
	department.DepartmentRepository
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	departmentRepo department.DepartmentRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		ShiftRepository:      shiftRepo,
		DepartmentRepository: departmentRepo,
		now:                  time.Now,
	}
}

// resolveShift loads the shift assigned to an employee. An unassigned shift
// is a business-rule failure, not an authentication one.
func (s *AttendanceServiceImpl) resolveShift(ctx context.Context, emp *employee.Employee) (shift.Shift, error) {
	if emp.ShiftID == nil || *emp.ShiftID == "" {
		return shift.Shift{}, shift.ErrShiftNotAssigned
	}
	return s.ShiftRepository.GetByID(ctx, *emp.ShiftID)
}

// MarkAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MarkAttendance(ctx context.Context, callerID string, callerRole user.Role, req *attendance.MarkAttendanceRequest) (*attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if callerRole == user.RoleEmployee && callerID != req.EmployeeID {
		return nil, user.ErrPermissionDenied
	}

	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	assignedShift, err := s.resolveShift(ctx, emp)
	if err != nil {
		return nil, err
	}

	checkIn, checkOut := req.Times()
	if checkOut != nil && !checkOut.After(checkIn) {
		return nil, attendance.ErrCheckOutBeforeCheckIn
	}

	workHours := WorkHours(checkIn, checkOut)

	att := attendance.Attendance{
		EmployeeID:     req.EmployeeID,
		Date:           DateOnly(checkIn),
		CheckIn:        checkIn,
		CheckOut:       checkOut,
		ShiftType:      assignedShift.Name,
		LateArrival:    IsLate(checkIn, assignedShift),
		EarlyDeparture: IsEarlyDeparture(checkOut, s.now(), assignedShift),
		MissedCheckOut: checkOut == nil,
		WorkHours:      workHours,
		OvertimeHours:  OvertimeHours(workHours, assignedShift.Duration),
		UndertimeHours: UndertimeHours(workHours, assignedShift.Duration),
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, att)
	if err != nil {
		return nil, fmt.Errorf("failed to save attendance: %w", err)
	}

	resp := toAttendanceResponse(saved)
	return &resp, nil
}

// scopedEmployeeIDs resolves the employee set a report covers: one employee,
// one department's members, or everyone the admin manages.
func (s *AttendanceServiceImpl) scopedEmployeeIDs(ctx context.Context, hrAdminID string, query *attendance.ReportQuery) ([]string, error) {
	if query.EmployeeID != "" {
		emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, query.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp.CreatedBy != hrAdminID {
			return nil, employee.ErrNotManagedByYou
		}
		return []string{emp.EmployeeID}, nil
	}

	if query.Department != "" {
		dept, err := s.DepartmentRepository.GetByCode(ctx, query.Department)
		if err != nil {
			return nil, err
		}
		if dept.CreatedBy != hrAdminID {
			return nil, department.ErrNotDepartmentOwner
		}
		return dept.Employees, nil
	}

	return s.EmployeeRepository.ListEmployeeIDsByCreatedBy(ctx, hrAdminID)
}

// GenerateReport implements attendance.AttendanceService. Records are fetched
// for the whole range without pagination so every calendar day in the window
// appears in the day array; the pagination block describes the matching
// record count for clients that page a flat listing separately.
func (s *AttendanceServiceImpl) GenerateReport(ctx context.Context, hrAdminID string, query *attendance.ReportQuery) (*attendance.AttendanceReport, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	employeeIDs, err := s.scopedEmployeeIDs(ctx, hrAdminID, query)
	if err != nil {
		return nil, err
	}

	from, _ := validator.IsValidDate(query.From)
	to, _ := validator.IsValidDate(query.To)

	// An empty scope stays empty; an unfiltered fetch would leak records
	// belonging to other administrators.
	var records []attendance.Attendance
	if len(employeeIDs) > 0 {
		filter := attendance.RangeFilter{
			Start:          from,
			End:            to,
			EmployeeIDs:    employeeIDs,
			ShiftType:      query.ShiftType,
			LateArrival:    query.LateArrival,
			EarlyDeparture: query.EarlyDeparture,
			SortBy:         query.SortBy,
			SortDirection:  query.SortDirection,
		}
		if query.Overtime != nil && *query.Overtime {
			filter.OvertimeOnly = true
		}
		records, err = s.AttendanceRepository.FindInRange(ctx, filter)
		if err != nil {
			return nil, err
		}
	}

	summary := buildDayArray(from, to, records, query.ShowAbsentDays)

	page := query.Page
	if page == 0 {
		page = 1
	}
	limit := query.PageSize
	if limit == 0 {
		limit = 10
	}
	total := int64(len(records))
	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	sortBy := query.SortBy
	if sortBy == "" {
		sortBy = "attendance_date"
	}
	sortDirection := query.SortDirection
	if sortDirection == "" {
		sortDirection = "asc"
	}

	report := &attendance.AttendanceReport{
		ReportMeta: attendance.ReportMeta{
			ReportType:  "attendance",
			GeneratedAt: s.now().Format(time.RFC3339),
			FilterCriteria: attendance.FilterCriteria{
				DateRange: attendance.DateRangeCriteria{
					StartDate: query.From,
					EndDate:   query.To,
				},
				EmployeeIDs:    employeeIDs,
				ShiftType:      query.ShiftType,
				LateArrival:    query.LateArrival,
				EarlyDeparture: query.EarlyDeparture,
				ShowAbsentDays: query.ShowAbsentDays,
			},
			Pagination: attendance.Pagination{
				Page:         page,
				Limit:        limit,
				TotalPages:   totalPages,
				TotalResults: total,
				HasPrevPage:  page > 1,
				HasNextPage:  page < totalPages,
			},
			Sorting: attendance.Sorting{
				SortBy:        sortBy,
				SortDirection: sortDirection,
			},
		},
		AttendanceSummary: summary,
	}

	if report.ReportMeta.FilterCriteria.EmployeeIDs == nil {
		report.ReportMeta.FilterCriteria.EmployeeIDs = []string{}
	}
	if query.Department != "" {
		report.ReportMeta.FilterCriteria.Department = &query.Department
	}

	if query.EmployeeID != "" {
		emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, query.EmployeeID)
		if err != nil {
			return nil, err
		}
		report.Employee = buildEmployeeBlock(emp, from, to, records)
	}

	return report, nil
}

// GetSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetSummary(ctx context.Context, hrAdminID, employeeID, filter, from, to string) (*attendance.SummaryResponse, error) {
	emp, err := s.managedEmployee(ctx, hrAdminID, employeeID)
	if err != nil {
		return nil, err
	}

	start, end, err := RangeBounds(filter, from, to, s.now())
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.FindInRange(ctx, attendance.RangeFilter{
		Start:       start,
		End:         end,
		EmployeeIDs: []string{employeeID},
	})
	if err != nil {
		return nil, err
	}

	counters := attendance.SummaryCounters{
		PresentDays: len(records),
		AbsentDays:  len(EachDay(start, end)) - len(records),
	}
	for _, rec := range records {
		if rec.LateArrival {
			counters.LateArrivals++
		}
		if rec.EarlyDeparture {
			counters.EarlyDepartures++
		}
		counters.TotalOvertimeHours += rec.OvertimeHours
	}

	return &attendance.SummaryResponse{
		EmployeeID: employeeID,
		Employee: attendance.EmployeeProfile{
			FullName: emp.Personal.FullName,
			Email:    emp.Email,
		},
		Summary: counters,
	}, nil
}

// GetEmployeeDetail implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetEmployeeDetail(ctx context.Context, hrAdminID, employeeID, filter, from, to string) (*attendance.DetailResponse, error) {
	emp, err := s.managedEmployee(ctx, hrAdminID, employeeID)
	if err != nil {
		return nil, err
	}

	start, end, err := RangeBounds(filter, from, to, s.now())
	if err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.FindInRange(ctx, attendance.RangeFilter{
		Start:       start,
		End:         end,
		EmployeeIDs: []string{employeeID},
	})
	if err != nil {
		return nil, err
	}

	return &attendance.DetailResponse{
		EmployeeID: employeeID,
		Employee: attendance.EmployeeProfile{
			FullName: emp.Personal.FullName,
			Email:    emp.Email,
		},
		AttendanceDetails: buildDayArray(start, end, records, true),
	}, nil
}

// GetByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByDate(ctx context.Context, hrAdminID, date string, page, limit int) (*attendance.ListAttendanceResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, attendance.ErrInvalidDateFilter
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

	resp := &attendance.ListAttendanceResponse{
		Page:        page,
		Limit:       limit,
		Attendances: []attendance.AttendanceResponse{},
	}

	if len(employeeIDs) == 0 {
		return resp, nil
	}

	records, total, err := s.AttendanceRepository.ListByDate(ctx, employeeIDs, day, page, limit)
	if err != nil {
		return nil, err
	}

	resp.TotalCount = total
	resp.TotalPages = int(math.Ceil(float64(total) / float64(limit)))
	for _, rec := range records {
		resp.Attendances = append(resp.Attendances, toAttendanceResponse(rec))
	}

	return resp, nil
}

func (s *AttendanceServiceImpl) managedEmployee(ctx context.Context, hrAdminID, employeeID string) (*employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.CreatedBy != hrAdminID && emp.EmployeeID != hrAdminID {
		return nil, attendance.ErrNotRecordOwner
	}
	return emp, nil
}

// buildDayArray merges persisted records into the full calendar of the
// range. Days without a record become bare absent entries when requested;
// days with records carry the derived fields. Entries follow record order
// for present days, with absent days slotted by date.
func buildDayArray(start, end time.Time, records []attendance.Attendance, showAbsent bool) []attendance.AttendanceDay {
	recorded := make(map[string][]attendance.Attendance)
	for _, rec := range records {
		key := DateOnly(rec.Date).Format("2006-01-02")
		recorded[key] = append(recorded[key], rec)
	}

	days := []attendance.AttendanceDay{}
	for _, d := range EachDay(start, end) {
		key := d.Format("2006-01-02")
		recs, present := recorded[key]
		if !present {
			if showAbsent {
				days = append(days, attendance.AttendanceDay{
					Date:   key,
					Status: "absent",
				})
			}
			continue
		}
		for _, rec := range recs {
			days = append(days, toAttendanceDay(rec))
		}
	}

	return days
}

func toAttendanceDay(rec attendance.Attendance) attendance.AttendanceDay {
	checkIn := rec.CheckIn.Format(time.RFC3339)
	day := attendance.AttendanceDay{
		Date:           DateOnly(rec.Date).Format("2006-01-02"),
		Status:         "present",
		CheckIn:        &checkIn,
		LateArrival:    &rec.LateArrival,
		EarlyDeparture: &rec.EarlyDeparture,
		ShiftType:      &rec.ShiftType,
		MissedCheckIn:  &rec.MissedCheckIn,
		MissedCheckOut: &rec.MissedCheckOut,
		WorkHours:      &rec.WorkHours,
		OvertimeHours:  &rec.OvertimeHours,
		UndertimeHours: &rec.UndertimeHours,
	}
	if rec.CheckOut != nil {
		checkOut := rec.CheckOut.Format(time.RFC3339)
		day.CheckOut = &checkOut
	}
	return day
}

// buildEmployeeBlock computes per-employee aggregates over the full range
// regardless of the absent-day display setting, so the average is stable.
func buildEmployeeBlock(emp *employee.Employee, start, end time.Time, records []attendance.Attendance) *attendance.EmployeeAttendance {
	totalDays := len(EachDay(start, end))

	presentDates := make(map[string]struct{})
	for _, rec := range records {
		presentDates[DateOnly(rec.Date).Format("2006-01-02")] = struct{}{}
	}

	present := len(presentDates)
	absent := totalDays - present

	average := "0.00%"
	if totalDays > 0 {
		average = fmt.Sprintf("%.2f%%", float64(present)/float64(totalDays)*100)
	}

	return &attendance.EmployeeAttendance{
		EmployeeID:        emp.EmployeeID,
		FullName:          emp.Personal.FullName,
		Email:             emp.Email,
		Attendance:        buildDayArray(start, end, records, true),
		TotalPresentDays:  present,
		TotalAbsentDays:   absent,
		AverageAttendance: average,
	}
}

func toAttendanceResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		Date:           DateOnly(att.Date).Format("2006-01-02"),
		CheckIn:        att.CheckIn.Format(time.RFC3339),
		ShiftType:      att.ShiftType,
		LateArrival:    att.LateArrival,
		EarlyDeparture: att.EarlyDeparture,
		MissedCheckIn:  att.MissedCheckIn,
		MissedCheckOut: att.MissedCheckOut,
		WorkHours:      att.WorkHours,
		OvertimeHours:  att.OvertimeHours,
		UndertimeHours: att.UndertimeHours,
	}
	if att.CheckOut != nil {
		checkOut := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &checkOut
	}
	return resp
}
