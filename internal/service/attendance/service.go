package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/branch"
	"github.com/staffdesk/backoffice-go/internal/domain/company"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
	"github.com/staffdesk/backoffice-go/internal/pkg/geo"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	policy Policy
	attendance.RecordRepository
	employee.EmployeeRepository
	branch.BranchRepository
	company.CompanyRepository
}

func NewAttendanceService(
	policy Policy,
	recordRepo attendance.RecordRepository,
	employeeRepo employee.EmployeeRepository,
	branchRepo branch.BranchRepository,
	companyRepo company.CompanyRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		policy:             policy,
		RecordRepository:   recordRepo,
		EmployeeRepository: employeeRepo,
		BranchRepository:   branchRepo,
		CompanyRepository:  companyRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.IsActive {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	checkInAt := time.Now().UTC()
	if req.ClientTimestamp != nil {
		if parsed, ok := validator.IsValidDateTime(*req.ClientTimestamp); ok {
			checkInAt = parsed.UTC()
		}
	}
	today := dayOf(checkInAt)

	existing, err := a.RecordRepository.GetByEmployeeAndDate(ctx, emp.ID, today)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing record: %w", err)
	}
	if existing != nil && existing.CheckedIn() {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	var br *branch.Branch
	if req.BranchID != nil {
		found, err := a.BranchRepository.GetByID(ctx, *req.BranchID)
		if err != nil {
			if errors.Is(err, branch.ErrBranchNotFound) {
				return attendance.RecordResponse{}, branch.ErrBranchNotFound
			}
			return attendance.RecordResponse{}, fmt.Errorf("failed to get branch: %w", err)
		}
		br = &found
	}

	comp, err := a.CompanyRepository.Get(ctx)
	if err != nil && !errors.Is(err, company.ErrCompanyNotFound) {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	fence, haveFence := resolveGeofence(br, emp, comp)
	point := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	method, err := authorizeLocation(point, fence, haveFence, br, req.ClientIP, req.BypassLocation)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	lateMinutes, status := a.policy.lateness(checkInAt)

	record := attendance.Record{
		EmployeeID:       emp.ID,
		Date:             today,
		BranchID:         req.BranchID,
		CheckIn:          &checkInAt,
		CheckInLatitude:  &req.Latitude,
		CheckInLongitude: &req.Longitude,
		LateMinutes:      lateMinutes,
		Status:           status,
		AuthMethod:       method,
		IsManualEntry:    false,
	}

	if existing != nil {
		// A record without a check-in can already exist for the day
		// (for example a pre-created holiday stub edited away by a
		// manager); merge into it instead of violating the
		// one-record-per-day invariant.
		record.ID = existing.ID
		record.LeaveType = existing.LeaveType
		if err := a.RecordRepository.Update(ctx, record); err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
		}
		updated, err := a.RecordRepository.GetByID(ctx, existing.ID)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to get updated record: %w", err)
		}
		return mapRecordToResponse(updated), nil
	}

	created, err := a.RecordRepository.Create(ctx, record)
	if err != nil {
		// A concurrent check-in for the same day loses the insert race
		// on the unique index and surfaces as the same conflict.
		if errors.Is(err, attendance.ErrRecordExists) {
			return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	now := time.Now().UTC()
	record, err := a.RecordRepository.GetByEmployeeAndDate(ctx, emp.ID, dayOf(now))
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get today's record: %w", err)
	}
	if record == nil || !record.CheckedIn() {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	comp, err := a.CompanyRepository.Get(ctx)
	if err != nil && !errors.Is(err, company.ErrCompanyNotFound) {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get company: %w", err)
	}

	// Check-out never re-validates the branch fence; only the employee
	// work location or the company default applies. A session whose
	// geofence was removed mid-day is allowed to close.
	fence, haveFence := resolveGeofence(nil, emp, comp)
	if haveFence && !req.BypassLocation {
		point := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
		if _, err := authorizeLocation(point, fence, true, nil, "", false); err != nil {
			return attendance.RecordResponse{}, err
		}
	}

	hours, overtime := a.policy.workHours(*record.CheckIn, now)

	record.CheckOut = &now
	record.CheckOutLatitude = &req.Latitude
	record.CheckOutLongitude = &req.Longitude
	record.WorkHours = &hours
	record.OvertimeHours = &overtime

	if err := a.RecordRepository.Update(ctx, *record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return mapRecordToResponse(*record), nil
}

// ManualEntry implements attendance.AttendanceService.
// Creates a full record in one step, bypassing the check-in/check-out
// sequence; the one-record-per-day invariant still holds and an
// existing record is a conflict, never a merge.
func (a *AttendanceServiceImpl) ManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := validator.IsValidDate(req.Date)
	date = dayOf(date)

	existing, err := a.RecordRepository.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to check existing record: %w", err)
	}
	if existing != nil {
		return attendance.RecordResponse{}, attendance.ErrRecordExists
	}

	record := attendance.Record{
		EmployeeID:        emp.ID,
		Date:              date,
		Status:            attendance.Status(req.Status),
		AuthMethod:        attendance.AuthManual,
		IsManualEntry:     true,
		VerifiedByManager: true,
		Confirmed:         true,
	}

	if req.LeaveType != nil {
		lt := attendance.LeaveType(*req.LeaveType)
		record.LeaveType = &lt
	}

	// Wall-clock times combine with the date verbatim as UTC.
	if req.CheckIn != nil {
		w, _ := validator.ParseWallClock(*req.CheckIn)
		at := w.On(date)
		record.CheckIn = &at
	}
	if req.CheckOut != nil {
		w, _ := validator.ParseWallClock(*req.CheckOut)
		at := w.On(date)
		record.CheckOut = &at
	}

	if record.CheckIn != nil {
		switch record.Status {
		case attendance.StatusPresent, attendance.StatusLate:
			record.LateMinutes, _ = a.policy.lateness(*record.CheckIn)
		}
	}
	if record.CheckIn != nil && record.CheckOut != nil {
		hours, overtime := a.policy.workHours(*record.CheckIn, *record.CheckOut)
		record.WorkHours = &hours
		record.OvertimeHours = &overtime
	}

	created, err := a.RecordRepository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordExists) {
			return attendance.RecordResponse{}, attendance.ErrRecordExists
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return mapRecordToResponse(created), nil
}

// UpdateRecord implements attendance.AttendanceService.
// This allows managers to fix attendance data like wrong clock times.
func (a *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := a.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	if req.CheckIn != nil {
		w, _ := validator.ParseWallClock(*req.CheckIn)
		at := w.On(record.Date)
		record.CheckIn = &at
	}
	if req.CheckOut != nil {
		w, _ := validator.ParseWallClock(*req.CheckOut)
		at := w.On(record.Date)
		record.CheckOut = &at
	}

	if req.Status != nil {
		record.Status = attendance.Status(*req.Status)
	}
	if req.LeaveType != nil {
		lt := attendance.LeaveType(*req.LeaveType)
		record.LeaveType = &lt
	}
	if req.LateMinutes != nil {
		record.LateMinutes = *req.LateMinutes
	}
	if req.Overtime != nil {
		record.OvertimeHours = req.Overtime
	}
	if req.Confirmed != nil {
		record.Confirmed = *req.Confirmed
	}

	// Recompute work hours if both clock times are present.
	if record.CheckIn != nil && record.CheckOut != nil {
		hours, overtime := a.policy.workHours(*record.CheckIn, *record.CheckOut)
		record.WorkHours = &hours
		if req.Overtime == nil {
			record.OvertimeHours = &overtime
		}
	}

	record.AuthMethod = attendance.AuthManual
	record.IsManualEntry = true
	record.VerifiedByManager = true

	if err := a.RecordRepository.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	updated, err := a.RecordRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to get updated record: %w", err)
	}

	return mapRecordToResponse(updated), nil
}

// DeleteRecord implements attendance.AttendanceService.
// Hard delete. Leave-balance debits already applied for this day are
// not reversed; balance corrections are a separate admin operation.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := a.RecordRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// GetRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	record, err := a.RecordRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return mapRecordToResponse(record), nil
}

// ListRecords implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) (attendance.ListRecordsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	records, total, err := a.RecordRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, r := range records {
		responses = append(responses, mapRecordToResponse(r))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

// MonthlyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlyReport(ctx context.Context, employeeID string, month, year int) (attendance.MonthlySummary, error) {
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	records, err := a.RecordRepository.ListByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return attendance.MonthlySummary{}, fmt.Errorf("failed to list records for month: %w", err)
	}

	return Summarize(employeeID, month, year, records), nil
}

// mapRecordToResponse converts a Record entity to RecordResponse.
func mapRecordToResponse(r attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		EmployeeName:      r.EmployeeName,
		Date:              r.Date.Format("2006-01-02"),
		BranchID:          r.BranchID,
		CheckIn:           timePtrToString(r.CheckIn),
		CheckOut:          timePtrToString(r.CheckOut),
		CheckInLatitude:   r.CheckInLatitude,
		CheckInLongitude:  r.CheckInLongitude,
		CheckOutLatitude:  r.CheckOutLatitude,
		CheckOutLongitude: r.CheckOutLongitude,
		WorkHours:         r.WorkHours,
		OvertimeHours:     r.OvertimeHours,
		LateMinutes:       r.LateMinutes,
		Status:            r.Status,
		LeaveType:         r.LeaveType,
		AuthMethod:        r.AuthMethod,
		IsManualEntry:     r.IsManualEntry,
		VerifiedByManager: r.VerifiedByManager,
		Confirmed:         r.Confirmed,
	}
}
