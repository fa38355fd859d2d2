package attendance

import (
	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
)

// Summarize reduces one employee-month of records into the monthly
// summary. Present and late days both count toward presence; late days
// additionally increment the late counter. Leave days are split by
// type. The reduction is pure and is recomputed from the records on
// every call.
func Summarize(employeeID string, month, year int, records []attendance.Record) attendance.MonthlySummary {
	summary := attendance.MonthlySummary{
		EmployeeID:      employeeID,
		Month:           month,
		Year:            year,
		LeaveDaysByType: make(map[attendance.LeaveType]int),
	}

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.PresentDays++
		case attendance.StatusLate:
			summary.PresentDays++
			summary.LateDays++
		case attendance.StatusAbsent:
			summary.AbsentDays++
		case attendance.StatusLeave:
			leaveType := attendance.LeaveUnpaid
			if r.LeaveType != nil {
				leaveType = *r.LeaveType
			}
			summary.LeaveDaysByType[leaveType]++
		case attendance.StatusOfficialHoliday:
			summary.HolidayDays++
		}

		summary.TotalLateMinutes += r.LateMinutes
		if r.WorkHours != nil {
			summary.TotalWorkHours += *r.WorkHours
		}
		if r.OvertimeHours != nil {
			summary.TotalOvertimeHours += *r.OvertimeHours
		}
	}

	summary.TotalWorkHours = roundHours(summary.TotalWorkHours)
	summary.TotalOvertimeHours = roundHours(summary.TotalOvertimeHours)
	return summary
}
