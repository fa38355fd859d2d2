package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
)

func record(status attendance.Status, opts ...func(*attendance.Record)) attendance.Record {
	r := attendance.Record{
		EmployeeID: "emp-1",
		Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		Status:     status,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func withLate(minutes int) func(*attendance.Record) {
	return func(r *attendance.Record) { r.LateMinutes = minutes }
}

func withHours(work, overtime float64) func(*attendance.Record) {
	return func(r *attendance.Record) {
		r.WorkHours = &work
		r.OvertimeHours = &overtime
	}
}

func withLeaveType(lt attendance.LeaveType) func(*attendance.Record) {
	return func(r *attendance.Record) { r.LeaveType = &lt }
}

func TestSummarize(t *testing.T) {
	records := []attendance.Record{
		record(attendance.StatusPresent, withHours(8, 0)),
		record(attendance.StatusPresent, withHours(8.5, 0.5), withLate(10)),
		record(attendance.StatusLate, withHours(7.25, 0), withLate(45)),
		record(attendance.StatusAbsent),
		record(attendance.StatusLeave, withLeaveType(attendance.LeaveAnnual)),
		record(attendance.StatusLeave, withLeaveType(attendance.LeaveAnnual)),
		record(attendance.StatusLeave, withLeaveType(attendance.LeaveEmergency)),
		record(attendance.StatusOfficialHoliday),
	}

	summary := Summarize("emp-1", 3, 2026, records)

	assert.Equal(t, "emp-1", summary.EmployeeID)
	assert.Equal(t, 3, summary.Month)
	assert.Equal(t, 2026, summary.Year)

	// Late days count toward presence and the late counter both.
	assert.Equal(t, 3, summary.PresentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.HolidayDays)

	assert.Equal(t, 2, summary.LeaveDaysByType[attendance.LeaveAnnual])
	assert.Equal(t, 1, summary.LeaveDaysByType[attendance.LeaveEmergency])
	assert.Equal(t, 0, summary.LeaveDaysByType[attendance.LeaveUnpaid])

	assert.Equal(t, 55, summary.TotalLateMinutes)
	assert.InDelta(t, 23.75, summary.TotalWorkHours, 0.001)
	assert.InDelta(t, 0.5, summary.TotalOvertimeHours, 0.001)
}

func TestSummarizeLeaveWithoutTypeCountsAsUnpaid(t *testing.T) {
	records := []attendance.Record{
		record(attendance.StatusLeave),
	}

	summary := Summarize("emp-1", 3, 2026, records)

	assert.Equal(t, 1, summary.LeaveDaysByType[attendance.LeaveUnpaid])
}

func TestSummarizeEmptyMonth(t *testing.T) {
	summary := Summarize("emp-1", 3, 2026, nil)

	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, 0, summary.AbsentDays)
	assert.NotNil(t, summary.LeaveDaysByType)
	assert.Empty(t, summary.LeaveDaysByType)
	assert.Zero(t, summary.TotalWorkHours)
}
