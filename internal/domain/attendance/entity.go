package attendance

import (
	"time"
)

// Status of a daily attendance record.
type Status string

const (
	StatusPresent         Status = "present"
	StatusLate            Status = "late"
	StatusAbsent          Status = "absent"
	StatusLeave           Status = "leave"
	StatusOfficialHoliday Status = "official_holiday"
)

// LeaveType splits leave days in the monthly summary.
type LeaveType string

const (
	LeaveAnnual    LeaveType = "annual"
	LeaveEmergency LeaveType = "emergency"
	LeaveSick      LeaveType = "sick"
	LeaveUnpaid    LeaveType = "unpaid"
)

// AuthMethod records how a check-in was authorized, in priority order
// manual > location > ip > bypass.
type AuthMethod string

const (
	AuthManual   AuthMethod = "manual"
	AuthLocation AuthMethod = "location"
	AuthIP       AuthMethod = "ip"
	AuthBypass   AuthMethod = "bypass"
)

// Record is the daily attendance record, one per employee per calendar
// date. Date is the work day (midnight UTC), CheckIn/CheckOut are
// absolute timestamps.
type Record struct {
	ID                string
	EmployeeID        string
	Date              time.Time
	BranchID          *string
	CheckIn           *time.Time
	CheckOut          *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	WorkHours         *float64
	OvertimeHours     *float64
	LateMinutes       int
	Status            Status
	LeaveType         *LeaveType
	AuthMethod        AuthMethod
	IsManualEntry     bool
	VerifiedByManager bool
	Confirmed         bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined fields
	EmployeeName *string
}

// CheckedIn reports whether the record holds a check-in timestamp.
func (r Record) CheckedIn() bool {
	return r.CheckIn != nil
}

// Open reports whether the record is checked in but not yet out.
func (r Record) Open() bool {
	return r.CheckIn != nil && r.CheckOut == nil
}
