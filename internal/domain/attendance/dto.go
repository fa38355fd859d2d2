package attendance

import (
	"time"

	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	BranchID   *string `json:"branch_id"`

	// BypassLocation skips geofence checking entirely (selfie-verified
	// fallback). It is an explicit client decision, never a default.
	BypassLocation bool `json:"bypass_location"`

	// ClientTimestamp overrides the server clock when provided
	// (RFC3339). Used by offline-capable clients.
	ClientTimestamp *string `json:"client_timestamp"`

	// ClientIP is filled from the connection by the handler, not the body.
	ClientIP string `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.BranchID != nil && validator.IsEmpty(*r.BranchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "branch_id",
			Message: "branch_id must not be empty when provided",
		})
	}

	if r.ClientTimestamp != nil {
		if _, ok := validator.IsValidDateTime(*r.ClientTimestamp); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "client_timestamp",
				Message: "client_timestamp must be an RFC3339 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	BypassLocation bool `json:"bypass_location"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ManualEntryRequest creates a full record for a date in one step,
// bypassing the check-in/check-out sequence. Times are wall-clock
// strings combined with the date verbatim as UTC.
type ManualEntryRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     string  `json:"status"`
	LeaveType  *string `json:"leave_type"`
}

var validStatuses = []string{
	string(StatusPresent), string(StatusLate), string(StatusAbsent),
	string(StatusLeave), string(StatusOfficialHoliday),
}

var validLeaveTypes = []string{
	string(LeaveAnnual), string(LeaveEmergency), string(LeaveSick), string(LeaveUnpaid),
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsInSlice(r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent, leave, official_holiday",
		})
	}

	if r.Status == string(StatusLeave) && r.LeaveType == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required when status is leave",
		})
	}

	if r.LeaveType != nil && !validator.IsInSlice(*r.LeaveType, validLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, emergency, sick, unpaid",
		})
	}

	for field, value := range map[string]*string{"check_in": r.CheckIn, "check_out": r.CheckOut} {
		if value == nil {
			continue
		}
		if _, err := validator.ParseWallClock(*value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a wall-clock time like 09:00 or 09:00:30",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest lets a manager fix arbitrary fields on an
// existing record. Wall-clock times follow the same verbatim-UTC rule
// as manual entry.
type UpdateRecordRequest struct {
	ID          string   `json:"-"`
	CheckIn     *string  `json:"check_in"`
	CheckOut    *string  `json:"check_out"`
	Status      *string  `json:"status"`
	LeaveType   *string  `json:"leave_type"`
	LateMinutes *int     `json:"late_minutes"`
	Overtime    *float64 `json:"overtime"`
	Confirmed   *bool    `json:"confirmed"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, absent, leave, official_holiday",
		})
	}

	if r.LeaveType != nil && !validator.IsInSlice(*r.LeaveType, validLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of annual, emergency, sick, unpaid",
		})
	}

	if r.LateMinutes != nil && *r.LateMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_minutes",
			Message: "late_minutes must not be negative",
		})
	}

	if r.Overtime != nil && *r.Overtime < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime",
			Message: "overtime must not be negative",
		})
	}

	for field, value := range map[string]*string{"check_in": r.CheckIn, "check_out": r.CheckOut} {
		if value == nil {
			continue
		}
		if _, err := validator.ParseWallClock(*value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be a wall-clock time like 09:00 or 09:00:30",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID *string
	Status     *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

type RecordResponse struct {
	ID                string     `json:"id"`
	EmployeeID        string     `json:"employee_id"`
	EmployeeName      *string    `json:"employee_name,omitempty"`
	Date              string     `json:"date"`
	BranchID          *string    `json:"branch_id,omitempty"`
	CheckIn           *string    `json:"check_in,omitempty"`
	CheckOut          *string    `json:"check_out,omitempty"`
	CheckInLatitude   *float64   `json:"check_in_latitude,omitempty"`
	CheckInLongitude  *float64   `json:"check_in_longitude,omitempty"`
	CheckOutLatitude  *float64   `json:"check_out_latitude,omitempty"`
	CheckOutLongitude *float64   `json:"check_out_longitude,omitempty"`
	WorkHours         *float64   `json:"work_hours,omitempty"`
	OvertimeHours     *float64   `json:"overtime_hours,omitempty"`
	LateMinutes       int        `json:"late_minutes"`
	Status            Status     `json:"status"`
	LeaveType         *LeaveType `json:"leave_type,omitempty"`
	AuthMethod        AuthMethod `json:"auth_method"`
	IsManualEntry     bool       `json:"is_manual_entry"`
	VerifiedByManager bool       `json:"verified_by_manager"`
	Confirmed         bool       `json:"confirmed"`
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// MonthlySummary is the aggregator output: a pure reduction over one
// employee-month of records, never cached.
type MonthlySummary struct {
	EmployeeID         string            `json:"employee_id"`
	Month              int               `json:"month"`
	Year               int               `json:"year"`
	PresentDays        int               `json:"present_days"`
	AbsentDays         int               `json:"absent_days"`
	LateDays           int               `json:"late_days"`
	HolidayDays        int               `json:"holiday_days"`
	LeaveDaysByType    map[LeaveType]int `json:"leave_days_by_type"`
	TotalLateMinutes   int               `json:"total_late_minutes"`
	TotalWorkHours     float64           `json:"total_work_hours"`
	TotalOvertimeHours float64           `json:"total_overtime_hours"`
}
