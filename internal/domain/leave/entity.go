package leave

import (
	"time"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
)

type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// Request is a leave request. Days is the inclusive day count between
// StartDate and EndDate, fixed at creation time.
type Request struct {
	ID                  string
	EmployeeID          string
	LeaveType           attendance.LeaveType
	StartDate           time.Time
	EndDate             time.Time
	Days                int
	Reason              string
	Status              RequestStatus
	ReviewedBy          *string
	ReviewedAt          *time.Time
	DeductFromEmergency bool
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Joined fields
	EmployeeName *string
}

// DebitCounter resolves which balance counter an approval debits.
// Annual and sick leave debit the annual counter; emergency leave the
// emergency counter. A reviewer may redirect an annual/sick debit to
// the emergency counter. Unpaid leave debits nothing.
func (r Request) DebitCounter(deductFromEmergency bool) (employee.LeaveCounter, bool) {
	switch r.LeaveType {
	case attendance.LeaveUnpaid:
		return "", false
	case attendance.LeaveEmergency:
		return employee.CounterEmergency, true
	default: // annual, sick
		if deductFromEmergency {
			return employee.CounterEmergency, true
		}
		return employee.CounterAnnual, true
	}
}

// InclusiveDays counts the calendar days between start and end with
// both endpoints included.
func InclusiveDays(start, end time.Time) int {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	return int(end.Sub(start).Hours()/24) + 1
}
