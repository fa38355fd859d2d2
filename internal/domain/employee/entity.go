package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Default leave balances granted to a new employee.
const (
	DefaultAnnualBalance    = 21
	DefaultEmergencyBalance = 7
)

// LeaveCounter names one of the two balance counters on an employee.
type LeaveCounter string

const (
	CounterAnnual    LeaveCounter = "annual"
	CounterEmergency LeaveCounter = "emergency"
)

type Employee struct {
	ID               string
	FullName         string
	Email            string
	Position         *string
	BranchID         *string
	BaseSalary       decimal.Decimal
	SalaryCurrency   string
	AnnualBalance    int
	EmergencyBalance int

	// Optional per-employee geofence; overrides the company default.
	WorkLatitude  *float64
	WorkLongitude *float64
	WorkRadius    *float64

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWorkLocation reports whether the employee-specific geofence is set.
func (e Employee) HasWorkLocation() bool {
	return e.WorkLatitude != nil && e.WorkLongitude != nil && e.WorkRadius != nil
}

// Balance returns the current value of the named counter.
func (e Employee) Balance(counter LeaveCounter) int {
	if counter == CounterEmergency {
		return e.EmergencyBalance
	}
	return e.AnnualBalance
}
