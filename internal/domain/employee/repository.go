package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, employee Employee) error

	// UpdateBaseSalary is the explicit sync channel used by the salary
	// engine when a monthly record's base salary diverges from the
	// employee record. Keeping it a named operation makes the
	// cross-entity side effect visible in the contract.
	UpdateBaseSalary(ctx context.Context, id string, salary decimal.Decimal, currency string) error

	// DebitLeaveBalance atomically decrements the named counter and
	// fails if the result would go negative.
	DebitLeaveBalance(ctx context.Context, id string, counter LeaveCounter, days int) error
}
