package salary

import "context"

// SalaryRepository defines data access for monthly salary snapshots.
// The (employee_id, month, year) unique index makes Create conflict on
// duplicates, which GenerateMonthly relies on for idempotency.
type SalaryRepository interface {
	Create(ctx context.Context, record MonthlySalary) (MonthlySalary, error)
	GetByID(ctx context.Context, id string) (MonthlySalary, error)
	GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (MonthlySalary, error)
	Update(ctx context.Context, record MonthlySalary) error
	List(ctx context.Context, filter Filter) ([]MonthlySalary, int64, error)
}
