package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/staffdesk/backoffice-go/internal/domain/employee"
	"github.com/staffdesk/backoffice-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, full_name, email, position, branch_id,
	base_salary, salary_currency,
	leave_annual, leave_emergency,
	work_latitude, work_longitude, work_radius,
	is_active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FullName, &e.Email, &e.Position, &e.BranchID,
		&e.BaseSalary, &e.SalaryCurrency,
		&e.AnnualBalance, &e.EmergencyBalance,
		&e.WorkLatitude, &e.WorkLongitude, &e.WorkRadius,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp.ID = uuid.NewString()

	query := `
		INSERT INTO employees (
			id, full_name, email, position, branch_id,
			base_salary, salary_currency,
			leave_annual, leave_emergency,
			work_latitude, work_longitude, work_radius,
			is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.Email, emp.Position, emp.BranchID,
		emp.BaseSalary, emp.SalaryCurrency,
		emp.AnnualBalance, emp.EmergencyBalance,
		emp.WorkLatitude, emp.WorkLongitude, emp.WorkRadius,
		emp.IsActive,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			full_name = $2, position = $3, branch_id = $4,
			base_salary = $5, salary_currency = $6,
			leave_annual = $7, leave_emergency = $8,
			work_latitude = $9, work_longitude = $10, work_radius = $11,
			is_active = $12,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		emp.ID, emp.FullName, emp.Position, emp.BranchID,
		emp.BaseSalary, emp.SalaryCurrency,
		emp.AnnualBalance, emp.EmergencyBalance,
		emp.WorkLatitude, emp.WorkLongitude, emp.WorkRadius,
		emp.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// UpdateBaseSalary implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateBaseSalary(ctx context.Context, id string, salary decimal.Decimal, currency string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees SET
			base_salary = $2, salary_currency = $3, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, salary, currency)
	if err != nil {
		return fmt.Errorf("failed to update base salary: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// DebitLeaveBalance implements employee.EmployeeRepository.
// The guarded UPDATE keeps the counter from going negative under
// concurrent approvals; zero rows affected means either a missing
// employee or an insufficient balance, disambiguated with a lookup.
func (r *employeeRepository) DebitLeaveBalance(ctx context.Context, id string, counter employee.LeaveCounter, days int) error {
	q := GetQuerier(ctx, r.db)

	column := "leave_annual"
	if counter == employee.CounterEmergency {
		column = "leave_emergency"
	}

	query := fmt.Sprintf(`
		UPDATE employees SET
			%[1]s = %[1]s - $2, updated_at = NOW()
		WHERE id = $1 AND %[1]s >= $2
	`, column)

	tag, err := q.Exec(ctx, query, id, days)
	if err != nil {
		return fmt.Errorf("failed to debit leave balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		emp, err := r.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return fmt.Errorf("failed to debit %d days from %s balance (%d available)",
			days, counter, emp.Balance(counter))
	}

	return nil
}
