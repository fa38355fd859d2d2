package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/staffdesk/backoffice-go/internal/domain/salary"
	"github.com/staffdesk/backoffice-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepository{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.month, s.year,
	s.base_salary, s.currency,
	s.bonuses, s.allowances, s.deductions, s.late_deductions, s.absence_deductions,
	s.total_bonuses, s.total_allowances, s.total_deductions,
	s.total_late_deductions, s.total_absence_deductions, s.net_salary,
	s.is_paid, s.paid_at, s.paid_by, s.payment_method, s.payment_reference,
	s.created_at, s.updated_at
`

// scanSalary scans a monthly salary row; the five line lists travel as
// JSONB.
func scanSalary(row pgx.Row, extra ...interface{}) (salary.MonthlySalary, error) {
	var (
		m              salary.MonthlySalary
		bonusesJSON    []byte
		allowancesJSON []byte
		deductionsJSON []byte
		lateJSON       []byte
		absenceJSON    []byte
	)

	dest := []interface{}{
		&m.ID, &m.EmployeeID, &m.Month, &m.Year,
		&m.BaseSalary, &m.Currency,
		&bonusesJSON, &allowancesJSON, &deductionsJSON, &lateJSON, &absenceJSON,
		&m.TotalBonuses, &m.TotalAllowances, &m.TotalDeductions,
		&m.TotalLateDeductions, &m.TotalAbsenceDeductions, &m.NetSalary,
		&m.IsPaid, &m.PaidAt, &m.PaidBy, &m.PaymentMethod, &m.PaymentReference,
		&m.CreatedAt, &m.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return salary.MonthlySalary{}, err
	}

	_ = json.Unmarshal(bonusesJSON, &m.Bonuses)
	_ = json.Unmarshal(allowancesJSON, &m.Allowances)
	_ = json.Unmarshal(deductionsJSON, &m.Deductions)
	_ = json.Unmarshal(lateJSON, &m.LateDeductions)
	_ = json.Unmarshal(absenceJSON, &m.AbsenceDeductions)

	return m, nil
}

func marshalLists(m salary.MonthlySalary) (bonuses, allowances, deductions, late, absence []byte) {
	bonuses, _ = json.Marshal(emptyLines(m.Bonuses))
	allowances, _ = json.Marshal(emptyLines(m.Allowances))
	deductions, _ = json.Marshal(emptyLines(m.Deductions))
	if m.LateDeductions == nil {
		m.LateDeductions = []salary.LateDeduction{}
	}
	if m.AbsenceDeductions == nil {
		m.AbsenceDeductions = []salary.AbsenceDeduction{}
	}
	late, _ = json.Marshal(m.LateDeductions)
	absence, _ = json.Marshal(m.AbsenceDeductions)
	return
}

func emptyLines(lines []salary.Line) []salary.Line {
	if lines == nil {
		return []salary.Line{}
	}
	return lines
}

// Create implements salary.SalaryRepository.
func (s *salaryRepository) Create(ctx context.Context, record salary.MonthlySalary) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, s.db)

	record.ID = uuid.NewString()
	bonuses, allowances, deductions, late, absence := marshalLists(record)

	query := `
		INSERT INTO monthly_salaries (
			id, employee_id, month, year,
			base_salary, currency,
			bonuses, allowances, deductions, late_deductions, absence_deductions,
			total_bonuses, total_allowances, total_deductions,
			total_late_deductions, total_absence_deductions, net_salary,
			is_paid
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Month, record.Year,
		record.BaseSalary, record.Currency,
		bonuses, allowances, deductions, late, absence,
		record.TotalBonuses, record.TotalAllowances, record.TotalDeductions,
		record.TotalLateDeductions, record.TotalAbsenceDeductions, record.NetSalary,
		record.IsPaid,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return salary.MonthlySalary{}, salary.ErrSalaryAlreadyExists
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return record, nil
}

// GetByID implements salary.SalaryRepository.
func (s *salaryRepository) GetByID(ctx context.Context, id string) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + salaryColumns + ` FROM monthly_salaries s WHERE s.id = $1`

	record, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return record, nil
}

// GetByEmployeePeriod implements salary.SalaryRepository.
func (s *salaryRepository) GetByEmployeePeriod(ctx context.Context, employeeID string, month, year int) (salary.MonthlySalary, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM monthly_salaries s
		WHERE s.employee_id = $1 AND s.month = $2 AND s.year = $3
	`

	record, err := scanSalary(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.MonthlySalary{}, salary.ErrSalaryNotFound
		}
		return salary.MonthlySalary{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return record, nil
}

// Update implements salary.SalaryRepository.
func (s *salaryRepository) Update(ctx context.Context, record salary.MonthlySalary) error {
	q := GetQuerier(ctx, s.db)

	bonuses, allowances, deductions, late, absence := marshalLists(record)

	query := `
		UPDATE monthly_salaries SET
			base_salary = $2, currency = $3,
			bonuses = $4, allowances = $5, deductions = $6,
			late_deductions = $7, absence_deductions = $8,
			total_bonuses = $9, total_allowances = $10, total_deductions = $11,
			total_late_deductions = $12, total_absence_deductions = $13, net_salary = $14,
			is_paid = $15, paid_at = $16, paid_by = $17,
			payment_method = $18, payment_reference = $19,
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		record.ID,
		record.BaseSalary, record.Currency,
		bonuses, allowances, deductions, late, absence,
		record.TotalBonuses, record.TotalAllowances, record.TotalDeductions,
		record.TotalLateDeductions, record.TotalAbsenceDeductions, record.NetSalary,
		record.IsPaid, record.PaidAt, record.PaidBy,
		record.PaymentMethod, record.PaymentReference,
	)
	if err != nil {
		return fmt.Errorf("failed to update salary record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}

// List implements salary.SalaryRepository.
func (s *salaryRepository) List(ctx context.Context, filter salary.Filter) ([]salary.MonthlySalary, int64, error) {
	q := GetQuerier(ctx, s.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("s.month = $%d", argIdx))
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("s.year = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.IsPaid != nil {
		conditions = append(conditions, fmt.Sprintf("s.is_paid = $%d", argIdx))
		args = append(args, *filter.IsPaid)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM monthly_salaries s WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT `+salaryColumns+`, e.full_name
		FROM monthly_salaries s
		JOIN employees e ON e.id = s.employee_id
		WHERE %s
		ORDER BY s.year DESC, s.month DESC, e.full_name
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.MonthlySalary
	for rows.Next() {
		var employeeName *string
		record, err := scanSalary(rows, &employeeName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary record: %w", err)
		}
		record.EmployeeName = employeeName
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate salary records: %w", err)
	}

	return records, total, nil
}
