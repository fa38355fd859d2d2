package salary

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

type GenerateRequest struct {
	Month       int      `json:"month"`
	Year        int      `json:"year"`
	EmployeeIDs []string `json:"employee_ids"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerateResponse reports per-employee outcomes of the batch; a failed
// employee does not abort the rest.
type GenerateResponse struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Failed  []string `json:"failed,omitempty"`
}

// UpsertRequest creates or updates a monthly salary snapshot. Totals
// and net salary in the body are ignored; the server recomputes them.
type UpsertRequest struct {
	ID         string `json:"-"`
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`

	BaseSalary *decimal.Decimal `json:"base_salary"`
	Currency   *string          `json:"currency"`

	Bonuses           *[]Line             `json:"bonuses"`
	Allowances        *[]Line             `json:"allowances"`
	Deductions        *[]Line             `json:"deductions"`
	LateDeductions    *[]LateDeduction    `json:"late_deductions"`
	AbsenceDeductions *[]AbsenceDeduction `json:"absence_deductions"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	// Create path requires the full key; update path carries ID.
	if r.ID == "" {
		if validator.IsEmpty(r.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_id",
				Message: "employee_id is required",
			})
		}
		if r.Month < 1 || r.Month > 12 {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be between 1 and 12",
			})
		}
		if r.Year < 2000 || r.Year > 2100 {
			errs = append(errs, validator.ValidationError{
				Field:   "year",
				Message: "year must be between 2000 and 2100",
			})
		}
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	for field, lines := range map[string]*[]Line{
		"bonuses": r.Bonuses, "allowances": r.Allowances, "deductions": r.Deductions,
	} {
		if lines == nil {
			continue
		}
		for _, l := range *lines {
			if l.Amount.IsNegative() {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: "amounts must not be negative",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TogglePaymentRequest struct {
	ID               string  `json:"-"`
	PaymentMethod    *string `json:"payment_method"`
	PaymentReference *string `json:"payment_reference"`
}

// SyncDeductionsRequest rebuilds a month's late/absence deduction lists
// from attendance records at the configured rates.
type SyncDeductionsRequest struct {
	ID string `json:"-"`
}

type Filter struct {
	EmployeeID *string
	Month      *int
	Year       *int
	IsPaid     *bool
	Page       int
	Limit      int
}

type SalaryResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Month        int     `json:"month"`
	Year         int     `json:"year"`

	BaseSalary decimal.Decimal `json:"base_salary"`
	Currency   string          `json:"currency"`

	Bonuses           []Line             `json:"bonuses"`
	Allowances        []Line             `json:"allowances"`
	Deductions        []Line             `json:"deductions"`
	LateDeductions    []LateDeduction    `json:"late_deductions"`
	AbsenceDeductions []AbsenceDeduction `json:"absence_deductions"`

	TotalBonuses           decimal.Decimal `json:"total_bonuses"`
	TotalAllowances        decimal.Decimal `json:"total_allowances"`
	TotalDeductions        decimal.Decimal `json:"total_deductions"`
	TotalLateDeductions    decimal.Decimal `json:"total_late_deductions"`
	TotalAbsenceDeductions decimal.Decimal `json:"total_absence_deductions"`
	NetSalary              decimal.Decimal `json:"net_salary"`

	IsPaid           bool    `json:"is_paid"`
	PaidAt           *string `json:"paid_at,omitempty"`
	PaidBy           *string `json:"paid_by,omitempty"`
	PaymentMethod    *string `json:"payment_method,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`
}

type ListSalariesResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Salaries   []SalaryResponse `json:"salaries"`
}
