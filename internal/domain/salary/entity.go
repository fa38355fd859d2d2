package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a described amount: a bonus, an allowance, or a manual
// deduction.
type Line struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// LateDeduction is one lateness-derived deduction, tied to the day and
// the minutes that produced it.
type LateDeduction struct {
	Date    string          `json:"date"`
	Minutes int             `json:"minutes"`
	Amount  decimal.Decimal `json:"amount"`
}

// AbsenceDeduction is one absence-derived deduction.
type AbsenceDeduction struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlySalary is the per-employee-month salary snapshot, one per
// (employee_id, month, year). The five totals and NetSalary are always
// recomputed server-side; client-supplied values are never trusted.
type MonthlySalary struct {
	ID         string
	EmployeeID string
	Month      int
	Year       int

	BaseSalary decimal.Decimal
	Currency   string

	Bonuses           []Line
	Allowances        []Line
	Deductions        []Line
	LateDeductions    []LateDeduction
	AbsenceDeductions []AbsenceDeduction

	TotalBonuses           decimal.Decimal
	TotalAllowances        decimal.Decimal
	TotalDeductions        decimal.Decimal
	TotalLateDeductions    decimal.Decimal
	TotalAbsenceDeductions decimal.Decimal
	NetSalary              decimal.Decimal

	IsPaid           bool
	PaidAt           *time.Time
	PaidBy           *string
	PaymentMethod    *string
	PaymentReference *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}

// Recompute derives the five totals and the net salary from the line
// lists. Called on every create and update; the invariant
//
//	net = base + bonuses + allowances
//	      - deductions - lateDeductions - absenceDeductions
//
// holds after every mutation.
func (m *MonthlySalary) Recompute() {
	m.TotalBonuses = sumLines(m.Bonuses)
	m.TotalAllowances = sumLines(m.Allowances)
	m.TotalDeductions = sumLines(m.Deductions)

	m.TotalLateDeductions = decimal.Zero
	for _, d := range m.LateDeductions {
		m.TotalLateDeductions = m.TotalLateDeductions.Add(d.Amount)
	}

	m.TotalAbsenceDeductions = decimal.Zero
	for _, d := range m.AbsenceDeductions {
		m.TotalAbsenceDeductions = m.TotalAbsenceDeductions.Add(d.Amount)
	}

	m.NetSalary = m.BaseSalary.
		Add(m.TotalBonuses).
		Add(m.TotalAllowances).
		Sub(m.TotalDeductions).
		Sub(m.TotalLateDeductions).
		Sub(m.TotalAbsenceDeductions)
}

func sumLines(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
