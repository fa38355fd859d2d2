package salary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRecomputeNetSalary(t *testing.T) {
	m := MonthlySalary{
		BaseSalary: dec("1000"),
		Bonuses:    []Line{{Description: "performance", Amount: dec("100")}},
		Deductions: []Line{{Description: "equipment", Amount: dec("30")}},
	}
	m.Recompute()

	assert.True(t, m.TotalBonuses.Equal(dec("100")), "total bonuses = %s", m.TotalBonuses)
	assert.True(t, m.TotalDeductions.Equal(dec("30")), "total deductions = %s", m.TotalDeductions)
	assert.True(t, m.NetSalary.Equal(dec("1070")), "net salary = %s", m.NetSalary)
}

func TestRecomputeAllCategories(t *testing.T) {
	m := MonthlySalary{
		BaseSalary: dec("5000"),
		Bonuses: []Line{
			{Description: "quarterly", Amount: dec("250.50")},
			{Description: "referral", Amount: dec("100")},
		},
		Allowances: []Line{{Description: "transport", Amount: dec("149.50")}},
		Deductions: []Line{{Description: "loan", Amount: dec("400")}},
		LateDeductions: []LateDeduction{
			{Date: "2025-03-03", Minutes: 20, Amount: dec("10")},
			{Date: "2025-03-17", Minutes: 45, Amount: dec("22.50")},
		},
		AbsenceDeductions: []AbsenceDeduction{{Date: "2025-03-10", Amount: dec("200")}},
	}
	m.Recompute()

	assert.True(t, m.TotalBonuses.Equal(dec("350.50")))
	assert.True(t, m.TotalAllowances.Equal(dec("149.50")))
	assert.True(t, m.TotalDeductions.Equal(dec("400")))
	assert.True(t, m.TotalLateDeductions.Equal(dec("32.50")))
	assert.True(t, m.TotalAbsenceDeductions.Equal(dec("200")))

	// net = base + bonuses + allowances - the three deduction totals
	want := dec("5000").Add(dec("350.50")).Add(dec("149.50")).
		Sub(dec("400")).Sub(dec("32.50")).Sub(dec("200"))
	assert.True(t, m.NetSalary.Equal(want), "net salary = %s, want %s", m.NetSalary, want)
}

func TestRecomputeOverwritesClientTotals(t *testing.T) {
	// Whatever totals arrive on the struct are discarded.
	m := MonthlySalary{
		BaseSalary:   dec("1000"),
		TotalBonuses: dec("999999"),
		NetSalary:    dec("999999"),
	}
	m.Recompute()

	assert.True(t, m.TotalBonuses.IsZero())
	assert.True(t, m.NetSalary.Equal(dec("1000")))
}

func TestRecomputeEmptyLists(t *testing.T) {
	m := MonthlySalary{BaseSalary: dec("1234.56")}
	m.Recompute()

	assert.True(t, m.TotalBonuses.IsZero())
	assert.True(t, m.TotalAllowances.IsZero())
	assert.True(t, m.TotalDeductions.IsZero())
	assert.True(t, m.TotalLateDeductions.IsZero())
	assert.True(t, m.TotalAbsenceDeductions.IsZero())
	assert.True(t, m.NetSalary.Equal(dec("1234.56")))
}
