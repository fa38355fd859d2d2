package salary

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/salary"
)

// DeriveDeductions builds the late and absence deduction lists for one
// employee-month of attendance records. Each late day yields one entry
// of minutes times the per-minute rate; each absent day one entry of
// the per-day rate. Days without lateness or absence contribute
// nothing.
func DeriveDeductions(records []attendance.Record, rates Rates) ([]salary.LateDeduction, []salary.AbsenceDeduction) {
	late := make([]salary.LateDeduction, 0)
	absence := make([]salary.AbsenceDeduction, 0)

	for _, r := range records {
		if r.LateMinutes > 0 {
			late = append(late, salary.LateDeduction{
				Date:    r.Date.Format("2006-01-02"),
				Minutes: r.LateMinutes,
				Amount:  rates.LatePerMinute.Mul(decimal.NewFromInt(int64(r.LateMinutes))),
			})
		}
		if r.Status == attendance.StatusAbsent {
			absence = append(absence, salary.AbsenceDeduction{
				Date:   r.Date.Format("2006-01-02"),
				Amount: rates.AbsencePerDay,
			})
		}
	}

	return late, absence
}
