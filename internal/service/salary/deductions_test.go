package salary

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
)

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveDeductions(t *testing.T) {
	rates := Rates{
		LatePerMinute: decimal.NewFromInt(2),
		AbsencePerDay: decimal.NewFromInt(150),
	}

	records := []attendance.Record{
		{Date: day(2), Status: attendance.StatusPresent},
		{Date: day(3), Status: attendance.StatusLate, LateMinutes: 20},
		{Date: day(4), Status: attendance.StatusPresent, LateMinutes: 5},
		{Date: day(5), Status: attendance.StatusAbsent},
		{Date: day(6), Status: attendance.StatusLeave},
	}

	late, absence := DeriveDeductions(records, rates)

	require.Len(t, late, 2)
	assert.Equal(t, "2026-03-03", late[0].Date)
	assert.Equal(t, 20, late[0].Minutes)
	assert.True(t, late[0].Amount.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, 5, late[1].Minutes)
	assert.True(t, late[1].Amount.Equal(decimal.NewFromInt(10)))

	require.Len(t, absence, 1)
	assert.Equal(t, "2026-03-05", absence[0].Date)
	assert.True(t, absence[0].Amount.Equal(decimal.NewFromInt(150)))
}

func TestDeriveDeductionsEmptyMonth(t *testing.T) {
	late, absence := DeriveDeductions(nil, Rates{})

	assert.Empty(t, late)
	assert.Empty(t, absence)
	assert.NotNil(t, late)
	assert.NotNil(t, absence)
}
