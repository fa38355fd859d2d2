package leave

import (
	"testing"
	"time"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInclusiveDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2025, 3, 10), date(2025, 3, 10), 1},
		{"two days", date(2025, 3, 10), date(2025, 3, 11), 2},
		{"full week", date(2025, 3, 10), date(2025, 3, 16), 7},
		{"across month end", date(2025, 3, 30), date(2025, 4, 2), 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := InclusiveDays(c.start, c.end); got != c.want {
				t.Errorf("InclusiveDays = %d, want %d", got, c.want)
			}
		})
	}
}

func TestDebitCounter(t *testing.T) {
	cases := []struct {
		name        string
		leaveType   attendance.LeaveType
		override    bool
		wantCounter employee.LeaveCounter
		wantDebit   bool
	}{
		{"annual", attendance.LeaveAnnual, false, employee.CounterAnnual, true},
		{"sick debits annual", attendance.LeaveSick, false, employee.CounterAnnual, true},
		{"emergency", attendance.LeaveEmergency, false, employee.CounterEmergency, true},
		{"annual with override", attendance.LeaveAnnual, true, employee.CounterEmergency, true},
		{"sick with override", attendance.LeaveSick, true, employee.CounterEmergency, true},
		{"unpaid never debits", attendance.LeaveUnpaid, false, "", false},
		{"unpaid ignores override", attendance.LeaveUnpaid, true, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Request{LeaveType: c.leaveType}
			counter, debit := r.DebitCounter(c.override)
			if debit != c.wantDebit || counter != c.wantCounter {
				t.Errorf("DebitCounter(%v) = (%q, %v), want (%q, %v)",
					c.override, counter, debit, c.wantCounter, c.wantDebit)
			}
		})
	}
}
