package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

func testPolicy(t *testing.T) Policy {
	t.Helper()
	workStart, err := validator.ParseWallClock("09:00")
	require.NoError(t, err)
	return Policy{
		WorkStart:            workStart,
		LateThresholdMinutes: 15,
		BaselineWorkHours:    8,
	}
}

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02 15:04", "2026-03-02 "+clock)
	require.NoError(t, err)
	return parsed.UTC()
}

func TestPolicyLateness(t *testing.T) {
	policy := testPolicy(t)

	tests := []struct {
		name        string
		checkIn     string
		wantMinutes int
		wantStatus  attendance.Status
	}{
		{
			name:        "early check-in is present with zero minutes",
			checkIn:     "08:05",
			wantMinutes: 0,
			wantStatus:  attendance.StatusPresent,
		},
		{
			name:        "exactly on time",
			checkIn:     "09:00",
			wantMinutes: 0,
			wantStatus:  attendance.StatusPresent,
		},
		{
			name:        "within threshold stays present but counts minutes",
			checkIn:     "09:10",
			wantMinutes: 10,
			wantStatus:  attendance.StatusPresent,
		},
		{
			name:        "exactly at threshold stays present",
			checkIn:     "09:15",
			wantMinutes: 15,
			wantStatus:  attendance.StatusPresent,
		},
		{
			name:        "past threshold flips to late",
			checkIn:     "09:20",
			wantMinutes: 20,
			wantStatus:  attendance.StatusLate,
		},
		{
			name:        "very late afternoon check-in",
			checkIn:     "13:00",
			wantMinutes: 240,
			wantStatus:  attendance.StatusLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, status := policy.lateness(at(t, tt.checkIn))
			assert.Equal(t, tt.wantMinutes, minutes)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestPolicyWorkHours(t *testing.T) {
	policy := testPolicy(t)

	tests := []struct {
		name         string
		checkIn      string
		checkOut     string
		wantHours    float64
		wantOvertime float64
	}{
		{
			name:         "standard eight hour day has no overtime",
			checkIn:      "09:00",
			checkOut:     "17:00",
			wantHours:    8,
			wantOvertime: 0,
		},
		{
			name:         "short day has no negative overtime",
			checkIn:      "09:00",
			checkOut:     "13:30",
			wantHours:    4.5,
			wantOvertime: 0,
		},
		{
			name:         "long day accrues overtime",
			checkIn:      "09:00",
			checkOut:     "19:30",
			wantHours:    10.5,
			wantOvertime: 2.5,
		},
		{
			name:         "fractional minutes round to two decimals",
			checkIn:      "09:00",
			checkOut:     "17:20",
			wantHours:    8.33,
			wantOvertime: 0.33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, overtime := policy.workHours(at(t, tt.checkIn), at(t, tt.checkOut))
			assert.InDelta(t, tt.wantHours, hours, 0.001)
			assert.InDelta(t, tt.wantOvertime, overtime, 0.001)
		})
	}
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	ts := time.Date(2026, 3, 2, 14, 45, 12, 0, loc)

	day := dayOf(ts)

	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), day)
}
