package attendance

import (
	"math"
	"time"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

// Policy carries the attendance rules applied to every check-in and
// check-out: when the work day starts, how many minutes of lateness are
// tolerated, and the daily baseline beyond which time counts as
// overtime.
type Policy struct {
	WorkStart            validator.WallClock
	LateThresholdMinutes int
	BaselineWorkHours    float64
}

// lateness returns the minutes a check-in falls after the scheduled
// work start (never negative) and the status that results. Checking in
// early is simply present; a check-in later than the threshold flips
// the status to late, but the minutes always count from the scheduled
// start.
func (p Policy) lateness(checkIn time.Time) (int, attendance.Status) {
	minuteOfDay := checkIn.Hour()*60 + checkIn.Minute()
	late := minuteOfDay - p.WorkStart.MinutesFromMidnight()
	if late <= 0 {
		return 0, attendance.StatusPresent
	}
	if late > p.LateThresholdMinutes {
		return late, attendance.StatusLate
	}
	return late, attendance.StatusPresent
}

// workHours returns the hours between check-in and check-out rounded
// to two decimals, and the overtime beyond the baseline.
func (p Policy) workHours(checkIn, checkOut time.Time) (hours, overtime float64) {
	hours = roundHours(checkOut.Sub(checkIn).Hours())
	overtime = hours - p.BaselineWorkHours
	if overtime < 0 {
		overtime = 0
	}
	return hours, roundHours(overtime)
}

func roundHours(h float64) float64 {
	return math.Round(h*100) / 100
}

// dayOf truncates a timestamp to its calendar date at midnight UTC.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
