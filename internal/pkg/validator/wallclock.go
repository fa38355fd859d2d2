package validator

import (
	"fmt"
	"time"
)

// WallClock is a local wall-clock time of day with no timezone attached.
// Manager attendance edits send times as plain "15:04" strings; combining
// them with the record's date must not shift the value through timezone
// conversion, so the type pins the interpretation to UTC verbatim.
type WallClock struct {
	Hour   int
	Minute int
	Second int
}

// ParseWallClock accepts "15:04" or "15:04:05".
func ParseWallClock(s string) (WallClock, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		t, err = time.Parse("15:04", s)
		if err != nil {
			return WallClock{}, fmt.Errorf("invalid time of day %q: %w", s, err)
		}
	}
	return WallClock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// On combines the wall-clock time with a calendar date, always in UTC.
func (w WallClock) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), w.Hour, w.Minute, w.Second, 0, time.UTC)
}

// MinutesFromMidnight is used by the lateness calculation.
func (w WallClock) MinutesFromMidnight() int {
	return w.Hour*60 + w.Minute
}

func (w WallClock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", w.Hour, w.Minute, w.Second)
}
