package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Check-in / check-out conflicts are terminal for the day and are
	// never retried.
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrNotCheckedIn      = errors.New("you have not checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrRecordExists      = errors.New("an attendance record already exists for this date")

	ErrNoGeofence     = errors.New("no geofence is configured for this employee")
	ErrRecordNotFound = errors.New("attendance record not found")
)

// OutOfRangeError rejects a check-in or check-out outside the resolved
// geofence. It carries the measured distance and the allowed radius so
// the client can show actionable feedback.
type OutOfRangeError struct {
	DistanceMeters float64
	AllowedRadius  float64
	Source         string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("you are %.0f m away from the %s location; the allowed radius is %.0f m",
		e.DistanceMeters, e.Source, e.AllowedRadius)
}
