package leave

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound  = errors.New("leave request not found")
	ErrAlreadyProcessed = errors.New("leave request has already been approved or rejected")
)

// InsufficientBalanceError rejects a request or approval whose days
// exceed the targeted counter. Available is surfaced to the caller; no
// partial grant happens.
type InsufficientBalanceError struct {
	Counter   string
	Requested int
	Available int
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s leave balance: requested %d days, %d available",
		e.Counter, e.Requested, e.Available)
}
