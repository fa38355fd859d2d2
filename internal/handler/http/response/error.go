package response

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/staffdesk/backoffice-go/internal/domain/attendance"
	"github.com/staffdesk/backoffice-go/internal/domain/auth"
	"github.com/staffdesk/backoffice-go/internal/domain/branch"
	"github.com/staffdesk/backoffice-go/internal/domain/company"
	"github.com/staffdesk/backoffice-go/internal/domain/employee"
	"github.com/staffdesk/backoffice-go/internal/domain/leave"
	"github.com/staffdesk/backoffice-go/internal/domain/salary"
	"github.com/staffdesk/backoffice-go/internal/domain/user"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A check-in outside every fence carries the measured distance so
	// the client can show how far off the employee was.
	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		UnprocessableEntity(w, "OUT_OF_RANGE", outOfRange.Error(), map[string]string{
			"distance_meters": fmt.Sprintf("%.1f", outOfRange.DistanceMeters),
			"allowed_radius":  fmt.Sprintf("%.1f", outOfRange.AllowedRadius),
			"geofence_source": outOfRange.Source,
		})
		return
	}

	var insufficient *leave.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		UnprocessableEntity(w, "INSUFFICIENT_BALANCE", insufficient.Error(), map[string]string{
			"counter":   insufficient.Counter,
			"requested": strconv.Itoa(insufficient.Requested),
			"available": strconv.Itoa(insufficient.Available),
		})
		return
	}

	switch {
	// Auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")

	// Attendance
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out today")
	case errors.Is(err, attendance.ErrRecordExists):
		Conflict(w, "An attendance record already exists for this date")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoGeofence):
		UnprocessableEntity(w, "NO_GEOFENCE", "No geofence is configured for this employee", nil)

	// Employee
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")

	// Branch and company
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, branch.ErrBranchNameExists):
		Conflict(w, "Branch with this name already exists")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Leave
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Salary
	case errors.Is(err, salary.ErrSalaryNotFound):
		NotFound(w, "Salary record not found")
	case errors.Is(err, salary.ErrSalaryAlreadyExists):
		Conflict(w, "Salary record already exists for this period")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
