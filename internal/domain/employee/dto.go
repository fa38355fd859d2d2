package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/backoffice-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName       string           `json:"full_name"`
	Email          string           `json:"email"`
	Position       *string          `json:"position"`
	BranchID       *string          `json:"branch_id"`
	BaseSalary     *decimal.Decimal `json:"base_salary"`
	SalaryCurrency string           `json:"salary_currency"`
	WorkLatitude   *float64         `json:"work_latitude"`
	WorkLongitude  *float64         `json:"work_longitude"`
	WorkRadius     *float64         `json:"work_radius"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	errs = append(errs, validateWorkLocation(r.WorkLatitude, r.WorkLongitude, r.WorkRadius)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID               string           `json:"-"`
	FullName         *string          `json:"full_name"`
	Position         *string          `json:"position"`
	BranchID         *string          `json:"branch_id"`
	BaseSalary       *decimal.Decimal `json:"base_salary"`
	SalaryCurrency   *string          `json:"salary_currency"`
	WorkLatitude     *float64         `json:"work_latitude"`
	WorkLongitude    *float64         `json:"work_longitude"`
	WorkRadius       *float64         `json:"work_radius"`
	AnnualBalance    *int             `json:"annual_balance"`
	EmergencyBalance *int             `json:"emergency_balance"`
	IsActive         *bool            `json:"is_active"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if r.AnnualBalance != nil && *r.AnnualBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_balance",
			Message: "annual_balance must not be negative",
		})
	}

	if r.EmergencyBalance != nil && *r.EmergencyBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "emergency_balance",
			Message: "emergency_balance must not be negative",
		})
	}

	errs = append(errs, validateWorkLocation(r.WorkLatitude, r.WorkLongitude, r.WorkRadius)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateWorkLocation(lat, lon, radius *float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if lat != nil && !validator.IsValidLatitude(*lat) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_latitude",
			Message: "work_latitude must be between -90 and 90",
		})
	}
	if lon != nil && !validator.IsValidLongitude(*lon) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_longitude",
			Message: "work_longitude must be between -180 and 180",
		})
	}
	if radius != nil && *radius <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "work_radius",
			Message: "work_radius must be positive",
		})
	}
	return errs
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	FullName         string          `json:"full_name"`
	Email            string          `json:"email"`
	Position         *string         `json:"position,omitempty"`
	BranchID         *string         `json:"branch_id,omitempty"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	SalaryCurrency   string          `json:"salary_currency"`
	AnnualBalance    int             `json:"annual_balance"`
	EmergencyBalance int             `json:"emergency_balance"`
	WorkLatitude     *float64        `json:"work_latitude,omitempty"`
	WorkLongitude    *float64        `json:"work_longitude,omitempty"`
	WorkRadius       *float64        `json:"work_radius,omitempty"`
	IsActive         bool            `json:"is_active"`
}
