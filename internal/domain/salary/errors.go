package salary

import "errors"

var (
	ErrSalaryNotFound      = errors.New("salary record not found")
	ErrSalaryAlreadyExists = errors.New("salary record already exists for this period")
)
