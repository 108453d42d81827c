package salary

import "errors"

var (
	ErrSalaryNotFound    = errors.New("salary record not found")
	ErrInvalidSalaryType = errors.New("invalid salary type")
	ErrInvalidBaseSalary = errors.New("base salary must be a positive amount")
)
