package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrEmployeeIDExists  = errors.New("employee ID already exists")
	ErrEmailExists       = errors.New("email already registered")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrInvalidSalary     = errors.New("salary must be a positive amount")
	ErrDepartmentMissing = errors.New("department is required")
)
