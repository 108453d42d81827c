package employee

import (
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeID   string          `json:"employee_id"`
	UserID       *string         `json:"user_id,omitempty"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone,omitempty"`
	DepartmentID string          `json:"department_id"`
	Position     string          `json:"position"`
	HireDate     string          `json:"hire_date"`
	BirthDate    *string         `json:"birth_date,omitempty"`
	Salary       decimal.Decimal `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}
	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if r.Position != "" && !Position(r.Position).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of the known position codes",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}
	if r.BirthDate != nil {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}
	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is a partial update: nil fields are left untouched.
type UpdateEmployeeRequest struct {
	FirstName    *string          `json:"first_name,omitempty"`
	LastName     *string          `json:"last_name,omitempty"`
	Email        *string          `json:"email,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	DepartmentID *string          `json:"department_id,omitempty"`
	Position     *string          `json:"position,omitempty"`
	HireDate     *string          `json:"hire_date,omitempty"`
	BirthDate    *string          `json:"birth_date,omitempty"`
	Salary       *decimal.Decimal `json:"salary,omitempty"`
	IsActive     *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}
	if r.Position != nil && !Position(*r.Position).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must be one of the known position codes",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Salary != nil && !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	DepartmentID *string
	Position     *string
	IsActive     *bool
	Search       *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type EmployeeResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	UserID         *string         `json:"user_id,omitempty"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Phone          *string         `json:"phone,omitempty"`
	DepartmentID   string          `json:"department_id"`
	DepartmentName *string         `json:"department_name,omitempty"`
	Position       string          `json:"position"`
	PositionLabel  string          `json:"position_label"`
	HireDate       string          `json:"hire_date"`
	BirthDate      *string         `json:"birth_date,omitempty"`
	Salary         decimal.Decimal `json:"salary"`
	YearsOfService int             `json:"years_of_service"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type ListEmployeesResponse struct {
	Data       []EmployeeResponse `json:"data"`
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// AttendanceSummaryResponse aggregates an employee's attendance over a
// trailing window (30 days by default).
type AttendanceSummaryResponse struct {
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	AbsentDays     int     `json:"absent_days"`
	LateDays       int     `json:"late_days"`
	AttendanceRate float64 `json:"attendance_rate"`
}
