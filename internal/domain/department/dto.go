package department

import (
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateDepartmentRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ManagerID   *string          `json:"manager_id,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
}

func (r *CreateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Budget != nil && r.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: "budget must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDepartmentRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	ManagerID   *string          `json:"manager_id,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Budget != nil && r.Budget.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "budget",
			Message: "budget must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentFilter struct {
	IsActive *bool
	Search   *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type DepartmentResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	ManagerID     *string         `json:"manager_id,omitempty"`
	ManagerName   *string         `json:"manager_name,omitempty"`
	Budget        decimal.Decimal `json:"budget"`
	EmployeeCount int64           `json:"employee_count"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type ListDepartmentsResponse struct {
	Data       []DepartmentResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

type PositionCount struct {
	Position string `json:"position"`
	Count    int64  `json:"count"`
}

// StatisticsResponse summarizes a single department's active workforce.
type StatisticsResponse struct {
	TotalEmployees int64           `json:"total_employees"`
	AverageSalary  decimal.Decimal `json:"average_salary"`
	Positions      []PositionCount `json:"positions"`
	RecentHires    int64           `json:"recent_hires"`
}
