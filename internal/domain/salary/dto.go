package salary

import (
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateSalaryRequest struct {
	EmployeeID    string          `json:"employee_id"`
	EffectiveDate string          `json:"effective_date"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
	Bonus         decimal.Decimal `json:"bonus"`
	SalaryType    string          `json:"salary_type"`
	Reason        string          `json:"reason"`
	ApprovedBy    *string         `json:"approved_by,omitempty"`
}

func (r *CreateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date must be in YYYY-MM-DD format",
		})
	}
	if !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be greater than zero",
		})
	}
	for field, amount := range map[string]decimal.Decimal{
		"allowances": r.Allowances,
		"deductions": r.Deductions,
		"bonus":      r.Bonus,
	} {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}
	if r.SalaryType != "" && !Type(r.SalaryType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be one of the known salary types",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSalaryRequest struct {
	EffectiveDate *string          `json:"effective_date,omitempty"`
	BaseSalary    *decimal.Decimal `json:"base_salary,omitempty"`
	Allowances    *decimal.Decimal `json:"allowances,omitempty"`
	Deductions    *decimal.Decimal `json:"deductions,omitempty"`
	Bonus         *decimal.Decimal `json:"bonus,omitempty"`
	SalaryType    *string          `json:"salary_type,omitempty"`
	Reason        *string          `json:"reason,omitempty"`
	ApprovedBy    *string          `json:"approved_by,omitempty"`
}

func (r *UpdateSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EffectiveDate != nil {
		if _, ok := validator.IsValidDate(*r.EffectiveDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_date",
				Message: "effective_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.BaseSalary != nil && !r.BaseSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be greater than zero",
		})
	}
	for field, amount := range map[string]*decimal.Decimal{
		"allowances": r.Allowances,
		"deductions": r.Deductions,
		"bonus":      r.Bonus,
	} {
		if amount != nil && amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must not be negative",
			})
		}
	}
	if r.SalaryType != nil && !Type(*r.SalaryType).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary_type",
			Message: "salary_type must be one of the known salary types",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SalaryFilter struct {
	EmployeeID *string
	SalaryType *string
	ApprovedBy *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type SalaryResponse struct {
	ID             string          `json:"id"`
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   *string         `json:"employee_name,omitempty"`
	EmployeeCode   *string         `json:"employee_code,omitempty"`
	EffectiveDate  string          `json:"effective_date"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	Allowances     decimal.Decimal `json:"allowances"`
	Deductions     decimal.Decimal `json:"deductions"`
	Bonus          decimal.Decimal `json:"bonus"`
	TotalSalary    decimal.Decimal `json:"total_salary"`
	SalaryType     string          `json:"salary_type"`
	SalaryTypeName string          `json:"salary_type_label"`
	Reason         string          `json:"reason,omitempty"`
	ApprovedBy     *string         `json:"approved_by,omitempty"`
	ApprovedByName *string         `json:"approved_by_name,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

type ListSalaryResponse struct {
	Data       []SalaryResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// SalaryDistribution buckets records by base salary.
type SalaryDistribution struct {
	Under50K  int64 `json:"under_50k"`
	K50To100  int64 `json:"50k_100k"`
	K100To150 int64 `json:"100k_150k"`
	Over150K  int64 `json:"over_150k"`
}

type PositionSalary struct {
	Position      string          `json:"position"`
	AverageSalary decimal.Decimal `json:"average_salary"`
	RecordCount   int64           `json:"record_count"`
}

type TrendsResponse struct {
	TotalRecords       int64              `json:"total_records"`
	AverageSalary      decimal.Decimal    `json:"average_salary"`
	SalaryByPosition   []PositionSalary   `json:"salary_by_position"`
	RecentChanges      int64              `json:"recent_changes"`
	SalaryDistribution SalaryDistribution `json:"salary_distribution"`
}
