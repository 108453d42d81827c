package performance

import (
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
)

type CreatePerformanceRequest struct {
	EmployeeID        string  `json:"employee_id"`
	ReviewerID        *string `json:"reviewer_id,omitempty"`
	ReviewPeriodStart string  `json:"review_period_start"`
	ReviewPeriodEnd   string  `json:"review_period_end"`
	TechnicalSkills   int     `json:"technical_skills"`
	Communication     int     `json:"communication"`
	Teamwork          int     `json:"teamwork"`
	Leadership        int     `json:"leadership"`
	GoalsAchieved     int     `json:"goals_achieved"`
	Feedback          string  `json:"feedback"`
}

func ratingInRange(r int) bool { return r >= 1 && r <= 5 }

func (r *CreatePerformanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, okStart := validator.IsValidDate(r.ReviewPeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_start",
			Message: "review_period_start must be in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.ReviewPeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_end",
			Message: "review_period_end must be in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && !end.After(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_end",
			Message: "review_period_end must be after review_period_start",
		})
	}

	ratings := map[string]int{
		"technical_skills": r.TechnicalSkills,
		"communication":    r.Communication,
		"teamwork":         r.Teamwork,
		"leadership":       r.Leadership,
	}
	for field, rating := range ratings {
		if !ratingInRange(rating) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be between 1 and 5",
			})
		}
	}

	if r.GoalsAchieved < 0 || r.GoalsAchieved > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "goals_achieved",
			Message: "goals_achieved must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePerformanceRequest struct {
	ReviewerID        *string `json:"reviewer_id,omitempty"`
	ReviewPeriodStart *string `json:"review_period_start,omitempty"`
	ReviewPeriodEnd   *string `json:"review_period_end,omitempty"`
	TechnicalSkills   *int    `json:"technical_skills,omitempty"`
	Communication     *int    `json:"communication,omitempty"`
	Teamwork          *int    `json:"teamwork,omitempty"`
	Leadership        *int    `json:"leadership,omitempty"`
	GoalsAchieved     *int    `json:"goals_achieved,omitempty"`
	Feedback          *string `json:"feedback,omitempty"`
}

func (r *UpdatePerformanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ReviewPeriodStart != nil {
		if _, ok := validator.IsValidDate(*r.ReviewPeriodStart); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "review_period_start",
				Message: "review_period_start must be in YYYY-MM-DD format",
			})
		}
	}
	if r.ReviewPeriodEnd != nil {
		if _, ok := validator.IsValidDate(*r.ReviewPeriodEnd); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "review_period_end",
				Message: "review_period_end must be in YYYY-MM-DD format",
			})
		}
	}

	ratings := map[string]*int{
		"technical_skills": r.TechnicalSkills,
		"communication":    r.Communication,
		"teamwork":         r.Teamwork,
		"leadership":       r.Leadership,
	}
	for field, rating := range ratings {
		if rating != nil && !ratingInRange(*rating) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be between 1 and 5",
			})
		}
	}

	if r.GoalsAchieved != nil && (*r.GoalsAchieved < 0 || *r.GoalsAchieved > 100) {
		errs = append(errs, validator.ValidationError{
			Field:   "goals_achieved",
			Message: "goals_achieved must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PerformanceFilter struct {
	EmployeeID *string
	ReviewerID *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type PerformanceResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	EmployeeCode      *string `json:"employee_code,omitempty"`
	ReviewerID        *string `json:"reviewer_id,omitempty"`
	ReviewerName      *string `json:"reviewer_name,omitempty"`
	ReviewPeriodStart string  `json:"review_period_start"`
	ReviewPeriodEnd   string  `json:"review_period_end"`
	TechnicalSkills   int     `json:"technical_skills"`
	Communication     int     `json:"communication"`
	Teamwork          int     `json:"teamwork"`
	Leadership        int     `json:"leadership"`
	OverallRating     float64 `json:"overall_rating"`
	GoalsAchieved     int     `json:"goals_achieved"`
	Feedback          string  `json:"feedback"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type ListPerformanceResponse struct {
	Data       []PerformanceResponse `json:"data"`
	TotalCount int64                 `json:"total_count"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
}

// RatingDistribution buckets reviews by technical skills score.
type RatingDistribution struct {
	Excellent int64 `json:"excellent"` // >= 4.5
	Good      int64 `json:"good"`      // >= 3.5, < 4.5
	Average   int64 `json:"average"`   // >= 2.5, < 3.5
	Poor      int64 `json:"poor"`      // < 2.5
}

type DepartmentPerformance struct {
	DepartmentName string  `json:"department_name"`
	AverageRating  float64 `json:"average_rating"`
	ReviewCount    int64   `json:"review_count"`
}

// AnalyticsResponse mirrors the historical review analytics payload. The
// average here is computed over technical_skills only even though the
// field is named average_overall_rating; see the trends documentation
// before changing it.
type AnalyticsResponse struct {
	TotalReviews          int64                   `json:"total_reviews"`
	AverageOverallRating  float64                 `json:"average_overall_rating"`
	RatingDistribution    RatingDistribution      `json:"rating_distribution"`
	DepartmentPerformance []DepartmentPerformance `json:"department_performance"`
}
