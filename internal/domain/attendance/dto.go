package attendance

import (
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Date          string  `json:"date"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	BreakDuration int     `json:"break_duration"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must not be negative",
		})
	}
	if r.Status != "" && !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of the known attendance statuses",
		})
	}

	var checkIn, checkOut string
	if r.CheckInTime != nil {
		checkIn = *r.CheckInTime
		if _, ok := validator.IsValidDateTime(checkIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an ISO8601 timestamp",
			})
		}
	}
	if r.CheckOutTime != nil {
		checkOut = *r.CheckOutTime
		if _, ok := validator.IsValidDateTime(checkOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be an ISO8601 timestamp",
			})
		}
	}
	// Ordering is only enforced on the input path. Storage accepts what
	// it is given.
	if checkIn != "" && checkOut != "" {
		in, okIn := validator.IsValidDateTime(checkIn)
		out, okOut := validator.IsValidDateTime(checkOut)
		if okIn && okOut && !out.After(in) {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be after check_in_time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	BreakDuration *int    `json:"break_duration,omitempty"`
	Status        *string `json:"status,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.BreakDuration != nil && *r.BreakDuration < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_duration",
			Message: "break_duration must not be negative",
		})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of the known attendance statuses",
		})
	}
	if r.CheckInTime != nil && *r.CheckInTime != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in_time",
				Message: "check_in_time must be an ISO8601 timestamp",
			})
		}
	}
	if r.CheckOutTime != nil && *r.CheckOutTime != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out_time",
				Message: "check_out_time must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	DateFrom   *string
	DateTo     *string

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

type AttendanceResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeCode  *string `json:"employee_code,omitempty"`
	Date          string  `json:"date"`
	CheckInTime   *string `json:"check_in_time,omitempty"`
	CheckOutTime  *string `json:"check_out_time,omitempty"`
	BreakDuration int     `json:"break_duration"`
	HoursWorked   float64 `json:"hours_worked"`
	Status        string  `json:"status"`
	StatusLabel   string  `json:"status_label"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type ListAttendanceResponse struct {
	Data       []AttendanceResponse `json:"data"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}

// DailyReportResponse summarizes a single day across the organization.
type DailyReportResponse struct {
	Date           string               `json:"date"`
	TotalEmployees int64                `json:"total_employees"`
	Present        int64                `json:"present"`
	Absent         int64                `json:"absent"`
	Late           int64                `json:"late"`
	OnLeave        int64                `json:"on_leave"`
	Records        []AttendanceResponse `json:"records"`
}
