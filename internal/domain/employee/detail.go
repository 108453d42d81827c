package employee

import (
	"github.com/emscorp/ems-backend-go/internal/domain/attendance"
	"github.com/emscorp/ems-backend-go/internal/domain/performance"
	"github.com/emscorp/ems-backend-go/internal/domain/salary"
)

// DetailResponse is the single-employee payload. On top of the list item
// it carries the last week of attendance, the most recent review and the
// current salary record, when those exist.
type DetailResponse struct {
	EmployeeResponse
	RecentAttendance []attendance.AttendanceResponse  `json:"recent_attendance"`
	LatestReview     *performance.PerformanceResponse `json:"latest_review,omitempty"`
	CurrentSalary    *salary.SalaryResponse           `json:"current_salary,omitempty"`
}

// RecentAttendanceDays is the trailing window embedded in DetailResponse.
const RecentAttendanceDays = 7
