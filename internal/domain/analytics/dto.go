package analytics

import (
	"github.com/emscorp/ems-backend-go/internal/domain/department"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// OverviewResponse is the organization-wide analytics payload. Every value
// is computed freshly from current storage state; nothing here is cached.
type OverviewResponse struct {
	TotalEmployees         int64            `json:"total_employees"`
	ActiveEmployees        int64            `json:"active_employees"`
	TotalDepartments       int64            `json:"total_departments"`
	AverageSalary          decimal.Decimal  `json:"average_salary"`
	TotalPayroll           decimal.Decimal  `json:"total_payroll"`
	AttendanceRate         float64          `json:"attendance_rate"`
	PerformanceAverage     float64          `json:"performance_average"`
	DepartmentDistribution map[string]int64 `json:"department_distribution"`
	PositionDistribution   map[string]int64 `json:"position_distribution"`
	RecentHires            int64            `json:"recent_hires"`
	TurnoverRate           float64          `json:"turnover_rate"`
}

// DashboardResponse is the summarized payload behind the main dashboard.
type DashboardResponse struct {
	TodayDate       string                          `json:"today_date"`
	TotalEmployees  int64                           `json:"total_employees"`
	TodayPresent    int64                           `json:"today_present"`
	TodayAbsent     int64                           `json:"today_absent"`
	RecentHires     int64                           `json:"recent_hires"`
	UpcomingReviews int64                           `json:"upcoming_reviews"`
	RecentEmployees []employee.EmployeeResponse     `json:"recent_employees"`
	Departments     []department.DepartmentResponse `json:"departments"`
}

// Windows used by the aggregator. Kept as constants so the handlers, the
// repository queries and the tests agree on the trailing spans.
const (
	AttendanceWindowDays  = 30
	PerformanceWindowDays = 365
	RecentHireWindowDays  = 90
	DashboardHireDays     = 7
	UpcomingReviewDays    = 30
)

// TurnoverRate is a placeholder carried over from the previous system; a
// real figure would be derived from termination records.
const TurnoverRate = 5.2
