package analytics

import (
	"context"
	"math"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/analytics"
	"github.com/emscorp/ems-backend-go/internal/domain/attendance"
	"github.com/emscorp/ems-backend-go/internal/domain/department"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
)

const dashboardListLimit = 5

type AnalyticsServiceImpl struct {
	analyticsRepo  analytics.AnalyticsRepository
	attendanceRepo attendance.AttendanceRepository
	departmentRepo department.DepartmentRepository
}

func NewAnalyticsService(
	analyticsRepo analytics.AnalyticsRepository,
	attendanceRepo attendance.AttendanceRepository,
	departmentRepo department.DepartmentRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		analyticsRepo:  analyticsRepo,
		attendanceRepo: attendanceRepo,
		departmentRepo: departmentRepo,
	}
}

// Overview implements analytics.AnalyticsService. Every figure is computed
// from current storage state on each call.
func (s *AnalyticsServiceImpl) Overview(ctx context.Context) (analytics.OverviewResponse, error) {
	var result analytics.OverviewResponse

	activeEmployees, err := s.analyticsRepo.CountActiveEmployees(ctx)
	if err != nil {
		return analytics.OverviewResponse{}, err
	}
	result.TotalEmployees = activeEmployees
	result.ActiveEmployees = activeEmployees

	result.TotalDepartments, err = s.analyticsRepo.CountActiveDepartments(ctx)
	if err != nil {
		return analytics.OverviewResponse{}, err
	}

	result.AverageSalary, result.TotalPayroll, err = s.analyticsRepo.SalaryStats(ctx)
	if err != nil {
		return analytics.OverviewResponse{}, err
	}

	now := time.Now()

	rate, err := s.analyticsRepo.AttendanceRate(ctx, now.AddDate(0, 0, -analytics.AttendanceWindowDays))
	if err != nil {
		return analytics.OverviewResponse{}, err
	}
	result.AttendanceRate = math.Round(rate*100) / 100

	avg, err := s.analyticsRepo.PerformanceAverage(ctx, now.AddDate(0, 0, -analytics.PerformanceWindowDays))
	if err != nil {
		return analytics.OverviewResponse{}, err
	}
	result.PerformanceAverage = math.Round(avg*100) / 100

	result.DepartmentDistribution, err = s.analyticsRepo.DepartmentDistribution(ctx)
	if err != nil {
		return analytics.OverviewResponse{}, err
	}

	result.PositionDistribution, err = s.analyticsRepo.PositionDistribution(ctx)
	if err != nil {
		return analytics.OverviewResponse{}, err
	}

	result.RecentHires, err = s.analyticsRepo.CountRecentHires(ctx, now.AddDate(0, 0, -analytics.RecentHireWindowDays))
	if err != nil {
		return analytics.OverviewResponse{}, err
	}

	result.TurnoverRate = analytics.TurnoverRate

	return result, nil
}

// Dashboard implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) Dashboard(ctx context.Context) (analytics.DashboardResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var result analytics.DashboardResponse
	result.TodayDate = today.Format("2006-01-02")

	var err error
	result.TotalEmployees, err = s.analyticsRepo.CountActiveEmployees(ctx)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	present, absent, _, _, err := s.attendanceRepo.CountByStatusOnDate(ctx, today)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}
	result.TodayPresent = present
	result.TodayAbsent = absent

	hireSince := now.AddDate(0, 0, -analytics.DashboardHireDays)
	result.RecentHires, err = s.analyticsRepo.CountRecentHires(ctx, hireSince)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	result.UpcomingReviews, err = s.analyticsRepo.CountUpcomingReviews(ctx, today, today.AddDate(0, 0, analytics.UpcomingReviewDays))
	if err != nil {
		return analytics.DashboardResponse{}, err
	}

	recent, err := s.analyticsRepo.RecentEmployees(ctx, hireSince, dashboardListLimit)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}
	result.RecentEmployees = make([]employee.EmployeeResponse, 0, len(recent))
	for _, e := range recent {
		result.RecentEmployees = append(result.RecentEmployees, employee.NewEmployeeResponse(e))
	}

	departments, err := s.departmentRepo.ListActive(ctx, dashboardListLimit)
	if err != nil {
		return analytics.DashboardResponse{}, err
	}
	result.Departments = make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		result.Departments = append(result.Departments, department.NewDepartmentResponse(d))
	}

	return result, nil
}
