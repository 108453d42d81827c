package analytics

import (
	"context"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// AnalyticsRepository exposes the aggregate queries behind the analytics
// and dashboard endpoints. All queries are read-only.
type AnalyticsRepository interface {
	CountActiveEmployees(ctx context.Context) (int64, error)
	CountActiveDepartments(ctx context.Context) (int64, error)
	SalaryStats(ctx context.Context) (avg, total decimal.Decimal, err error)
	AttendanceRate(ctx context.Context, since time.Time) (float64, error)
	PerformanceAverage(ctx context.Context, since time.Time) (float64, error)
	DepartmentDistribution(ctx context.Context) (map[string]int64, error)
	PositionDistribution(ctx context.Context) (map[string]int64, error)
	CountRecentHires(ctx context.Context, since time.Time) (int64, error)
	CountUpcomingReviews(ctx context.Context, from, to time.Time) (int64, error)
	RecentEmployees(ctx context.Context, since time.Time, limit int) ([]employee.Employee, error)
}
