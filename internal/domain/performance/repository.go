package performance

import "context"

type PerformanceRepository interface {
	GetByID(ctx context.Context, id string) (Performance, error)
	List(ctx context.Context, filter PerformanceFilter) ([]Performance, int64, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Performance, error)
	LatestByEmployee(ctx context.Context, employeeID string) (Performance, error)
	Create(ctx context.Context, review Performance) (Performance, error)
	Update(ctx context.Context, id string, req UpdatePerformanceRequest) (Performance, error)
	Delete(ctx context.Context, id string) error
	Analytics(ctx context.Context) (AnalyticsResponse, error)
}
