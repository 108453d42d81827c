package performance

import "context"

type PerformanceService interface {
	Create(ctx context.Context, req CreatePerformanceRequest) (PerformanceResponse, error)
	GetByID(ctx context.Context, id string) (PerformanceResponse, error)
	List(ctx context.Context, filter PerformanceFilter) (ListPerformanceResponse, error)
	Update(ctx context.Context, id string, req UpdatePerformanceRequest) (PerformanceResponse, error)
	Delete(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]PerformanceResponse, error)
	Analytics(ctx context.Context) (AnalyticsResponse, error)
}
