package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context, filter DepartmentFilter) ([]Department, int64, error)
	ListActive(ctx context.Context, limit int) ([]Department, error)
	Create(ctx context.Context, dept Department) (Department, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (Department, error)
	Delete(ctx context.Context, id string) error
	CountEmployees(ctx context.Context, id string) (int64, error)
	Statistics(ctx context.Context, id string, recentHireDays int) (StatisticsResponse, error)
}
