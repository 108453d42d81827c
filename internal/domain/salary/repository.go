package salary

import "context"

type SalaryRepository interface {
	GetByID(ctx context.Context, id string) (Salary, error)
	List(ctx context.Context, filter SalaryFilter) ([]Salary, int64, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Salary, error)
	CurrentByEmployee(ctx context.Context, employeeID string) (Salary, error)
	Create(ctx context.Context, record Salary) (Salary, error)
	Update(ctx context.Context, id string, req UpdateSalaryRequest) (Salary, error)
	Delete(ctx context.Context, id string) error
	Trends(ctx context.Context, recentDays int) (TrendsResponse, error)
}
