package salary

import "context"

type SalaryService interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	GetByID(ctx context.Context, id string) (SalaryResponse, error)
	List(ctx context.Context, filter SalaryFilter) (ListSalaryResponse, error)
	Update(ctx context.Context, id string, req UpdateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, id string) error
	ListByEmployee(ctx context.Context, employeeID string) ([]SalaryResponse, error)
	Trends(ctx context.Context) (TrendsResponse, error)
}
