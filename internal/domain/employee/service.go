package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (DetailResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	ListByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)
	AttendanceSummary(ctx context.Context, id string) (AttendanceSummaryResponse, error)
}
