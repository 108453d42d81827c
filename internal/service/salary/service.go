package salary

import (
	"context"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/analytics"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/domain/salary"
)

type SalaryServiceImpl struct {
	salaryRepo   salary.SalaryRepository
	employeeRepo employee.EmployeeRepository
}

func NewSalaryService(salaryRepo salary.SalaryRepository, employeeRepo employee.EmployeeRepository) salary.SalaryService {
	return &SalaryServiceImpl{
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements salary.SalaryService.
func (s *SalaryServiceImpl) Create(ctx context.Context, req salary.CreateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return salary.SalaryResponse{}, err
	}

	effectiveDate, _ := time.Parse("2006-01-02", req.EffectiveDate)

	salaryType := salary.TypeInitial
	if req.SalaryType != "" {
		salaryType = salary.Type(req.SalaryType)
	}

	created, err := s.salaryRepo.Create(ctx, salary.Salary{
		EmployeeID:    req.EmployeeID,
		EffectiveDate: effectiveDate,
		BaseSalary:    req.BaseSalary,
		Allowances:    req.Allowances,
		Deductions:    req.Deductions,
		Bonus:         req.Bonus,
		SalaryType:    salaryType,
		Reason:        req.Reason,
		ApprovedBy:    req.ApprovedBy,
	})
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return salary.NewSalaryResponse(created), nil
}

// GetByID implements salary.SalaryService.
func (s *SalaryServiceImpl) GetByID(ctx context.Context, id string) (salary.SalaryResponse, error) {
	record, err := s.salaryRepo.GetByID(ctx, id)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return salary.NewSalaryResponse(record), nil
}

// List implements salary.SalaryService.
func (s *SalaryServiceImpl) List(ctx context.Context, filter salary.SalaryFilter) (salary.ListSalaryResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return salary.ListSalaryResponse{}, err
	}

	responses := make([]salary.SalaryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, salary.NewSalaryResponse(record))
	}

	return salary.ListSalaryResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements salary.SalaryService.
func (s *SalaryServiceImpl) Update(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.SalaryResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.SalaryResponse{}, err
	}

	updated, err := s.salaryRepo.Update(ctx, id, req)
	if err != nil {
		return salary.SalaryResponse{}, err
	}

	return salary.NewSalaryResponse(updated), nil
}

// Delete implements salary.SalaryService.
func (s *SalaryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.salaryRepo.Delete(ctx, id)
}

// ListByEmployee implements salary.SalaryService.
func (s *SalaryServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]salary.SalaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.salaryRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]salary.SalaryResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, salary.NewSalaryResponse(record))
	}

	return responses, nil
}

// Trends implements salary.SalaryService.
func (s *SalaryServiceImpl) Trends(ctx context.Context) (salary.TrendsResponse, error) {
	return s.salaryRepo.Trends(ctx, analytics.RecentHireWindowDays)
}
