package performance

import (
	"context"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/domain/performance"
)

type PerformanceServiceImpl struct {
	performanceRepo performance.PerformanceRepository
	employeeRepo    employee.EmployeeRepository
}

func NewPerformanceService(performanceRepo performance.PerformanceRepository, employeeRepo employee.EmployeeRepository) performance.PerformanceService {
	return &PerformanceServiceImpl{
		performanceRepo: performanceRepo,
		employeeRepo:    employeeRepo,
	}
}

// Create implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req performance.CreatePerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return performance.PerformanceResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.ReviewPeriodStart)
	end, _ := time.Parse("2006-01-02", req.ReviewPeriodEnd)

	created, err := s.performanceRepo.Create(ctx, performance.Performance{
		EmployeeID:        req.EmployeeID,
		ReviewerID:        req.ReviewerID,
		ReviewPeriodStart: start,
		ReviewPeriodEnd:   end,
		TechnicalSkills:   req.TechnicalSkills,
		Communication:     req.Communication,
		Teamwork:          req.Teamwork,
		Leadership:        req.Leadership,
		GoalsAchieved:     req.GoalsAchieved,
		Feedback:          req.Feedback,
	})
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	return performance.NewPerformanceResponse(created), nil
}

// GetByID implements performance.PerformanceService.
func (s *PerformanceServiceImpl) GetByID(ctx context.Context, id string) (performance.PerformanceResponse, error) {
	review, err := s.performanceRepo.GetByID(ctx, id)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	return performance.NewPerformanceResponse(review), nil
}

// List implements performance.PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context, filter performance.PerformanceFilter) (performance.ListPerformanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	reviews, total, err := s.performanceRepo.List(ctx, filter)
	if err != nil {
		return performance.ListPerformanceResponse{}, err
	}

	responses := make([]performance.PerformanceResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, performance.NewPerformanceResponse(review))
	}

	return performance.ListPerformanceResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Update(ctx context.Context, id string, req performance.UpdatePerformanceRequest) (performance.PerformanceResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.PerformanceResponse{}, err
	}

	updated, err := s.performanceRepo.Update(ctx, id, req)
	if err != nil {
		return performance.PerformanceResponse{}, err
	}

	return performance.NewPerformanceResponse(updated), nil
}

// Delete implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.performanceRepo.Delete(ctx, id)
}

// ListByEmployee implements performance.PerformanceService.
func (s *PerformanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.PerformanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	reviews, err := s.performanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]performance.PerformanceResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, performance.NewPerformanceResponse(review))
	}

	return responses, nil
}

// Analytics implements performance.PerformanceService.
func (s *PerformanceServiceImpl) Analytics(ctx context.Context) (performance.AnalyticsResponse, error) {
	return s.performanceRepo.Analytics(ctx)
}
