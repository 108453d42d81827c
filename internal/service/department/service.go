package department

import (
	"context"
	"fmt"

	"github.com/emscorp/ems-backend-go/internal/domain/analytics"
	"github.com/emscorp/ems-backend-go/internal/domain/department"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/emscorp/ems-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type DepartmentServiceImpl struct {
	db             *database.DB
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(db *database.DB, departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		db:             db,
		departmentRepo: departmentRepo,
	}
}

// Create implements department.DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	budget := decimal.Zero
	if req.Budget != nil {
		budget = *req.Budget
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		Budget:      budget,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.NewDepartmentResponse(created), nil
}

// GetByID implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.NewDepartmentResponse(d), nil
}

// List implements department.DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context, filter department.DepartmentFilter) (department.ListDepartmentsResponse, error) {
	normalizePagination(&filter.Page, &filter.Limit)

	departments, total, err := s.departmentRepo.List(ctx, filter)
	if err != nil {
		return department.ListDepartmentsResponse{}, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.NewDepartmentResponse(d))
	}

	return department.ListDepartmentsResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements department.DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	updated, err := s.departmentRepo.Update(ctx, id, req)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return department.NewDepartmentResponse(updated), nil
}

// Delete implements department.DepartmentService. The existence check and
// the delete run in one transaction so a concurrent hire cannot slip
// between them.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		count, err := s.departmentRepo.CountEmployees(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to count department members: %w", err)
		}
		if count > 0 {
			return department.ErrDepartmentHasEmployees
		}

		return s.departmentRepo.Delete(txCtx, id)
	})
}

// Statistics implements department.DepartmentService.
func (s *DepartmentServiceImpl) Statistics(ctx context.Context, id string) (department.StatisticsResponse, error) {
	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return department.StatisticsResponse{}, err
	}

	return s.departmentRepo.Statistics(ctx, id, analytics.RecentHireWindowDays)
}

func normalizePagination(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 || *limit > 100 {
		*limit = 20
	}
}
