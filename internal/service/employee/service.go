package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/analytics"
	"github.com/emscorp/ems-backend-go/internal/domain/attendance"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/domain/performance"
	"github.com/emscorp/ems-backend-go/internal/domain/salary"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/emscorp/ems-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type EmployeeServiceImpl struct {
	db              *database.DB
	employeeRepo    employee.EmployeeRepository
	attendanceRepo  attendance.AttendanceRepository
	performanceRepo performance.PerformanceRepository
	salaryRepo      salary.SalaryRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	performanceRepo performance.PerformanceRepository,
	salaryRepo salary.SalaryRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:              db,
		employeeRepo:    employeeRepo,
		attendanceRepo:  attendanceRepo,
		performanceRepo: performanceRepo,
		salaryRepo:      salaryRepo,
	}
}

// Create implements employee.EmployeeService. Creation writes no salary
// history; only later salary changes do.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)
	var birthDate *time.Time
	if req.BirthDate != nil && *req.BirthDate != "" {
		parsed, _ := time.Parse("2006-01-02", *req.BirthDate)
		birthDate = &parsed
	}

	position := employee.PositionJunior
	if req.Position != "" {
		position = employee.Position(req.Position)
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeID:   req.EmployeeID,
		UserID:       req.UserID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DepartmentID: req.DepartmentID,
		Position:     position,
		HireDate:     hireDate,
		BirthDate:    birthDate,
		Salary:       req.Salary,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.DetailResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.DetailResponse{}, err
	}

	detail := employee.DetailResponse{
		EmployeeResponse: employee.NewEmployeeResponse(e),
		RecentAttendance: []attendance.AttendanceResponse{},
	}

	since := time.Now().AddDate(0, 0, -employee.RecentAttendanceDays)
	records, err := s.attendanceRepo.ListByEmployeeSince(ctx, id, since)
	if err != nil {
		return employee.DetailResponse{}, err
	}
	for _, record := range records {
		detail.RecentAttendance = append(detail.RecentAttendance, attendance.NewAttendanceResponse(record))
	}

	latest, err := s.performanceRepo.LatestByEmployee(ctx, id)
	switch {
	case err == nil:
		review := performance.NewPerformanceResponse(latest)
		detail.LatestReview = &review
	case !errors.Is(err, performance.ErrReviewNotFound):
		return employee.DetailResponse{}, err
	}

	current, err := s.salaryRepo.CurrentByEmployee(ctx, id)
	switch {
	case err == nil:
		record := salary.NewSalaryResponse(current)
		detail.CurrentSalary = &record
	case !errors.Is(err, salary.ErrSalaryNotFound):
		return employee.DetailResponse{}, err
	}

	return detail, nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}

	return employee.ListEmployeesResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements employee.EmployeeService. The read, the update and a
// possible salary history insert form one transaction: when the salary
// value changes, exactly one audit row is written alongside the update,
// and a failure of either rolls back both.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		existing, err := s.employeeRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		updated, err = s.employeeRepo.Update(txCtx, id, req)
		if err != nil {
			return err
		}

		if req.Salary == nil || existing.Salary.Equal(*req.Salary) {
			return nil
		}

		_, err = s.salaryRepo.Create(txCtx, salary.Salary{
			EmployeeID:    id,
			EffectiveDate: time.Now(),
			BaseSalary:    *req.Salary,
			SalaryType:    salary.TypeAdjustment,
			Reason:        salary.AuditReason,
		})
		if err != nil {
			return fmt.Errorf("failed to record salary change: %w", err)
		}

		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.NewEmployeeResponse(updated), nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// ListByDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, departmentID string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListActiveByDepartment(ctx, departmentID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.NewEmployeeResponse(e))
	}

	return responses, nil
}

// AttendanceSummary implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AttendanceSummary(ctx context.Context, id string) (employee.AttendanceSummaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, id); err != nil {
		return employee.AttendanceSummaryResponse{}, err
	}

	return s.employeeRepo.AttendanceSummary(ctx, id, analytics.AttendanceWindowDays)
}
