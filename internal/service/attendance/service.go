package attendance

import (
	"context"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/attendance"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, employeeRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Create implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	var checkIn, checkOut *time.Time
	if req.CheckInTime != nil && *req.CheckInTime != "" {
		parsed, _ := validator.IsValidDateTime(*req.CheckInTime)
		checkIn = &parsed
	}
	if req.CheckOutTime != nil && *req.CheckOutTime != "" {
		parsed, _ := validator.IsValidDateTime(*req.CheckOutTime)
		checkOut = &parsed
	}

	status := attendance.StatusPresent
	if req.Status != "" {
		status = attendance.Status(req.Status)
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    req.EmployeeID,
		Date:          date,
		CheckInTime:   checkIn,
		CheckOutTime:  checkOut,
		BreakDuration: req.BreakDuration,
		Status:        status,
		Notes:         req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(created), nil
}

// GetByID implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(record), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}

	return attendance.ListAttendanceResponse{
		Data:       responses,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := s.attendanceRepo.Update(ctx, id, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// DailyReport implements attendance.AttendanceService. An empty date
// defaults to today.
func (s *AttendanceServiceImpl) DailyReport(ctx context.Context, date string) (attendance.DailyReportResponse, error) {
	day := time.Now()
	if date != "" {
		parsed, ok := validator.IsValidDate(date)
		if !ok {
			return attendance.DailyReportResponse{}, validator.ValidationErrors{{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			}}
		}
		day = parsed
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	present, absent, late, onLeave, err := s.attendanceRepo.CountByStatusOnDate(ctx, day)
	if err != nil {
		return attendance.DailyReportResponse{}, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, day)
	if err != nil {
		return attendance.DailyReportResponse{}, err
	}

	active, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return attendance.DailyReportResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}

	return attendance.DailyReportResponse{
		Date:           day.Format("2006-01-02"),
		TotalEmployees: int64(len(active)),
		Present:        present,
		Absent:         absent,
		Late:           late,
		OnLeave:        onLeave,
		Records:        responses,
	}, nil
}
