package export

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/analytics"
	"github.com/emscorp/ems-backend-go/internal/domain/attendance"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	exportpkg "github.com/emscorp/ems-backend-go/internal/pkg/export"
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
)

type Dataset string

const (
	DatasetEmployees  Dataset = "employees"
	DatasetAttendance Dataset = "attendance"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
)

// Meta describes the file produced by an export.
type Meta struct {
	Filename    string
	ContentType string
}

type Service interface {
	Export(ctx context.Context, dataset Dataset, format Format, w io.Writer) (Meta, error)
}

type ExportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewExportService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository) Service {
	return &ExportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// Export implements Service. The dataset is rendered fully in memory; the
// expected volumes are small enough that streaming is not worth it.
func (s *ExportServiceImpl) Export(ctx context.Context, dataset Dataset, format Format, w io.Writer) (Meta, error) {
	var table exportpkg.Table
	var err error

	switch dataset {
	case DatasetEmployees:
		table, err = s.employeeTable(ctx)
	case DatasetAttendance:
		table, err = s.attendanceTable(ctx)
	default:
		return Meta{}, validator.ValidationErrors{{
			Field:   "type",
			Message: "type must be employees or attendance",
		}}
	}
	if err != nil {
		return Meta{}, err
	}

	stamp := time.Now().Format("20060102")

	switch format {
	case FormatCSV:
		if err := exportpkg.WriteCSV(w, table); err != nil {
			return Meta{}, fmt.Errorf("failed to write csv: %w", err)
		}
		return Meta{
			Filename:    fmt.Sprintf("%s_%s.csv", dataset, stamp),
			ContentType: "text/csv",
		}, nil
	case FormatExcel:
		if err := exportpkg.WriteExcel(w, table); err != nil {
			return Meta{}, fmt.Errorf("failed to write workbook: %w", err)
		}
		return Meta{
			Filename:    fmt.Sprintf("%s_%s.xlsx", dataset, stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		}, nil
	default:
		return Meta{}, validator.ValidationErrors{{
			Field:   "format",
			Message: "format must be csv or excel",
		}}
	}
}

func (s *ExportServiceImpl) employeeTable(ctx context.Context) (exportpkg.Table, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return exportpkg.Table{}, err
	}

	table := exportpkg.Table{
		Name: "Employees",
		Headers: []string{
			"Employee ID", "Full Name", "Email", "Department", "Position",
			"Hire Date", "Years of Service", "Salary",
		},
	}

	now := time.Now()
	for _, e := range employees {
		departmentName := ""
		if e.DepartmentName != nil {
			departmentName = *e.DepartmentName
		}
		table.Rows = append(table.Rows, []string{
			e.EmployeeID,
			e.FullName(),
			e.Email,
			departmentName,
			e.Position.Label(),
			e.HireDate.Format("2006-01-02"),
			strconv.Itoa(e.YearsOfService(now)),
			e.Salary.StringFixed(2),
		})
	}

	return table, nil
}

func (s *ExportServiceImpl) attendanceTable(ctx context.Context) (exportpkg.Table, error) {
	since := time.Now().AddDate(0, 0, -analytics.AttendanceWindowDays)
	records, err := s.attendanceRepo.ListSince(ctx, since)
	if err != nil {
		return exportpkg.Table{}, err
	}

	table := exportpkg.Table{
		Name: "Attendance",
		Headers: []string{
			"Employee", "Date", "Check In", "Check Out", "Break (min)",
			"Hours Worked", "Status",
		},
	}

	for _, record := range records {
		employeeName := ""
		if record.EmployeeName != nil {
			employeeName = *record.EmployeeName
		}
		checkIn, checkOut := "", ""
		if record.CheckInTime != nil {
			checkIn = record.CheckInTime.Format(time.RFC3339)
		}
		if record.CheckOutTime != nil {
			checkOut = record.CheckOutTime.Format(time.RFC3339)
		}
		table.Rows = append(table.Rows, []string{
			employeeName,
			record.Date.Format("2006-01-02"),
			checkIn,
			checkOut,
			strconv.Itoa(record.BreakDuration),
			strconv.FormatFloat(record.HoursWorked(), 'f', 2, 64),
			record.Status.Label(),
		})
	}

	return table, nil
}
