package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/attendance"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubEmployeeRepo struct {
	active []employee.Employee
	err    error
}

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *stubEmployeeRepo) ListActive(ctx context.Context) ([]employee.Employee, error) {
	return r.active, r.err
}

func (r *stubEmployeeRepo) ListActiveByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	return nil, errors.New("not implemented")
}

func (r *stubEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (r *stubEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, errors.New("not implemented")
}

func (r *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func (r *stubEmployeeRepo) AttendanceSummary(ctx context.Context, id string, days int) (employee.AttendanceSummaryResponse, error) {
	return employee.AttendanceSummaryResponse{}, errors.New("not implemented")
}

type stubAttendanceRepo struct {
	records []attendance.Attendance
	err     error
}

func (r *stubAttendanceRepo) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *stubAttendanceRepo) ListByEmployeeSince(ctx context.Context, employeeID string, since time.Time) ([]attendance.Attendance, error) {
	return nil, errors.New("not implemented")
}

func (r *stubAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	return nil, errors.New("not implemented")
}

func (r *stubAttendanceRepo) ListSince(ctx context.Context, since time.Time) ([]attendance.Attendance, error) {
	return r.records, r.err
}

func (r *stubAttendanceRepo) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	return attendance.Attendance{}, errors.New("not implemented")
}

func (r *stubAttendanceRepo) Update(ctx context.Context, id string, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	return attendance.Attendance{}, errors.New("not implemented")
}

func (r *stubAttendanceRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

func (r *stubAttendanceRepo) CountByStatusOnDate(ctx context.Context, date time.Time) (present, absent, late, onLeave int64, err error) {
	return 0, 0, 0, 0, errors.New("not implemented")
}

func testEmployees() []employee.Employee {
	engineering := "Engineering"
	return []employee.Employee{
		{
			EmployeeID:     "EMP001",
			FirstName:      "Ada",
			LastName:       "Lovelace",
			Email:          "ada@example.com",
			DepartmentName: &engineering,
			Position:       employee.PositionSenior,
			HireDate:       time.Now().AddDate(-2, 0, -10),
			Salary:         decimal.NewFromInt(90000),
		},
		{
			EmployeeID: "EMP002",
			FirstName:  "Grace",
			LastName:   "Hopper",
			Email:      "grace@example.com",
			Position:   employee.PositionLead,
			HireDate:   time.Now().AddDate(0, -3, 0),
			Salary:     decimal.NewFromFloat(120000.50),
		},
	}
}

func TestExportEmployeesCSV(t *testing.T) {
	svc := NewExportService(&stubEmployeeRepo{active: testEmployees()}, &stubAttendanceRepo{})

	var buf bytes.Buffer
	meta, err := svc.Export(context.Background(), DatasetEmployees, FormatCSV, &buf)
	require.NoError(t, err)

	assert.Equal(t, "text/csv", meta.ContentType)
	assert.Equal(t, fmt.Sprintf("employees_%s.csv", time.Now().Format("20060102")), meta.Filename)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, []string{
		"EMP001", "Ada Lovelace", "ada@example.com", "Engineering",
		"Senior Developer", testEmployees()[0].HireDate.Format("2006-01-02"), "2", "90000.00",
	}, rows[1])
	// Missing department renders as an empty cell.
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "120000.50", rows[2][7])
}

func TestExportAttendanceCSV(t *testing.T) {
	name := "Ada Lovelace"
	checkIn := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 8, 10, 17, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{
			EmployeeName:  &name,
			Date:          time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
			CheckInTime:   &checkIn,
			CheckOutTime:  &checkOut,
			BreakDuration: 60,
			Status:        attendance.StatusPresent,
		},
		{
			Date:   time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC),
			Status: attendance.StatusSickLeave,
		},
	}
	svc := NewExportService(&stubEmployeeRepo{}, &stubAttendanceRepo{records: records})

	var buf bytes.Buffer
	meta, err := svc.Export(context.Background(), DatasetAttendance, FormatCSV, &buf)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", meta.ContentType)

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Ada Lovelace", "2026-08-10", "2026-08-10T09:00:00Z", "2026-08-10T17:00:00Z",
		"60", "7.00", "Present",
	}, rows[1])
	assert.Equal(t, []string{"", "2026-08-11", "", "", "0", "0.00", "Sick Leave"}, rows[2])
}

func TestExportEmployeesExcel(t *testing.T) {
	svc := NewExportService(&stubEmployeeRepo{active: testEmployees()}, &stubAttendanceRepo{})

	var buf bytes.Buffer
	meta, err := svc.Export(context.Background(), DatasetEmployees, FormatExcel, &buf)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", meta.ContentType)

	workbook, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows("Employees")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, "EMP001", rows[1][0])
	assert.Equal(t, "Grace Hopper", rows[2][1])
}

func TestExportUnknownDataset(t *testing.T) {
	svc := NewExportService(&stubEmployeeRepo{}, &stubAttendanceRepo{})

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), Dataset("payroll"), FormatCSV, &buf)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "type")
	assert.Zero(t, buf.Len())
}

func TestExportUnknownFormat(t *testing.T) {
	svc := NewExportService(&stubEmployeeRepo{active: testEmployees()}, &stubAttendanceRepo{})

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), DatasetEmployees, Format("pdf"), &buf)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "format")
}

func TestExportRepositoryError(t *testing.T) {
	boom := errors.New("connection lost")
	svc := NewExportService(&stubEmployeeRepo{err: boom}, &stubAttendanceRepo{})

	var buf bytes.Buffer
	_, err := svc.Export(context.Background(), DatasetEmployees, FormatCSV, &buf)
	assert.ErrorIs(t, err, boom)
}
