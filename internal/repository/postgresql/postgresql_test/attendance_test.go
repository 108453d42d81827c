package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/attendance"
	"github.com/emscorp/ems-backend-go/internal/repository/postgresql"
	attendanceService "github.com/emscorp/ems-backend-go/internal/service/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAttendance(t *testing.T, repo attendance.AttendanceRepository, employeeID string, date time.Time, status attendance.Status) attendance.Attendance {
	t.Helper()
	created, err := repo.Create(context.Background(), attendance.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
	})
	require.NoError(t, err)
	return created
}

func TestAttendanceRepository_Create_DuplicateDate(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	dept := createDepartment(t, departmentRepo, "Engineering")
	emp := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	createAttendance(t, attendanceRepo, emp.ID, day, attendance.StatusPresent)

	_, err := attendanceRepo.Create(context.Background(), attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       day,
		Status:     attendance.StatusLate,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateDate)
}

func TestAttendanceRepository_CountByStatusOnDate(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	ctx := context.Background()

	dept := createDepartment(t, departmentRepo, "Engineering")
	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)

	statuses := []attendance.Status{
		attendance.StatusPresent, attendance.StatusPresent, attendance.StatusAbsent,
		attendance.StatusLate, attendance.StatusSickLeave, attendance.StatusVacation,
		attendance.StatusHoliday,
	}
	for i, status := range statuses {
		emp := createEmployee(t, employeeRepo, dept.ID,
			"EMP00"+string(rune('1'+i)),
			string(rune('a'+i))+"@example.com")
		createAttendance(t, attendanceRepo, emp.ID, day, status)
	}

	present, absent, late, onLeave, err := attendanceRepo.CountByStatusOnDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, int64(2), present)
	assert.Equal(t, int64(1), absent)
	assert.Equal(t, int64(1), late)
	assert.Equal(t, int64(3), onLeave)
}

// An employee without any attendance rows gets a zero summary, not a
// division error.
func TestEmployeeRepository_AttendanceSummary_NoRecords(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	dept := createDepartment(t, departmentRepo, "Engineering")
	emp := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	summary, err := employeeRepo.AttendanceSummary(context.Background(), emp.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 0, summary.PresentDays)
	assert.Equal(t, float64(0), summary.AttendanceRate)
}

func TestEmployeeRepository_AttendanceSummary(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	dept := createDepartment(t, departmentRepo, "Engineering")
	emp := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	createAttendance(t, attendanceRepo, emp.ID, today, attendance.StatusPresent)
	createAttendance(t, attendanceRepo, emp.ID, today.AddDate(0, 0, -1), attendance.StatusPresent)
	createAttendance(t, attendanceRepo, emp.ID, today.AddDate(0, 0, -2), attendance.StatusAbsent)
	createAttendance(t, attendanceRepo, emp.ID, today.AddDate(0, 0, -3), attendance.StatusLate)
	// Outside the 30 day window.
	createAttendance(t, attendanceRepo, emp.ID, today.AddDate(0, 0, -40), attendance.StatusPresent)

	summary, err := employeeRepo.AttendanceSummary(context.Background(), emp.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalDays)
	assert.Equal(t, 2, summary.PresentDays)
	assert.Equal(t, 1, summary.AbsentDays)
	assert.Equal(t, 1, summary.LateDays)
	assert.Equal(t, float64(50), summary.AttendanceRate)
}

// An empty window yields a zero rate, not a division error.
func TestAnalyticsRepository_AttendanceRate_EmptyWindow(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	analyticsRepo := postgresql.NewAnalyticsRepository(db)

	rate, err := analyticsRepo.AttendanceRate(context.Background(), time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, float64(0), rate)
}

func TestAnalyticsRepository_AttendanceRate(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	dept := createDepartment(t, departmentRepo, "Engineering")
	emp := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	today := time.Now().UTC().Truncate(24 * time.Hour)
	createAttendance(t, attendanceRepo, emp.ID, today, attendance.StatusPresent)
	createAttendance(t, attendanceRepo, emp.ID, today.AddDate(0, 0, -1), attendance.StatusAbsent)

	analyticsRepo := postgresql.NewAnalyticsRepository(db)
	rate, err := analyticsRepo.AttendanceRate(context.Background(), time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, float64(50), rate)
}

func TestAttendanceService_DailyReport(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	svc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	ctx := context.Background()

	dept := createDepartment(t, departmentRepo, "Engineering")
	emp := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")
	createEmployee(t, employeeRepo, dept.ID, "EMP002", "grace@example.com")

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	createAttendance(t, attendanceRepo, emp.ID, day, attendance.StatusPresent)

	report, err := svc.DailyReport(ctx, "2026-08-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-10", report.Date)
	assert.Equal(t, int64(2), report.TotalEmployees)
	assert.Equal(t, int64(1), report.Present)
	assert.Equal(t, int64(0), report.Absent)
	require.Len(t, report.Records, 1)
	assert.Equal(t, emp.ID, report.Records[0].EmployeeID)
}
