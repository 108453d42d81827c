package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/department"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/domain/salary"
	"github.com/emscorp/ems-backend-go/internal/repository/postgresql"
	departmentService "github.com/emscorp/ems-backend-go/internal/service/department"
	employeeService "github.com/emscorp/ems-backend-go/internal/service/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEmployee(t *testing.T, repo employee.EmployeeRepository, departmentID, code, email string) employee.Employee {
	t.Helper()
	created, err := repo.Create(context.Background(), employee.Employee{
		EmployeeID:   code,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		DepartmentID: departmentID,
		Position:     employee.PositionSenior,
		HireDate:     time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		Salary:       decimal.NewFromInt(90000),
	})
	require.NoError(t, err)
	return created
}

func TestEmployeeRepository_CreateAndGet(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	dept := createDepartment(t, departmentRepo, "Engineering")
	created := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")
	assert.True(t, created.IsActive)

	fetched, err := employeeRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", fetched.EmployeeID)
	require.NotNil(t, fetched.DepartmentName)
	assert.Equal(t, "Engineering", *fetched.DepartmentName)
}

func TestEmployeeRepository_Create_DuplicateEmployeeID(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	dept := createDepartment(t, departmentRepo, "Engineering")
	createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	_, err := employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeID:   "EMP001",
		FirstName:    "Grace",
		LastName:     "Hopper",
		Email:        "grace@example.com",
		DepartmentID: dept.ID,
		Position:     employee.PositionLead,
		HireDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Salary:       decimal.NewFromInt(110000),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestEmployeeRepository_Create_UnknownDepartment(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	_, err := employeeRepo.Create(context.Background(), employee.Employee{
		EmployeeID:   "EMP001",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		DepartmentID: missingID,
		Position:     employee.PositionSenior,
		HireDate:     time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		Salary:       decimal.NewFromInt(90000),
	})
	assert.ErrorIs(t, err, employee.ErrDepartmentMissing)
}

// EmployeeCount is recomputed on every department read and counts only
// active employees.
func TestDepartmentRepository_EmployeeCount_TracksActive(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	ctx := context.Background()

	dept := createDepartment(t, departmentRepo, "Engineering")
	created := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	fetched, err := departmentRepo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetched.EmployeeCount)

	isActive := false
	_, err = employeeRepo.Update(ctx, created.ID, employee.UpdateEmployeeRequest{IsActive: &isActive})
	require.NoError(t, err)

	fetched, err = departmentRepo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fetched.EmployeeCount)

	isActive = true
	_, err = employeeRepo.Update(ctx, created.ID, employee.UpdateEmployeeRequest{IsActive: &isActive})
	require.NoError(t, err)

	fetched, err = departmentRepo.GetByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fetched.EmployeeCount)
}

// Changing the salary through an employee update writes exactly one audit
// row; updates that leave the salary alone write none.
func TestEmployeeService_Update_SalaryAudit(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	svc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo, performanceRepo, salaryRepo)
	ctx := context.Background()

	dept := createDepartment(t, departmentRepo, "Engineering")
	created := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	newSalary := decimal.NewFromInt(95000)
	updated, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{Salary: &newSalary})
	require.NoError(t, err)
	assert.Equal(t, "95000", updated.Salary.String())

	history, err := salaryRepo.ListByEmployee(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, salary.TypeAdjustment, history[0].SalaryType)
	assert.Equal(t, salary.AuditReason, history[0].Reason)
	assert.True(t, history[0].BaseSalary.Equal(newSalary))
	assert.Nil(t, history[0].ApprovedBy)

	// Same value again: no second row.
	_, err = svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{Salary: &newSalary})
	require.NoError(t, err)

	history, err = salaryRepo.ListByEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)

	// A non-salary update stays silent too.
	phone := "+1-555-0100"
	_, err = svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{Phone: &phone})
	require.NoError(t, err)

	history, err = salaryRepo.ListByEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestDepartmentService_Delete_BlockedByEmployees(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	svc := departmentService.NewDepartmentService(db, departmentRepo)
	ctx := context.Background()

	dept := createDepartment(t, departmentRepo, "Engineering")
	created := createEmployee(t, employeeRepo, dept.ID, "EMP001", "ada@example.com")

	err := svc.Delete(ctx, dept.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentHasEmployees)

	// Once the employee record is gone the delete goes through.
	require.NoError(t, employeeRepo.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, dept.ID))
}
