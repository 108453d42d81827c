package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/emscorp/ems-backend-go/internal/domain/department"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/emscorp/ems-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

const missingID = "00000000-0000-7000-8000-000000000000"

// testInit connects once and applies the migrations. Tests are skipped
// when TEST_DATABASE_URL is not set.
func testInit(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
		if testDBErr != nil {
			return
		}
		testDBErr = postgresql.Migrate(context.Background(), testDB, "../../../../migrations")
	})
	require.NoError(t, testDBErr)
	return testDB
}

func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()
	tables := []string{
		"salary_records", "performance_reviews", "attendance_records",
		"employees", "departments", "users",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func createDepartment(t *testing.T, repo department.DepartmentRepository, name string) department.Department {
	t.Helper()
	budget := decimal.NewFromInt(500000)
	created, err := repo.Create(context.Background(), department.Department{
		Name:        name,
		Description: "Test department",
		Budget:      budget,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	return created
}

func TestDepartmentRepository_CreateAndGet(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	repo := postgresql.NewDepartmentRepository(db)
	ctx := context.Background()

	created := createDepartment(t, repo, "Engineering")
	assert.True(t, created.IsActive)
	assert.Equal(t, int64(0), created.EmployeeCount)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", fetched.Name)
	assert.True(t, fetched.Budget.Equal(decimal.NewFromInt(500000)))
}

func TestDepartmentRepository_GetByID_NotFound(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	repo := postgresql.NewDepartmentRepository(db)

	_, err := repo.GetByID(context.Background(), missingID)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestDepartmentRepository_Create_DuplicateName(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	repo := postgresql.NewDepartmentRepository(db)

	createDepartment(t, repo, "Engineering")
	_, err := repo.Create(context.Background(), department.Department{Name: "Engineering"})
	assert.ErrorIs(t, err, department.ErrDepartmentNameExists)
}

func TestDepartmentRepository_List(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	repo := postgresql.NewDepartmentRepository(db)
	ctx := context.Background()

	createDepartment(t, repo, "Engineering")
	createDepartment(t, repo, "Marketing")

	departments, total, err := repo.List(ctx, department.DepartmentFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, departments, 2)

	search := "market"
	departments, total, err = repo.List(ctx, department.DepartmentFilter{
		Search: &search, Page: 1, Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, departments, 1)
	assert.Equal(t, "Marketing", departments[0].Name)
}

func TestDepartmentRepository_Update(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	repo := postgresql.NewDepartmentRepository(db)
	ctx := context.Background()

	created := createDepartment(t, repo, "Engineering")

	newName := "Platform Engineering"
	newBudget := decimal.NewFromInt(750000)
	updated, err := repo.Update(ctx, created.ID, department.UpdateDepartmentRequest{
		Name:   &newName,
		Budget: &newBudget,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineering", updated.Name)
	assert.True(t, updated.Budget.Equal(newBudget))
	// Untouched fields survive a partial update.
	assert.Equal(t, "Test department", updated.Description)
}

func TestDepartmentRepository_Delete(t *testing.T) {
	db := testInit(t)
	truncateTables(t, db)
	repo := postgresql.NewDepartmentRepository(db)
	ctx := context.Background()

	created := createDepartment(t, repo, "Engineering")
	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}
