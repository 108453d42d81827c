package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emscorp/ems-backend-go/internal/domain/department"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

// departmentColumns selects a department together with its manager name and
// the live count of active employees.
const departmentColumns = `
	d.id, d.name, d.description, d.manager_id, d.budget, d.is_active,
	d.created_at, d.updated_at,
	m.first_name || ' ' || m.last_name AS manager_name,
	(SELECT COUNT(*) FROM employees e WHERE e.department_id = d.id AND e.is_active) AS employee_count
`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.Description,
		&d.ManagerID,
		&d.Budget,
		&d.IsActive,
		&d.CreatedAt,
		&d.UpdatedAt,
		&d.ManagerName,
		&d.EmployeeCount,
	)
	return d, err
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + departmentColumns + `
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE d.id = $1
	`

	d, err := scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.IsActive != nil {
		where = append(where, fmt.Sprintf("d.is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		where = append(where, fmt.Sprintf("(d.name ILIKE $%d OR d.description ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM departments d WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count departments: %w", err)
	}

	orderBy := "d.name"
	switch filter.SortBy {
	case "name":
		orderBy = "d.name"
	case "budget":
		orderBy = "d.budget"
	case "created_at":
		orderBy = "d.created_at"
	}
	direction := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		direction = "DESC"
	}

	query := `
		SELECT ` + departmentColumns + `
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE ` + whereClause + `
		ORDER BY ` + orderBy + ` ` + direction + `
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, total, nil
}

// ListActive implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ListActive(ctx context.Context, limit int) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + departmentColumns + `
		FROM departments d
		LEFT JOIN employees m ON m.id = d.manager_id
		WHERE d.is_active
		ORDER BY d.name ASC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return departments, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, name, description, manager_id, budget, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, TRUE, NOW(), NOW())
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, dept.Name, dept.Description, dept.ManagerID, dept.Budget).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE departments SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}
	if req.ManagerID != nil {
		query += fmt.Sprintf(", manager_id = $%d", argIdx)
		args = append(args, *req.ManagerID)
		argIdx++
	}
	if req.Budget != nil {
		query += fmt.Sprintf(", budget = $%d", argIdx)
		args = append(args, *req.Budget)
		argIdx++
	}
	if req.IsActive != nil {
		query += fmt.Sprintf(", is_active = $%d", argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return department.Department{}, department.ErrDepartmentNameExists
			case "23503":
				return department.Department{}, department.ErrDepartmentNotFound
			}
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return department.Department{}, department.ErrDepartmentNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return department.ErrDepartmentHasEmployees
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// CountEmployees implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) CountEmployees(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE department_id = $1 AND is_active`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

// Statistics implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Statistics(ctx context.Context, id string, recentHireDays int) (department.StatisticsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var stats department.StatisticsResponse

	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(salary), 0),
			COUNT(*) FILTER (WHERE hire_date >= CURRENT_DATE - $2::int)
		FROM employees
		WHERE department_id = $1 AND is_active
	`
	err := q.QueryRow(ctx, query, id, recentHireDays).Scan(
		&stats.TotalEmployees,
		&stats.AverageSalary,
		&stats.RecentHires,
	)
	if err != nil {
		return department.StatisticsResponse{}, fmt.Errorf("failed to get department statistics: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT position, COUNT(*)
		FROM employees
		WHERE department_id = $1 AND is_active
		GROUP BY position
		ORDER BY COUNT(*) DESC, position ASC
	`, id)
	if err != nil {
		return department.StatisticsResponse{}, fmt.Errorf("failed to get position breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pc department.PositionCount
		if err := rows.Scan(&pc.Position, &pc.Count); err != nil {
			return department.StatisticsResponse{}, fmt.Errorf("failed to scan position count: %w", err)
		}
		stats.Positions = append(stats.Positions, pc)
	}
	if err = rows.Err(); err != nil {
		return department.StatisticsResponse{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return stats, nil
}
