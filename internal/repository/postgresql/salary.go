package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emscorp/ems-backend-go/internal/domain/salary"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type salaryRepositoryImpl struct {
	db *database.DB
}

func NewSalaryRepository(db *database.DB) salary.SalaryRepository {
	return &salaryRepositoryImpl{db: db}
}

const salaryColumns = `
	s.id, s.employee_id, s.effective_date, s.base_salary, s.allowances,
	s.deductions, s.bonus, s.salary_type, s.reason, s.approved_by,
	s.created_at, s.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	e.employee_id AS employee_code,
	ap.first_name || ' ' || ap.last_name AS approved_by_name
`

func scanSalary(row pgx.Row) (salary.Salary, error) {
	var s salary.Salary
	err := row.Scan(
		&s.ID,
		&s.EmployeeID,
		&s.EffectiveDate,
		&s.BaseSalary,
		&s.Allowances,
		&s.Deductions,
		&s.Bonus,
		&s.SalaryType,
		&s.Reason,
		&s.ApprovedBy,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.EmployeeName,
		&s.EmployeeCode,
		&s.ApprovedByName,
	)
	return s, err
}

// GetByID implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) GetByID(ctx context.Context, id string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		LEFT JOIN employees ap ON ap.id = s.approved_by
		WHERE s.id = $1
	`

	s, err := scanSalary(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get salary record: %w", err)
	}

	return s, nil
}

// List implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) List(ctx context.Context, filter salary.SalaryFilter) ([]salary.Salary, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("s.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.SalaryType != nil {
		where = append(where, fmt.Sprintf("s.salary_type = $%d", argIdx))
		args = append(args, *filter.SalaryType)
		argIdx++
	}
	if filter.ApprovedBy != nil {
		where = append(where, fmt.Sprintf("s.approved_by = $%d", argIdx))
		args = append(args, *filter.ApprovedBy)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM salary_records s WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count salary records: %w", err)
	}

	orderBy := "s.effective_date"
	switch filter.SortBy {
	case "effective_date":
		orderBy = "s.effective_date"
	case "base_salary":
		orderBy = "s.base_salary"
	case "created_at":
		orderBy = "s.created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		LEFT JOIN employees ap ON ap.id = s.approved_by
		WHERE ` + whereClause + `
		ORDER BY ` + orderBy + ` ` + direction + `
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Salary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, s)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, total, nil
}

// ListByEmployee implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		LEFT JOIN employees ap ON ap.id = s.approved_by
		WHERE s.employee_id = $1
		ORDER BY s.effective_date DESC, s.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary records: %w", err)
	}
	defer rows.Close()

	var records []salary.Salary
	for rows.Next() {
		s, err := scanSalary(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary record: %w", err)
		}
		records = append(records, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// CurrentByEmployee implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) CurrentByEmployee(ctx context.Context, employeeID string) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + salaryColumns + `
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		LEFT JOIN employees ap ON ap.id = s.approved_by
		WHERE s.employee_id = $1
		ORDER BY s.effective_date DESC, s.created_at DESC
		LIMIT 1
	`

	s, err := scanSalary(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to get current salary: %w", err)
	}

	return s, nil
}

// Create implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Create(ctx context.Context, record salary.Salary) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_records (
			id, employee_id, effective_date, base_salary, allowances,
			deductions, bonus, salary_type, reason, approved_by,
			created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.EffectiveDate,
		record.BaseSalary,
		record.Allowances,
		record.Deductions,
		record.Bonus,
		record.SalaryType,
		record.Reason,
		record.ApprovedBy,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return salary.Salary{}, salary.ErrSalaryNotFound
		}
		return salary.Salary{}, fmt.Errorf("failed to create salary record: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Update(ctx context.Context, id string, req salary.UpdateSalaryRequest) (salary.Salary, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE salary_records SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.EffectiveDate != nil {
		query += fmt.Sprintf(", effective_date = $%d", argIdx)
		args = append(args, *req.EffectiveDate)
		argIdx++
	}
	if req.BaseSalary != nil {
		query += fmt.Sprintf(", base_salary = $%d", argIdx)
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.Allowances != nil {
		query += fmt.Sprintf(", allowances = $%d", argIdx)
		args = append(args, *req.Allowances)
		argIdx++
	}
	if req.Deductions != nil {
		query += fmt.Sprintf(", deductions = $%d", argIdx)
		args = append(args, *req.Deductions)
		argIdx++
	}
	if req.Bonus != nil {
		query += fmt.Sprintf(", bonus = $%d", argIdx)
		args = append(args, *req.Bonus)
		argIdx++
	}
	if req.SalaryType != nil {
		query += fmt.Sprintf(", salary_type = $%d", argIdx)
		args = append(args, *req.SalaryType)
		argIdx++
	}
	if req.Reason != nil {
		query += fmt.Sprintf(", reason = $%d", argIdx)
		args = append(args, *req.Reason)
		argIdx++
	}
	if req.ApprovedBy != nil {
		query += fmt.Sprintf(", approved_by = $%d", argIdx)
		args = append(args, *req.ApprovedBy)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return salary.Salary{}, fmt.Errorf("failed to update salary record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salary.Salary{}, salary.ErrSalaryNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM salary_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary record: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return salary.ErrSalaryNotFound
	}

	return nil
}

// Trends implements salary.SalaryRepository.
func (r *salaryRepositoryImpl) Trends(ctx context.Context, recentDays int) (salary.TrendsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var result salary.TrendsResponse

	summaryQuery := `
		SELECT
			COUNT(*),
			COALESCE(AVG(base_salary), 0),
			COUNT(*) FILTER (WHERE effective_date >= CURRENT_DATE - $1::int),
			COUNT(*) FILTER (WHERE base_salary < 50000),
			COUNT(*) FILTER (WHERE base_salary >= 50000 AND base_salary < 100000),
			COUNT(*) FILTER (WHERE base_salary >= 100000 AND base_salary < 150000),
			COUNT(*) FILTER (WHERE base_salary >= 150000)
		FROM salary_records
	`
	err := q.QueryRow(ctx, summaryQuery, recentDays).Scan(
		&result.TotalRecords,
		&result.AverageSalary,
		&result.RecentChanges,
		&result.SalaryDistribution.Under50K,
		&result.SalaryDistribution.K50To100,
		&result.SalaryDistribution.K100To150,
		&result.SalaryDistribution.Over150K,
	)
	if err != nil {
		return salary.TrendsResponse{}, fmt.Errorf("failed to get salary trends: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT e.position, COALESCE(AVG(s.base_salary), 0), COUNT(s.id)
		FROM salary_records s
		JOIN employees e ON e.id = s.employee_id
		GROUP BY e.position
		ORDER BY AVG(s.base_salary) DESC
	`)
	if err != nil {
		return salary.TrendsResponse{}, fmt.Errorf("failed to get salary by position: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ps salary.PositionSalary
		if err := rows.Scan(&ps.Position, &ps.AverageSalary, &ps.RecordCount); err != nil {
			return salary.TrendsResponse{}, fmt.Errorf("failed to scan position salary: %w", err)
		}
		result.SalaryByPosition = append(result.SalaryByPosition, ps)
	}
	if err = rows.Err(); err != nil {
		return salary.TrendsResponse{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
