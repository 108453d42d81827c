package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/emscorp/ems-backend-go/internal/domain/analytics"
	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

// CountActiveEmployees implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountActiveEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}
	return count, nil
}

// CountActiveDepartments implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountActiveDepartments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active departments: %w", err)
	}
	return count, nil
}

// SalaryStats implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) SalaryStats(ctx context.Context) (avg, total decimal.Decimal, err error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(AVG(salary), 0), COALESCE(SUM(salary), 0)
		FROM employees
		WHERE is_active
	`
	err = q.QueryRow(ctx, query).Scan(&avg, &total)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("failed to get salary stats: %w", err)
	}
	return avg, total, nil
}

// AttendanceRate implements analytics.AnalyticsRepository. Present records
// over all records in the window, as a percentage. Zero when the window
// holds no records.
func (r *analyticsRepositoryImpl) AttendanceRate(ctx context.Context, since time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'present')
		FROM attendance_records
		WHERE date >= $1
	`
	var total, present int64
	if err := q.QueryRow(ctx, query, since).Scan(&total, &present); err != nil {
		return 0, fmt.Errorf("failed to get attendance rate: %w", err)
	}
	if total == 0 {
		return 0, nil
	}
	return float64(present) / float64(total) * 100, nil
}

// PerformanceAverage implements analytics.AnalyticsRepository. Averages
// technical_skills over reviews ending inside the window; the payload has
// always reported this figure as the overall average.
func (r *analyticsRepositoryImpl) PerformanceAverage(ctx context.Context, since time.Time) (float64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(AVG(technical_skills), 0)
		FROM performance_reviews
		WHERE review_period_end >= $1
	`
	var avg float64
	if err := q.QueryRow(ctx, query, since).Scan(&avg); err != nil {
		return 0, fmt.Errorf("failed to get performance average: %w", err)
	}
	return avg, nil
}

// DepartmentDistribution implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) DepartmentDistribution(ctx context.Context) (map[string]int64, error) {
	return r.distribution(ctx, `
		SELECT d.name, COUNT(e.id)
		FROM departments d
		LEFT JOIN employees e ON e.department_id = d.id AND e.is_active
		WHERE d.is_active
		GROUP BY d.name
	`)
}

// PositionDistribution implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) PositionDistribution(ctx context.Context) (map[string]int64, error) {
	return r.distribution(ctx, `
		SELECT position, COUNT(*)
		FROM employees
		WHERE is_active
		GROUP BY position
	`)
}

func (r *analyticsRepositoryImpl) distribution(ctx context.Context, query string) (map[string]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var key string
		var count int64
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("failed to scan distribution row: %w", err)
		}
		result[key] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// CountRecentHires implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountRecentHires(ctx context.Context, since time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE is_active AND hire_date >= $1`,
		since,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent hires: %w", err)
	}
	return count, nil
}

// CountUpcomingReviews implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) CountUpcomingReviews(ctx context.Context, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM performance_reviews WHERE review_period_end BETWEEN $1 AND $2`,
		from, to,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming reviews: %w", err)
	}
	return count, nil
}

// RecentEmployees implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) RecentEmployees(ctx context.Context, since time.Time, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE e.is_active AND e.hire_date >= $1
		ORDER BY e.hire_date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}
