package postgresql

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/emscorp/ems-backend-go/internal/domain/performance"
	"github.com/emscorp/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

const performanceColumns = `
	p.id, p.employee_id, p.reviewer_id, p.review_period_start, p.review_period_end,
	p.technical_skills, p.communication, p.teamwork, p.leadership,
	p.goals_achieved, p.feedback, p.created_at, p.updated_at,
	e.first_name || ' ' || e.last_name AS employee_name,
	e.employee_id AS employee_code,
	rv.first_name || ' ' || rv.last_name AS reviewer_name
`

func scanPerformance(row pgx.Row) (performance.Performance, error) {
	var p performance.Performance
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.ReviewerID,
		&p.ReviewPeriodStart,
		&p.ReviewPeriodEnd,
		&p.TechnicalSkills,
		&p.Communication,
		&p.Teamwork,
		&p.Leadership,
		&p.GoalsAchieved,
		&p.Feedback,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeName,
		&p.EmployeeCode,
		&p.ReviewerName,
	)
	return p, err
}

// GetByID implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) GetByID(ctx context.Context, id string) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + performanceColumns + `
		FROM performance_reviews p
		JOIN employees e ON e.id = p.employee_id
		LEFT JOIN employees rv ON rv.id = p.reviewer_id
		WHERE p.id = $1
	`

	p, err := scanPerformance(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Performance{}, performance.ErrReviewNotFound
		}
		return performance.Performance{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return p, nil
}

// List implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) List(ctx context.Context, filter performance.PerformanceFilter) ([]performance.Performance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where = append(where, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.ReviewerID != nil {
		where = append(where, fmt.Sprintf("p.reviewer_id = $%d", argIdx))
		args = append(args, *filter.ReviewerID)
		argIdx++
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM performance_reviews p WHERE " + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance reviews: %w", err)
	}

	orderBy := "p.review_period_end"
	switch filter.SortBy {
	case "review_period_end":
		orderBy = "p.review_period_end"
	case "created_at":
		orderBy = "p.created_at"
	case "technical_skills":
		orderBy = "p.technical_skills"
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	query := `
		SELECT ` + performanceColumns + `
		FROM performance_reviews p
		JOIN employees e ON e.id = p.employee_id
		LEFT JOIN employees rv ON rv.id = p.reviewer_id
		WHERE ` + whereClause + `
		ORDER BY ` + orderBy + ` ` + direction + `
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Performance
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return reviews, total, nil
}

// ListByEmployee implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + performanceColumns + `
		FROM performance_reviews p
		JOIN employees e ON e.id = p.employee_id
		LEFT JOIN employees rv ON rv.id = p.reviewer_id
		WHERE p.employee_id = $1
		ORDER BY p.review_period_end DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Performance
	for rows.Next() {
		p, err := scanPerformance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reviews, nil
}

// LatestByEmployee implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) LatestByEmployee(ctx context.Context, employeeID string) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + performanceColumns + `
		FROM performance_reviews p
		JOIN employees e ON e.id = p.employee_id
		LEFT JOIN employees rv ON rv.id = p.reviewer_id
		WHERE p.employee_id = $1
		ORDER BY p.review_period_end DESC
		LIMIT 1
	`

	p, err := scanPerformance(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Performance{}, performance.ErrReviewNotFound
		}
		return performance.Performance{}, fmt.Errorf("failed to get latest performance review: %w", err)
	}

	return p, nil
}

// Create implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Create(ctx context.Context, review performance.Performance) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			id, employee_id, reviewer_id, review_period_start, review_period_end,
			technical_skills, communication, teamwork, leadership,
			goals_achieved, feedback, created_at, updated_at
		)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		review.EmployeeID,
		review.ReviewerID,
		review.ReviewPeriodStart,
		review.ReviewPeriodEnd,
		review.TechnicalSkills,
		review.Communication,
		review.Teamwork,
		review.Leadership,
		review.GoalsAchieved,
		review.Feedback,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return performance.Performance{}, performance.ErrReviewNotFound
		}
		return performance.Performance{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Update implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Update(ctx context.Context, id string, req performance.UpdatePerformanceRequest) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE performance_reviews SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.ReviewerID != nil {
		query += fmt.Sprintf(", reviewer_id = $%d", argIdx)
		args = append(args, *req.ReviewerID)
		argIdx++
	}
	if req.ReviewPeriodStart != nil {
		query += fmt.Sprintf(", review_period_start = $%d", argIdx)
		args = append(args, *req.ReviewPeriodStart)
		argIdx++
	}
	if req.ReviewPeriodEnd != nil {
		query += fmt.Sprintf(", review_period_end = $%d", argIdx)
		args = append(args, *req.ReviewPeriodEnd)
		argIdx++
	}
	if req.TechnicalSkills != nil {
		query += fmt.Sprintf(", technical_skills = $%d", argIdx)
		args = append(args, *req.TechnicalSkills)
		argIdx++
	}
	if req.Communication != nil {
		query += fmt.Sprintf(", communication = $%d", argIdx)
		args = append(args, *req.Communication)
		argIdx++
	}
	if req.Teamwork != nil {
		query += fmt.Sprintf(", teamwork = $%d", argIdx)
		args = append(args, *req.Teamwork)
		argIdx++
	}
	if req.Leadership != nil {
		query += fmt.Sprintf(", leadership = $%d", argIdx)
		args = append(args, *req.Leadership)
		argIdx++
	}
	if req.GoalsAchieved != nil {
		query += fmt.Sprintf(", goals_achieved = $%d", argIdx)
		args = append(args, *req.GoalsAchieved)
		argIdx++
	}
	if req.Feedback != nil {
		query += fmt.Sprintf(", feedback = $%d", argIdx)
		args = append(args, *req.Feedback)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("failed to update performance review: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return performance.Performance{}, performance.ErrReviewNotFound
	}

	return r.GetByID(ctx, id)
}

// Delete implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return performance.ErrReviewNotFound
	}

	return nil
}

// Analytics implements performance.PerformanceRepository.
func (r *performanceRepositoryImpl) Analytics(ctx context.Context) (performance.AnalyticsResponse, error) {
	q := GetQuerier(ctx, r.db)

	var result performance.AnalyticsResponse

	// Buckets and the average both read technical_skills; the payload has
	// always been shaped this way.
	summaryQuery := `
		SELECT
			COUNT(*),
			COALESCE(AVG(technical_skills), 0),
			COUNT(*) FILTER (WHERE technical_skills >= 4.5),
			COUNT(*) FILTER (WHERE technical_skills >= 3.5 AND technical_skills < 4.5),
			COUNT(*) FILTER (WHERE technical_skills >= 2.5 AND technical_skills < 3.5),
			COUNT(*) FILTER (WHERE technical_skills < 2.5)
		FROM performance_reviews
	`
	var avg float64
	err := q.QueryRow(ctx, summaryQuery).Scan(
		&result.TotalReviews,
		&avg,
		&result.RatingDistribution.Excellent,
		&result.RatingDistribution.Good,
		&result.RatingDistribution.Average,
		&result.RatingDistribution.Poor,
	)
	if err != nil {
		return performance.AnalyticsResponse{}, fmt.Errorf("failed to get review analytics: %w", err)
	}
	result.AverageOverallRating = math.Round(avg*100) / 100

	rows, err := q.Query(ctx, `
		SELECT d.name, COALESCE(AVG(p.technical_skills), 0), COUNT(p.id)
		FROM performance_reviews p
		JOIN employees e ON e.id = p.employee_id
		JOIN departments d ON d.id = e.department_id
		GROUP BY d.name
		ORDER BY d.name ASC
	`)
	if err != nil {
		return performance.AnalyticsResponse{}, fmt.Errorf("failed to get department performance: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var dp performance.DepartmentPerformance
		if err := rows.Scan(&dp.DepartmentName, &dp.AverageRating, &dp.ReviewCount); err != nil {
			return performance.AnalyticsResponse{}, fmt.Errorf("failed to scan department performance: %w", err)
		}
		dp.AverageRating = math.Round(dp.AverageRating*100) / 100
		result.DepartmentPerformance = append(result.DepartmentPerformance, dp)
	}
	if err = rows.Err(); err != nil {
		return performance.AnalyticsResponse{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
