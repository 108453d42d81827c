package performance

import "time"

// NewPerformanceResponse maps a stored review onto the API payload.
func NewPerformanceResponse(p Performance) PerformanceResponse {
	return PerformanceResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		EmployeeName:      p.EmployeeName,
		EmployeeCode:      p.EmployeeCode,
		ReviewerID:        p.ReviewerID,
		ReviewerName:      p.ReviewerName,
		ReviewPeriodStart: p.ReviewPeriodStart.Format("2006-01-02"),
		ReviewPeriodEnd:   p.ReviewPeriodEnd.Format("2006-01-02"),
		TechnicalSkills:   p.TechnicalSkills,
		Communication:     p.Communication,
		Teamwork:          p.Teamwork,
		Leadership:        p.Leadership,
		OverallRating:     p.OverallRating(),
		GoalsAchieved:     p.GoalsAchieved,
		Feedback:          p.Feedback,
		CreatedAt:         p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         p.UpdatedAt.Format(time.RFC3339),
	}
}
