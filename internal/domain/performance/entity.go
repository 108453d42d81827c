package performance

import (
	"math"
	"time"
)

type Performance struct {
	ID                string
	EmployeeID        string
	ReviewerID        *string
	ReviewPeriodStart time.Time
	ReviewPeriodEnd   time.Time
	TechnicalSkills   int
	Communication     int
	Teamwork          int
	Leadership        int
	GoalsAchieved     int // percentage 0-100
	Feedback          string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Joined
	EmployeeName *string
	EmployeeCode *string
	ReviewerName *string
}

// OverallRating is the arithmetic mean of the four ratings, rounded to
// two decimal places.
func (p Performance) OverallRating() float64 {
	mean := float64(p.TechnicalSkills+p.Communication+p.Teamwork+p.Leadership) / 4
	return math.Round(mean*100) / 100
}
