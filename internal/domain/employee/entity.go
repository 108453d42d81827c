package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	EmployeeID   string
	UserID       *string
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	DepartmentID string
	Position     Position
	HireDate     time.Time
	BirthDate    *time.Time
	Salary       decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined
	DepartmentName *string
}

// FullName joins first and last name with a single space.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// YearsOfService is the whole number of years since the hire date,
// computed as day-count divided by 365. The 365-day divisor is
// intentional; it is not calendar-accurate.
func (e Employee) YearsOfService(now time.Time) int {
	hy, hm, hd := e.HireDate.Date()
	ny, nm, nd := now.Date()
	hire := time.Date(hy, hm, hd, 0, 0, 0, 0, time.UTC)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	days := int(today.Sub(hire) / (24 * time.Hour))
	return days / 365
}

type Position string

const (
	PositionIntern   Position = "intern"
	PositionJunior   Position = "junior"
	PositionSenior   Position = "senior"
	PositionLead     Position = "lead"
	PositionManager  Position = "manager"
	PositionDirector Position = "director"
	PositionVP       Position = "vp"
	PositionCEO      Position = "ceo"
)

var positionLabels = map[Position]string{
	PositionIntern:   "Intern",
	PositionJunior:   "Junior Developer",
	PositionSenior:   "Senior Developer",
	PositionLead:     "Team Lead",
	PositionManager:  "Manager",
	PositionDirector: "Director",
	PositionVP:       "Vice President",
	PositionCEO:      "CEO",
}

// Label returns the display name for the position.
func (p Position) Label() string {
	if label, ok := positionLabels[p]; ok {
		return label
	}
	return string(p)
}

func (p Position) Valid() bool {
	_, ok := positionLabels[p]
	return ok
}

func Positions() []Position {
	return []Position{
		PositionIntern, PositionJunior, PositionSenior, PositionLead,
		PositionManager, PositionDirector, PositionVP, PositionCEO,
	}
}
