package department

import (
	"time"

	"github.com/shopspring/decimal"
)

type Department struct {
	ID          string
	Name        string
	Description string
	ManagerID   *string
	Budget      decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined
	ManagerName *string
	// EmployeeCount is the live count of active employees in the
	// department. It is never stored; every read recomputes it.
	EmployeeCount int64
}
