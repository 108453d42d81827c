package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditReason is written on history rows created automatically when an
// employee's salary field changes through an update.
const AuditReason = "Automatic salary update via employee record change"

type Salary struct {
	ID            string
	EmployeeID    string
	EffectiveDate time.Time
	BaseSalary    decimal.Decimal
	Allowances    decimal.Decimal
	Deductions    decimal.Decimal
	Bonus         decimal.Decimal
	SalaryType    Type
	Reason        string
	ApprovedBy    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined
	EmployeeName   *string
	EmployeeCode   *string
	ApprovedByName *string
}

// TotalSalary is base + allowances + bonus - deductions. Deductions larger
// than the other components produce a negative total; storage does not
// reject that.
func (s Salary) TotalSalary() decimal.Decimal {
	return s.BaseSalary.Add(s.Allowances).Add(s.Bonus).Sub(s.Deductions)
}

type Type string

const (
	TypeInitial          Type = "initial"
	TypePromotion        Type = "promotion"
	TypeAnnualRaise      Type = "annual_raise"
	TypePerformanceBonus Type = "performance_bonus"
	TypeAdjustment       Type = "adjustment"
	TypeCorrection       Type = "correction"
)

var typeLabels = map[Type]string{
	TypeInitial:          "Initial Salary",
	TypePromotion:        "Promotion",
	TypeAnnualRaise:      "Annual Raise",
	TypePerformanceBonus: "Performance Bonus",
	TypeAdjustment:       "Salary Adjustment",
	TypeCorrection:       "Salary Correction",
}

// Label returns the display name for the salary type.
func (t Type) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t Type) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}
