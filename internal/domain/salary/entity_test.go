package salary

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTotalSalary(t *testing.T) {
	record := Salary{
		BaseSalary: decimal.NewFromInt(70000),
		Allowances: decimal.NewFromInt(5000),
		Bonus:      decimal.NewFromInt(10000),
		Deductions: decimal.NewFromInt(2000),
	}
	want := decimal.NewFromInt(83000)
	if got := record.TotalSalary(); !got.Equal(want) {
		t.Errorf("TotalSalary() = %s, want %s", got, want)
	}
}

func TestTotalSalaryCanGoNegative(t *testing.T) {
	record := Salary{
		BaseSalary: decimal.NewFromInt(1000),
		Deductions: decimal.NewFromInt(1500),
	}
	want := decimal.NewFromInt(-500)
	if got := record.TotalSalary(); !got.Equal(want) {
		t.Errorf("TotalSalary() = %s, want %s", got, want)
	}
}

func TestTypeLabel(t *testing.T) {
	cases := map[Type]string{
		TypeInitial:     "Initial Salary",
		TypeAnnualRaise: "Annual Raise",
		TypeAdjustment:  "Salary Adjustment",
		Type("custom"):  "custom",
	}
	for salaryType, want := range cases {
		if got := salaryType.Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", salaryType, got, want)
		}
	}
}

func TestTypeValid(t *testing.T) {
	for _, salaryType := range []Type{TypeInitial, TypePromotion, TypeAnnualRaise, TypePerformanceBonus, TypeAdjustment, TypeCorrection} {
		if !salaryType.Valid() {
			t.Errorf("Valid(%q) = false, want true", salaryType)
		}
	}
	if Type("bonus").Valid() {
		t.Error("Valid(bonus) = true, want false")
	}
}
