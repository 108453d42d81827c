package employee

import (
	"testing"
	"time"
)

func TestFullName(t *testing.T) {
	e := Employee{FirstName: "Ada", LastName: "Lovelace"}
	if got := e.FullName(); got != "Ada Lovelace" {
		t.Errorf("FullName() = %q, want %q", got, "Ada Lovelace")
	}
}

func TestYearsOfService(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		hireDate time.Time
		want     int
	}{
		{"hired today", now, 0},
		{"364 days ago", now.AddDate(0, 0, -364), 0},
		{"exactly 365 days", now.AddDate(0, 0, -365), 1},
		{"two years by day count", now.AddDate(0, 0, -730), 2},
		// AddDate(-5,0,0) spans one leap day, so the day count is 1826
		// and the 365-day divisor still yields 5.
		{"five calendar years", now.AddDate(-5, 0, 0), 5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := Employee{HireDate: c.hireDate}
			if got := e.YearsOfService(now); got != c.want {
				t.Errorf("YearsOfService() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestPositionLabel(t *testing.T) {
	cases := map[Position]string{
		PositionJunior:    "Junior Developer",
		PositionVP:        "Vice President",
		Position("owner"): "owner",
	}
	for position, want := range cases {
		if got := position.Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", position, got, want)
		}
	}
}

func TestPositionValid(t *testing.T) {
	for _, position := range Positions() {
		if !position.Valid() {
			t.Errorf("Valid(%q) = false, want true", position)
		}
	}
	if Position("founder").Valid() {
		t.Error("Valid(founder) = true, want false")
	}
}
