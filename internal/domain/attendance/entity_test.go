package attendance

import (
	"testing"
	"time"
)

func TestHoursWorked(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	at := func(hour, minute int) *time.Time {
		ts := day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
		return &ts
	}

	cases := []struct {
		name   string
		record Attendance
		want   float64
	}{
		{
			name:   "full day with break",
			record: Attendance{CheckInTime: at(9, 0), CheckOutTime: at(17, 0), BreakDuration: 60},
			want:   7.0,
		},
		{
			name:   "no break",
			record: Attendance{CheckInTime: at(9, 0), CheckOutTime: at(17, 30)},
			want:   8.5,
		},
		{
			name:   "missing check-in",
			record: Attendance{CheckOutTime: at(17, 0)},
			want:   0,
		},
		{
			name:   "missing check-out",
			record: Attendance{CheckInTime: at(9, 0)},
			want:   0,
		},
		{
			name:   "break exceeds span goes negative",
			record: Attendance{CheckInTime: at(9, 0), CheckOutTime: at(9, 30), BreakDuration: 60},
			want:   -0.5,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.record.HoursWorked()
			if got != c.want {
				t.Errorf("HoursWorked() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[Status]string{
		StatusPresent:   "Present",
		StatusHalfDay:   "Half Day",
		StatusSickLeave: "Sick Leave",
		Status("weird"): "weird",
	}
	for status, want := range cases {
		if got := status.Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range []Status{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusHoliday, StatusSickLeave, StatusVacation} {
		if !status.Valid() {
			t.Errorf("Valid(%q) = false, want true", status)
		}
	}
	if Status("remote").Valid() {
		t.Error("Valid(remote) = true, want false")
	}
}

func TestLeaveStatuses(t *testing.T) {
	leave := LeaveStatuses()
	if len(leave) != 3 {
		t.Fatalf("LeaveStatuses() returned %d statuses, want 3", len(leave))
	}
	want := map[Status]bool{StatusSickLeave: true, StatusVacation: true, StatusHoliday: true}
	for _, status := range leave {
		if !want[status] {
			t.Errorf("LeaveStatuses() contains unexpected status %q", status)
		}
	}
}
