package attendance

import "time"

type Attendance struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	BreakDuration int // minutes
	Status        Status
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined
	EmployeeName *string
	EmployeeCode *string
}

// HoursWorked is the span between check-in and check-out minus the break,
// in fractional hours. Zero when either timestamp is missing. The result
// is not clamped: inconsistent timestamps written directly to storage can
// yield a negative value.
func (a Attendance) HoursWorked() float64 {
	if a.CheckInTime == nil || a.CheckOutTime == nil {
		return 0
	}
	worked := a.CheckOutTime.Sub(*a.CheckInTime) - time.Duration(a.BreakDuration)*time.Minute
	return worked.Seconds() / 3600
}

type Status string

const (
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusLate      Status = "late"
	StatusHalfDay   Status = "half_day"
	StatusHoliday   Status = "holiday"
	StatusSickLeave Status = "sick_leave"
	StatusVacation  Status = "vacation"
)

var statusLabels = map[Status]string{
	StatusPresent:   "Present",
	StatusAbsent:    "Absent",
	StatusLate:      "Late",
	StatusHalfDay:   "Half Day",
	StatusHoliday:   "Holiday",
	StatusSickLeave: "Sick Leave",
	StatusVacation:  "Vacation",
}

// Label returns the display name for the status.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// LeaveStatuses are the statuses counted as "on leave" in daily reports.
func LeaveStatuses() []Status {
	return []Status{StatusSickLeave, StatusVacation, StatusHoliday}
}
