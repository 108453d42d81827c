package attendance

import "time"

// NewAttendanceResponse maps a stored record onto the API payload.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	var checkIn, checkOut *string
	if a.CheckInTime != nil {
		formatted := a.CheckInTime.Format(time.RFC3339)
		checkIn = &formatted
	}
	if a.CheckOutTime != nil {
		formatted := a.CheckOutTime.Format(time.RFC3339)
		checkOut = &formatted
	}

	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		EmployeeName:  a.EmployeeName,
		EmployeeCode:  a.EmployeeCode,
		Date:          a.Date.Format("2006-01-02"),
		CheckInTime:   checkIn,
		CheckOutTime:  checkOut,
		BreakDuration: a.BreakDuration,
		HoursWorked:   a.HoursWorked(),
		Status:        string(a.Status),
		StatusLabel:   a.Status.Label(),
		Notes:         a.Notes,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     a.UpdatedAt.Format(time.RFC3339),
	}
}
