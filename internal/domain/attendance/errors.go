package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrDuplicateDate      = errors.New("attendance record already exists for this employee and date")
	ErrInvalidStatus      = errors.New("invalid attendance status")
)
