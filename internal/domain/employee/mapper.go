package employee

import "time"

// NewEmployeeResponse maps a stored employee onto the API payload,
// filling in the derived full name, position label and years of service.
func NewEmployeeResponse(e Employee) EmployeeResponse {
	var birthDate *string
	if e.BirthDate != nil {
		formatted := e.BirthDate.Format("2006-01-02")
		birthDate = &formatted
	}

	return EmployeeResponse{
		ID:             e.ID,
		EmployeeID:     e.EmployeeID,
		UserID:         e.UserID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		FullName:       e.FullName(),
		Email:          e.Email,
		Phone:          e.Phone,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Position:       string(e.Position),
		PositionLabel:  e.Position.Label(),
		HireDate:       e.HireDate.Format("2006-01-02"),
		BirthDate:      birthDate,
		Salary:         e.Salary,
		YearsOfService: e.YearsOfService(time.Now()),
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}
