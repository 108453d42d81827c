package department

import "time"

// NewDepartmentResponse maps a stored department onto the API payload.
func NewDepartmentResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		ManagerID:     d.ManagerID,
		ManagerName:   d.ManagerName,
		Budget:        d.Budget,
		EmployeeCount: d.EmployeeCount,
		IsActive:      d.IsActive,
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339),
	}
}
