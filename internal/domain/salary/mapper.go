package salary

import "time"

// NewSalaryResponse maps a stored record onto the API payload, filling in
// the derived total and the salary type label.
func NewSalaryResponse(s Salary) SalaryResponse {
	return SalaryResponse{
		ID:             s.ID,
		EmployeeID:     s.EmployeeID,
		EmployeeName:   s.EmployeeName,
		EmployeeCode:   s.EmployeeCode,
		EffectiveDate:  s.EffectiveDate.Format("2006-01-02"),
		BaseSalary:     s.BaseSalary,
		Allowances:     s.Allowances,
		Deductions:     s.Deductions,
		Bonus:          s.Bonus,
		TotalSalary:    s.TotalSalary(),
		SalaryType:     string(s.SalaryType),
		SalaryTypeName: s.SalaryType.Label(),
		Reason:         s.Reason,
		ApprovedBy:     s.ApprovedBy,
		ApprovedByName: s.ApprovedByName,
		CreatedAt:      s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      s.UpdatedAt.Format(time.RFC3339),
	}
}
