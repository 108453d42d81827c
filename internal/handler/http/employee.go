package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emscorp/ems-backend-go/internal/domain/employee"
	"github.com/emscorp/ems-backend-go/internal/domain/performance"
	"github.com/emscorp/ems-backend-go/internal/domain/salary"
	"github.com/emscorp/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AttendanceSummary(w http.ResponseWriter, r *http.Request)
	PerformanceHistory(w http.ResponseWriter, r *http.Request)
	SalaryHistory(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService    employee.EmployeeService
	performanceService performance.PerformanceService
	salaryService      salary.SalaryService
}

func NewEmployeeHandler(
	employeeService employee.EmployeeService,
	performanceService performance.PerformanceService,
	salaryService salary.SalaryService,
) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService:    employeeService,
		performanceService: performanceService,
		salaryService:      salaryService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := employee.EmployeeFilter{
		Page:      queryInt(query.Get("page"), 1),
		Limit:     queryInt(query.Get("limit"), 20),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}
	if v := query.Get("department_id"); v != "" {
		filter.DepartmentID = &v
	}
	if v := query.Get("position"); v != "" {
		filter.Position = &v
	}
	if v := query.Get("is_active"); v != "" {
		isActive := v == "true"
		filter.IsActive = &isActive
	}
	if v := query.Get("search"); v != "" {
		filter.Search = &v
	}

	result, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List employees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	detail, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete employee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// AttendanceSummary implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AttendanceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.employeeService.AttendanceSummary(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Employee attendance summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// PerformanceHistory implements EmployeeHandler.
func (h *EmployeeHandlerImpl) PerformanceHistory(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.performanceService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Employee performance history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, reviews)
}

// SalaryHistory implements EmployeeHandler.
func (h *EmployeeHandlerImpl) SalaryHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.salaryService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Employee salary history service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
