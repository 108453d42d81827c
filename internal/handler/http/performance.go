package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/emscorp/ems-backend-go/internal/domain/performance"
	"github.com/emscorp/ems-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PerformanceHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// List implements PerformanceHandler.
func (h *PerformanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := performance.PerformanceFilter{
		Page:      queryInt(query.Get("page"), 1),
		Limit:     queryInt(query.Get("limit"), 20),
		SortBy:    query.Get("sort_by"),
		SortOrder: query.Get("sort_order"),
	}
	if v := query.Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := query.Get("reviewer_id"); v != "" {
		filter.ReviewerID = &v
	}

	result, err := h.performanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List performance reviews service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Data, listMeta(result.Page, result.Limit, result.TotalCount))
}

// Create implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req performance.CreatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create performance review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.performanceService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create performance review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created successfully", created)
}

// GetByID implements PerformanceHandler.
func (h *PerformanceHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	review, err := h.performanceService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, review)
}

// Update implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req performance.UpdatePerformanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update performance review decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.performanceService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update performance review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review updated successfully", updated)
}

// Delete implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.performanceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		slog.Error("Delete performance review service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review deleted successfully", nil)
}

// Analytics implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.performanceService.Analytics(r.Context())
	if err != nil {
		slog.Error("Performance analytics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, analytics)
}
