package http

import (
	"log/slog"
	"net/http"

	"github.com/emscorp/ems-backend-go/internal/domain/analytics"
	"github.com/emscorp/ems-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &AnalyticsHandlerImpl{analyticsService: analyticsService}
}

// Overview implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analyticsService.Overview(r.Context())
	if err != nil {
		slog.Error("Analytics overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// Dashboard implements AnalyticsHandler.
func (h *AnalyticsHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.analyticsService.Dashboard(r.Context())
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}
