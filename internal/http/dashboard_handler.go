package http

import (
	"bytes"
	"fmt"
	"net/http"

	"telemetry-dashboard/internal/aggregators"
	"telemetry-dashboard/internal/dashboards"
	"telemetry-dashboard/internal/shared/svcerrors"
)

const queryTimeRange = "range"

type dashboardPageHandler struct {
	dashboardService aggregators.DashboardService
	renderer         dashboards.Renderer
}

func NewDashboardPageHandler(dashboardService aggregators.DashboardService, renderer dashboards.Renderer) AppHttpHandler {
	return &dashboardPageHandler{dashboardService: dashboardService, renderer: renderer}
}

// Handle serves GET /?range=.
func (h *dashboardPageHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	view, err := h.dashboardService.View(r.Context(), r.URL.Query().Get(queryTimeRange))
	if err != nil {
		return err
	}

	// render fully before writing so a failure can still produce an error response
	var page bytes.Buffer
	if err := h.renderer.Render(&page, view); err != nil {
		return svcerrors.NewInternalErrorUndefined(fmt.Errorf("render dashboard: %w", err))
	}

	w.Header().Set("Content-Type", mediaTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, _ = page.WriteTo(w)
	return nil
}

type dashboardViewHandler struct {
	dashboardService aggregators.DashboardService
}

func NewDashboardViewHandler(dashboardService aggregators.DashboardService) AppHttpHandler {
	return &dashboardViewHandler{dashboardService: dashboardService}
}

// Handle serves GET /api/dashboard?range=.
func (h *dashboardViewHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	view, err := h.dashboardService.View(r.Context(), r.URL.Query().Get(queryTimeRange))
	if err != nil {
		return err
	}
	return writeJSON(w, r, http.StatusOK, view)
}

type statisticsHandler struct {
	dashboardService aggregators.DashboardService
}

func NewStatisticsHandler(dashboardService aggregators.DashboardService) AppHttpHandler {
	return &statisticsHandler{dashboardService: dashboardService}
}

// Handle serves GET /api/stats.
func (h *statisticsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.dashboardService.Statistics(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, r, http.StatusOK, stats)
}
