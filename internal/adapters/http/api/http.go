// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/tempmap/internal/domain/model"
	"github.com/okian/tempmap/internal/render"
	"github.com/okian/tempmap/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	StatsProvider

	// Chart returns the rendered heat-map; nil before the service started.
	Chart() *render.Chart
	// Dataset returns the fetched dataset and whether the fetch succeeded.
	Dataset() (model.Dataset, bool)
	// Err returns the fetch failure, if any.
	Err() error
	// ShowError reports whether a fetch failure is surfaced on the page.
	ShowError() bool
}

// Server wires HTTP routes for the heat-map API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	chartHandler   *ChartHandler
	datasetHandler *DatasetHandler
	tooltipHandler *TooltipHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, log logger.Logger) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(deps),
		chartHandler:   NewChartHandler(deps, log),
		datasetHandler: NewDatasetHandler(deps),
		tooltipHandler: NewTooltipHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	mux.HandleFunc("/healthz", wrap(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", wrap(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/dataset", wrap(s.datasetHandler.HandleDataset, "dataset"))
	mux.HandleFunc("/tooltip", wrap(s.tooltipHandler.HandleTooltip, "tooltip"))
	mux.HandleFunc("/chart.svg", wrap(s.chartHandler.HandleSVG, "chart_svg"))
	mux.HandleFunc("/", wrap(s.chartHandler.HandlePage, "page"))
}

func wrap(h http.HandlerFunc, endpoint string) http.HandlerFunc {
	return RequestIDMiddleware(MetricsMiddleware(h, endpoint))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// AllowGET rejects anything but GET and HEAD with a 405 JSON error. It
// reports whether the handler should continue.
func AllowGET(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return true
	}
	w.Header().Set("Allow", "GET, HEAD")
	writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
	return false
}
