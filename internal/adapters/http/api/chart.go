package api

import (
	"bytes"
	"net/http"

	"github.com/okian/tempmap/internal/render"
	"github.com/okian/tempmap/pkg/logger"
)

// ChartHandler serves the rendered heat-map as an HTML page or a bare SVG.
type ChartHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewChartHandler creates a new chart handler.
func NewChartHandler(deps Dependencies, log logger.Logger) *ChartHandler {
	return &ChartHandler{deps: deps, logger: log}
}

// HandlePage handles GET / requests. Any other path under / is a 404.
func (h *ChartHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if !AllowGET(w, r) {
		return
	}

	// Buffer so a template failure can still produce a clean 500.
	var buf bytes.Buffer
	err := render.WritePage(&buf, h.deps.Chart(), render.PageOptions{
		Err:       h.deps.Err(),
		ShowError: h.deps.ShowError(),
	})
	if err != nil {
		h.logError(r, "page render failed", err)
		writeError(w, http.StatusInternalServerError, "render_error", ErrRender)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// HandleSVG handles GET /chart.svg requests.
func (h *ChartHandler) HandleSVG(w http.ResponseWriter, r *http.Request) {
	if !AllowGET(w, r) {
		return
	}

	chart := h.deps.Chart()
	if chart == nil || h.deps.Err() != nil {
		writeError(w, http.StatusServiceUnavailable, "no_data", ErrNoData)
		return
	}

	var buf bytes.Buffer
	if err := render.WriteSVG(&buf, chart); err != nil {
		h.logError(r, "svg render failed", err)
		writeError(w, http.StatusInternalServerError, "render_error", ErrRender)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

func (h *ChartHandler) logError(r *http.Request, msg string, err error) {
	if h.logger == nil {
		return
	}
	h.logger.Error(r.Context(), msg,
		logger.String("request_id", RequestIDFromContext(r.Context())),
		logger.String("path", r.URL.Path),
		logger.Error(err),
	)
}
