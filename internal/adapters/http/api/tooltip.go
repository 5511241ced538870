package api

import (
	"net/http"
	"strconv"

	"github.com/okian/tempmap/internal/domain/tooltip"
)

// TooltipHandler answers what the tooltip shows when the pointer enters the
// cell for a given year and month.
type TooltipHandler struct {
	deps Dependencies
}

// NewTooltipHandler creates a new tooltip handler.
func NewTooltipHandler(deps Dependencies) *TooltipHandler {
	return &TooltipHandler{deps: deps}
}

// HandleTooltip handles GET /tooltip?year=&month=&x=&y= requests. x and y are
// the pointer's page coordinates and default to 0.
func (h *TooltipHandler) HandleTooltip(w http.ResponseWriter, r *http.Request) {
	if !AllowGET(w, r) {
		return
	}

	q := r.URL.Query()
	year, err := strconv.Atoi(q.Get("year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadQuery)
		return
	}
	month, err := strconv.Atoi(q.Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadQuery)
		return
	}
	var p tooltip.Point
	if p.X, err = optionalFloat(q.Get("x")); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadQuery)
		return
	}
	if p.Y, err = optionalFloat(q.Get("y")); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadQuery)
		return
	}

	ds, ok := h.deps.Dataset()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no_data", ErrNoData)
		return
	}
	rec, found := ds.Find(year, month)
	if !found {
		writeError(w, http.StatusNotFound, "not_found", ErrNoRecord)
		return
	}

	writeJSON(w, http.StatusOK, tooltip.Enter(p, rec, ds.BaseTemperature))
}

func optionalFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
