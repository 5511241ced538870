package api

import "net/http"

// DatasetHandler serves the fetched dataset as JSON.
type DatasetHandler struct {
	deps Dependencies
}

// NewDatasetHandler creates a new dataset handler.
func NewDatasetHandler(deps Dependencies) *DatasetHandler {
	return &DatasetHandler{deps: deps}
}

// HandleDataset handles GET /dataset requests.
func (h *DatasetHandler) HandleDataset(w http.ResponseWriter, r *http.Request) {
	if !AllowGET(w, r) {
		return
	}
	ds, ok := h.deps.Dataset()
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no_data", ErrNoData)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}
