// Package site serves the static assets the heat-map page loads: the tooltip
// adapter script and the stylesheet.
package site

import (
	"context"
	"net/http"

	"github.com/okian/tempmap/internal/adapters/http/api"
)

// Prefix is the URL path the assets are mounted under.
const Prefix = "/static/"

// Register attaches the embedded asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	files := http.StripPrefix(Prefix, http.FileServer(FS()))
	mux.HandleFunc(Prefix, func(w http.ResponseWriter, r *http.Request) {
		if !api.AllowGET(w, r) {
			return
		}
		files.ServeHTTP(w, r)
	})
}
