package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/okian/tempmap/internal/adapters/http/api"
	"github.com/okian/tempmap/internal/domain/model"
	"github.com/okian/tempmap/internal/render"
	"github.com/okian/tempmap/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// mockDeps is a fixed-result stand-in for the service.
type mockDeps struct {
	chart     *render.Chart
	dataset   model.Dataset
	loaded    bool
	err       error
	showError bool
}

func (m *mockDeps) Chart() *render.Chart            { return m.chart }
func (m *mockDeps) Dataset() (model.Dataset, bool) { return m.dataset, m.loaded }
func (m *mockDeps) Err() error                      { return m.err }
func (m *mockDeps) ShowError() bool                 { return m.showError }
func (m *mockDeps) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true, "cells": len(m.chart.Cells)}
}

func loadedDeps() *mockDeps {
	ds := model.Dataset{
		BaseTemperature: 8.66,
		MonthlyVariance: []model.MonthRecord{
			{Year: 1900, Month: 1, Variance: -0.288},
			{Year: 1901, Month: 1, Variance: 1.2},
		},
	}
	return &mockDeps{chart: render.Render(ds), dataset: ds, loaded: true}
}

func failedDeps() *mockDeps {
	return &mockDeps{chart: render.Render(model.Dataset{}), err: errors.New("dial tcp: refused")}
}

func newMux(deps api.Dependencies) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(deps, logger.Get()).Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, http.NoBody)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestPageRoute(t *testing.T) {
	Convey("Given a server with a rendered chart", t, func() {
		mux := newMux(loadedDeps())

		Convey("When requesting /", func() {
			w := do(mux, http.MethodGet, "/")

			Convey("Then it should return the HTML page with the SVG", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "text/html; charset=utf-8")
				So(w.Body.String(), ShouldContainSubstring, "<svg")
				So(w.Body.String(), ShouldContainSubstring, `id="tooltip"`)
			})
		})

		Convey("When requesting an unknown path", func() {
			w := do(mux, http.MethodGet, "/nope")

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When posting to /", func() {
			w := do(mux, http.MethodPost, "/")

			Convey("Then it should return 405", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Header().Get("Allow"), ShouldEqual, "GET, HEAD")
			})
		})
	})

	Convey("Given a server whose fetch failed", t, func() {
		Convey("When the error state is disabled", func() {
			w := do(newMux(failedDeps()), http.MethodGet, "/")

			Convey("Then the page should render with an empty container", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldNotContainSubstring, "<svg")
				So(w.Body.String(), ShouldNotContainSubstring, "unavailable")
			})
		})

		Convey("When the error state is enabled", func() {
			deps := failedDeps()
			deps.showError = true
			w := do(newMux(deps), http.MethodGet, "/")

			Convey("Then a generic message should be shown without the cause", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "Temperature data is currently unavailable.")
				So(w.Body.String(), ShouldNotContainSubstring, "refused")
			})
		})
	})
}

func TestSVGRoute(t *testing.T) {
	Convey("Given a server with a rendered chart", t, func() {
		mux := newMux(loadedDeps())

		Convey("When requesting /chart.svg", func() {
			w := do(mux, http.MethodGet, "/chart.svg")

			Convey("Then it should return the SVG document", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldEqual, "image/svg+xml")
				So(strings.Count(w.Body.String(), `class="cell"`), ShouldEqual, 2)
			})
		})
	})

	Convey("Given a server whose fetch failed", t, func() {
		w := do(newMux(failedDeps()), http.MethodGet, "/chart.svg")

		Convey("Then /chart.svg should return 503 JSON", func() {
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
			var body map[string]string
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)
			So(body["code"], ShouldEqual, "no_data")
			So(body["message"], ShouldEqual, api.ErrNoData.Error())
		})
	})
}

func TestDatasetRoute(t *testing.T) {
	Convey("Given a server with a loaded dataset", t, func() {
		w := do(newMux(loadedDeps()), http.MethodGet, "/dataset")

		Convey("Then /dataset should return the source JSON shape", func() {
			So(w.Code, ShouldEqual, http.StatusOK)
			var ds model.Dataset
			So(json.Unmarshal(w.Body.Bytes(), &ds), ShouldBeNil)
			So(ds.BaseTemperature, ShouldEqual, 8.66)
			So(ds.MonthlyVariance, ShouldHaveLength, 2)
			So(w.Body.String(), ShouldContainSubstring, `"monthlyVariance"`)
		})
	})

	Convey("Given a server whose fetch failed", t, func() {
		w := do(newMux(failedDeps()), http.MethodGet, "/dataset")

		Convey("Then /dataset should return 503", func() {
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
		})
	})
}

func TestTooltipRoute(t *testing.T) {
	Convey("Given a server with a loaded dataset", t, func() {
		mux := newMux(loadedDeps())

		Convey("When hovering a known cell", func() {
			w := do(mux, http.MethodGet, "/tooltip?year=1900&month=1&x=100&y=50")

			Convey("Then it should return the visible tooltip state", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var st map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &st), ShouldBeNil)
				So(st["visible"], ShouldEqual, true)
				So(st["opacity"], ShouldEqual, 0.9)
				So(st["left"], ShouldEqual, 120)
				So(st["top"], ShouldEqual, 70)
				So(st["dataYear"], ShouldEqual, 1900)
				So(st["text"], ShouldEqual, "January 1900<br/>8.4℃<br/>-0.29℃")
			})
		})

		Convey("When the cell does not exist", func() {
			w := do(mux, http.MethodGet, "/tooltip?year=1800&month=1")

			Convey("Then it should return 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the query is malformed", func() {
			for _, q := range []string{"", "?year=abc&month=1", "?year=1900", "?year=1900&month=1&x=left"} {
				w := do(mux, http.MethodGet, "/tooltip"+q)
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			}
		})
	})

	Convey("Given a server whose fetch failed", t, func() {
		w := do(newMux(failedDeps()), http.MethodGet, "/tooltip?year=1900&month=1")

		Convey("Then /tooltip should return 503", func() {
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
		})
	})
}

func TestStatsAndHealthRoutes(t *testing.T) {
	Convey("Given a server", t, func() {
		mux := newMux(loadedDeps())

		Convey("When requesting /stats", func() {
			w := do(mux, http.MethodGet, "/stats")

			Convey("Then it should return the stats JSON", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var stats map[string]interface{}
				So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
				So(stats["cells"], ShouldEqual, 2)
			})
		})

		Convey("When requesting /healthz", func() {
			_ = do(mux, http.MethodGet, "/stats")
			w := do(mux, http.MethodGet, "/healthz")

			Convey("Then it should expose the service metrics", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "tempmap_heatmap_http_requests_total")
			})
		})

		Convey("When deleting /stats", func() {
			w := do(mux, http.MethodDelete, "/stats")

			Convey("Then it should return 405", func() {
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	Convey("Given the request id middleware", t, func() {
		var seen string
		h := api.RequestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
			seen = api.RequestIDFromContext(r.Context())
		})

		Convey("When the client sends no id", func() {
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

			Convey("Then a UUID should be generated and echoed", func() {
				_, err := uuid.Parse(seen)
				So(err, ShouldBeNil)
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, seen)
			})
		})

		Convey("When the client sends an id", func() {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			req.Header.Set(api.RequestIDHeader, "abc-123")
			w := httptest.NewRecorder()
			h(w, req)

			Convey("Then it should be propagated unchanged", func() {
				So(seen, ShouldEqual, "abc-123")
				So(w.Header().Get(api.RequestIDHeader), ShouldEqual, "abc-123")
			})
		})

		Convey("When the context has no id", func() {
			So(api.RequestIDFromContext(context.Background()), ShouldBeEmpty)
		})
	})
}

func TestRegisterWithNilMux(t *testing.T) {
	Convey("Given a server", t, func() {
		srv := api.NewServer(loadedDeps(), nil)

		Convey("Then registering on a nil mux should panic", func() {
			So(func() { srv.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
