package metrics

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created with defaults", func() {
				So(manager, ShouldNotBeNil)
				So(manager.Enabled(), ShouldBeTrue)
				So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
				So(manager.namespace, ShouldEqual, "tempmap")
				So(manager.subsystem, ShouldEqual, "heatmap")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(false),
				WithRefreshInterval(5*time.Second),
				WithCustomLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then the options should be applied", func() {
				So(manager.namespace, ShouldEqual, "test_namespace")
				So(manager.subsystem, ShouldEqual, "test_subsystem")
				So(manager.histogramBuckets, ShouldResemble, []float64{0.1, 0.5, 1.0})
				So(manager.Enabled(), ShouldBeFalse)
				So(manager.RefreshInterval(), ShouldEqual, 5*time.Second)
			})

			Convey("And metric names should use the namespace and constant labels", func() {
				manager.cellsRendered.Set(3)
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				found := false
				for _, mf := range families {
					if mf.GetName() == "test_namespace_test_subsystem_cells_rendered" {
						found = true
						So(mf.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestMetricsOptionsValidation(t *testing.T) {
	Convey("Given empty option values", t, func() {
		manager := NewManager(
			WithNamespace(""),
			WithSubsystem(""),
			WithHistogramBuckets(nil),
			WithRefreshInterval(-time.Second),
			WithCustomLabels(nil),
			WithPrometheusRegistry(prometheus.NewRegistry()),
		)

		Convey("Then defaults should be kept", func() {
			So(manager.namespace, ShouldEqual, "tempmap")
			So(manager.subsystem, ShouldEqual, "heatmap")
			So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			So(manager.RefreshInterval(), ShouldEqual, defaultRefreshInterval)
			So(manager.customLabels, ShouldNotBeNil)
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording fetches", func() {
			okBefore := testutil.ToFloat64(globalManager.fetchTotal.WithLabelValues("ok"))
			errBefore := testutil.ToFloat64(globalManager.fetchTotal.WithLabelValues("decode_error"))

			RecordFetch("ok", 120)
			RecordFetch("decode_error", 40)

			Convey("Then the counters should move per outcome", func() {
				So(testutil.ToFloat64(globalManager.fetchTotal.WithLabelValues("ok")), ShouldEqual, okBefore+1)
				So(testutil.ToFloat64(globalManager.fetchTotal.WithLabelValues("decode_error")), ShouldEqual, errBefore+1)
			})
		})

		Convey("When updating the dataset shape", func() {
			UpdateDatasetShape(3153, 263)

			Convey("Then the gauges should hold the values", func() {
				So(testutil.ToFloat64(globalManager.datasetRecords), ShouldEqual, 3153)
				So(testutil.ToFloat64(globalManager.datasetYears), ShouldEqual, 263)
			})
		})

		Convey("When recording a render", func() {
			RecordRender(12, 4, map[string]int{"#FFEA85": 3, "#E21818": 1})

			Convey("Then cell gauges should be set", func() {
				So(testutil.ToFloat64(globalManager.cellsRendered), ShouldEqual, 4)
				So(testutil.ToFloat64(globalManager.cellsByBucket.WithLabelValues("#FFEA85")), ShouldEqual, 3)
				So(testutil.ToFloat64(globalManager.cellsByBucket.WithLabelValues("#E21818")), ShouldEqual, 1)
			})
		})

		Convey("When recording HTTP and error metrics", func() {
			Convey("Then nothing should panic", func() {
				So(func() {
					RecordHTTPRequest("page", "GET", "200")
					RecordHTTPRequestDuration("page", "GET", "200", 5.0)
					RecordErrorByComponent("source", "status_error")
					RecordErrorByType("server_error", "high")
					RecordErrorByEndpoint("svg", "GET", "server_error")
					RecordErrorLatency("http", "server_error", 3)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording system metrics", func() {
			UpdateSystemMemoryUsage(1 << 20)
			UpdateSystemGoroutineCount(12)
			RecordSystemGCPauseTime(0.4)

			Convey("Then gauges should be set", func() {
				So(testutil.ToFloat64(globalManager.systemMemoryUsage), ShouldEqual, 1<<20)
				So(testutil.ToFloat64(globalManager.systemGoroutineCount), ShouldEqual, 12)
			})
		})

		Convey("When gathering the custom registry", func() {
			RecordFetch("ok", 1)
			families, err := GetRegistry().Gather()

			Convey("Then the service metrics should be exposed", func() {
				So(err, ShouldBeNil)
				names := make([]string, 0, len(families))
				for _, mf := range families {
					names = append(names, mf.GetName())
				}
				joined := strings.Join(names, ",")
				So(joined, ShouldContainSubstring, "tempmap_heatmap_fetch_total")
				So(joined, ShouldNotContainSubstring, "go_goroutines")
			})
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given concurrent recorders", t, func() {
		before := testutil.ToFloat64(globalManager.httpRequests.WithLabelValues("concurrency", "GET", "200"))

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				RecordHTTPRequest("concurrency", "GET", "200")
			}()
		}
		wg.Wait()

		Convey("Then every increment should be counted", func() {
			So(testutil.ToFloat64(globalManager.httpRequests.WithLabelValues("concurrency", "GET", "200")), ShouldEqual, before+50)
		})
	})
}
