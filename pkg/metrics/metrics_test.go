package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
				So(manager.namespace, ShouldEqual, "explorer")
				So(manager.subsystem, ShouldEqual, "ui")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithConstLabels(map[string]string{"env": "test"}),
				WithPrometheusRegistry(registry),
			)
			manager.sessionsCreated.Inc()

			Convey("Then metrics should carry the namespace and labels", func() {
				families, err := registry.Gather()
				So(err, ShouldBeNil)

				var found bool
				for _, mf := range families {
					if mf.GetName() == "test_namespace_test_subsystem_sessions_created_total" {
						found = true
						So(mf.GetMetric()[0].GetLabel()[0].GetName(), ShouldEqual, "env")
						So(mf.GetMetric()[0].GetLabel()[0].GetValue(), ShouldEqual, "test")
					}
				}
				So(found, ShouldBeTrue)
			})
		})

		Convey("When empty options are passed", func() {
			manager := NewManager(
				WithNamespace(""),
				WithSubsystem(""),
				WithHistogramBuckets(nil),
				WithPrometheusRegistry(nil),
				WithConstLabels(nil),
				WithPrometheusRegistry(prometheus.NewRegistry()),
			)

			Convey("Then defaults should be kept", func() {
				So(manager.namespace, ShouldEqual, "explorer")
				So(manager.histogramBuckets, ShouldResemble, prometheus.DefBuckets)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording transitions", func() {
			before := testutil.ToFloat64(globalManager.transitions.WithLabelValues("next"))
			RecordTransition("next")
			RecordTransition("next")

			Convey("Then the per-op counter should increase", func() {
				So(testutil.ToFloat64(globalManager.transitions.WithLabelValues("next")), ShouldEqual, before+2)
			})
		})

		Convey("When recording session metrics", func() {
			created := testutil.ToFloat64(globalManager.sessionsCreated)
			expired := testutil.ToFloat64(globalManager.sessionsExpired)
			RecordSessionCreated()
			RecordSessionsExpired(3)
			UpdateSessionsActive(7)

			Convey("Then the values should be reflected", func() {
				So(testutil.ToFloat64(globalManager.sessionsCreated), ShouldEqual, created+1)
				So(testutil.ToFloat64(globalManager.sessionsExpired), ShouldEqual, expired+3)
				So(testutil.ToFloat64(globalManager.sessionsActive), ShouldEqual, 7)
			})
		})

		Convey("When recording HTTP, error, highlight and system metrics", func() {
			Convey("Then nothing should panic", func() {
				So(func() {
					RecordHTTPRequest("catalog", "GET", "200")
					RecordHTTPRequestDuration("catalog", "GET", "200", 5.0)
					RecordErrorByType("not_found", "medium")
					RecordErrorByEndpoint("session", "GET", "not_found")
					RecordErrorLatency("http", "not_found", 1.0)
					RecordHighlightLatency(0.3)
					RecordHighlightCacheHit()
					RecordHighlightError()
					RecordSessionEvicted()
					UpdateSystemMemoryUsage(1024)
					UpdateSystemGoroutineCount(10)
					RecordSystemGCPauseTime(0.5)
				}, ShouldNotPanic)
			})
		})

		Convey("When reading the registry", func() {
			Convey("Then it should be the custom registry", func() {
				So(GetRegistry(), ShouldEqual, customRegistry)
			})
		})
	})
}
