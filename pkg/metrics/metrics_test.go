package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsOptions(t *testing.T) {
	Convey("Given metrics options", t, func() {
		Convey("When creating options", func() {
			namespaceOpt := WithNamespace("test-namespace")
			subsystemOpt := WithSubsystem("test-subsystem")
			metricPrefixOpt := WithMetricPrefix("test-prefix")
			histogramBucketsOpt := WithHistogramBuckets([]float64{0.1, 0.5, 1.0})
			metricsEnabledOpt := WithMetricsEnabled(true)
			refreshIntervalOpt := WithRefreshInterval(5 * time.Second)
			customLabelsOpt := WithCustomLabels(map[string]string{"env": "test"})

			Convey("Then they should be valid functions", func() {
				So(namespaceOpt, ShouldNotBeNil)
				So(subsystemOpt, ShouldNotBeNil)
				So(metricPrefixOpt, ShouldNotBeNil)
				So(histogramBucketsOpt, ShouldNotBeNil)
				So(metricsEnabledOpt, ShouldNotBeNil)
				So(refreshIntervalOpt, ShouldNotBeNil)
				So(customLabelsOpt, ShouldNotBeNil)
			})
		})
	})
}

func TestManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithCustomLabels(map[string]string{"env": "test", "version": "1.0"}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given metrics recording", t, func() {
		Convey("When recording HTTP metrics", func() {
			Convey("Then it should record requests", func() {
				So(func() {
					RecordHTTPRequest("/onlineResults", "GET", "200")
					RecordHTTPRequest("/latest", "GET", "200")
					RecordHTTPRequest("/categories", "GET", "500")
				}, ShouldNotPanic)
			})

			Convey("And it should record request duration", func() {
				So(func() {
					RecordHTTPRequestDuration("/onlineResults", "GET", "200", 12.5)
					RecordHTTPRequestDuration("/latest", "GET", "200", 3.2)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording store metrics", func() {
			Convey("Then it should record query latency", func() {
				So(func() {
					RecordStoreQueryLatency(5.0)
					RecordStoreQueryLatency(12.0)
				}, ShouldNotPanic)
			})

			Convey("And it should record query errors and retries", func() {
				So(func() {
					RecordStoreQueryError()
					RecordStoreQueryRetry()
					RecordStoreQueryRetry()
				}, ShouldNotPanic)
			})
		})

		Convey("When recording cache metrics", func() {
			So(func() {
				RecordCacheHit()
				RecordCacheHit()
				RecordCacheMiss()
			}, ShouldNotPanic)
		})

		Convey("When recording shaping metrics", func() {
			So(func() {
				RecordCompetitorsShaped(24)
				RecordAggregationLatency(42.0)
			}, ShouldNotPanic)
		})

		Convey("When updating pool gauges", func() {
			So(func() {
				UpdateDBPoolConns(10, 7, 3)
			}, ShouldNotPanic)
		})

		Convey("When recording error metrics", func() {
			So(func() {
				RecordErrorByType("store_query", "error")
				RecordErrorByEndpoint("/onlineResults", "GET", "store_query")
				RecordErrorLatency("store", "timeout", 500.0)
			}, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(64 << 20)
				UpdateSystemGoroutineCount(42)
				RecordSystemGCPauseTime(0.8)
			}, ShouldNotPanic)
		})
	})
}

func TestGetRegistry(t *testing.T) {
	Convey("Given the global manager", t, func() {
		Convey("When fetching the registry", func() {
			registry := GetRegistry()

			Convey("Then it should be non-nil and gatherable", func() {
				So(registry, ShouldNotBeNil)
				families, err := registry.Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeNil)
			})
		})
	})
}
