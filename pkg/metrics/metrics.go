// Package metrics records report build metrics with Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	builds = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_builds_total",
			Help: "Total number of report builds, partitioned by report and status.",
		},
		[]string{"report", "status"},
	)

	buildDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "report_build_duration_seconds",
			Help:    "Duration of report builds in seconds, partitioned by report and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"report", "status"},
	)

	columns = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "report_synthesized_columns",
			Help: "Number of columns synthesized from price field options in the last successful build.",
		},
		[]string{"report"},
	)

	records = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "report_records",
			Help: "Number of records in the last successful build.",
		},
		[]string{"report"},
	)
)

func init() {
	registry.MustRegister(builds, buildDuration, columns, records)
}

// RecordBuild records the outcome of a report build.
func RecordBuild(report string, err error, d time.Duration, columnCount, recordCount int) {
	status := "success"
	if err != nil {
		status = "failure"
	}

	builds.WithLabelValues(report, status).Inc()
	buildDuration.WithLabelValues(report, status).Observe(d.Seconds())

	if err == nil {
		columns.WithLabelValues(report).Set(float64(columnCount))
		records.WithLabelValues(report).Set(float64(recordCount))
	}
}

// Registry returns the registry all report metrics are registered with.
func Registry() *prometheus.Registry {
	return registry
}

// Handler serves the metrics in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
