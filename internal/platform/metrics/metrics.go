// Package metrics holds the Prometheus collectors of the reporting service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hisaabi"

// ReportsGenerated counts report invocations by report type and outcome.
var ReportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "reports",
	Name:      "generated_total",
	Help:      "Total report invocations by report type and outcome.",
}, []string{"report_type", "outcome"})

// ReportDuration tracks how long report generation takes.
var ReportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "reports",
	Name:      "generation_seconds",
	Help:      "Report generation latency in seconds.",
	Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
}, []string{"report_type"})

// HTTPRequests counts API requests by route and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "requests_total",
	Help:      "Total HTTP requests by method, route and status.",
}, []string{"method", "route", "status"})

// HTTPDuration tracks API latency per route.
var HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: namespace,
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route"})

// ReportRecorder feeds report outcomes into the collectors above.
type ReportRecorder struct{}

// NewReportRecorder returns a recorder backed by the package collectors.
func NewReportRecorder() *ReportRecorder {
	return &ReportRecorder{}
}

// ObserveReport records one report invocation.
func (ReportRecorder) ObserveReport(reportType, outcome string, elapsed time.Duration) {
	ReportsGenerated.WithLabelValues(reportType, outcome).Inc()
	ReportDuration.WithLabelValues(reportType).Observe(elapsed.Seconds())
}
