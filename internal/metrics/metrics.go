// Package metrics provides Prometheus metrics for carton allocation and box
// list exports.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors registered for one service instance.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	AllocationsTotal    *prometheus.CounterVec
	AllocationDuration  prometheus.Histogram
	CartonsAllocated    *prometheus.CounterVec
	ExportsTotal        *prometheus.CounterVec
	BoxRangesExported   prometheus.Counter
}

// New creates a Metrics set on its own registry, including Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		AllocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "carton_allocations_total",
				Help: "Total number of carton allocation runs",
			},
			[]string{"status"},
		),
		AllocationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "carton_allocation_duration_seconds",
				Help:    "Carton allocation duration in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
		),
		CartonsAllocated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cartons_allocated_total",
				Help: "Total number of cartons produced by allocations",
			},
			[]string{"kind"},
		),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "box_list_exports_total",
				Help: "Total number of box list exports",
			},
			[]string{"status"},
		),
		BoxRangesExported: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "box_ranges_exported_total",
				Help: "Total number of box ranges rendered by exports",
			},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.AllocationsTotal,
		m.AllocationDuration,
		m.CartonsAllocated,
		m.ExportsTotal,
		m.BoxRangesExported,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one served request.
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAllocation records an allocation run and the cartons it produced.
func (m *Metrics) RecordAllocation(fullBoxes, combinedBoxes int, duration time.Duration, err error) {
	m.AllocationDuration.Observe(duration.Seconds())
	if err != nil {
		m.AllocationsTotal.WithLabelValues("error").Inc()
		return
	}
	m.AllocationsTotal.WithLabelValues("success").Inc()
	m.CartonsAllocated.WithLabelValues("full").Add(float64(fullBoxes))
	m.CartonsAllocated.WithLabelValues("combined").Add(float64(combinedBoxes))
}

// RecordExport records a box list export.
func (m *Metrics) RecordExport(ranges int, err error) {
	if err != nil {
		m.ExportsTotal.WithLabelValues("error").Inc()
		return
	}
	m.ExportsTotal.WithLabelValues("success").Inc()
	m.BoxRangesExported.Add(float64(ranges))
}
