// Package metrics exposes Prometheus counters for the dashboard server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so tests can build as many instances as they need.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry        *prometheus.Registry
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	filterTotal     prometheus.Counter
	filteredRows    prometheus.Histogram
	datasetRows     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "penguins",
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status code.",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "penguins",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		filterTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "penguins",
			Name:      "filter_evaluations_total",
			Help:      "Filtered views derived from the dataset.",
		}),
		filteredRows: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "penguins",
			Name:      "filtered_rows",
			Help:      "Rows in each derived filtered view.",
			Buckets:   []float64{0, 1, 10, 50, 100, 200, 300, 400},
		}),
		datasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "penguins",
			Name:      "dataset_rows",
			Help:      "Rows in the loaded dataset.",
		}),
	}

	m.registry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.filterTotal,
		m.filteredRows,
		m.datasetRows,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveFilter records one derivation of a filtered view.
func (m *Metrics) ObserveFilter(rows int) {
	if m == nil {
		return
	}
	m.filterTotal.Inc()
	m.filteredRows.Observe(float64(rows))
}

func (m *Metrics) SetDatasetRows(rows int) {
	if m == nil {
		return
	}
	m.datasetRows.Set(float64(rows))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
