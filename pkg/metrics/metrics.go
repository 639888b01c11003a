// Package metrics records dispatch and composition metrics on a private
// Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// UnmatchedRoute labels requests that resolved to no mounted pattern.
const UnmatchedRoute = "unmatched"

// Recorder owns the metric collectors for the API surface.
type Recorder struct {
	registry      *prometheus.Registry
	dispatched    *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	routes        prometheus.Gauge
	compositions  *prometheus.CounterVec
	documentBytes prometheus.Gauge
}

// New creates a Recorder whose metric names start with namespace.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()

	r := &Recorder{
		registry: reg,
		dispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_total",
				Help:      "Requests dispatched, by method, route pattern and status",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Handler duration in seconds, by method and route pattern",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		routes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mounted_routes",
			Help:      "Operations in the live dispatch table",
		}),
		compositions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "document_compositions_total",
				Help:      "Document compositions, by result",
			},
			[]string{"result"},
		),
		documentBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "document_bytes",
			Help:      "Size of the published JSON document",
		}),
	}

	reg.MustRegister(
		r.dispatched,
		r.duration,
		r.routes,
		r.compositions,
		r.documentBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveDispatch records one dispatched request.
func (r *Recorder) ObserveDispatch(method, route string, status int, elapsed time.Duration) {
	r.dispatched.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveComposition records a composition attempt and, on success, the
// published table and document sizes.
func (r *Recorder) ObserveComposition(err error, routes, documentBytes int) {
	if err != nil {
		r.compositions.WithLabelValues("error").Inc()
		return
	}
	r.compositions.WithLabelValues("ok").Inc()
	r.routes.Set(float64(routes))
	r.documentBytes.Set(float64(documentBytes))
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
