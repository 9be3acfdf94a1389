package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StoreMetrics covers the storefront's interesting counters: HTTP traffic,
// state-store fan-outs, cart activity, and checkout outcomes per step.
type StoreMetrics struct {
	Requests           *prometheus.CounterVec
	LatencyMS          *prometheus.HistogramVec
	StateNotifications prometheus.Counter
	CartOps            *prometheus.CounterVec
	Checkouts          *prometheus.CounterVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production; tests use a fresh registry so repeated registration cannot
// panic.
func New(reg prometheus.Registerer) *StoreMetrics {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "corral",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"handler", "status"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "corral",
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"handler"})
	notifications := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "corral",
		Name:      "state_notifications_total",
		Help:      "State store fan-out cycles delivered to subscribers.",
	})
	cartOps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "corral",
		Name:      "cart_operations_total",
		Help:      "Cart mutations by operation.",
	}, []string{"op"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "corral",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by outcome (success or the step that failed).",
	}, []string{"outcome"})

	reg.MustRegister(requests, latency, notifications, cartOps, checkouts)
	return &StoreMetrics{
		Requests:           requests,
		LatencyMS:          latency,
		StateNotifications: notifications,
		CartOps:            cartOps,
		Checkouts:          checkouts,
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
