// Package metrics exposes the Prometheus collectors for catalog loads,
// quotes and HTTP traffic.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jaras"

var (
	metricsOnce sync.Once

	catalogLoads        *prometheus.CounterVec
	catalogLoadDuration prometheus.Histogram
	catalogPlans        prometheus.Gauge
	catalogAddons       prometheus.Gauge
	catalogCacheLookups *prometheus.CounterVec

	quotesTotal *prometheus.CounterVec

	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	rateLimited         prometheus.Counter
)

func initMetrics() {
	catalogLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "loads_total",
			Help:      "Catalog load attempts by outcome.",
		},
		[]string{"outcome"},
	)

	catalogLoadDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "load_duration_seconds",
			Help:      "Time spent reading the catalog from its source.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)

	catalogPlans = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "plans",
		Help:      "Active plans in the current snapshot.",
	})

	catalogAddons = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "catalog",
		Name:      "addons",
		Help:      "Active add-ons in the current snapshot.",
	})

	catalogCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "cache_lookups_total",
			Help:      "Catalog cache lookups by result (hit, miss, error).",
		},
		[]string{"result"},
	)

	quotesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pricing",
			Name:      "quotes_total",
			Help:      "Quotes computed by flow.",
		},
		[]string{"flow"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration observed at the API layer.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled by the API.",
		},
		[]string{"method", "route", "status"},
	)

	rateLimited = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	})

	prometheus.MustRegister(
		catalogLoads, catalogLoadDuration, catalogPlans, catalogAddons, catalogCacheLookups,
		quotesTotal,
		httpRequestDuration, httpRequestsTotal, rateLimited,
	)
}

func ensure() {
	metricsOnce.Do(initMetrics)
}

// RecordCatalogLoad records one load attempt. outcome is "success",
// "failure" or "cache".
func RecordCatalogLoad(outcome string, elapsed time.Duration, plans, addons int) {
	ensure()
	catalogLoads.WithLabelValues(outcome).Inc()
	if outcome == "failure" {
		return
	}
	if outcome == "success" {
		catalogLoadDuration.Observe(elapsed.Seconds())
	}
	catalogPlans.Set(float64(plans))
	catalogAddons.Set(float64(addons))
}

func RecordCacheLookup(result string) {
	ensure()
	catalogCacheLookups.WithLabelValues(result).Inc()
}

func RecordQuote(flow string) {
	ensure()
	quotesTotal.WithLabelValues(flow).Inc()
}

func RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	ensure()
	if route == "" {
		route = "unmatched"
	}
	code := strconv.Itoa(status)
	httpRequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
	httpRequestsTotal.WithLabelValues(method, route, code).Inc()
}

func RecordRateLimited() {
	ensure()
	rateLimited.Inc()
}
