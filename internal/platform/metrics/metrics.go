package metrics

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP holds the request collectors registered for the API server.
type HTTP struct {
	namespace string
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

func NewHTTP(namespace string) *HTTP {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests handled, partitioned by route pattern, method and status code.",
	}, []string{"route", "method", "code"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route pattern and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	registry.MustRegister(requests, duration)

	return &HTTP{
		namespace: namespace,
		registry:  registry,
		requests:  requests,
		duration:  duration,
	}
}

func (m *HTTP) Registry() *prometheus.Registry {
	return m.registry
}

func (m *HTTP) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Observe records one finished request. route should be the mux pattern,
// never the raw path, to keep label cardinality bounded.
func (m *HTTP) Observe(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// CacheSource reports cumulative cache counters.
type CacheSource interface {
	CacheCounters() (hits, misses uint64, entries int)
}

// RegisterCache exposes hit, miss and size series for a named cache.
func (m *HTTP) RegisterCache(name string, src CacheSource) error {
	labels := prometheus.Labels{"cache": name}
	hits := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "cache",
		Name:        "hits_total",
		Help:        "Cache lookups answered from memory.",
		ConstLabels: labels,
	}, func() float64 {
		h, _, _ := src.CacheCounters()
		return float64(h)
	})
	misses := prometheus.NewCounterFunc(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   "cache",
		Name:        "misses_total",
		Help:        "Cache lookups that went to the repository.",
		ConstLabels: labels,
	}, func() float64 {
		_, ms, _ := src.CacheCounters()
		return float64(ms)
	})
	entries := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   "cache",
		Name:        "entries",
		Help:        "Entries currently held, expired ones included until evicted.",
		ConstLabels: labels,
	}, func() float64 {
		_, _, n := src.CacheCounters()
		return float64(n)
	})
	return m.Register(hits, misses, entries)
}

// RegisterDB exposes database/sql pool statistics.
func (m *HTTP) RegisterDB(db *sql.DB, dbName string) error {
	return m.Register(collectors.NewDBStatsCollector(db, dbName))
}

func (m *HTTP) Register(cs ...prometheus.Collector) error {
	for _, c := range cs {
		if err := m.registry.Register(c); err != nil {
			return fmt.Errorf("register collector: %w", err)
		}
	}
	return nil
}
