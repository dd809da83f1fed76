package observability

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prom exports the client metrics on its own registry.
type Prom struct {
	registry *prometheus.Registry

	lookupLatency   *prometheus.HistogramVec
	backendLatency  *prometheus.HistogramVec
	httpLatency     *prometheus.HistogramVec
	purchases       *prometheus.CounterVec
	purchaseLatency prometheus.Histogram
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	invalidations   prometheus.Counter
}

func NewProm(namespace string) *Prom {
	buckets := prometheus.ExponentialBuckets(0.1, 2.0, 16)
	p := &Prom{
		registry: prometheus.NewRegistry(),
		lookupLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_latency_milliseconds",
			Help:      "Catalog lookup latency by source",
			Buckets:   buckets,
		}, []string{"source"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_milliseconds",
			Help:      "Backend request latency by service, replica and status",
			Buckets:   buckets,
		}, []string{"service", "replica", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_milliseconds",
			Help:      "Served HTTP request latency",
			Buckets:   buckets,
		}, []string{"method", "route", "status"}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchases_total",
			Help:      "Purchase transactions by outcome",
		}, []string{"outcome"}),
		purchaseLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "purchase_milliseconds",
			Help:      "End-to-end purchase transaction latency",
			Buckets:   buckets,
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Catalog reads served from the local cache",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Catalog reads that went to a replica",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Cache entries removed by purchases",
		}),
	}
	p.registry.MustRegister(
		p.lookupLatency,
		p.backendLatency,
		p.httpLatency,
		p.purchases,
		p.purchaseLatency,
		p.cacheHits,
		p.cacheMisses,
		p.invalidations,
	)
	return p
}

func (p *Prom) Registry() *prometheus.Registry { return p.registry }

func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func (p *Prom) ObserveLookup(source string, cacheMs, netMs float64) {
	p.lookupLatency.WithLabelValues(source).Observe(cacheMs + netMs)
}

func (p *Prom) ObserveBackend(service, replica string, status int, durMs float64) {
	p.backendLatency.WithLabelValues(service, replica, strconv.Itoa(status)).Observe(durMs)
}

func (p *Prom) ObservePurchase(outcome string, durMs float64) {
	p.purchases.WithLabelValues(outcome).Inc()
	p.purchaseLatency.Observe(durMs)
}

func (p *Prom) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpLatency.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs)
}

func (p *Prom) IncCacheHit()  { p.cacheHits.Inc() }
func (p *Prom) IncCacheMiss() { p.cacheMisses.Inc() }

func (p *Prom) IncInvalidation(n int) {
	p.invalidations.Add(float64(n))
}
