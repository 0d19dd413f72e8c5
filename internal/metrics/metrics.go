// Package metrics exposes Prometheus metrics for the fires endpoint.
package metrics

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Provider struct {
	reg *prometheus.Registry

	RequestsTotal *prometheus.CounterVec
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	QueryDuration prometheus.Histogram
	SweepRemoved  prometheus.Counter
}

func New() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	p := &Provider{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wfca_fires_requests_total",
				Help: "Active-fires requests by outcome.",
			},
			[]string{"outcome"},
		),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wfca_fires_cache_hits_total",
			Help: "Responses served from the cache store.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wfca_fires_cache_misses_total",
			Help: "Responses that required a database query.",
		}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wfca_fires_query_duration_seconds",
			Help:    "Active-fires database query latency.",
			Buckets: prometheus.DefBuckets,
		}),
		SweepRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wfca_fires_cache_sweep_removed_total",
			Help: "Stale cache entries removed by background sweeps.",
		}),
	}
	reg.MustRegister(p.RequestsTotal, p.CacheHits, p.CacheMisses, p.QueryDuration, p.SweepRemoved)
	return p
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{})
}

// InstrumentRequests counts requests on the wrapped routes by outcome: "ok"
// for anything the handler answered, "error" for 5xx.
func (p *Provider) InstrumentRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		outcome := "ok"
		if ww.Status() >= http.StatusInternalServerError {
			outcome = "error"
		}
		p.RequestsTotal.WithLabelValues(outcome).Inc()
	})
}
