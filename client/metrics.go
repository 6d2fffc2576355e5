package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "better_bites_client",
		Name:      "day_cache_hits_total",
		Help:      "Day-partitioned cache reads served without a fetch.",
	}, []string{"store"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "better_bites_client",
		Name:      "day_cache_misses_total",
		Help:      "Day-partitioned cache reads that required a backend fetch.",
	}, []string{"store"})

	backendFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "better_bites_client",
		Name:      "backend_failures_total",
		Help:      "Backend fetch failures absorbed by cached fallbacks.",
	}, []string{"store"})
)

// storeMetrics feeds a named store's cache events into the process-wide
// Prometheus counters.
type storeMetrics struct{ store string }

func (m storeMetrics) Hit()     { cacheHits.WithLabelValues(m.store).Inc() }
func (m storeMetrics) Miss()    { cacheMisses.WithLabelValues(m.store).Inc() }
func (m storeMetrics) Failure() { backendFailures.WithLabelValues(m.store).Inc() }
