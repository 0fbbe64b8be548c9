// Package metrics registers the Prometheus counters/histograms the matcher
// service exposes on GET /metrics, grounded on the teacher's promhttp
// wiring in cmd/rides/main.go.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MatchesProcessed counts completed Match calls by trip direction.
	MatchesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ridematch_matches_processed_total",
		Help: "Total number of matching runs completed, by trip direction.",
	}, []string{"direction"})

	// UnmatchedPassengers counts unmatched passengers by reason.
	UnmatchedPassengers = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ridematch_unmatched_passengers_total",
		Help: "Total number of passengers left unmatched, by reason.",
	}, []string{"reason"})

	// MatchingDuration observes matching-call latency in milliseconds.
	MatchingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "ridematch_matching_duration_ms",
		Help:    "Matching call duration in milliseconds.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 14), // 1ms .. ~8s
	})
)

// ObserveResult records the counters for one completed matching run.
func ObserveResult(direction string, unmatchedReasons []string, durationMs float64) {
	MatchesProcessed.WithLabelValues(direction).Inc()
	for _, reason := range unmatchedReasons {
		UnmatchedPassengers.WithLabelValues(reason).Inc()
	}
	MatchingDuration.Observe(durationMs)
}
