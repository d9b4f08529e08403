package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the score HTTP handlers
	ScoreRequestLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "eco_score_request_latency_seconds",
		Help:    "Latency of score computation handlers",
		Buckets: prometheus.DefBuckets,
	})

	// Scores served, by letter grade and cache outcome
	ScoresServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eco_scores_served_total",
			Help: "Count of product scores served, by letter grade and cache hit/miss.",
		},
		[]string{"letter", "cache"},
	)

	// Partner CSV uploads received
	PartnerUploadsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eco_partner_uploads_total",
		Help: "Total number of partner catalog uploads",
	})
)

func Init() {
	prometheus.MustRegister(
		ScoreRequestLatency,
		ScoresServedTotal,
		PartnerUploadsTotal,
	)
}
