package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "recommend_request_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests received
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommend_requests_total",
		Help: "Total number of recommendation requests",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
	)
}
