package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Count of recommendation results served, by source (primary or fallback).",
		},
		[]string{"source"},
	)

	SnapshotRebuildsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "catalog_snapshot_rebuilds_total",
			Help: "Count of catalog snapshot rebuilds.",
		},
	)

	SnapshotItemCount = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_items",
			Help: "Number of laptops in the current catalog snapshot.",
		},
	)

	SinkFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_sink_failures_total",
			Help: "Count of analytics sink writes that failed (always swallowed).",
		},
	)

	CacheHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_hits_total",
			Help: "Count of recommendation results served from the redis cache.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendationsServedTotal,
		SnapshotRebuildsTotal,
		SnapshotItemCount,
		SinkFailuresTotal,
		CacheHitsTotal,
	)
}
