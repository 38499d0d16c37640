package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bottle_recommendations_served_total",
			Help: "Count of recommendations returned, by match type.",
		},
		[]string{"match_type"},
	)

	CatalogFetchFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bottle_catalog_fetch_failures_total",
			Help: "Count of failed catalog fetches during recommendation.",
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal, CatalogFetchFailuresTotal)
}
