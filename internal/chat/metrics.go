package chat

import "github.com/prometheus/client_golang/prometheus"

var (
	loadsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "primerchat",
			Subsystem: "chat",
			Name:      "model_loads_total",
			Help:      "Total number of successful model loads",
		},
	)

	generationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "primerchat",
			Subsystem: "chat",
			Name:      "generations_total",
			Help:      "Total number of successful generation turns",
		},
	)

	sentinelsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "primerchat",
			Subsystem: "chat",
			Name:      "sentinels_total",
			Help:      "Total number of turns answered with a sentinel reply",
		},
		[]string{"reason"},
	)

	generationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "primerchat",
			Subsystem: "chat",
			Name:      "generation_duration_seconds",
			Help:      "Duration of engine generation calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(loadsTotal, generationsTotal, sentinelsTotal, generationDuration)
}
