package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResponsesUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealdash_responses_updated_total",
		Help: "Total number of manual response status changes applied.",
	})

	AutoConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealdash_responses_auto_confirmed_total",
		Help: "Total number of pending responses auto-confirmed after cutoff.",
	})

	CutoffRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mealdash_cutoff_rejections_total",
		Help: "Total number of manual changes rejected because the cutoff had passed.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mealdash_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	PreferenceCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mealdash_preference_cache_items",
		Help: "Current number of providers in the preference cache.",
	})
)
