package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "takehome_calculations_total",
		Help: "Total number of completed take-home-pay calculations",
	})
	calculationErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "takehome_calculation_errors_total",
		Help: "Total number of rejected calculation requests",
	})
	calculationDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "takehome_calculation_duration_seconds",
		Help:    "Duration of one calculation, request decode included",
		Buckets: prometheus.DefBuckets,
	})
)
