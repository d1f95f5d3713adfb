package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	resultsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "kafka_consumer",
			Name:      "payment_results_processed_total",
			Help:      "Total number of successfully applied payment results",
		},
	)

	resultsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "kafka_consumer",
			Name:      "payment_results_failed_total",
			Help:      "Total number of payment results that could not be applied",
		},
	)

	resultsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "kafka_consumer",
			Name:      "payment_results_dlq_total",
			Help:      "Total number of payment results written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	resultProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shilingi",
			Subsystem: "kafka_consumer",
			Name:      "payment_result_processing_duration_seconds",
			Help:      "Histogram of payment result processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	resultsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "shilingi",
			Subsystem: "kafka_consumer",
			Name:      "payment_results_in_progress",
			Help:      "Number of payment results currently being applied",
		},
	)
)

var (
	stkPushDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "shilingi",
			Subsystem: "http",
			Name:      "stk_push_duration_seconds",
			Help:      "Histogram of STK push request durations, provider round trip included",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		},
	)

	callbacksReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "http",
			Name:      "mpesa_callbacks_total",
			Help:      "Total number of provider callbacks by outcome",
		},
		[]string{"outcome"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		resultsProcessed,
		resultsFailed,
		resultsDLQ,
		commitErrors,
		resultProcessingDuration,
		resultsInProgress,

		stkPushDuration,
		callbacksReceived,
	)
}
