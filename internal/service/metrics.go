package service

import "github.com/prometheus/client_golang/prometheus"

var (
	stkPushes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "payments",
			Name:      "stk_push_total",
			Help:      "STK push attempts by outcome (accepted, rejected, failed, replayed)",
		},
		[]string{"outcome"},
	)

	paymentCallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "payments",
			Name:      "callbacks_total",
			Help:      "Provider callbacks by resulting payment status",
		},
		[]string{"status"},
	)

	resultsRelayed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "payments",
			Name:      "results_relayed_total",
			Help:      "Stored payment results published by the relay",
		},
	)

	depositsCredited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "wallet",
			Name:      "deposits_credited_total",
			Help:      "Deposits credited to wallets",
		},
	)

	gasEstimates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shilingi",
			Subsystem: "ledger",
			Name:      "gas_estimates_total",
			Help:      "Gas estimates by result",
		},
		[]string{"result"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		stkPushes,
		paymentCallbacks,
		resultsRelayed,
		depositsCredited,
		gasEstimates,
	)
}
