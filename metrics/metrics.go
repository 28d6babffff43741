package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stgcore_evaluations_total",
			Help: "Evaluation passes per strategy, by outcome (processed or the gate that skipped it).",
		},
		[]string{"strategy", "outcome"},
	)

	LastError = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stgcore_last_error",
			Help: "Highest error severity seen in the latest evaluation pass.",
		},
		[]string{"strategy"},
	)

	Outcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stgcore_outcomes_total",
			Help: "Trade outcomes folded into the statistics ledger (won or lost).",
		},
		[]string{"strategy", "result"},
	)

	NetProfit = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stgcore_net_profit",
			Help: "Net profit per strategy and statistics window.",
		},
		[]string{"strategy", "window"},
	)

	OpenOrders = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stgcore_open_orders",
			Help: "Orders currently open per strategy.",
		},
		[]string{"strategy"},
	)

	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stgcore_errors_total",
			Help: "Evaluation passes that ended with a non-zero error severity.",
		},
		[]string{"strategy"},
	)

	ProfitFactor = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stgcore_profit_factor",
			Help: "Profit factor per strategy and statistics window (+Inf without losses).",
		},
		[]string{"strategy", "window"},
	)
)

func init() {
	prometheus.MustRegister(Evaluations, LastError, Outcomes, NetProfit, ProfitFactor, OpenOrders, Errors)
}
