package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansComputed counts payoff plans by strategy.
	PlansComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finplanner_payoff_plans_total",
			Help: "Total number of payoff plans computed",
		},
		[]string{"strategy"},
	)

	// NeverPayoffDetected counts simulations that could not converge.
	NeverPayoffDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finplanner_never_payoff_total",
		Help: "Total number of payoff simulations that never converge",
	})

	// AllocationsComputed counts surplus allocations.
	AllocationsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finplanner_allocations_total",
		Help: "Total number of surplus allocations computed",
	})

	// ProjectionsComputed counts scenario projections.
	ProjectionsComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finplanner_projections_total",
		Help: "Total number of scenario projections computed",
	})

	// AdviceReportsGenerated counts full advisory pipeline runs.
	AdviceReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finplanner_advice_reports_total",
		Help: "Total number of advice reports generated",
	})

	// LLMRequests counts text generator calls by outcome.
	LLMRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finplanner_llm_requests_total",
			Help: "Total number of text generator requests",
		},
		[]string{"status"},
	)

	// LLMRequestDuration observes text generator latency.
	LLMRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "finplanner_llm_request_duration_seconds",
		Help:    "Text generator request duration in seconds",
		Buckets: prometheus.DefBuckets,
	})
)
