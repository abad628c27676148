// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "savings"

var (
	EstimatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_total",
		Help:      "Number of savings estimates computed, by currency",
	},
		[]string{"currency"},
	)

	EstimateWarningsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimate_warnings_total",
		Help:      "Number of out-of-range warnings raised, by field",
	},
		[]string{"field"},
	)

	WaitlistSignupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "waitlist_signups_total",
		Help:      "Waitlist submissions, by result",
	},
		[]string{"result"},
	)

	EmailsSentTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_sent_total",
		Help:      "Transactional emails dispatched, by template and result",
	},
		[]string{"template", "result"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route pattern and status code",
	},
		[]string{"route", "code"},
	)
)

func init() {
	prometheus.MustRegister(EstimatesTotal)
	prometheus.MustRegister(EstimateWarningsTotal)
	prometheus.MustRegister(WaitlistSignupsTotal)
	prometheus.MustRegister(EmailsSentTotal)
	prometheus.MustRegister(HTTPRequestsTotal)
}
