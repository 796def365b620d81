package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dwv",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests handled, by route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dwv",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	}, []string{"method", "route"})

	OTPIssuedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dwv",
		Name:      "otp_issued_total",
		Help:      "One-time codes issued and emailed.",
	})

	NotificationEmailsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dwv",
		Name:      "notification_emails_total",
		Help:      "Subscriber notification emails attempted, by outcome.",
	}, []string{"outcome"})
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		OTPIssuedTotal,
		NotificationEmailsTotal,
	)
}
