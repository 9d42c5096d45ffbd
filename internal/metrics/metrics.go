package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SweepsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safemed_sweeps_total",
			Help: "Total number of reminder sweeps by result",
		},
		[]string{"result"},
	)
	RemindersChecked = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "safemed_reminders_checked_total",
			Help: "Total number of (user, reminder) pairs evaluated",
		},
	)
	NotificationsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "safemed_notifications_sent_total",
			Help: "Total number of dispatch attempts by result",
		},
		[]string{"result"},
	)
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		SweepsTotal,
		RemindersChecked,
		NotificationsSent,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	)
}
