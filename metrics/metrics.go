package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration is keyed by the chi route pattern, not the raw path.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	InquiryNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inquiry_notifications_total",
			Help: "Inquiry notification emails by outcome",
		},
		[]string{"status"}, // status: sent, failed
	)

	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "admin_login_attempts_total",
			Help: "Admin login attempts by outcome",
		},
		[]string{"status"}, // status: success, failed
	)
)

func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

func IncrementInquiryNotification(status string) {
	InquiryNotifications.WithLabelValues(status).Inc()
}

func IncrementLoginAttempt(status string) {
	LoginAttempts.WithLabelValues(status).Inc()
}
