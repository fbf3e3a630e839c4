package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tailor_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tailor_http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BillsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tailor_bills_created_total",
			Help: "Bills created since process start",
		},
	)

	OrdersReconciledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tailor_orders_reconciled_total",
			Help: "Order rows created or converged by bill submissions",
		},
	)

	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tailor_notifications_sent_total",
			Help: "Delivery notifications by outcome",
		},
		[]string{"outcome"},
	)
)
