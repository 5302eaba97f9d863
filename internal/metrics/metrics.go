// server/internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cityhub_bookings_created_total",
		Help: "Number of bookings created.",
	})

	BookingsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cityhub_bookings_completed_total",
		Help: "Number of bookings marked completed by merchants.",
	})

	RequestsApproved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cityhub_requests_approved_total",
		Help: "Number of merchant registration requests approved.",
	})

	RequestsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cityhub_requests_rejected_total",
		Help: "Number of merchant registration requests rejected.",
	})

	WSSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cityhub_ws_sessions",
		Help: "Currently connected WebSocket sessions.",
	})
)
