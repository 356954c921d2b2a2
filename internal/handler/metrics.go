package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prosports_registrations_total",
		Help: "Total number of successful user registrations.",
	})

	loginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prosports_logins_total",
			Help: "Total number of login attempts by status.",
		},
		[]string{"status"},
	)

	refreshesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prosports_token_refreshes_total",
		Help: "Total number of successful token refreshes.",
	})

	tokenVerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prosports_token_verifications_total",
			Help: "Total number of token verification attempts by status.",
		},
		[]string{"status"},
	)

	notificationsBroadcastTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "prosports_notifications_broadcast_total",
		Help: "Total number of admin-initiated broadcast notifications.",
	})
)

// RegisterWSConnectionsGauge exposes the live WebSocket connection count.
// Registered from main once the connection manager exists.
func RegisterWSConnectionsGauge(count func() float64) {
	promauto.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "prosports_ws_connections",
		Help: "Current number of open WebSocket connections.",
	}, count)
}
