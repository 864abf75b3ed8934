package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ConnectionsActive tracks currently open websocket sessions.
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "chat",
		Name:      "connections_active",
		Help:      "Currently open websocket sessions.",
	})

	// EnvelopesDelivered counts outbound envelopes handed to a connection.
	EnvelopesDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat",
		Name:      "envelopes_delivered_total",
		Help:      "Outbound envelopes handed to a connection send queue.",
	})

	// EnvelopesDropped counts envelopes discarded because a send queue was full.
	EnvelopesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "chat",
		Name:      "envelopes_dropped_total",
		Help:      "Envelopes discarded because a connection send queue was full.",
	})
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
