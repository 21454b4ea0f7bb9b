package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "syncroom",
		Name:      "frames_received_total",
		Help:      "Inbound websocket frames by action.",
	}, []string{"action"})

	FramesDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "syncroom",
		Name:      "frames_dropped_total",
		Help:      "Inbound frames dropped without effect, by reason.",
	}, []string{"reason"})

	EventsDelivered = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "syncroom",
		Name:      "events_delivered_total",
		Help:      "Outbound events queued to a connection.",
	})

	EventsSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "syncroom",
		Name:      "events_skipped_total",
		Help:      "Outbound events not queued to a connection, by reason.",
	}, []string{"reason"})

	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "syncroom",
		Name:      "connections",
		Help:      "Open websocket connections.",
	})

	Rooms = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "syncroom",
		Name:      "rooms",
		Help:      "Rooms created since start.",
	})
)

const (
	ReasonMalformed     = "malformed"
	ReasonMissingRoomID = "missing_room_id"
	ReasonUnknownAction = "unknown_action"
	ReasonDebounced     = "debounced"
	ReasonRejected      = "rejected"
	ReasonClosed        = "closed"
	ReasonOverflow      = "overflow"
)

// Handler exposes Prometheus metrics at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
