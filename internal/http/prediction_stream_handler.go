package http

import (
	"net/http"
	"time"

	"telemetry-dashboard/internal/events"
	"telemetry-dashboard/internal/shared/loggers"
	"telemetry-dashboard/internal/stores"
	"telemetry-dashboard/internal/streams"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = wsPongWait * 9 / 10
	wsMaxInboundSize = 512
)

type predictionStreamHandler struct {
	hub      *streams.BroadcastHub[events.PredictionEvent]
	store    stores.PredictionStore
	upgrader websocket.Upgrader
}

func NewPredictionStreamHandler(hub *streams.BroadcastHub[events.PredictionEvent], store stores.PredictionStore) AppHttpHandler {
	return &predictionStreamHandler{
		hub:   hub,
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Handle serves GET /ws/predictions. The latest run, if any, is sent first; every
// later run follows as one JSON text message. Inbound messages are ignored.
func (h *predictionStreamHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	logger := loggers.Ctx(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already written an error response
		logger.Debug().Err(err).Msg("websocket upgrade rejected")
		return nil
	}
	defer conn.Close()
	metricWebsocketConnections.Inc()
	defer metricWebsocketConnections.Dec()

	sub, cancel := h.hub.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go readUntilClosed(conn, closed)

	if latest, err := h.store.Latest(r.Context()); err == nil {
		if err := writeEvent(conn, events.NewPredictionEvent(latest, time.Now().UTC())); err != nil {
			return nil
		}
	}

	ping := time.NewTicker(wsPingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return nil
		case event, ok := <-sub:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
					time.Now().Add(wsWriteWait))
				return nil
			}
			if err := writeEvent(conn, event); err != nil {
				logger.Debug().Err(err).Msg("websocket write failed")
				return nil
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return nil
			}
		}
	}
}

func writeEvent(conn *websocket.Conn, event events.PredictionEvent) error {
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(event)
}

// readUntilClosed drains inbound frames so control messages are processed, and closes
// done once the peer goes away.
func readUntilClosed(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(wsMaxInboundSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
