package ws

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"realtime-chat/internal/chat"
	"realtime-chat/pkg/metrics"
)

// Inbound frame types.
const (
	FrameMessage = "message"
	FrameRooms   = "rooms"
)

// Frame is the inbound event shape sent by clients over the socket.
type Frame struct {
	Type   string `json:"type" validate:"required,oneof=message rooms"`
	Msg    string `json:"msg"`
	RoomID string `json:"roomId" validate:"required_if=Type message"`
}

var validate = validator.New()

// Gateway accepts websocket connections and bridges them to the
// presence engine. It owns nothing but the session id assignment;
// all routing decisions belong to the engine.
type Gateway struct {
	log    *slog.Logger
	engine *chat.Engine
}

// NewGateway builds a gateway in front of the engine
func NewGateway(logger *slog.Logger, engine *chat.Engine) *Gateway {
	return &Gateway{log: logger, engine: engine}
}

// ServeWS handles a new /ws connection: assign a session id, register
// the identity, then pump inbound frames until the socket closes.
// Display name and avatar come from the pseudo/avatar query params.
func (g *Gateway) ServeWS(w http.ResponseWriter, r *http.Request) {
	sock, err := Accept(w, r)
	if err != nil {
		g.log.Error("ws.accept", "err", err)
		return
	}

	ctx := r.Context()
	id := uuid.NewString()
	c := NewConn(sock)
	go c.WriteLoop(ctx)

	metrics.ConnectionsActive.Inc()
	defer metrics.ConnectionsActive.Dec()

	g.engine.Connect(id, r.URL.Query().Get("pseudo"), r.URL.Query().Get("avatar"), c)

	for {
		raw, ok := c.Read(ctx)
		if !ok {
			break
		}

		var f Frame
		if err := json.Unmarshal(raw, &f); err != nil {
			g.log.Debug("ws.frame.malformed", "err", err)
			continue
		}
		if err := validate.Struct(f); err != nil {
			g.log.Debug("ws.frame.invalid", "err", err)
			continue
		}

		switch f.Type {
		case FrameMessage:
			g.engine.HandleChat(id, f.RoomID, f.Msg)
		case FrameRooms:
			g.engine.RequestRooms(id)
		}
	}

	g.engine.Disconnect(id)
	_ = c.Close()
}
