package httpx

import (
	"net/http"

	"log/slog"

	"realtime-chat/internal/app"
	"realtime-chat/internal/ws"
	"realtime-chat/pkg/metrics"
)

// NewRouter wires up all HTTP routes, middleware, and the websocket
// gateway. The chat client is served as static assets at /.
func NewRouter(cfg app.Config, logger *slog.Logger, gw *ws.Gateway) http.Handler {
	mw := NewMiddleware(cfg)

	mux := http.NewServeMux()

	// Health / readiness / metrics
	mux.Handle("/healthz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/readyz", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(200) }))
	mux.Handle("/metrics", metrics.Handler())

	// WebSocket endpoint
	mux.Handle("/ws", http.HandlerFunc(gw.ServeWS))

	// Static chat client
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	// CORS + rate limit applied globally
	return mw.Wrap(mux)
}
