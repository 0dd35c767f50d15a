package realtime

import (
	"log/slog"
	"net/http"
	"time"

	"vendorradar/config"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Handler upgrades HTTP requests to websocket clients of the hub.
type Handler struct {
	hub      *Hub
	live     usecase.LiveLocationUsecase
	upgrader websocket.Upgrader
	timing   pumpTimings
	buffer   int
	logger   *slog.Logger
}

// HandlerParams holds dependencies for Handler, injected by Fx
type HandlerParams struct {
	fx.In

	Hub    *Hub
	Live   usecase.LiveLocationUsecase
	Config *config.Config
	Logger *slog.Logger
}

// NewHandler builds the websocket endpoint from the realtime config.
func NewHandler(params HandlerParams) *Handler {
	cfg := params.Config.Realtime
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	allowAll := len(cfg.AllowedOrigins) == 0
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = struct{}{}
	}

	return &Handler{
		hub:  params.Hub,
		live: params.Live,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				if allowAll {
					return true
				}
				_, ok := allowed[r.Header.Get("Origin")]

				return ok
			},
		},
		timing: timingsFrom(cfg),
		buffer: max(cfg.SendBuffer, 1),
		logger: params.Logger,
	}
}

func timingsFrom(cfg *config.RealtimeConfig) pumpTimings {
	timing := pumpTimings{writeWait: 10 * time.Second, pongWait: 60 * time.Second}
	if cfg.WriteWait > 0 {
		timing.writeWait = cfg.WriteWait
	}
	if cfg.PongWait > 0 {
		timing.pongWait = cfg.PongWait
	}
	timing.pingInterval = timing.pongWait * 9 / 10
	if cfg.PingInterval > 0 && cfg.PingInterval < timing.pongWait {
		timing.pingInterval = cfg.PingInterval
	}

	return timing
}

// Serve handles GET /ws.
func (h *Handler) Serve(c echo.Context) error {
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		h.logger.Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}

	cl := &client{
		id:     uuid.NewString(),
		hub:    h.hub,
		conn:   conn,
		send:   make(chan []byte, h.buffer),
		rooms:  make(map[string]struct{}),
		live:   h.live,
		timing: h.timing,
	}
	cl.logger = h.logger.With(slog.String("client_id", cl.id))

	if !h.hub.register(cl) {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		_ = conn.Close()

		return nil
	}
	cl.logger.Debug("Websocket client connected", slog.String("remote_ip", c.RealIP()))

	go cl.writePump()
	go cl.readPump()

	return nil
}
