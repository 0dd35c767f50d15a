package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const maxFrameSize = 8 << 10

type pumpTimings struct {
	writeWait    time.Duration
	pongWait     time.Duration
	pingInterval time.Duration
}

// client is one websocket connection. rooms is guarded by the hub lock.
type client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	rooms  map[string]struct{}
	live   usecase.LiveLocationUsecase
	timing pumpTimings
	logger *slog.Logger

	sendMu sync.Mutex
	done   bool
}

func (c *client) enqueue(frame []byte) bool {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if c.done {
		return true
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *client) closeSend() {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if !c.done {
		c.done = true
		close(c.send)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(c.timing.pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.timing.writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.timing.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *client) readPump() {
	defer c.hub.unregister(c)

	c.conn.SetReadLimit(maxFrameSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.timing.pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.timing.pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("Websocket closed unexpectedly", slog.Any("error", err))
			}

			return
		}

		// A bad frame is dropped; only transport errors end the connection.
		var frame Envelope
		if err := json.Unmarshal(data, &frame); err != nil {
			c.logger.Debug("Dropping malformed frame", slog.Any("error", err))

			continue
		}
		c.handle(frame)
	}
}

func (c *client) handle(frame Envelope) {
	// Each inbound frame gets its own request id so resulting broadcasts can be traced back to it.
	requestID := uuid.NewString()
	ctx, logger := deliverycontext.WithRequest(context.Background(), requestID, c.logger.With(slog.String("event", frame.Event)))

	switch frame.Event {
	case service.EventJoinVendor:
		var vendorID string
		if err := json.Unmarshal(frame.Data, &vendorID); err != nil || vendorID == "" {
			logger.Debug("Ignoring malformed join")

			return
		}
		c.hub.join(c, VendorRoom(vendorID))
		logger.Debug("Client joined vendor room", slog.String("vendor_id", vendorID))

	case service.EventVendorLiveLocation:
		var report usecase.LiveLocationReport
		if err := json.Unmarshal(frame.Data, &report); err != nil {
			logger.Debug("Dropping undecodable location report", slog.Any("error", err))

			return
		}
		if err := c.live.ReportLocation(ctx, &report); err != nil {
			logger.Debug("Dropping location report",
				slog.String("vendor_id", report.VendorID),
				slog.Any("error", err))
		}

	default:
		logger.Debug("Ignoring unknown event")
	}
}
