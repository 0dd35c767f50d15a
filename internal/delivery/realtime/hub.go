// Package realtime serves the websocket channel vendors stream positions over
// and every client receives vendor updates from.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"

	"vendorradar/internal/domain/service"
)

// Envelope is the JSON frame exchanged in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// VendorRoom names the room a client joins to follow one vendor.
func VendorRoom(vendorID string) string {
	return "vendor:" + vendorID
}

// Hub tracks connected clients and their room memberships.
type Hub struct {
	mu      sync.RWMutex
	clients map[*client]struct{}
	rooms   map[string]map[*client]struct{}
	closed  bool
	logger  *slog.Logger
}

var _ service.EventSink = (*Hub)(nil)

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		rooms:   make(map[string]map[*client]struct{}),
		logger:  logger,
	}
}

// Deliver sends the event to every connected client. Clients whose send buffer is full are disconnected.
func (h *Hub) Deliver(event *service.RealtimeEvent) {
	if event == nil {
		return
	}

	frame, err := json.Marshal(Envelope{Event: event.Event, Data: event.Data})
	if err != nil {
		h.logger.Error("Failed to encode realtime frame", slog.String("event", event.Event), slog.Any("error", err))

		return
	}

	var slow []*client
	h.mu.RLock()
	for c := range h.clients {
		if !c.enqueue(frame) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow websocket client", slog.String("client_id", c.id))
		h.unregister(c)
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// RoomSize returns the number of clients in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[room])
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}

	return true
}

func (h *Hub) join(c *client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	c.rooms[room] = struct{}{}
}

// unregister removes the client from the hub and all its rooms, then closes its send queue.
func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()

		return
	}
	delete(h.clients, c)
	for room := range c.rooms {
		members := h.rooms[room]
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()

	c.closeSend()
}
