package service

import (
	"context"
	"encoding/json"
	"time"

	"vendorradar/internal/domain/entity"
)

// Realtime event names shared by the websocket channel and the broadcast transports.
const (
	EventJoinVendor          = "join:vendor"
	EventVendorLiveLocation  = "vendor:liveLocation"
	EventLocationUpdated     = "vendor:locationUpdated"
	EventAvailabilityUpdated = "vendor:availabilityUpdated"
)

// RealtimeEvent is the envelope pushed to every connected client.
type RealtimeEvent struct {
	RequestID string          `json:"requestId,omitempty"`
	Event     string          `json:"event"`
	Data      json.RawMessage `json:"data"`
}

// LocationUpdatedPayload is the data of a vendor:locationUpdated event.
type LocationUpdatedPayload struct {
	VendorID           string                 `json:"vendorId"`
	Location           *entity.VendorLocation `json:"location"`
	LastLocationUpdate time.Time              `json:"lastLocationUpdate"`
}

// AvailabilityUpdatedPayload is the data of a vendor:availabilityUpdated event.
type AvailabilityUpdatedPayload struct {
	VendorID    string `json:"vendorId"`
	IsAvailable bool   `json:"isAvailable"`
}

// NewRealtimeEvent encodes payload into an envelope.
func NewRealtimeEvent(name string, payload any) (*RealtimeEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &RealtimeEvent{Event: name, Data: data}, nil
}

// Broadcaster fans out realtime events to all connected clients, possibly across instances.
type Broadcaster interface {
	Broadcast(ctx context.Context, event *RealtimeEvent) error

	// Close releases any resources held by the broadcaster
	Close() error
}

// EventSink receives events that must reach the clients connected to this instance.
type EventSink interface {
	Deliver(event *RealtimeEvent)
}
