// Package pubsub fans realtime events out to every instance of the service.
package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"vendorradar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Message attribute keys shared by every transport.
const (
	AttrEvent     = "event"
	AttrRequestID = "request_id"
	AttrOrigin    = "origin"
)

// PushMessage mirrors the body Google Pub/Sub sends to push endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps an encoded event the way Pub/Sub would deliver it.
func NewPushMessage(data []byte, attributes map[string]string, subscription string) *PushMessage {
	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg
}

// Decode extracts the realtime event carried by the push message.
func (m *PushMessage) Decode() (*service.RealtimeEvent, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode push data")
	}

	return decodeEvent(data)
}

// Origin returns the instance that published the message, if known.
func (m *PushMessage) Origin() string {
	return m.Message.Attributes[AttrOrigin]
}

func encodeEvent(event *service.RealtimeEvent) ([]byte, error) {
	if event == nil || event.Event == "" {
		return nil, errors.New("event name is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

func decodeEvent(data []byte) (*service.RealtimeEvent, error) {
	var event service.RealtimeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "decode realtime event")
	}
	if event.Event == "" {
		return nil, errors.New("realtime event without a name")
	}

	return &event, nil
}

func attributesFor(event *service.RealtimeEvent, origin string) map[string]string {
	attributes := map[string]string{
		AttrEvent:  event.Event,
		AttrOrigin: origin,
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

// Relay hands events published by other instances to the clients connected here.
// Events this instance published were already delivered locally and are skipped.
type Relay struct {
	origin string
	sink   service.EventSink
	logger *slog.Logger
}

// NewRelay creates a relay with a fresh instance identity.
func NewRelay(sink service.EventSink, logger *slog.Logger) *Relay {
	return &Relay{origin: uuid.NewString(), sink: sink, logger: logger}
}

// Origin identifies this instance in published messages.
func (r *Relay) Origin() string {
	return r.origin
}

// DeliverLocal sends an event to this instance's clients.
func (r *Relay) DeliverLocal(event *service.RealtimeEvent) {
	if r.sink != nil {
		r.sink.Deliver(event)
	}
}

// Accept delivers a remote event unless this instance published it. It reports whether the event was delivered.
func (r *Relay) Accept(event *service.RealtimeEvent, origin string) bool {
	if origin != "" && origin == r.origin {
		return false
	}

	r.logger.Debug("Relaying remote realtime event",
		slog.String("event", event.Event),
		slog.String("origin", origin),
		slog.String("request_id", event.RequestID))
	r.DeliverLocal(event)

	return true
}

// AcceptRaw decodes a transport payload and relays it.
func (r *Relay) AcceptRaw(data []byte, origin string) (bool, error) {
	event, err := decodeEvent(data)
	if err != nil {
		return false, err
	}

	return r.Accept(event, origin), nil
}
