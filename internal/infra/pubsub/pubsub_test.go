package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type sinkRecorder struct {
	mu     sync.Mutex
	events []*service.RealtimeEvent
}

func (s *sinkRecorder) Deliver(event *service.RealtimeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *sinkRecorder) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.events)
}

func testEvent(t *testing.T) *service.RealtimeEvent {
	t.Helper()

	event, err := service.NewRealtimeEvent(service.EventAvailabilityUpdated, service.AvailabilityUpdatedPayload{
		VendorID:    "7f1c8a52-3f43-4a39-9a5e-0f7d3a3f2b11",
		IsAvailable: true,
	})
	require.NoError(t, err)
	event.RequestID = "req-1"

	return event
}

func TestRelay_SkipsOwnOrigin(t *testing.T) {
	sink := &sinkRecorder{}
	relay := NewRelay(sink, discardLogger)
	event := testEvent(t)

	assert.False(t, relay.Accept(event, relay.Origin()))
	assert.Zero(t, sink.count())

	assert.True(t, relay.Accept(event, "another-instance"))
	assert.True(t, relay.Accept(event, ""), "unknown origin is delivered")
	assert.Equal(t, 2, sink.count())
}

func TestRelay_AcceptRawRejectsMalformedPayloads(t *testing.T) {
	relay := NewRelay(&sinkRecorder{}, discardLogger)

	_, err := relay.AcceptRaw([]byte("{not json"), "x")
	assert.Error(t, err)

	_, err = relay.AcceptRaw([]byte(`{"data":{}}`), "x")
	assert.Error(t, err, "an event needs a name")
}

func TestPushMessage_RoundTrip(t *testing.T) {
	event := testEvent(t)
	data, err := encodeEvent(event)
	require.NoError(t, err)

	msg := NewPushMessage(data, attributesFor(event, "instance-a"), localSubscription)
	assert.NotEmpty(t, msg.Message.MessageID)
	assert.Equal(t, "instance-a", msg.Origin())
	assert.Equal(t, service.EventAvailabilityUpdated, msg.Message.Attributes[AttrEvent])
	assert.Equal(t, "req-1", msg.Message.Attributes[AttrRequestID])

	decoded, err := msg.Decode()
	require.NoError(t, err)
	assert.Equal(t, event.Event, decoded.Event)
	assert.Equal(t, event.RequestID, decoded.RequestID)
	assert.JSONEq(t, string(event.Data), string(decoded.Data))

	msg.Message.Data = "%%%"
	_, err = msg.Decode()
	assert.Error(t, err)
}

func TestLocalBroadcaster(t *testing.T) {
	sink := &sinkRecorder{}
	broadcaster := NewLocalBroadcaster(NewRelay(sink, discardLogger))

	require.NoError(t, broadcaster.Broadcast(context.Background(), testEvent(t)))
	assert.Equal(t, 1, sink.count())

	assert.Error(t, broadcaster.Broadcast(context.Background(), &service.RealtimeEvent{}))
	assert.Equal(t, 1, sink.count())
	assert.NoError(t, broadcaster.Close())
}

func TestLocalHTTPBroadcaster_PushesToRelayEndpoint(t *testing.T) {
	var (
		received  PushMessage
		requestID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := &sinkRecorder{}
	relay := NewRelay(sink, discardLogger)
	broadcaster := NewLocalHTTPBroadcaster(server.URL, relay, discardLogger)

	require.NoError(t, broadcaster.Broadcast(context.Background(), testEvent(t)))
	assert.Equal(t, 1, sink.count(), "delivered locally before the push")
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, relay.Origin(), received.Origin())

	// The pushed copy comes back to the same instance and is suppressed.
	event, err := received.Decode()
	require.NoError(t, err)
	assert.False(t, relay.Accept(event, received.Origin()))
	assert.Equal(t, 1, sink.count())
}

func TestLocalHTTPBroadcaster_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	broadcaster := NewLocalHTTPBroadcaster(server.URL, NewRelay(&sinkRecorder{}, discardLogger), discardLogger)
	err := broadcaster.Broadcast(context.Background(), testEvent(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
