package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"vendorradar/config"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/service"
	mockUsecase "vendorradar/internal/mocks/usecase"
	"vendorradar/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const waitFor = 2 * time.Second

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	hub    *Hub
	live   *mockUsecase.MockLiveLocationUsecase
	server *httptest.Server
}

func newFixture(t *testing.T, origins ...string) *fixture {
	t.Helper()

	hub := NewHub(discardLogger)
	live := mockUsecase.NewMockLiveLocationUsecase(t)
	handler := NewHandler(HandlerParams{
		Hub:  hub,
		Live: live,
		Config: &config.Config{Realtime: &config.RealtimeConfig{
			SendBuffer:     16,
			PongWait:       time.Minute,
			PingInterval:   30 * time.Second,
			WriteWait:      time.Second,
			AllowedOrigins: origins,
		}},
		Logger: discardLogger,
	})

	e := echo.New()
	e.GET("/ws", handler.Serve)
	server := httptest.NewServer(e)
	t.Cleanup(func() {
		hub.Close()
		server.Close()
	})

	return &fixture{hub: hub, live: live, server: server}
}

func (f *fixture) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	t.Cleanup(func() { conn.Close() })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, event string, data any) {
	t.Helper()

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, conn.WriteJSON(Envelope{Event: event, Data: raw}))
}

func receive(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(waitFor)))
	var frame Envelope
	require.NoError(t, conn.ReadJSON(&frame))

	return frame
}

func availabilityEvent(t *testing.T, vendorID string) *service.RealtimeEvent {
	t.Helper()

	event, err := service.NewRealtimeEvent(service.EventAvailabilityUpdated, service.AvailabilityUpdatedPayload{
		VendorID:    vendorID,
		IsAvailable: true,
	})
	require.NoError(t, err)

	return event
}

func TestHub_DeliverReachesEveryClient(t *testing.T) {
	f := newFixture(t)
	first := f.dial(t)
	second := f.dial(t)
	require.Eventually(t, func() bool { return f.hub.ClientCount() == 2 }, waitFor, 10*time.Millisecond)

	f.hub.Deliver(availabilityEvent(t, "v-1"))

	for _, conn := range []*websocket.Conn{first, second} {
		frame := receive(t, conn)
		assert.Equal(t, service.EventAvailabilityUpdated, frame.Event)

		var payload service.AvailabilityUpdatedPayload
		require.NoError(t, json.Unmarshal(frame.Data, &payload))
		assert.Equal(t, "v-1", payload.VendorID)
		assert.True(t, payload.IsAvailable)
	}
}

func TestHub_JoinAndDisconnectCleansRooms(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t)
	room := VendorRoom("7d3f")

	send(t, conn, service.EventJoinVendor, "7d3f")
	require.Eventually(t, func() bool { return f.hub.RoomSize(room) == 1 }, waitFor, 10*time.Millisecond)

	// Joining twice keeps a single membership.
	send(t, conn, service.EventJoinVendor, "7d3f")
	send(t, conn, service.EventJoinVendor, 42)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		return f.hub.RoomSize(room) == 0 && f.hub.ClientCount() == 0
	}, waitFor, 10*time.Millisecond)
}

func TestClient_LiveLocationGoesToUsecase(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t)

	reported := make(chan *usecase.LiveLocationReport, 1)
	f.live.EXPECT().ReportLocation(mock.Anything, mock.Anything).
		Run(func(_ context.Context, report *usecase.LiveLocationReport) { reported <- report }).
		Return(nil).Once()

	send(t, conn, service.EventVendorLiveLocation, map[string]any{
		"vendorId":    "0c9b8d3e-8f43-4f1a-9d6e-2b3c4d5e6f70",
		"coordinates": []float64{-74.0, 40.71},
		"address":     "Union Square",
	})

	select {
	case report := <-reported:
		assert.Equal(t, "0c9b8d3e-8f43-4f1a-9d6e-2b3c4d5e6f70", report.VendorID)
		assert.Equal(t, []float64{-74.0, 40.71}, report.Coordinates)
		require.NotNil(t, report.Address)
		assert.Equal(t, "Union Square", *report.Address)
	case <-time.After(waitFor):
		t.Fatal("location report never reached the usecase")
	}
}

func TestClient_RejectedReportKeepsConnectionOpen(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t)
	require.Eventually(t, func() bool { return f.hub.ClientCount() == 1 }, waitFor, 10*time.Millisecond)

	done := make(chan struct{})
	f.live.EXPECT().ReportLocation(mock.Anything, mock.Anything).
		Run(func(context.Context, *usecase.LiveLocationReport) { close(done) }).
		Return(domainerrors.ErrInvalidCoordinates).Once()

	send(t, conn, service.EventVendorLiveLocation, map[string]any{"vendorId": "v", "coordinates": []float64{1}})
	send(t, conn, "vendor:unknown", nil)

	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("report was not processed")
	}

	f.hub.Deliver(availabilityEvent(t, "still-here"))
	frame := receive(t, conn)
	assert.Equal(t, service.EventAvailabilityUpdated, frame.Event)
}

func TestClient_MalformedFrameKeepsConnectionOpen(t *testing.T) {
	tests := []struct {
		name  string
		frame string
	}{
		{name: "not json", frame: "not json"},
		{name: "truncated envelope", frame: `{"event":"vendor:liveLocation","data":{"vendorId":"v"`},
		{name: "event is not a string", frame: `{"event":5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			conn := f.dial(t)
			require.Eventually(t, func() bool { return f.hub.ClientCount() == 1 }, waitFor, 10*time.Millisecond)

			done := make(chan struct{})
			f.live.EXPECT().ReportLocation(mock.Anything, mock.Anything).
				Run(func(context.Context, *usecase.LiveLocationReport) { close(done) }).
				Return(nil).Once()

			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tt.frame)))
			send(t, conn, service.EventVendorLiveLocation, map[string]any{"vendorId": "v", "coordinates": []float64{1, 2}})

			select {
			case <-done:
			case <-time.After(waitFor):
				t.Fatal("frame after the malformed one was not processed")
			}

			f.hub.Deliver(availabilityEvent(t, "still-here"))
			frame := receive(t, conn)
			assert.Equal(t, service.EventAvailabilityUpdated, frame.Event)
			assert.Equal(t, 1, f.hub.ClientCount())
		})
	}
}

func TestHandler_RejectsDisallowedOrigin(t *testing.T) {
	f := newFixture(t, "https://app.example")
	url := "ws" + strings.TrimPrefix(f.server.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	conn, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://app.example"}})
	require.NoError(t, err)
	resp.Body.Close()
	conn.Close()
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	f := newFixture(t)
	conn := f.dial(t)
	require.Eventually(t, func() bool { return f.hub.ClientCount() == 1 }, waitFor, 10*time.Millisecond)

	f.hub.Close()
	assert.Zero(t, f.hub.ClientCount())

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(waitFor)))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err, "the server closes the connection")

	f.hub.Deliver(availabilityEvent(t, "nobody"))
}
