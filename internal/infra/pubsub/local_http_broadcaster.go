package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "vendorradar/internal/delivery/context"
	"vendorradar/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/realtime-relay"

// localHTTPBroadcaster simulates Pub/Sub push for development by POSTing
// push messages to a relay endpoint.
type localHTTPBroadcaster struct {
	endpoint   string
	httpClient *http.Client
	relay      *Relay
	logger     *slog.Logger
}

// NewLocalHTTPBroadcaster creates a new local HTTP broadcaster for development
func NewLocalHTTPBroadcaster(endpoint string, relay *Relay, logger *slog.Logger) service.Broadcaster {
	return &localHTTPBroadcaster{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		relay:  relay,
		logger: logger,
	}
}

// Broadcast delivers the event locally, then pushes it to the relay endpoint.
func (b *localHTTPBroadcaster) Broadcast(ctx context.Context, event *service.RealtimeEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	b.relay.DeliverLocal(event)

	body, err := json.Marshal(NewPushMessage(data, attributesFor(event, b.relay.Origin()), localSubscription))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("relay returned non-success status: %d", resp.StatusCode)
	}

	b.logger.Debug("[LocalPubSub] Event pushed",
		slog.String("endpoint", b.endpoint),
		slog.String("event", event.Event),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (b *localHTTPBroadcaster) Close() error {
	return nil
}
