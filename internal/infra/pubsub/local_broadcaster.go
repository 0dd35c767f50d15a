package pubsub

import (
	"context"

	"vendorradar/internal/domain/service"

	"github.com/pkg/errors"
)

// localBroadcaster delivers events to this instance's clients only.
type localBroadcaster struct {
	relay *Relay
}

// NewLocalBroadcaster creates a single-instance broadcaster.
func NewLocalBroadcaster(relay *Relay) service.Broadcaster {
	return &localBroadcaster{relay: relay}
}

func (b *localBroadcaster) Broadcast(_ context.Context, event *service.RealtimeEvent) error {
	if event == nil || event.Event == "" {
		return errors.New("event name is required")
	}
	b.relay.DeliverLocal(event)

	return nil
}

func (b *localBroadcaster) Close() error {
	return nil
}
