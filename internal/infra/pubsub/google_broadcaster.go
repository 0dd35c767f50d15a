package pubsub

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"vendorradar/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googleBroadcaster publishes events to a Google Cloud Pub/Sub topic. When a pull subscription
// is configured it also receives the events published by the other instances.
type googleBroadcaster struct {
	client       *pubsub.Client
	publisher    *pubsub.Publisher
	subscription string
	relay        *Relay
	logger       *slog.Logger

	cancel context.CancelFunc
	done   sync.WaitGroup
}

// NewGoogleBroadcaster creates a Google Pub/Sub broadcaster.
func NewGoogleBroadcaster(ctx context.Context, projectID, topicID, subscriptionID string, relay *Relay, logger *slog.Logger) (*googleBroadcaster, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub broadcaster initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
		slog.String("subscription_id", subscriptionID),
	)

	return &googleBroadcaster{
		client:       client,
		publisher:    client.Publisher(topicID),
		subscription: subscriptionID,
		relay:        relay,
		logger:       logger,
	}, nil
}

// Broadcast delivers the event locally, then publishes it for the other instances.
func (b *googleBroadcaster) Broadcast(ctx context.Context, event *service.RealtimeEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	b.relay.DeliverLocal(event)

	result := b.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributesFor(event, b.relay.Origin()),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish realtime event")
	}

	b.logger.Debug("[GooglePubSub] Event published",
		slog.String("event", event.Event),
		slog.String("server_id", serverID),
	)

	return nil
}

// Start receives from the pull subscription until Close. It is a no-op for push delivery.
func (b *googleBroadcaster) Start(ctx context.Context) error {
	if b.subscription == "" {
		return nil
	}

	recvCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.cancel = cancel
	subscriber := b.client.Subscriber(b.subscription)

	b.done.Add(1)
	go func() {
		defer b.done.Done()

		err := subscriber.Receive(recvCtx, func(_ context.Context, msg *pubsub.Message) {
			if _, err := b.relay.AcceptRaw(msg.Data, msg.Attributes[AttrOrigin]); err != nil {
				// Malformed payloads never become valid; acking drops them.
				b.logger.Warn("[GooglePubSub] Dropping malformed message",
					slog.String("message_id", msg.ID),
					slog.Any("error", err))
			}
			msg.Ack()
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			b.logger.Error("[GooglePubSub] Receive stopped", slog.Any("error", err))
		}
	}()

	return nil
}

// Close stops receiving and releases Pub/Sub client resources
func (b *googleBroadcaster) Close() error {
	if b.cancel != nil {
		b.cancel()
		b.done.Wait()
	}
	if b.publisher != nil {
		b.publisher.Stop()
	}
	if b.client != nil {
		return errors.WithStack(b.client.Close())
	}

	return nil
}
