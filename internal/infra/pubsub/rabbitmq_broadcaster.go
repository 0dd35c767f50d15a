package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vendorradar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQBroadcaster publishes events to a fanout exchange. Every instance binds its own
// exclusive queue, so each one sees every event.
type rabbitMQBroadcaster struct {
	conn     *amqp.Connection
	exchange string
	relay    *Relay
	logger   *slog.Logger

	pubMu     sync.Mutex
	publishCh *amqp.Channel
	consumeCh *amqp.Channel
	done      sync.WaitGroup
}

// NewRabbitMQBroadcaster dials the broker and declares the fanout exchange.
func NewRabbitMQBroadcaster(url, exchange string, relay *Relay, logger *slog.Logger) (*rabbitMQBroadcaster, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	publishCh, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "open publish channel")
	}

	if err := publishCh.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		conn.Close()

		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}

	logger.Info("RabbitMQ broadcaster initialized", slog.String("exchange", exchange))

	return &rabbitMQBroadcaster{
		conn:      conn,
		exchange:  exchange,
		relay:     relay,
		logger:    logger,
		publishCh: publishCh,
	}, nil
}

// Broadcast delivers the event locally, then publishes it to the exchange.
func (b *rabbitMQBroadcaster) Broadcast(ctx context.Context, event *service.RealtimeEvent) error {
	data, err := encodeEvent(event)
	if err != nil {
		return err
	}

	b.relay.DeliverLocal(event)

	headers := amqp.Table{}
	for key, value := range attributesFor(event, b.relay.Origin()) {
		headers[key] = value
	}

	b.pubMu.Lock()
	defer b.pubMu.Unlock()

	err = b.publishCh.PublishWithContext(ctx, b.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		MessageId:   uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Headers:     headers,
		Body:        data,
	})

	return errors.Wrap(err, "publish realtime event")
}

// Start binds an exclusive queue to the exchange and relays deliveries until Close.
func (b *rabbitMQBroadcaster) Start(_ context.Context) error {
	ch, err := b.conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open consume channel")
	}

	queue, err := ch.QueueDeclare(
		"",    // server-named
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()

		return errors.Wrap(err, "declare queue")
	}

	if err := ch.QueueBind(queue.Name, "", b.exchange, false, nil); err != nil {
		ch.Close()

		return errors.Wrapf(err, "bind queue to %s", b.exchange)
	}

	deliveries, err := ch.Consume(queue.Name, "", true, true, false, false, nil)
	if err != nil {
		ch.Close()

		return errors.Wrap(err, "consume queue")
	}
	b.consumeCh = ch

	b.done.Add(1)
	go func() {
		defer b.done.Done()

		for delivery := range deliveries {
			origin, _ := delivery.Headers[AttrOrigin].(string)
			if _, err := b.relay.AcceptRaw(delivery.Body, origin); err != nil {
				b.logger.Warn("[RabbitMQ] Dropping malformed message",
					slog.String("message_id", delivery.MessageId),
					slog.Any("error", err))
			}
		}
	}()

	b.logger.Info("[RabbitMQ] Relay consuming", slog.String("queue", queue.Name))

	return nil
}

// Close stops consuming and closes the connection.
func (b *rabbitMQBroadcaster) Close() error {
	if b.consumeCh != nil {
		_ = b.consumeCh.Close()
	}
	err := b.conn.Close()
	b.done.Wait()

	return errors.WithStack(err)
}
