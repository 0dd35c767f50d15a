package pubsub

import (
	"context"
	"log/slog"

	"vendorradar/config"
	"vendorradar/internal/domain/constants"
	"vendorradar/internal/domain/lifecycle"
	"vendorradar/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// starter is implemented by broadcasters that also receive remote events.
type starter interface {
	Start(ctx context.Context) error
}

// RelayParams holds dependencies for Relay, injected by Fx
type RelayParams struct {
	fx.In

	Sink   service.EventSink
	Logger *slog.Logger
}

// ProvideRelay exposes the relay to the push endpoint and the broadcasters.
func ProvideRelay(params RelayParams) *Relay {
	return NewRelay(params.Sink, params.Logger)
}

// BroadcasterParams holds dependencies for Broadcaster, injected by Fx
type BroadcasterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Relay  *Relay
	Logger *slog.Logger
}

// NewBroadcaster creates a Broadcaster based on configuration
func NewBroadcaster(params BroadcasterParams) (service.Broadcaster, error) {
	logger := params.Logger

	provider := constants.BroadcastProviderLocal
	if params.Config.Broadcast != nil && params.Config.Broadcast.Provider != "" {
		provider = params.Config.Broadcast.Provider
	}

	var broadcaster service.Broadcaster
	switch provider {
	case constants.BroadcastProviderLocal:
		logger.Info("Using local broadcaster")
		broadcaster = NewLocalBroadcaster(params.Relay)

	case constants.BroadcastProviderLocalHTTP:
		cfg := params.Config.PubSub
		if cfg == nil || cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for localhttp provider")
		}
		logger.Info("Using local HTTP broadcaster", slog.String("endpoint", cfg.LocalEndpoint))
		broadcaster = NewLocalHTTPBroadcaster(cfg.LocalEndpoint, params.Relay, logger)

	case constants.BroadcastProviderGoogle:
		cfg := params.Config.PubSub
		if cfg == nil || cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}

		google, err := NewGoogleBroadcaster(params.Ctx, cfg.ProjectID, cfg.TopicID, cfg.SubscriptionID, params.Relay, logger)
		if err != nil {
			return nil, err
		}
		broadcaster = google

	case constants.BroadcastProviderRabbitMQ:
		cfg := params.Config.RabbitMQ
		if cfg == nil || cfg.URL == "" {
			return nil, errors.New("url is required for rabbitmq provider")
		}

		rabbit, err := NewRabbitMQBroadcaster(cfg.URL, cfg.Exchange, params.Relay, logger)
		if err != nil {
			return nil, err
		}
		broadcaster = rabbit

	default:
		return nil, errors.Errorf("unknown broadcast provider: %s", provider)
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if s, ok := broadcaster.(starter); ok {
				startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				return s.Start(startCtx)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing broadcaster", slog.String("provider", provider))

			return broadcaster.Close()
		},
	})

	return broadcaster, nil
}

// Module provides the broadcast FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(ProvideRelay, NewBroadcaster),
)
