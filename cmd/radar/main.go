package main

import (
	"context"
	"log/slog"
	"os"

	"vendorradar/config"
	"vendorradar/internal/delivery"
	"vendorradar/internal/delivery/api"
	"vendorradar/internal/delivery/api/middleware"
	"vendorradar/internal/delivery/api/router/handler"
	"vendorradar/internal/delivery/realtime"
	"vendorradar/internal/delivery/worker"
	workerhandler "vendorradar/internal/delivery/worker/handler"
	"vendorradar/internal/domain/lifecycle"
	"vendorradar/internal/infra/auth"
	logs "vendorradar/internal/infra/log"
	"vendorradar/internal/infra/persistence"
	"vendorradar/internal/infra/pubsub"
	"vendorradar/internal/infra/telemetry"
	"vendorradar/internal/usecase"
	"vendorradar/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		injectService(),
		injectUsecase(),
		realtime.Module,
		pubsub.Module,
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			// Spans from every layer need the provider installed first.
			func(trace.TracerProvider) {},
			warmIndex,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		telemetry.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewProximityIndex,
			impl.NewSearchService,
			impl.NewVendorService,
			impl.NewLiveLocationService,
			impl.NewCustomerService,
			impl.NewHistoryService,
			impl.NewProductService,
			impl.NewAuthService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSearchHandler,
			handler.NewVendorHandler,
			handler.NewCustomerHandler,
			handler.NewProductHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// warmIndex rebuilds the position store from the vendor records before traffic is served.
func warmIndex(lc fx.Lifecycle, cfg *config.Config, index usecase.ProximityIndex, logger *slog.Logger) {
	if cfg.Proximity == nil || !cfg.Proximity.WarmOnStart {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			warmCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			loaded, err := index.Warm(warmCtx)
			if err != nil {
				return errors.Wrap(err, "failed to warm proximity index")
			}
			logger.Info("Proximity index warmed", slog.Int("positions", loaded))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
