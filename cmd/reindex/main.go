package main

import (
	"context"
	"log/slog"
	"os"

	"vendorradar/config"
	logs "vendorradar/internal/infra/log"
	"vendorradar/internal/infra/persistence"
	"vendorradar/internal/usecase"
	"vendorradar/internal/usecase/impl"

	"go.uber.org/fx"
)

type reindexParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Index  usecase.ProximityIndex
	Logger *slog.Logger
}

// Rebuilds the configured position store from the vendor records, then exits.
func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
		),
		persistence.Module,
		fx.Provide(impl.NewProximityIndex),
		fx.Invoke(reindex),
	).Run()
}

func reindex(params reindexParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				loaded, err := params.Index.Warm(context.Background())
				if err != nil {
					params.Logger.Error("Reindex failed", slog.Any("error", err))
					if shutdownErr := params.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
						os.Exit(1)
					}

					return
				}

				params.Logger.Info("Reindex complete", slog.Int("positions", loaded))
				_ = params.Shutdown()
			}()

			return nil
		},
	})
}
