package main

import (
	"context"
	"log/slog"
	"os"

	"vendorradar/config"
	logs "vendorradar/internal/infra/log"
	"vendorradar/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Applies the Postgres schema and exits.
func main() {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	)

	if err := app.Err(); err != nil {
		slog.Error("Failed to build migration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	if err := app.Start(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("Failed to close database", slog.Any("error", err))
	}
}

func migrate(lc fx.Lifecycle, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := postgres.Migrate(ctx, db); err != nil {
				return errors.WithStack(err)
			}
			logger.Info("Schema migrated")

			return nil
		},
	})
}
