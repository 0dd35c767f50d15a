package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"vendorradar/config"
	"vendorradar/internal/domain/lifecycle"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval  = 5 * time.Second
	poolWaitWarnBudget = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the record store. On start it pings the server, reports the PostGIS version the
// geography columns depend on and starts watching the pool for connection waits.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres section is required when storage.driver is postgres")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open record store")
	}
	db = db.Session(&gorm.Session{
		// Single statements need no implicit transaction; history trimming opens its own.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get record store sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping record store")
			}
			logPostGIS(ctx, db, params.Logger)

			go watchPool(watchCtx, params.Logger, sqlDB, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// logPostGIS warns when the extension is missing; cmd/migrate installs it.
func logPostGIS(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	var version string
	if err := db.WithContext(ctx).Raw("SELECT PostGIS_Lib_Version()").Scan(&version).Error; err != nil {
		logger.Warn("PostGIS is not available, radius queries will fail until migrations run", slog.Any("error", err))

		return
	}
	logger.Info("Record store connected", slog.String("postgis", version))
}

func watchPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := sqlDB.Stats()
			waits := now.WaitCount - last.WaitCount
			waited := now.WaitDuration - last.WaitDuration
			last = now

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolWaitWarnBudget {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Record store pool contention",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avg_wait", waited/time.Duration(waits)),
				slog.Int("in_use", now.InUse),
				slog.Int("idle", now.Idle),
				slog.Int("max_open", now.MaxOpenConnections),
			)
		}
	}
}
