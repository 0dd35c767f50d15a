package postgres

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"vendorradar/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_RequiresPostgresSection(t *testing.T) {
	t.Parallel()

	_, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "postgres section is required")
}

func TestWatchPool_StopsWithContext(t *testing.T) {
	t.Parallel()

	// sql.Open does not dial, so the pool is never used here.
	sqlDB, err := sql.Open("pgx", "postgres://vendorradar@127.0.0.1:1/vendorradar")
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		watchPool(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), sqlDB, time.Millisecond)
		close(done)
	}()

	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool watcher did not stop")
	}

	watchPool(context.Background(), nil, sqlDB, time.Millisecond)
}
