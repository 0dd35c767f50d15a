package persistence

import (
	"io"
	"log/slog"
	"testing"

	"vendorradar/config"
	"vendorradar/internal/infra/geoindex"
	"vendorradar/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestConnections(t *testing.T, cfg *config.Config) *Connections {
	t.Helper()

	return NewConnections(ConnectionsParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func memoryConfig() *config.Config {
	return &config.Config{
		Storage:   &config.StorageConfig{Driver: "memory"},
		History:   &config.HistoryConfig{Store: "memory"},
		Proximity: &config.ProximityConfig{Backend: "memory", CandidatePadding: 1.1},
	}
}

func TestMemorySelection(t *testing.T) {
	conns := newTestConnections(t, memoryConfig())

	repos, err := NewRepositories(conns)
	require.NoError(t, err)
	assert.IsType(t, &memory.VendorRepository{}, repos.Vendors)
	assert.IsType(t, &memory.ProductRepository{}, repos.Products)
	assert.IsType(t, &memory.CustomerRepository{}, repos.Customers)

	history, err := NewSearchHistoryRepository(conns)
	require.NoError(t, err)
	assert.IsType(t, &memory.SearchHistoryRepository{}, history)

	store, err := NewPositionStore(conns)
	require.NoError(t, err)
	assert.IsType(t, &geoindex.MemoryStore{}, store)

	assert.Nil(t, conns.pg, "no connection is opened for memory stores")
	assert.Nil(t, conns.mongo)
	assert.Nil(t, conns.redis)
}

func TestUnknownSelections(t *testing.T) {
	cfg := memoryConfig()
	cfg.Storage.Driver = "sqlite"
	cfg.History.Store = "cassandra"
	cfg.Proximity.Backend = "elastic"
	conns := newTestConnections(t, cfg)

	_, err := NewRepositories(conns)
	assert.ErrorContains(t, err, "sqlite")

	_, err = NewSearchHistoryRepository(conns)
	assert.ErrorContains(t, err, "cassandra")

	_, err = NewPositionStore(conns)
	assert.ErrorContains(t, err, "elastic")
}

func TestRedisBackendRequiresAddress(t *testing.T) {
	cfg := memoryConfig()
	cfg.Proximity.Backend = "redis"

	_, err := NewPositionStore(newTestConnections(t, cfg))
	assert.ErrorContains(t, err, "redis.addr")
}
