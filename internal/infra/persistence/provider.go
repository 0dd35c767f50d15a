// Package persistence selects the record, history and position stores named in configuration.
package persistence

import (
	"log/slog"

	"vendorradar/config"
	"vendorradar/internal/domain/constants"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/infra/geoindex"
	"vendorradar/internal/infra/persistence/memory"
	"vendorradar/internal/infra/persistence/mongodb"
	"vendorradar/internal/infra/persistence/postgres"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Connections opens each backing store at most once, and only when a configured component needs it.
type Connections struct {
	lc     fx.Lifecycle
	cfg    *config.Config
	logger *slog.Logger

	pg    *gorm.DB
	mongo *mongo.Database
	redis *redis.Client
}

// ConnectionsParams holds dependencies for Connections, injected by Fx
type ConnectionsParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewConnections is the constructor for Connections.
func NewConnections(params ConnectionsParams) *Connections {
	return &Connections{lc: params.Lifecycle, cfg: params.Config, logger: params.Logger}
}

// Postgres returns the shared gorm handle.
func (c *Connections) Postgres() (*gorm.DB, error) {
	if c.pg == nil {
		db, err := postgres.New(postgres.Params{Lifecycle: c.lc, Config: c.cfg, Logger: c.logger})
		if err != nil {
			return nil, err
		}
		c.pg = db
	}

	return c.pg, nil
}

// Mongo returns the shared database handle.
func (c *Connections) Mongo() (*mongo.Database, error) {
	if c.mongo == nil {
		db, err := mongodb.New(mongodb.Params{Lifecycle: c.lc, Config: c.cfg, Logger: c.logger})
		if err != nil {
			return nil, err
		}
		c.mongo = db
	}

	return c.mongo, nil
}

// Redis returns the shared client.
func (c *Connections) Redis() (*redis.Client, error) {
	if c.redis == nil {
		client, err := geoindex.NewRedisClient(c.lc, c.cfg, c.logger)
		if err != nil {
			return nil, err
		}
		c.redis = client
	}

	return c.redis, nil
}

// Repositories is the set of record stores.
type Repositories struct {
	fx.Out

	Vendors   repository.VendorRepository
	Products  repository.ProductRepository
	Customers repository.CustomerRepository
}

// NewRepositories builds the record stores for storage.driver.
func NewRepositories(conns *Connections) (Repositories, error) {
	driver := conns.cfg.Storage.Driver
	conns.logger.Info("Record store selected", slog.String("driver", driver))

	switch driver {
	case constants.StorageDriverMemory:
		return Repositories{
			Vendors:   memory.NewVendorRepository(),
			Products:  memory.NewProductRepository(),
			Customers: memory.NewCustomerRepository(),
		}, nil

	case constants.StorageDriverPostgres:
		db, err := conns.Postgres()
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Vendors:   postgres.NewVendorRepository(db),
			Products:  postgres.NewProductRepository(db),
			Customers: postgres.NewCustomerRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", driver)
	}
}

// NewSearchHistoryRepository builds the history store for history.store.
func NewSearchHistoryRepository(conns *Connections) (repository.SearchHistoryRepository, error) {
	store := conns.cfg.History.Store
	conns.logger.Info("Search history store selected", slog.String("store", store))

	switch store {
	case constants.HistoryStoreMemory:
		return memory.NewSearchHistoryRepository(), nil

	case constants.HistoryStorePostgres:
		db, err := conns.Postgres()
		if err != nil {
			return nil, err
		}

		return postgres.NewSearchHistoryRepository(db), nil

	case constants.HistoryStoreMongo:
		db, err := conns.Mongo()
		if err != nil {
			return nil, err
		}

		return mongodb.NewSearchHistoryRepository(db), nil

	default:
		return nil, errors.Errorf("unknown history store: %s", store)
	}
}

// NewPositionStore builds the position store for proximity.backend.
func NewPositionStore(conns *Connections) (service.PositionStore, error) {
	cfg := conns.cfg
	backend := cfg.Proximity.Backend
	conns.logger.Info("Position store selected", slog.String("backend", backend))

	switch backend {
	case constants.ProximityBackendMemory:
		return geoindex.NewMemoryStore(), nil

	case constants.ProximityBackendRedis:
		client, err := conns.Redis()
		if err != nil {
			return nil, err
		}

		return geoindex.NewRedisStore(client, cfg.Redis.GeoKey, cfg.Proximity.CandidatePadding), nil

	case constants.ProximityBackendMongo:
		db, err := conns.Mongo()
		if err != nil {
			return nil, err
		}

		return mongodb.NewPositionStore(mongodb.PositionStoreParams{Lifecycle: conns.lc, DB: db, Config: cfg}), nil

	case constants.ProximityBackendPostgres:
		db, err := conns.Postgres()
		if err != nil {
			return nil, err
		}

		return postgres.NewPositionStore(db, cfg), nil

	default:
		return nil, errors.Errorf("unknown proximity backend: %s", backend)
	}
}

// Module provides every store selected by configuration
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewConnections,
		NewRepositories,
		NewSearchHistoryRepository,
		NewPositionStore,
	),
)
