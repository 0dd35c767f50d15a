package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"vendorradar/config"
	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/service"
	"vendorradar/internal/infra/geoindex"
	"vendorradar/internal/infra/persistence/memory"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// recordingBroadcaster keeps every event it is asked to broadcast.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []*service.RealtimeEvent
	err    error
}

func (b *recordingBroadcaster) Broadcast(_ context.Context, event *service.RealtimeEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, event)

	return b.err
}

func (b *recordingBroadcaster) Close() error { return nil }

func (b *recordingBroadcaster) names() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	names := make([]string, 0, len(b.events))
	for _, event := range b.events {
		names = append(names, event.Event)
	}

	return names
}

// testEnv wires the services over the in-memory repositories and position store.
type testEnv struct {
	cfg         *config.Config
	vendors     *memory.VendorRepository
	products    *memory.ProductRepository
	customers   *memory.CustomerRepository
	history     *memory.SearchHistoryRepository
	store       *geoindex.MemoryStore
	broadcaster *recordingBroadcaster
	index       *proximityIndex
}

func newTestConfig() *config.Config {
	return &config.Config{
		Search: &config.SearchConfig{DefaultMaxDistanceKm: 10, DefaultLimit: 20, MaxLimit: 50},
		History: &config.HistoryConfig{
			Cap:                    50,
			SuggestionWindow:       10,
			DefaultSuggestionLimit: 5,
			DefaultSuggestions:     []string{"fruits", "vegetables", "dairy", "snacks"},
		},
		Realtime: &config.RealtimeConfig{AutoActivateOnLocationReport: true},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		cfg:         newTestConfig(),
		vendors:     memory.NewVendorRepository(),
		products:    memory.NewProductRepository(),
		customers:   memory.NewCustomerRepository(),
		history:     memory.NewSearchHistoryRepository(),
		store:       geoindex.NewMemoryStore(),
		broadcaster: &recordingBroadcaster{},
	}
	env.index = newProximityIndex(env.vendors, env.store, discardLogger, time.Now)

	return env
}

func (env *testEnv) searchService() *searchService {
	return NewSearchService(SearchServiceParams{
		ProductRepo: env.products,
		VendorRepo:  env.vendors,
		Index:       env.index,
		Config:      env.cfg,
		Logger:      discardLogger,
	}).(*searchService)
}

func (env *testEnv) liveLocationService() *liveLocationService {
	return NewLiveLocationService(LiveLocationServiceParams{
		VendorRepo:  env.vendors,
		Index:       env.index,
		Broadcaster: env.broadcaster,
		Config:      env.cfg,
		Logger:      discardLogger,
	}).(*liveLocationService)
}

func (env *testEnv) vendorService() *vendorService {
	return NewVendorService(VendorServiceParams{
		VendorRepo:  env.vendors,
		ProductRepo: env.products,
		Index:       env.index,
		Broadcaster: env.broadcaster,
		Config:      env.cfg,
		Logger:      discardLogger,
	}).(*vendorService)
}

func (env *testEnv) customerService() *customerService {
	return NewCustomerService(CustomerServiceParams{
		CustomerRepo: env.customers,
		Index:        env.index,
		Config:       env.cfg,
		Logger:       discardLogger,
	}).(*customerService)
}

func (env *testEnv) historyService() *historyService {
	return NewHistoryService(HistoryServiceParams{
		HistoryRepo: env.history,
		Config:      env.cfg,
		Logger:      discardLogger,
	}).(*historyService)
}

// seedVendor stores a vendor record and, when at is non-nil, its position in both the record and the store.
func (env *testEnv) seedVendor(t *testing.T, name string, at *orb.Point, available bool) *entity.Vendor {
	t.Helper()
	ctx := context.Background()

	vendor := &entity.Vendor{
		Name:           name,
		Email:          name + "@example.com",
		Phone:          "+15551234567",
		BusinessName:   name + " stand",
		IsAvailable:    available,
		OperatingHours: entity.OperatingHours{Start: "08:00", End: "18:00"},
	}
	require.NoError(t, env.vendors.CreateVendor(ctx, vendor))

	if at != nil {
		location := &entity.VendorLocation{Coordinates: *at, Address: "1 Market St", LastUpdateTimestamp: time.Now().UTC()}
		require.NoError(t, env.vendors.UpdateVendorLocation(ctx, vendor.ID, location))
		require.NoError(t, env.store.Put(ctx, service.VendorPosition{
			VendorID:  vendor.ID,
			Point:     *at,
			UpdatedAt: location.LastUpdateTimestamp,
		}))
		vendor.Location = location
	}

	return vendor
}

// seedProduct lists an available product for the vendor.
func (env *testEnv) seedProduct(t *testing.T, vendor *entity.Vendor, name string, tags ...string) *entity.Product {
	t.Helper()

	product := &entity.Product{
		VendorID:    vendor.ID,
		Name:        name,
		Category:    entity.CategoryFruits,
		Price:       2.5,
		Unit:        entity.UnitKg,
		Quantity:    10,
		IsAvailable: true,
		Images:      []string{},
		Tags:        tags,
	}
	require.NoError(t, env.products.CreateProduct(context.Background(), product))

	return product
}

// pointNorthOf returns the point distanceKm due north of origin.
func pointNorthOf(origin orb.Point, distanceKm float64) orb.Point {
	const kmPerDegreeLat = 6371 * 3.141592653589793 / 180

	return orb.Point{origin.Lon(), origin.Lat() + distanceKm/kmPerDegreeLat}
}

func ptr[T any](v T) *T {
	return &v
}
