// Package geoindex holds the position store backends that keep vendorID -> position
// mappings in a geospatial index.
package geoindex

import (
	"context"
	"math"
	"sync"

	"vendorradar/internal/domain/service"
	"vendorradar/internal/geo"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// DefaultCellSizeDeg is the grid cell edge used by NewMemoryStore, about 11 km of latitude.
const DefaultCellSizeDeg = 0.1

type cellKey struct {
	latCell int
	lonCell int
}

// MemoryStore is a grid-based in-process position store.
// Every vendor lives in exactly one cell; a query scans the cells covering the
// bounding box of the search circle.
type MemoryStore struct {
	mu        sync.RWMutex
	cellSize  float64
	positions map[uuid.UUID]service.VendorPosition
	cellOf    map[uuid.UUID]cellKey
	grid      map[cellKey]map[uuid.UUID]struct{}
}

var (
	_ service.PositionStore         = (*MemoryStore)(nil)
	_ service.PositionStoreResetter = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty store with the default cell size.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithCellSize(DefaultCellSizeDeg)
}

// NewMemoryStoreWithCellSize creates an empty store; cellSizeDeg must be positive.
func NewMemoryStoreWithCellSize(cellSizeDeg float64) *MemoryStore {
	if cellSizeDeg <= 0 {
		cellSizeDeg = DefaultCellSizeDeg
	}

	return &MemoryStore{
		cellSize:  cellSizeDeg,
		positions: make(map[uuid.UUID]service.VendorPosition),
		cellOf:    make(map[uuid.UUID]cellKey),
		grid:      make(map[cellKey]map[uuid.UUID]struct{}),
	}
}

// Put replaces the vendor's position, moving it to its new cell if needed.
func (s *MemoryStore) Put(_ context.Context, position service.VendorPosition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.keyFor(position.Point)
	if previous, ok := s.cellOf[position.VendorID]; ok && previous != key {
		s.removeFromCell(previous, position.VendorID)
	}

	members, ok := s.grid[key]
	if !ok {
		members = make(map[uuid.UUID]struct{})
		s.grid[key] = members
	}
	members[position.VendorID] = struct{}{}

	s.cellOf[position.VendorID] = key
	s.positions[position.VendorID] = position

	return nil
}

func (s *MemoryStore) Get(_ context.Context, vendorIDs []uuid.UUID) (map[uuid.UUID]service.VendorPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[uuid.UUID]service.VendorPosition, len(vendorIDs))
	for _, id := range vendorIDs {
		if position, ok := s.positions[id]; ok {
			found[id] = position
		}
	}

	return found, nil
}

// Candidates returns every stored position inside the bounding box of the circle.
func (s *MemoryStore) Candidates(_ context.Context, center orb.Point, radiusKm float64) ([]service.VendorPosition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bound := geo.BoundAround(center, radiusKm)
	minKey := s.keyFor(bound.Min)
	maxKey := s.keyFor(bound.Max)

	cellCount := (maxKey.latCell - minKey.latCell + 1) * (maxKey.lonCell - minKey.lonCell + 1)
	if cellCount > len(s.grid) {
		// Scanning the occupied cells is cheaper than walking the empty box.
		return s.scanAll(bound), nil
	}

	var candidates []service.VendorPosition
	for latCell := minKey.latCell; latCell <= maxKey.latCell; latCell++ {
		for lonCell := minKey.lonCell; lonCell <= maxKey.lonCell; lonCell++ {
			for id := range s.grid[cellKey{latCell: latCell, lonCell: lonCell}] {
				position := s.positions[id]
				if bound.Contains(position.Point) {
					candidates = append(candidates, position)
				}
			}
		}
	}

	return candidates, nil
}

// Reset drops every position.
func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.positions = make(map[uuid.UUID]service.VendorPosition)
	s.cellOf = make(map[uuid.UUID]cellKey)
	s.grid = make(map[cellKey]map[uuid.UUID]struct{})

	return nil
}

// Size returns the number of vendors in the store.
func (s *MemoryStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.positions)
}

func (s *MemoryStore) scanAll(bound orb.Bound) []service.VendorPosition {
	var candidates []service.VendorPosition
	for _, position := range s.positions {
		if bound.Contains(position.Point) {
			candidates = append(candidates, position)
		}
	}

	return candidates
}

func (s *MemoryStore) removeFromCell(key cellKey, id uuid.UUID) {
	members := s.grid[key]
	delete(members, id)
	if len(members) == 0 {
		delete(s.grid, key)
	}
}

func (s *MemoryStore) keyFor(p orb.Point) cellKey {
	return cellKey{
		latCell: int(math.Floor((p.Lat() + 90) / s.cellSize)),
		lonCell: int(math.Floor((p.Lon() + 180) / s.cellSize)),
	}
}
