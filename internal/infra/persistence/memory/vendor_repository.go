// Package memory implements every repository in process, for development and tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"

	"github.com/google/uuid"
)

// VendorRepository is a map-backed repository.VendorRepository.
type VendorRepository struct {
	mu      sync.RWMutex
	vendors map[uuid.UUID]*entity.Vendor
}

var _ repository.VendorRepository = (*VendorRepository)(nil)

func NewVendorRepository() *VendorRepository {
	return &VendorRepository{vendors: make(map[uuid.UUID]*entity.Vendor)}
}

func (repo *VendorRepository) CreateVendor(_ context.Context, vendor *entity.Vendor) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.vendors {
		if strings.EqualFold(existing.Email, vendor.Email) {
			return repository.ErrVendorEmailTaken
		}
	}

	if vendor.ID == uuid.Nil {
		vendor.ID = uuid.New()
	}
	now := time.Now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now
	repo.vendors[vendor.ID] = cloneVendor(vendor)

	return nil
}

func (repo *VendorRepository) FindVendorByID(_ context.Context, id uuid.UUID) (*entity.Vendor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	vendor, ok := repo.vendors[id]
	if !ok {
		return nil, repository.ErrVendorNotFound
	}

	return cloneVendor(vendor), nil
}

func (repo *VendorRepository) FindVendorByEmail(_ context.Context, email string) (*entity.Vendor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, vendor := range repo.vendors {
		if strings.EqualFold(vendor.Email, email) {
			return cloneVendor(vendor), nil
		}
	}

	return nil, repository.ErrVendorNotFound
}

func (repo *VendorRepository) FindVendorsByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Vendor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	vendors := make([]*entity.Vendor, 0, len(ids))
	for _, id := range ids {
		if vendor, ok := repo.vendors[id]; ok {
			vendors = append(vendors, cloneVendor(vendor))
		}
	}

	return vendors, nil
}

func (repo *VendorRepository) ListLocatedVendors(_ context.Context) ([]*entity.Vendor, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	vendors := make([]*entity.Vendor, 0, len(repo.vendors))
	for _, vendor := range repo.vendors {
		if vendor.HasLocation() {
			vendors = append(vendors, cloneVendor(vendor))
		}
	}

	return vendors, nil
}

func (repo *VendorRepository) UpdateVendorLocation(_ context.Context, id uuid.UUID, location *entity.VendorLocation) error {
	return repo.update(id, func(vendor *entity.Vendor) {
		copied := *location
		vendor.Location = &copied
	})
}

func (repo *VendorRepository) UpdateVendorAvailability(_ context.Context, id uuid.UUID, isAvailable bool) error {
	return repo.update(id, func(vendor *entity.Vendor) {
		vendor.IsAvailable = isAvailable
	})
}

func (repo *VendorRepository) UpdateVendorProfile(_ context.Context, profile *entity.Vendor) error {
	return repo.update(profile.ID, func(vendor *entity.Vendor) {
		vendor.Name = profile.Name
		vendor.Phone = profile.Phone
		vendor.BusinessName = profile.BusinessName
		vendor.Description = profile.Description
		vendor.OperatingHours = profile.OperatingHours
	})
}

func (repo *VendorRepository) UpdateVendorPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	return repo.update(id, func(vendor *entity.Vendor) {
		vendor.PasswordHash = passwordHash
	})
}

func (repo *VendorRepository) update(id uuid.UUID, apply func(vendor *entity.Vendor)) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	vendor, ok := repo.vendors[id]
	if !ok {
		return repository.ErrVendorNotFound
	}

	apply(vendor)
	vendor.UpdatedAt = time.Now()

	return nil
}

func cloneVendor(vendor *entity.Vendor) *entity.Vendor {
	copied := *vendor
	if vendor.Location != nil {
		location := *vendor.Location
		copied.Location = &location
	}

	return &copied
}
