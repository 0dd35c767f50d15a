package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"

	"github.com/google/uuid"
)

// CustomerRepository is a map-backed repository.CustomerRepository.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[uuid.UUID]*entity.Customer
}

var _ repository.CustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (repo *CustomerRepository) CreateCustomer(_ context.Context, customer *entity.Customer) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, existing := range repo.customers {
		if strings.EqualFold(existing.Email, customer.Email) {
			return repository.ErrCustomerEmailTaken
		}
	}

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	repo.customers[customer.ID] = cloneCustomer(customer)

	return nil
}

func (repo *CustomerRepository) FindCustomerByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	customer, ok := repo.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}

	return cloneCustomer(customer), nil
}

func (repo *CustomerRepository) FindCustomerByEmail(_ context.Context, email string) (*entity.Customer, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, customer := range repo.customers {
		if strings.EqualFold(customer.Email, email) {
			return cloneCustomer(customer), nil
		}
	}

	return nil, repository.ErrCustomerNotFound
}

func (repo *CustomerRepository) UpdateCustomerPreferences(_ context.Context, id uuid.UUID, prefs entity.Preferences) error {
	return repo.update(id, func(customer *entity.Customer) {
		customer.Preferences = prefs
		customer.Preferences.Categories = slices.Clone(prefs.Categories)
	})
}

func (repo *CustomerRepository) UpdateCustomerLocation(_ context.Context, id uuid.UUID, location *entity.CustomerLocation) error {
	return repo.update(id, func(customer *entity.Customer) {
		copied := *location
		customer.Location = &copied
	})
}

func (repo *CustomerRepository) UpdateCustomerPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	return repo.update(id, func(customer *entity.Customer) {
		customer.PasswordHash = passwordHash
	})
}

func (repo *CustomerRepository) update(id uuid.UUID, apply func(customer *entity.Customer)) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	customer, ok := repo.customers[id]
	if !ok {
		return repository.ErrCustomerNotFound
	}

	apply(customer)
	customer.UpdatedAt = time.Now()

	return nil
}

func cloneCustomer(customer *entity.Customer) *entity.Customer {
	copied := *customer
	copied.Preferences.Categories = slices.Clone(customer.Preferences.Categories)
	copied.FavoriteVendors = slices.Clone(customer.FavoriteVendors)
	if customer.Location != nil {
		location := *customer.Location
		copied.Location = &location
	}

	return &copied
}
