package postgres

import (
	"context"
	"time"

	"vendorradar/internal/domain/entity"
	"vendorradar/internal/domain/repository"
	"vendorradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrCustomerEmailTaken
		}

		return errors.Wrap(err, "failed to create customer")
	}

	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) FindCustomerByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) UpdateCustomerPreferences(ctx context.Context, id uuid.UUID, prefs entity.Preferences) error {
	customerM := model.CustomerModel{Preferences: fromPreferencesDomain(prefs)}

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Select("preferences", "updated_at").
		Updates(&customerM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer preferences")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) UpdateCustomerLocation(ctx context.Context, id uuid.UUID, location *entity.CustomerLocation) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"longitude": location.Coordinates.Lon(),
		"latitude":  location.Coordinates.Lat(),
		"address":   location.Address,
		"city":      location.City,
		"state":     location.State,
		"zip_code":  location.ZipCode,
	})
}

func (repo *customerRepository) UpdateCustomerPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumns(ctx, id, map[string]any{"password_hash": passwordHash})
}

func (repo *customerRepository) updateColumns(ctx context.Context, id uuid.UUID, columns map[string]any) error {
	columns["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := &entity.Customer{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Phone:           data.Phone,
		Preferences:     toPreferencesDomain(data.Preferences),
		FavoriteVendors: data.FavoriteVendors,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if customer.FavoriteVendors == nil {
		customer.FavoriteVendors = []uuid.UUID{}
	}

	if data.Longitude != nil && data.Latitude != nil {
		customer.Location = &entity.CustomerLocation{
			Coordinates: orb.Point{*data.Longitude, *data.Latitude},
			Address:     data.Address,
			City:        data.City,
			State:       data.State,
			ZipCode:     data.ZipCode,
		}
	}

	return customer
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	customerM := &model.CustomerModel{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		Phone:           data.Phone,
		Preferences:     fromPreferencesDomain(data.Preferences),
		FavoriteVendors: data.FavoriteVendors,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if customerM.FavoriteVendors == nil {
		customerM.FavoriteVendors = []uuid.UUID{}
	}

	if data.Location != nil {
		lon, lat := data.Location.Coordinates.Lon(), data.Location.Coordinates.Lat()
		customerM.Longitude = &lon
		customerM.Latitude = &lat
		customerM.Address = data.Location.Address
		customerM.City = data.Location.City
		customerM.State = data.Location.State
		customerM.ZipCode = data.Location.ZipCode
	}

	return customerM
}

func toPreferencesDomain(data model.PreferencesData) entity.Preferences {
	categories := make([]entity.Category, 0, len(data.Categories))
	for _, category := range data.Categories {
		categories = append(categories, entity.Category(category))
	}

	return entity.Preferences{
		Categories:    categories,
		MaxDistanceKm: data.MaxDistance,
		Organic:       data.Organic,
		Local:         data.Local,
	}
}

func fromPreferencesDomain(prefs entity.Preferences) model.PreferencesData {
	categories := make([]string, 0, len(prefs.Categories))
	for _, category := range prefs.Categories {
		categories = append(categories, category.String())
	}

	return model.PreferencesData{
		Categories:  categories,
		MaxDistance: prefs.MaxDistanceKm,
		Organic:     prefs.Organic,
		Local:       prefs.Local,
	}
}
