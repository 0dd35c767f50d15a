package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Customer is a searcher with an optional location, preferences and a search history.
type Customer struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	PasswordHash    string            `json:"-"`
	Phone           string            `json:"phone,omitempty"`
	Location        *CustomerLocation `json:"location,omitempty"`
	Preferences     Preferences       `json:"preferences"`
	FavoriteVendors []uuid.UUID       `json:"favoriteVendors"`
	IsActive        bool              `json:"isActive"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// CustomerLocation is where a customer searches from by default.
type CustomerLocation struct {
	Coordinates orb.Point `json:"coordinates"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city,omitempty"`
	State       string    `json:"state,omitempty"`
	ZipCode     string    `json:"zipCode,omitempty"`
}

// Preferences shape the customer's default queries.
type Preferences struct {
	Categories    []Category `json:"categories"`
	MaxDistanceKm float64    `json:"maxDistance"`
	Organic       bool       `json:"organic"`
	Local         bool       `json:"local"`
}

// DefaultPreferences mirrors what a freshly registered customer starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Categories:    []Category{},
		MaxDistanceKm: 10,
	}
}

// SearchHistoryEntry is one logged customer query.
type SearchHistoryEntry struct {
	Query        string     `json:"query"`
	Coordinates  *orb.Point `json:"coordinates,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
	ResultsCount int        `json:"resultsCount"`
}
