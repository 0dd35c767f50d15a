package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// Vendor is a seller with a position, an availability flag, operating hours and products.
type Vendor struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"-"`
	Phone          string          `json:"phone"`
	BusinessName   string          `json:"businessName"`
	Description    string          `json:"description"`
	Location       *VendorLocation `json:"location,omitempty"` // nil until the first position is set
	IsAvailable    bool            `json:"isAvailable"`
	OperatingHours OperatingHours  `json:"operatingHours"`
	Rating         float64         `json:"rating"`
	TotalRatings   int             `json:"totalRatings"`
	IsVerified     bool            `json:"isVerified"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// HasLocation reports whether the vendor has ever reported a position.
func (v *Vendor) HasLocation() bool {
	return v != nil && v.Location != nil
}

// VendorLocation is the last known position of a vendor.
// Coordinates are always [longitude, latitude].
type VendorLocation struct {
	Coordinates         orb.Point `json:"coordinates"`
	Address             string    `json:"address,omitempty"`
	City                string    `json:"city,omitempty"`
	State               string    `json:"state,omitempty"`
	ZipCode             string    `json:"zipCode,omitempty"`
	LastUpdateTimestamp time.Time `json:"lastLocationUpdate"`
}

// OperatingHours holds the daily opening window in HH:MM.
type OperatingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// IsValid checks both bounds are well-formed clock values.
func (h OperatingHours) IsValid() bool {
	return IsClock(h.Start) && IsClock(h.End)
}

// IsClock reports whether s is an HH:MM value between 00:00 and 23:59.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}

// VendorWithDistance is a vendor annotated with its distance from a query point, in kilometers.
type VendorWithDistance struct {
	Vendor   *Vendor
	Distance float64
}
