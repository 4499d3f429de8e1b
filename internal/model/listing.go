package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PropertyTypes are the accepted values for Listing.PropertyType.
var PropertyTypes = []string{
	"apartment", "house", "condo", "villa", "studio", "loft", "cabin", "other",
}

// Listing is a bookable property owned by a host user.
type Listing struct {
	ID            uuid.UUID
	HostID        uuid.UUID
	Title         string
	Description   string
	PropertyType  string
	PricePerNight float64
	Location      string
	City          string
	State         string
	Country       string

	// Optional coordinates; both set or both nil.
	Latitude  *float64
	Longitude *float64

	Bedrooms  int
	Bathrooms int
	MaxGuests int

	// Comma-separated, e.g. "WiFi, Kitchen, Parking".
	Amenities   string
	IsAvailable bool
	CreatedAt   time.Time
}

// Validate checks the field constraints the upstream schema enforces
// declaratively: a real host reference, a positive nightly price, at
// least one guest of capacity, and coordinates within valid ranges.
func (l *Listing) Validate() error {
	if l.HostID == uuid.Nil {
		return fmt.Errorf("listing %s: missing host", l.ID)
	}
	if l.PricePerNight < 0.01 {
		return fmt.Errorf("listing %s: price per night must be at least 0.01, got %.2f", l.ID, l.PricePerNight)
	}
	if l.MaxGuests < 1 {
		return fmt.Errorf("listing %s: max guests must be positive, got %d", l.ID, l.MaxGuests)
	}
	if !validPropertyType(l.PropertyType) {
		return fmt.Errorf("listing %s: unknown property type %q", l.ID, l.PropertyType)
	}
	if (l.Latitude == nil) != (l.Longitude == nil) {
		return fmt.Errorf("listing %s: latitude and longitude must be set together", l.ID)
	}
	if l.Latitude != nil {
		if *l.Latitude < -90 || *l.Latitude > 90 {
			return fmt.Errorf("listing %s: latitude %.6f out of range", l.ID, *l.Latitude)
		}
		if *l.Longitude < -180 || *l.Longitude > 180 {
			return fmt.Errorf("listing %s: longitude %.6f out of range", l.ID, *l.Longitude)
		}
	}
	return nil
}

func validPropertyType(pt string) bool {
	for _, t := range PropertyTypes {
		if pt == t {
			return true
		}
	}
	return false
}
