package seeder

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/model"
)

// City is a sample location with coordinates.
type City struct {
	Name      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
}

// Vocabulary holds the sample pools the generator draws from. Pools can
// be overridden through a seed profile.
type Vocabulary struct {
	FirstNames      []string
	LastNames       []string
	Cities          []City
	PropertyTypes   []string
	Amenities       []string
	TitleStyles     []string
	Comments        []string
	SpecialRequests []string
}

func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		FirstNames: []string{
			"John", "Jane", "Bob", "Alice", "Charlie", "Diana", "Frank", "Grace",
			"Henry", "Ivy", "Marco", "Nadia",
		},
		LastNames: []string{
			"Doe", "Smith", "Wilson", "Johnson", "Brown", "Davis", "Miller", "Taylor",
			"Garcia", "Martinez", "Nguyen", "Okafor",
		},
		Cities: []City{
			{"New York", "NY", "USA", 40.712800, -74.006000},
			{"Miami", "FL", "USA", 25.761700, -80.191800},
			{"Aspen", "CO", "USA", 39.191100, -106.817500},
			{"Austin", "TX", "USA", 30.267200, -97.743100},
			{"Seattle", "WA", "USA", 47.606200, -122.332100},
			{"Chicago", "IL", "USA", 41.878100, -87.629800},
			{"San Diego", "CA", "USA", 32.715700, -117.161100},
			{"Nashville", "TN", "USA", 36.162700, -86.781600},
			{"Portland", "OR", "USA", 45.515200, -122.676800},
			{"New Orleans", "LA", "USA", 29.951100, -90.071500},
		},
		PropertyTypes: model.PropertyTypes,
		Amenities: []string{
			"WiFi", "Kitchen", "Air Conditioning", "Heating", "Pool", "Parking",
			"Washer", "Dryer", "Fireplace", "Hot Tub", "Gym", "Beach Access",
			"Workspace", "Balcony", "BBQ Grill",
		},
		TitleStyles: []string{
			"Cozy", "Luxury", "Charming", "Modern", "Rustic", "Sunny", "Spacious",
			"Quiet", "Stylish", "Historic",
		},
		Comments: []string{
			"Amazing stay! Highly recommend.",
			"Very clean and comfortable.",
			"Great location and friendly host.",
			"Would definitely book again.",
			"The property was just as described.",
			"Check-in was smooth and the host was responsive.",
			"Lovely neighborhood, slept like a log.",
			"A bit noisy at night but otherwise great value.",
		},
		SpecialRequests: []string{
			"Late check-in, arriving around 10pm.",
			"Early check-in if possible, please.",
			"Traveling with a small dog.",
			"Could you provide a crib for a toddler?",
			"Anniversary trip - any tips for nearby restaurants?",
		},
	}
}

// DataGenerator produces synthetic records from a seedable random
// source, so a fixed seed reproduces the entire dataset, ids included.
type DataGenerator struct {
	rng     *rand.Rand
	vocab   *Vocabulary
	counter int
}

func NewDataGenerator(seed int64, vocab *Vocabulary) *DataGenerator {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &DataGenerator{
		rng:   rand.New(rand.NewSource(seed)),
		vocab: vocab,
	}
}

// newID draws a UUIDv4 from the seeded source rather than crypto/rand,
// keeping runs reproducible.
func (g *DataGenerator) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand's Read never fails; keep the fallback anyway.
		return uuid.New()
	}
	return id
}

func (g *DataGenerator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

// User produces a synthetic user with identifiers unique within the run.
func (g *DataGenerator) User() *model.User {
	g.counter++
	first := g.pick(g.vocab.FirstNames)
	last := g.pick(g.vocab.LastNames)
	return &model.User{
		ID:        g.newID(),
		Username:  fmt.Sprintf("%s_%s%d", strings.ToLower(first), strings.ToLower(last), g.counter),
		FirstName: first,
		LastName:  last,
		Email:     fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), g.counter),
		Phone:     fmt.Sprintf("+1-%03d-%03d-%04d", g.rng.Intn(1000), g.rng.Intn(1000), g.rng.Intn(10000)),
		CreatedAt: time.Now(),
	}
}

// Listing produces a listing hosted by the given user, with plausible
// attributes drawn from the vocabulary pools.
func (g *DataGenerator) Listing(host *model.User) *model.Listing {
	city := g.vocab.Cities[g.rng.Intn(len(g.vocab.Cities))]
	propertyType := g.pick(g.vocab.PropertyTypes)
	style := g.pick(g.vocab.TitleStyles)
	bedrooms := 1 + g.rng.Intn(5)

	// Jitter the city coordinates so listings don't stack on one point.
	lat := city.Latitude + (g.rng.Float64()-0.5)*0.1
	long := city.Longitude + (g.rng.Float64()-0.5)*0.1

	return &model.Listing{
		ID:            g.newID(),
		HostID:        host.ID,
		Title:         fmt.Sprintf("%s %s in %s", style, capitalize(propertyType), city.Name),
		Description:   fmt.Sprintf("A %s %s in %s, %s. Hosted by %s.", strings.ToLower(style), propertyType, city.Name, city.State, host.FirstName),
		PropertyType:  propertyType,
		PricePerNight: float64(5000+g.rng.Intn(45001)) / 100, // 50.00 - 500.00
		Location:      fmt.Sprintf("%d %s Street", 1+g.rng.Intn(9999), g.pick([]string{"Main", "Oak", "Maple", "Ocean", "Mountain", "Market"})),
		City:          city.Name,
		State:         city.State,
		Country:       city.Country,
		Latitude:      &lat,
		Longitude:     &long,
		Bedrooms:      bedrooms,
		Bathrooms:     1 + g.rng.Intn(3),
		MaxGuests:     bedrooms * 2,
		Amenities:     strings.Join(g.amenitySubset(), ", "),
		IsAvailable:   g.rng.Intn(10) > 0,
		CreatedAt:     time.Now(),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (g *DataGenerator) amenitySubset() []string {
	n := 3 + g.rng.Intn(4)
	// A profile may shrink the amenity pool below the draw size.
	if n > len(g.vocab.Amenities) {
		n = len(g.vocab.Amenities)
	}
	perm := g.rng.Perm(len(g.vocab.Amenities))
	subset := make([]string, 0, n)
	for _, idx := range perm[:n] {
		subset = append(subset, g.vocab.Amenities[idx])
	}
	return subset
}

// Booking produces a booking of the listing by the guest, starting on a
// future date. The caller guarantees guest != host.
func (g *DataGenerator) Booking(listing *model.Listing, guest *model.User, today time.Time) *model.Booking {
	checkIn := today.AddDate(0, 0, 1+g.rng.Intn(60))
	nights := 1 + g.rng.Intn(14)

	special := ""
	if g.rng.Intn(10) < 3 {
		special = g.pick(g.vocab.SpecialRequests)
	}

	return &model.Booking{
		ID:              g.newID(),
		ListingID:       listing.ID,
		GuestID:         guest.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkIn.AddDate(0, 0, nights),
		NumGuests:       1 + g.rng.Intn(listing.MaxGuests),
		TotalPrice:      math.Round(listing.PricePerNight*float64(nights)*100) / 100,
		Status:          g.bookingStatus(),
		SpecialRequests: special,
		CreatedAt:       time.Now(),
	}
}

// bookingStatus is weighted toward confirmed/completed so review
// generation has completed bookings to attach to.
func (g *DataGenerator) bookingStatus() model.BookingStatus {
	switch r := g.rng.Intn(100); {
	case r < 15:
		return model.StatusPending
	case r < 50:
		return model.StatusConfirmed
	case r < 85:
		return model.StatusCompleted
	case r < 95:
		return model.StatusCancelled
	default:
		return model.StatusRefunded
	}
}

// Review produces a review of the listing by the reviewer, optionally
// tied to a booking. The four sub-ratings are drawn independently; the
// overall rating is their rounded mean so every review is internally
// consistent.
func (g *DataGenerator) Review(listing *model.Listing, reviewer *model.User, booking *model.Booking) *model.Review {
	cleanliness := 1 + g.rng.Intn(5)
	communication := 1 + g.rng.Intn(5)
	location := 1 + g.rng.Intn(5)
	value := 1 + g.rng.Intn(5)
	overall := int(math.Round(float64(cleanliness+communication+location+value) / 4))

	var bookingID *uuid.UUID
	if booking != nil {
		id := booking.ID
		bookingID = &id
	}

	return &model.Review{
		ID:                  g.newID(),
		ListingID:           listing.ID,
		ReviewerID:          reviewer.ID,
		BookingID:           bookingID,
		Rating:              overall,
		CleanlinessRating:   cleanliness,
		CommunicationRating: communication,
		LocationRating:      location,
		ValueRating:         value,
		Comment:             g.pick(g.vocab.Comments),
		CreatedAt:           time.Now(),
	}
}
