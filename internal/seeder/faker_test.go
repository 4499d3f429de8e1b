package seeder

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestListingAmenitiesWithSmallPool(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab.Amenities = []string{"WiFi", "Kitchen"}

	g := NewDataGenerator(7, vocab)
	host := g.User()
	for i := 0; i < 20; i++ {
		l := g.Listing(host)
		if l.Amenities == "" {
			t.Fatal("Expected at least one amenity")
		}
		for _, a := range strings.Split(l.Amenities, ", ") {
			if a != "WiFi" && a != "Kitchen" {
				t.Fatalf("Expected amenities drawn from the pool, got %q", a)
			}
		}
	}
}

func TestGeneratorDeterminism(t *testing.T) {
	a := NewDataGenerator(42, nil)
	b := NewDataGenerator(42, nil)

	for i := 0; i < 10; i++ {
		ua, ub := a.User(), b.User()
		if ua.ID != ub.ID {
			t.Fatalf("Expected identical ids for seed 42, got %s and %s", ua.ID, ub.ID)
		}
		if ua.Email != ub.Email {
			t.Fatalf("Expected identical emails for seed 42, got %s and %s", ua.Email, ub.Email)
		}
	}
}

func TestUserIdentitiesUnique(t *testing.T) {
	g := NewDataGenerator(1, nil)

	emails := make(map[string]bool)
	usernames := make(map[string]bool)
	for i := 0; i < 200; i++ {
		u := g.User()
		if emails[u.Email] {
			t.Fatalf("Duplicate email generated: %s", u.Email)
		}
		if usernames[u.Username] {
			t.Fatalf("Duplicate username generated: %s", u.Username)
		}
		emails[u.Email] = true
		usernames[u.Username] = true
	}
}

func TestListingAttributes(t *testing.T) {
	g := NewDataGenerator(7, nil)
	host := g.User()

	for i := 0; i < 100; i++ {
		l := g.Listing(host)
		if err := l.Validate(); err != nil {
			t.Fatalf("Generated listing failed validation: %v", err)
		}
		if l.HostID != host.ID {
			t.Error("Expected listing host to match the given user")
		}
		if l.PricePerNight < 50 || l.PricePerNight > 500 {
			t.Errorf("Expected price in [50, 500], got %.2f", l.PricePerNight)
		}
		if l.Latitude == nil || l.Longitude == nil {
			t.Fatal("Expected generated listings to carry coordinates")
		}
		if *l.Latitude < -90 || *l.Latitude > 90 || *l.Longitude < -180 || *l.Longitude > 180 {
			t.Errorf("Coordinates out of range: %.6f, %.6f", *l.Latitude, *l.Longitude)
		}
		if l.MaxGuests < 1 {
			t.Errorf("Expected positive guest capacity, got %d", l.MaxGuests)
		}
	}
}

func TestBookingAttributes(t *testing.T) {
	g := NewDataGenerator(11, nil)
	host := g.User()
	guest := g.User()
	today := time.Now().Truncate(24 * time.Hour)

	for i := 0; i < 100; i++ {
		listing := g.Listing(host)
		b := g.Booking(listing, guest, today)

		if !b.CheckOutDate.After(b.CheckInDate) {
			t.Error("Expected check-out after check-in")
		}
		if b.CheckInDate.Before(today) {
			t.Error("Expected check-in not to be in the past")
		}
		if b.NumGuests < 1 || b.NumGuests > listing.MaxGuests {
			t.Errorf("Expected guests in [1, %d], got %d", listing.MaxGuests, b.NumGuests)
		}

		wantTotal := math.Round(listing.PricePerNight*float64(b.Nights())*100) / 100
		if b.TotalPrice != wantTotal {
			t.Errorf("Expected total %.2f for %d nights at %.2f, got %.2f",
				wantTotal, b.Nights(), listing.PricePerNight, b.TotalPrice)
		}
		if !b.Status.Valid() {
			t.Errorf("Generated booking has invalid status %q", b.Status)
		}
	}
}

func TestReviewRatings(t *testing.T) {
	g := NewDataGenerator(13, nil)
	host := g.User()
	reviewer := g.User()

	for i := 0; i < 100; i++ {
		listing := g.Listing(host)
		r := g.Review(listing, reviewer, nil)

		for name, v := range map[string]int{
			"overall":       r.Rating,
			"cleanliness":   r.CleanlinessRating,
			"communication": r.CommunicationRating,
			"location":      r.LocationRating,
			"value":         r.ValueRating,
		} {
			if v < 1 || v > 5 {
				t.Errorf("Expected %s rating in [1, 5], got %d", name, v)
			}
		}

		sum := r.CleanlinessRating + r.CommunicationRating + r.LocationRating + r.ValueRating
		want := int(math.Round(float64(sum) / 4))
		if r.Rating != want {
			t.Errorf("Expected overall rating %d (rounded mean of %d), got %d", want, sum, r.Rating)
		}
	}
}
