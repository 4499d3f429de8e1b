package seeder

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/model"
)

func TestGenerateListingsEmptyPool(t *testing.T) {
	g := NewDataGenerator(1, nil)

	_, err := g.GenerateListings(5, nil)
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool, got %v", err)
	}

	// Zero requested is fine even with no users.
	listings, err := g.GenerateListings(0, nil)
	if err != nil {
		t.Errorf("Expected no error for zero listings, got %v", err)
	}
	if len(listings) != 0 {
		t.Errorf("Expected no listings, got %d", len(listings))
	}
}

func TestGenerateBookingsEmptyPools(t *testing.T) {
	g := NewDataGenerator(1, nil)
	today := time.Now().Truncate(24 * time.Hour)
	users := g.GenerateUsers(3)
	listings, err := g.GenerateListings(4, users)
	if err != nil {
		t.Fatalf("Failed to generate listings: %v", err)
	}

	if _, err := g.GenerateBookings(5, nil, users, today); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool for no listings, got %v", err)
	}
	if _, err := g.GenerateBookings(5, listings, nil, today); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool for no users, got %v", err)
	}
}

func TestGenerateBookingsGuestNeverHost(t *testing.T) {
	g := NewDataGenerator(3, nil)
	today := time.Now().Truncate(24 * time.Hour)
	users := g.GenerateUsers(4)
	listings, err := g.GenerateListings(6, users)
	if err != nil {
		t.Fatalf("Failed to generate listings: %v", err)
	}

	hostByListing := make(map[uuid.UUID]uuid.UUID)
	for _, l := range listings {
		hostByListing[l.ID] = l.HostID
	}

	bookings, err := g.GenerateBookings(200, listings, users, today)
	if err != nil {
		t.Fatalf("Failed to generate bookings: %v", err)
	}
	if len(bookings) != 200 {
		t.Fatalf("Expected 200 bookings, got %d", len(bookings))
	}

	for _, b := range bookings {
		if b.GuestID == hostByListing[b.ListingID] {
			t.Error("Generated booking where guest is the listing's host")
		}
		if !b.CheckOutDate.After(b.CheckInDate) {
			t.Error("Generated booking with check-out not after check-in")
		}
		if b.CheckInDate.Before(today) {
			t.Error("Generated booking with check-in in the past")
		}
	}
}

func TestGenerateBookingsSingleUserExhaustsResampling(t *testing.T) {
	g := NewDataGenerator(5, nil)
	today := time.Now().Truncate(24 * time.Hour)
	users := g.GenerateUsers(1)
	listings, err := g.GenerateListings(2, users)
	if err != nil {
		t.Fatalf("Failed to generate listings: %v", err)
	}

	// The only user hosts every listing, so no valid guest exists.
	_, err = g.GenerateBookings(1, listings, users, today)
	if !errors.Is(err, ErrConstraint) {
		t.Errorf("Expected ErrConstraint for single-user booking run, got %v", err)
	}
}

func TestGenerateReviewsPrefersCompletedBookings(t *testing.T) {
	g := NewDataGenerator(9, nil)
	today := time.Now().Truncate(24 * time.Hour)
	users := g.GenerateUsers(5)
	listings, err := g.GenerateListings(8, users)
	if err != nil {
		t.Fatalf("Failed to generate listings: %v", err)
	}
	bookings, err := g.GenerateBookings(30, listings, users, today)
	if err != nil {
		t.Fatalf("Failed to generate bookings: %v", err)
	}

	for _, b := range bookings {
		b.Status = model.StatusCompleted
	}

	// Fewer reviews than completed bookings: every review must derive
	// from a booking.
	reviews, err := g.GenerateReviews(10, listings, users, bookings)
	if err != nil {
		t.Fatalf("Failed to generate reviews: %v", err)
	}
	if len(reviews) != 10 {
		t.Fatalf("Expected 10 reviews, got %d", len(reviews))
	}

	bookingByID := make(map[uuid.UUID]*model.Booking)
	for _, b := range bookings {
		bookingByID[b.ID] = b
	}

	seen := make(map[uuid.UUID]bool)
	for _, r := range reviews {
		if r.BookingID == nil {
			t.Fatal("Expected every review to reference a completed booking")
		}
		if seen[*r.BookingID] {
			t.Error("Expected each completed booking to be reviewed at most once")
		}
		seen[*r.BookingID] = true

		b := bookingByID[*r.BookingID]
		if b == nil {
			t.Fatal("Review references an unknown booking")
		}
		if b.ListingID != r.ListingID {
			t.Error("Review listing does not match its booking's listing")
		}
		if b.GuestID != r.ReviewerID {
			t.Error("Review author does not match its booking's guest")
		}
	}
}

func TestGenerateReviewsFallbackNeverSelfReview(t *testing.T) {
	g := NewDataGenerator(17, nil)
	users := g.GenerateUsers(4)
	listings, err := g.GenerateListings(5, users)
	if err != nil {
		t.Fatalf("Failed to generate listings: %v", err)
	}

	hostByListing := make(map[uuid.UUID]uuid.UUID)
	for _, l := range listings {
		hostByListing[l.ID] = l.HostID
	}

	// No bookings at all: every review uses the fallback pairing.
	reviews, err := g.GenerateReviews(100, listings, users, nil)
	if err != nil {
		t.Fatalf("Failed to generate reviews: %v", err)
	}
	if len(reviews) != 100 {
		t.Fatalf("Expected 100 reviews, got %d", len(reviews))
	}

	for _, r := range reviews {
		if r.BookingID != nil {
			t.Error("Expected fallback reviews to carry no booking reference")
		}
		if r.ReviewerID == hostByListing[r.ListingID] {
			t.Error("Generated review where reviewer is the listing's host")
		}
	}
}

func TestGenerateReviewsEmptyPools(t *testing.T) {
	g := NewDataGenerator(1, nil)
	users := g.GenerateUsers(2)
	listings, err := g.GenerateListings(2, users)
	if err != nil {
		t.Fatalf("Failed to generate listings: %v", err)
	}

	if _, err := g.GenerateReviews(3, nil, users, nil); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool for no listings, got %v", err)
	}
	if _, err := g.GenerateReviews(3, listings, nil, nil); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Expected ErrEmptyPool for no users, got %v", err)
	}
}
