package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func validReview(listing *Listing) *Review {
	return &Review{
		ID:                  uuid.New(),
		ListingID:           listing.ID,
		ReviewerID:          uuid.New(),
		Rating:              4,
		CleanlinessRating:   5,
		CommunicationRating: 4,
		LocationRating:      3,
		ValueRating:         4,
		Comment:             "Great location and friendly host.",
	}
}

func TestReviewValidate(t *testing.T) {
	listing := testListing()

	if err := validReview(listing).Validate(listing, nil); err != nil {
		t.Errorf("Expected valid review to pass, got: %v", err)
	}

	r := validReview(listing)
	r.ReviewerID = listing.HostID
	if err := r.Validate(listing, nil); err == nil {
		t.Error("Expected self-review to fail")
	}

	for _, rating := range []int{0, 6, -1} {
		r = validReview(listing)
		r.Rating = rating
		if err := r.Validate(listing, nil); err == nil {
			t.Errorf("Expected overall rating %d to fail", rating)
		}

		r = validReview(listing)
		r.CleanlinessRating = rating
		if err := r.Validate(listing, nil); err == nil {
			t.Errorf("Expected cleanliness rating %d to fail", rating)
		}
	}
}

func TestReviewValidateWithBooking(t *testing.T) {
	today := time.Now().Truncate(24 * time.Hour)
	listing := testListing()

	booking := validBooking(listing, today)
	booking.Status = StatusCompleted

	r := validReview(listing)
	r.ReviewerID = booking.GuestID
	id := booking.ID
	r.BookingID = &id
	if err := r.Validate(listing, booking); err != nil {
		t.Errorf("Expected review tied to matching booking to pass, got: %v", err)
	}

	// Booking for a different listing
	other := testListing()
	wrongListing := validBooking(other, today)
	r = validReview(listing)
	r.ReviewerID = wrongListing.GuestID
	id = wrongListing.ID
	r.BookingID = &id
	if err := r.Validate(listing, wrongListing); err == nil {
		t.Error("Expected booking for different listing to fail")
	}

	// Booking by a different guest
	booking2 := validBooking(listing, today)
	r = validReview(listing)
	id = booking2.ID
	r.BookingID = &id
	if err := r.Validate(listing, booking2); err == nil {
		t.Error("Expected booking by different guest to fail")
	}

	// Dangling booking reference
	r = validReview(listing)
	missing := uuid.New()
	r.BookingID = &missing
	if err := r.Validate(listing, nil); err == nil {
		t.Error("Expected dangling booking reference to fail")
	}
}

func TestListingValidate(t *testing.T) {
	l := testListing()
	if err := l.Validate(); err != nil {
		t.Errorf("Expected valid listing to pass, got: %v", err)
	}

	l = testListing()
	l.PricePerNight = 0
	if err := l.Validate(); err == nil {
		t.Error("Expected zero price to fail")
	}

	l = testListing()
	l.PropertyType = "castle"
	if err := l.Validate(); err == nil {
		t.Error("Expected unknown property type to fail")
	}

	l = testListing()
	lat, long := 91.0, 0.0
	l.Latitude, l.Longitude = &lat, &long
	if err := l.Validate(); err == nil {
		t.Error("Expected out-of-range latitude to fail")
	}

	l = testListing()
	lat, long = 0.0, -181.0
	l.Latitude, l.Longitude = &lat, &long
	if err := l.Validate(); err == nil {
		t.Error("Expected out-of-range longitude to fail")
	}

	l = testListing()
	lat = 40.0
	l.Latitude = &lat
	if err := l.Validate(); err == nil {
		t.Error("Expected latitude without longitude to fail")
	}
}
