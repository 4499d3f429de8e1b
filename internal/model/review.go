package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Review is rating feedback for a listing, optionally tied to a booking.
type Review struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	ReviewerID uuid.UUID

	// Nil when the review is not tied to a specific booking.
	BookingID *uuid.UUID

	// Rating is the overall score; the four sub-ratings each cover one
	// aspect of the stay. All are 1-5.
	Rating              int
	CleanlinessRating   int
	CommunicationRating int
	LocationRating      int
	ValueRating         int

	Comment   string
	CreatedAt time.Time
}

// Validate checks rating bounds, the no-self-review rule against the
// listing's host, and consistency with the referenced booking when one
// is attached.
func (r *Review) Validate(listing *Listing, booking *Booking) error {
	ratings := map[string]int{
		"rating":        r.Rating,
		"cleanliness":   r.CleanlinessRating,
		"communication": r.CommunicationRating,
		"location":      r.LocationRating,
		"value":         r.ValueRating,
	}
	for name, v := range ratings {
		if v < 1 || v > 5 {
			return fmt.Errorf("review %s: %s rating %d out of range 1-5", r.ID, name, v)
		}
	}
	if listing != nil {
		if r.ListingID != listing.ID {
			return fmt.Errorf("review %s: listing mismatch", r.ID)
		}
		if r.ReviewerID == listing.HostID {
			return fmt.Errorf("review %s: hosts cannot review their own listing", r.ID)
		}
	}
	if r.BookingID != nil {
		if booking == nil || booking.ID != *r.BookingID {
			return fmt.Errorf("review %s: referenced booking %s not found", r.ID, *r.BookingID)
		}
		if booking.ListingID != r.ListingID {
			return fmt.Errorf("review %s: booking is for a different listing", r.ID)
		}
		if booking.GuestID != r.ReviewerID {
			return fmt.Errorf("review %s: booking belongs to a different guest", r.ID)
		}
	}
	return nil
}
