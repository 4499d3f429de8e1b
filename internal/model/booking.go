package model

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusRefunded  BookingStatus = "refunded"
)

// BookingStatuses lists every accepted status value.
var BookingStatuses = []BookingStatus{
	StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRefunded,
}

func (s BookingStatus) Valid() bool {
	for _, st := range BookingStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Booking is a reservation of a listing by a guest for a date range.
type Booking struct {
	ID              uuid.UUID
	ListingID       uuid.UUID
	GuestID         uuid.UUID
	CheckInDate     time.Time
	CheckOutDate    time.Time
	NumGuests       int
	TotalPrice      float64
	Status          BookingStatus
	SpecialRequests string
	CreatedAt       time.Time
}

// Nights returns the length of stay. Rounding absorbs the odd-length
// days around DST transitions.
func (b *Booking) Nights() int {
	return int(math.Round(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24))
}

// Validate checks the booking against its listing and the current date.
// today is truncated to a date by the caller.
func (b *Booking) Validate(listing *Listing, today time.Time) error {
	if !b.CheckOutDate.After(b.CheckInDate) {
		return fmt.Errorf("booking %s: check-out %s is not after check-in %s",
			b.ID, b.CheckOutDate.Format("2006-01-02"), b.CheckInDate.Format("2006-01-02"))
	}
	if b.CheckInDate.Before(today) {
		return fmt.Errorf("booking %s: check-in %s is in the past",
			b.ID, b.CheckInDate.Format("2006-01-02"))
	}
	if b.NumGuests < 1 {
		return fmt.Errorf("booking %s: number of guests must be positive, got %d", b.ID, b.NumGuests)
	}
	if b.TotalPrice < 0.01 {
		return fmt.Errorf("booking %s: total price must be at least 0.01, got %.2f", b.ID, b.TotalPrice)
	}
	if !b.Status.Valid() {
		return fmt.Errorf("booking %s: unknown status %q", b.ID, b.Status)
	}
	if listing != nil {
		if b.ListingID != listing.ID {
			return fmt.Errorf("booking %s: listing mismatch", b.ID)
		}
		if b.GuestID == listing.HostID {
			return fmt.Errorf("booking %s: guest cannot book their own listing", b.ID)
		}
		if b.NumGuests > listing.MaxGuests {
			return fmt.Errorf("booking %s: %d guests exceeds listing capacity of %d",
				b.ID, b.NumGuests, listing.MaxGuests)
		}
	}
	return nil
}
