package seeder

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/model"
)

// maxResample bounds constraint re-sampling loops (guest != host,
// reviewer != host) so pathological pools fail with a clear error
// instead of spinning.
const maxResample = 50

// GenerateUsers produces n users with identities unique within the run.
func (g *DataGenerator) GenerateUsers(n int) []*model.User {
	users := make([]*model.User, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, g.User())
	}
	return users
}

// GenerateListings produces n listings, each hosted by a random user.
func (g *DataGenerator) GenerateListings(n int, users []*model.User) ([]*model.Listing, error) {
	if n > 0 && len(users) == 0 {
		return nil, fmt.Errorf("cannot generate listings: no users to host them: %w", ErrEmptyPool)
	}

	listings := make([]*model.Listing, 0, n)
	for i := 0; i < n; i++ {
		host := users[g.rng.Intn(len(users))]
		listing := g.Listing(host)
		if err := listing.Validate(); err != nil {
			return nil, fmt.Errorf("listing %d/%d: %v: %w", i+1, n, err, ErrConstraint)
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// GenerateBookings produces n bookings. The guest is re-sampled until it
// differs from the listing's host; dates are constructed future-first so
// ordering never needs rejection.
func (g *DataGenerator) GenerateBookings(n int, listings []*model.Listing, users []*model.User, today time.Time) ([]*model.Booking, error) {
	if n > 0 && len(listings) == 0 {
		return nil, fmt.Errorf("cannot generate bookings: no listings to book: %w", ErrEmptyPool)
	}
	if n > 0 && len(users) == 0 {
		return nil, fmt.Errorf("cannot generate bookings: no users to act as guests: %w", ErrEmptyPool)
	}

	bookings := make([]*model.Booking, 0, n)
	for i := 0; i < n; i++ {
		listing := listings[g.rng.Intn(len(listings))]

		guest, err := g.sampleUserExcluding(users, listing.HostID)
		if err != nil {
			return nil, fmt.Errorf("booking %d/%d: %v: %w", i+1, n, err, ErrConstraint)
		}

		booking := g.Booking(listing, guest, today)
		if err := booking.Validate(listing, today); err != nil {
			return nil, fmt.Errorf("booking %d/%d: %v: %w", i+1, n, err, ErrConstraint)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// GenerateReviews produces n reviews. Completed bookings are consumed
// first (one review each, derived from the booking's guest and listing);
// once exhausted, reviews fall back to random reviewer/listing pairs.
// Duplicate reviewer/listing pairs are allowed in the fallback, so the
// requested count is always honored when the pools permit.
func (g *DataGenerator) GenerateReviews(n int, listings []*model.Listing, users []*model.User, bookings []*model.Booking) ([]*model.Review, error) {
	if n > 0 && len(listings) == 0 {
		return nil, fmt.Errorf("cannot generate reviews: no listings to review: %w", ErrEmptyPool)
	}
	if n > 0 && len(users) == 0 {
		return nil, fmt.Errorf("cannot generate reviews: no users to review: %w", ErrEmptyPool)
	}

	listingByID := make(map[uuid.UUID]*model.Listing, len(listings))
	for _, l := range listings {
		listingByID[l.ID] = l
	}
	userByID := make(map[uuid.UUID]*model.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	// Unreviewed completed bookings, in random order.
	var completed []*model.Booking
	for _, b := range bookings {
		if b.Status == model.StatusCompleted {
			completed = append(completed, b)
		}
	}
	g.rng.Shuffle(len(completed), func(i, j int) {
		completed[i], completed[j] = completed[j], completed[i]
	})

	reviews := make([]*model.Review, 0, n)
	for i := 0; i < n; i++ {
		var review *model.Review

		if len(completed) > 0 {
			booking := completed[0]
			completed = completed[1:]
			listing := listingByID[booking.ListingID]
			reviewer := userByID[booking.GuestID]
			if listing == nil || reviewer == nil {
				return nil, fmt.Errorf("review %d/%d: booking %s references records outside this run: %w",
					i+1, n, booking.ID, ErrConstraint)
			}
			review = g.Review(listing, reviewer, booking)
		} else {
			listing := listings[g.rng.Intn(len(listings))]
			reviewer, err := g.sampleUserExcluding(users, listing.HostID)
			if err != nil {
				return nil, fmt.Errorf("review %d/%d: %v: %w", i+1, n, err, ErrConstraint)
			}
			review = g.Review(listing, reviewer, nil)
		}

		listing := listingByID[review.ListingID]
		var booking *model.Booking
		if review.BookingID != nil {
			for _, b := range bookings {
				if b.ID == *review.BookingID {
					booking = b
					break
				}
			}
		}
		if err := review.Validate(listing, booking); err != nil {
			return nil, fmt.Errorf("review %d/%d: %v: %w", i+1, n, err, ErrConstraint)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// sampleUserExcluding draws a user whose id differs from excluded,
// giving up after maxResample attempts.
func (g *DataGenerator) sampleUserExcluding(users []*model.User, excluded uuid.UUID) (*model.User, error) {
	for attempt := 0; attempt < maxResample; attempt++ {
		u := users[g.rng.Intn(len(users))]
		if u.ID != excluded {
			return u, nil
		}
	}
	return nil, fmt.Errorf("no user distinct from host found after %d attempts (need at least 2 users)", maxResample)
}
