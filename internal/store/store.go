package store

import (
	"context"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/model"
)

// Counts holds row counts per table.
type Counts struct {
	Users    int64
	Listings int64
	Bookings int64
	Reviews  int64
}

func (c Counts) Total() int64 {
	return c.Users + c.Listings + c.Bookings + c.Reviews
}

// Store is the persistence surface the seeder writes through. The SQL
// implementation enforces referential integrity at the schema level;
// callers are expected to insert parents before children and delete in
// the opposite order (DeleteAll does).
type Store interface {
	CreateUser(ctx context.Context, u *model.User) error
	CreateListing(ctx context.Context, l *model.Listing) error
	CreateBooking(ctx context.Context, b *model.Booking) error
	CreateReview(ctx context.Context, r *model.Review) error

	// DeleteAll removes every row from all four tables, children first.
	DeleteAll(ctx context.Context) error

	Counts(ctx context.Context) (Counts, error)

	// WithTx runs fn against a transactional view of the store and
	// commits if fn returns nil, rolls back otherwise.
	WithTx(ctx context.Context, fn func(Store) error) error
}
