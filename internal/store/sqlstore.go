package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/model"
)

const (
	dateFormat      = "2006-01-02"
	timestampFormat = "2006-01-02 15:04:05"
)

// tableOrder is the parent-to-child insertion order. Deletion runs it
// in reverse.
var tableOrder = []string{"users", "listings", "bookings", "reviews"}

// runner is satisfied by both *sql.DB and *sql.Tx.
type runner interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// SQLStore implements Store on top of database/sql for the supported
// providers (postgresql, mysql, sqlite).
type SQLStore struct {
	db       *sql.DB // nil when this store wraps a transaction
	run      runner
	provider string
	qb       squirrel.StatementBuilderType
}

func New(db *sql.DB, provider string) *SQLStore {
	qb := squirrel.StatementBuilder.PlaceholderFormat(placeholderFormat(provider))
	return &SQLStore{db: db, run: db, provider: provider, qb: qb}
}

func placeholderFormat(provider string) squirrel.PlaceholderFormat {
	switch provider {
	case "postgresql", "postgres":
		return squirrel.Dollar
	default:
		return squirrel.Question
	}
}

func (s *SQLStore) CreateUser(ctx context.Context, u *model.User) error {
	query, args, err := s.qb.Insert("users").
		Columns("id", "username", "first_name", "last_name", "email", "phone", "created_at").
		Values(u.ID.String(), u.Username, u.FirstName, u.LastName, u.Email, u.Phone,
			u.CreatedAt.Format(timestampFormat)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert user: %w", err)
	}
	if _, err := s.run.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user %s: %w", u.Username, err)
	}
	return nil
}

func (s *SQLStore) CreateListing(ctx context.Context, l *model.Listing) error {
	query, args, err := s.qb.Insert("listings").
		Columns("id", "host_id", "title", "description", "property_type", "price_per_night",
			"location", "city", "state", "country", "latitude", "longitude",
			"bedrooms", "bathrooms", "max_guests", "amenities", "is_available", "created_at").
		Values(l.ID.String(), l.HostID.String(), l.Title, l.Description, l.PropertyType,
			l.PricePerNight, l.Location, l.City, l.State, l.Country, l.Latitude, l.Longitude,
			l.Bedrooms, l.Bathrooms, l.MaxGuests, l.Amenities, l.IsAvailable,
			l.CreatedAt.Format(timestampFormat)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert listing: %w", err)
	}
	if _, err := s.run.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert listing %q: %w", l.Title, err)
	}
	return nil
}

func (s *SQLStore) CreateBooking(ctx context.Context, b *model.Booking) error {
	query, args, err := s.qb.Insert("bookings").
		Columns("id", "listing_id", "guest_id", "check_in_date", "check_out_date",
			"num_guests", "total_price", "status", "special_requests", "created_at").
		Values(b.ID.String(), b.ListingID.String(), b.GuestID.String(),
			b.CheckInDate.Format(dateFormat), b.CheckOutDate.Format(dateFormat),
			b.NumGuests, b.TotalPrice, string(b.Status), b.SpecialRequests,
			b.CreatedAt.Format(timestampFormat)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking: %w", err)
	}
	if _, err := s.run.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert booking %s: %w", b.ID, err)
	}
	return nil
}

func (s *SQLStore) CreateReview(ctx context.Context, r *model.Review) error {
	var bookingID interface{}
	if r.BookingID != nil {
		bookingID = r.BookingID.String()
	}
	query, args, err := s.qb.Insert("reviews").
		Columns("id", "listing_id", "reviewer_id", "booking_id", "rating",
			"cleanliness_rating", "communication_rating", "location_rating", "value_rating",
			"comment", "created_at").
		Values(r.ID.String(), r.ListingID.String(), r.ReviewerID.String(), bookingID,
			r.Rating, r.CleanlinessRating, r.CommunicationRating, r.LocationRating,
			r.ValueRating, r.Comment, r.CreatedAt.Format(timestampFormat)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert review: %w", err)
	}
	if _, err := s.run.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert review %s: %w", r.ID, err)
	}
	return nil
}

func (s *SQLStore) DeleteAll(ctx context.Context) error {
	for i := len(tableOrder) - 1; i >= 0; i-- {
		table := tableOrder[i]
		query, args, err := s.qb.Delete(table).ToSql()
		if err != nil {
			return fmt.Errorf("build delete %s: %w", table, err)
		}
		if _, err := s.run.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("delete from %s: %w", table, err)
		}
	}
	return nil
}

func (s *SQLStore) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	dests := map[string]*int64{
		"users":    &counts.Users,
		"listings": &counts.Listings,
		"bookings": &counts.Bookings,
		"reviews":  &counts.Reviews,
	}
	for _, table := range tableOrder {
		query, args, err := s.qb.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return counts, fmt.Errorf("build count %s: %w", table, err)
		}
		if err := s.run.QueryRowContext(ctx, query, args...).Scan(dests[table]); err != nil {
			return counts, fmt.Errorf("count %s: %w", table, err)
		}
	}
	return counts, nil
}

func (s *SQLStore) WithTx(ctx context.Context, fn func(Store) error) error {
	if s.db == nil {
		// Already inside a transaction; reuse it.
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	txStore := &SQLStore{run: tx, provider: s.provider, qb: s.qb}
	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Ping verifies the connection with a timeout.
func (s *SQLStore) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}
