package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/model"
	"github.com/EbenezerBaafi/alx-travel-app-0x00/internal/store"
)

// Default record counts, matching the upstream seed command.
const (
	DefaultUsers    = 5
	DefaultListings = 10
	DefaultBookings = 20
	DefaultReviews  = 15
)

// Config controls a seeding run.
type Config struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int

	// Clear deletes all existing rows (children first) before seeding.
	Clear bool

	// NoTransaction disables wrapping the run in a single transaction.
	NoTransaction bool

	// Quiet suppresses progress output.
	Quiet bool
}

// DefaultConfig returns a Config with the standard counts.
func DefaultConfig() Config {
	return Config{
		Users:    DefaultUsers,
		Listings: DefaultListings,
		Bookings: DefaultBookings,
		Reviews:  DefaultReviews,
	}
}

func (c Config) Validate() error {
	counts := map[string]int{
		"users":    c.Users,
		"listings": c.Listings,
		"bookings": c.Bookings,
		"reviews":  c.Reviews,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s count must not be negative, got %d: %w", name, n, ErrInvalidConfig)
		}
	}
	return nil
}

// Summary reports how many rows a run created per entity type.
type Summary struct {
	Users    int
	Listings int
	Bookings int
	Reviews  int
}

func (s Summary) Total() int {
	return s.Users + s.Listings + s.Bookings + s.Reviews
}

// Seeder populates the store with a referentially consistent graph of
// users, listings, bookings and reviews in one sequential pass.
type Seeder struct {
	store store.Store
	gen   *DataGenerator
	cfg   Config
}

func New(st store.Store, gen *DataGenerator, cfg Config) *Seeder {
	return &Seeder{store: st, gen: gen, cfg: cfg}
}

// Run generates the full dataset in memory first, then writes it in
// dependency order. Configuration and empty-pool problems surface before
// anything touches the store; with the default transaction wrapping, a
// mid-run failure leaves the store unchanged.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	if err := s.cfg.Validate(); err != nil {
		return nil, err
	}

	today := time.Now().Truncate(24 * time.Hour)

	s.progress("🌱 Generating sample data...")

	users := s.gen.GenerateUsers(s.cfg.Users)

	listings, err := s.gen.GenerateListings(s.cfg.Listings, users)
	if err != nil {
		return nil, fmt.Errorf("generate listings: %w", err)
	}

	bookings, err := s.gen.GenerateBookings(s.cfg.Bookings, listings, users, today)
	if err != nil {
		return nil, fmt.Errorf("generate bookings: %w", err)
	}

	reviews, err := s.gen.GenerateReviews(s.cfg.Reviews, listings, users, bookings)
	if err != nil {
		return nil, fmt.Errorf("generate reviews: %w", err)
	}

	write := func(st store.Store) error {
		if s.cfg.Clear {
			s.progress("🗑️  Clearing existing data...")
			if err := st.DeleteAll(ctx); err != nil {
				return fmt.Errorf("clear existing data: %w", err)
			}
		}
		if err := s.writeAll(ctx, st, users, listings, bookings, reviews); err != nil {
			return err
		}
		return nil
	}

	if s.cfg.NoTransaction {
		err = write(s.store)
	} else {
		err = s.store.WithTx(ctx, write)
	}
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Users:    len(users),
		Listings: len(listings),
		Bookings: len(bookings),
		Reviews:  len(reviews),
	}
	s.progress("✅ Seeding completed")
	return summary, nil
}

func (s *Seeder) writeAll(ctx context.Context, st store.Store,
	users []*model.User, listings []*model.Listing,
	bookings []*model.Booking, reviews []*model.Review) error {

	s.progress("  📝 Creating %d users...", len(users))
	for i, u := range users {
		if err := st.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("create user %d/%d: %w", i+1, len(users), err)
		}
	}

	s.progress("  📝 Creating %d listings...", len(listings))
	for i, l := range listings {
		if err := st.CreateListing(ctx, l); err != nil {
			return fmt.Errorf("create listing %d/%d: %w", i+1, len(listings), err)
		}
	}

	s.progress("  📝 Creating %d bookings...", len(bookings))
	for i, b := range bookings {
		if err := st.CreateBooking(ctx, b); err != nil {
			return fmt.Errorf("create booking %d/%d: %w", i+1, len(bookings), err)
		}
	}

	s.progress("  📝 Creating %d reviews...", len(reviews))
	for i, r := range reviews {
		if err := st.CreateReview(ctx, r); err != nil {
			return fmt.Errorf("create review %d/%d: %w", i+1, len(reviews), err)
		}
	}

	return nil
}

func (s *Seeder) progress(format string, args ...interface{}) {
	if s.cfg.Quiet {
		return
	}
	color.Cyan(format, args...)
}
