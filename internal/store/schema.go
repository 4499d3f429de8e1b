package store

import (
	"context"
	"fmt"
)

// CreateSchema creates the four tables when missing. Statements run in
// parent-to-child order so foreign key references always resolve.
//
// UUID keys are stored as VARCHAR(36) on every provider to keep the DDL
// uniform; the ids are generated application-side.
func (s *SQLStore) CreateSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements(s.provider) {
		if _, err := s.run.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Foreign keys are declared as table-level constraints; MySQL parses
// but ignores inline column REFERENCES clauses.
func schemaStatements(provider string) []string {
	timestampType := "TIMESTAMP"
	if provider == "sqlite" || provider == "sqlite3" {
		timestampType = "DATETIME"
	}

	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			username VARCHAR(150) NOT NULL UNIQUE,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			email VARCHAR(254) NOT NULL,
			phone VARCHAR(32) NOT NULL,
			created_at ` + timestampType + ` NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS listings (
			id VARCHAR(36) PRIMARY KEY,
			host_id VARCHAR(36) NOT NULL,
			title VARCHAR(200) NOT NULL,
			description TEXT NOT NULL,
			property_type VARCHAR(20) NOT NULL,
			price_per_night DECIMAL(10,2) NOT NULL CHECK (price_per_night > 0),
			location VARCHAR(200) NOT NULL,
			city VARCHAR(100) NOT NULL,
			state VARCHAR(100) NOT NULL,
			country VARCHAR(100) NOT NULL,
			latitude DECIMAL(9,6),
			longitude DECIMAL(9,6),
			bedrooms INTEGER NOT NULL,
			bathrooms INTEGER NOT NULL,
			max_guests INTEGER NOT NULL,
			amenities TEXT NOT NULL,
			is_available BOOLEAN NOT NULL,
			created_at ` + timestampType + ` NOT NULL,
			FOREIGN KEY (host_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id VARCHAR(36) PRIMARY KEY,
			listing_id VARCHAR(36) NOT NULL,
			guest_id VARCHAR(36) NOT NULL,
			check_in_date DATE NOT NULL,
			check_out_date DATE NOT NULL,
			num_guests INTEGER NOT NULL CHECK (num_guests > 0),
			total_price DECIMAL(10,2) NOT NULL CHECK (total_price > 0),
			status VARCHAR(20) NOT NULL,
			special_requests TEXT NOT NULL,
			created_at ` + timestampType + ` NOT NULL,
			CHECK (check_out_date > check_in_date),
			FOREIGN KEY (listing_id) REFERENCES listings(id),
			FOREIGN KEY (guest_id) REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id VARCHAR(36) PRIMARY KEY,
			listing_id VARCHAR(36) NOT NULL,
			reviewer_id VARCHAR(36) NOT NULL,
			booking_id VARCHAR(36),
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			cleanliness_rating INTEGER NOT NULL CHECK (cleanliness_rating BETWEEN 1 AND 5),
			communication_rating INTEGER NOT NULL CHECK (communication_rating BETWEEN 1 AND 5),
			location_rating INTEGER NOT NULL CHECK (location_rating BETWEEN 1 AND 5),
			value_rating INTEGER NOT NULL CHECK (value_rating BETWEEN 1 AND 5),
			comment TEXT NOT NULL,
			created_at ` + timestampType + ` NOT NULL,
			FOREIGN KEY (listing_id) REFERENCES listings(id),
			FOREIGN KEY (reviewer_id) REFERENCES users(id),
			FOREIGN KEY (booking_id) REFERENCES bookings(id)
		)`,
	}
}
