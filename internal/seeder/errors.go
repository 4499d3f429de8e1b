package seeder

import "errors"

var (
	// ErrInvalidConfig marks a bad seed configuration (negative counts).
	ErrInvalidConfig = errors.New("invalid seed configuration")

	// ErrEmptyPool marks an attempt to generate dependent records with
	// no parents to reference.
	ErrEmptyPool = errors.New("empty parent pool")

	// ErrConstraint marks a record that could not be generated within
	// its constraints, e.g. re-sampling for a guest distinct from the
	// host ran out of attempts.
	ErrConstraint = errors.New("constraint violation")
)
