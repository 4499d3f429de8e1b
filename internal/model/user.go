package model

import (
	"time"

	"github.com/google/uuid"
)

// User can act as a listing host, a booking guest, or both.
// There is no separate role flag; role is implied by usage.
type User struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
