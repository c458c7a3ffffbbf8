package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user, optionally attached to a house
type User struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	HouseID   *uuid.UUID `json:"house_id" db:"house_id"`
	FirstName string     `json:"first_name" db:"first_name"`
	LastName  string     `json:"last_name" db:"last_name"`
	Email     string     `json:"email" db:"email"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// House represents a group of users sharing expenses
type House struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserSummary is the display subset of a user attached to payment listings
type UserSummary struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
}

// Summary returns the display subset of the user
func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// BelongsTo reports whether the user is a member of the given house
func (u *User) BelongsTo(houseID uuid.UUID) bool {
	return u.HouseID != nil && *u.HouseID == houseID
}
