package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is embedded by entities keyed on a UUID primary key.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ShortBase is embedded by entities keyed on a generated 6-character
// alphanumeric id (users, products).
type ShortBase struct {
	ID        string    `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
