package models

import (
	"time"

	"github.com/google/uuid"
)

// Firm is a client company hiring through the agency.
type Firm struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Sector    *string   `db:"sector" json:"sector,omitempty"`
	City      *string   `db:"city" json:"city,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
