package center

import (
	"time"

	"github.com/google/uuid"
)

// Center maps to the center table.
type Center struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Location         string    `db:"location" json:"location"`
	Contact          string    `db:"contact" json:"contact"`
	Verified         bool      `db:"verified" json:"verified"`
	RegistrationCode string    `db:"registration_code" json:"registration_code"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}
