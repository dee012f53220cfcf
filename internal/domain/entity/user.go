package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account identity. Beyond login it only serves as the foreign key
// target for filters and alert history.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Login identifier, unique across users.
	PasswordHash string    `json:"-"`     // Bcrypt hash; never serialized.
	CreatedAt    time.Time `json:"createdAt"`
}
