package models

import (
	"time"

	"github.com/google/uuid"
)

type Token struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TokenClaims is the subset of JWT claims the rest of the application cares about.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	ID        string
	ExpiresAt time.Time
}
