package models

import (
	"time"

	"github.com/google/uuid"
)

// Role decides which dashboard a user sees and which operations they may
// perform. Artists create listings; fans purchase tokens.
type Role string

const (
	RoleArtist Role = "artist"
	RoleFan    Role = "fan"
)

// Valid reports whether r is one of the two supported roles.
func (r Role) Valid() bool {
	return r == RoleArtist || r == RoleFan
}

// User is an account created through one of the signup flows. Exactly one of
// Email or WalletAddress is set, depending on the provider that created it.
type User struct {
	ID            uuid.UUID `json:"id"`
	Role          Role      `json:"role"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Session is an issued bearer token and its owner. Sessions expire; an
// expired session resolves the same as a missing one.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignupRequest is the payload for both signup and login. Credential carries
// the provider-specific secret: a Google ID token for the token-exchange
// provider, a wallet address for the address provider, a fixed key for the
// static provider.
type SignupRequest struct {
	Credential string `json:"credential" binding:"required"`
	Role       Role   `json:"role" binding:"required"`
	Name       string `json:"name"`
}

// SessionResponse is returned by signup and login.
type SessionResponse struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}
