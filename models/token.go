package models

import (
	"time"

	"github.com/google/uuid"
)

// Token records a fan's purchase against a Project. ArtistID, ArtistName and
// Song are copied from the Project at purchase time (denormalized snapshot,
// not a live reference); Price, Value and Change are fixed at purchase and
// never recomputed.
type Token struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	ArtistID    uuid.UUID `json:"artist_id"`
	ArtistName  string    `json:"artist_name"`
	Song        string    `json:"song"`
	Percent     int       `json:"percent"`
	Price       int       `json:"price"`
	Value       int       `json:"value"`
	Change      int       `json:"change"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// TokensResponse is the standard response format for holdings reads.
type TokensResponse struct {
	Tokens []Token `json:"tokens"`
	Total  int     `json:"total"`
}
