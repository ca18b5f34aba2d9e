package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus is the listing lifecycle state. Projects are created as
// StatusPending; no transition operation is exposed yet.
type ProjectStatus string

const (
	StatusDraft   ProjectStatus = "draft"
	StatusPending ProjectStatus = "pending"
	StatusActive  ProjectStatus = "active"
)

// Project is an artist's royalty-sale listing. Immutable after creation:
// there is no update or delete operation, only reads by the artist (own
// listings) and by fans (marketplace).
type Project struct {
	ID             uuid.UUID     `json:"id"`
	ArtistID       uuid.UUID     `json:"artist_id"`
	Song           string        `json:"song"`
	Distributor    string        `json:"distributor"`
	Genre          string        `json:"genre"`
	Description    string        `json:"description"`
	ReleaseDate    string        `json:"release_date"`
	PercentForSale int           `json:"percent_for_sale"`
	Status         ProjectStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ProjectForm is the payload an artist submits to create a listing.
// PercentForSale must be within [1,100]; the text fields must be non-empty.
type ProjectForm struct {
	Song           string `json:"song"`
	Distributor    string `json:"distributor"`
	Genre          string `json:"genre"`
	Description    string `json:"description"`
	ReleaseDate    string `json:"release_date"`
	PercentForSale int    `json:"percent_for_sale"`
}

// ProjectsResponse is the standard response format for listing reads.
// Includes total count for potential pagination in the future.
type ProjectsResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}
