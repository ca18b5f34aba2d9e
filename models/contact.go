package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a submitted contact-form entry.
type ContactMessage struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// ContactRequest is the contact-form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}
