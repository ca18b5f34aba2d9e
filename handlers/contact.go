package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fave/models"
	"fave/store"
)

var contactMu sync.Mutex

// SubmitContact appends a contact-form message to the store.
func SubmitContact(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ContactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		message := models.ContactMessage{
			ID:         uuid.New(),
			Name:       req.Name,
			Email:      req.Email,
			Message:    req.Message,
			ReceivedAt: time.Now().UTC(),
		}

		ctx := c.Request.Context()

		contactMu.Lock()
		defer contactMu.Unlock()

		messages := []models.ContactMessage{}
		store.ReadJSON(ctx, s, store.KeyContactMessages, &messages)
		messages = append(messages, message)

		if err := store.WriteJSON(ctx, s, store.KeyContactMessages, messages); err != nil {
			log.Printf("Contact submission error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit message"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "received"})
	}
}
