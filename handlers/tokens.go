package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fave/market"
	"fave/middleware"
	"fave/models"
)

// PurchaseToken records the session fan's purchase against a listing. The
// settlement itself is out of scope; this endpoint only writes the ledger
// entry.
func PurchaseToken(ledger *market.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		user := middleware.CurrentUser(c)

		ctx := c.Request.Context()
		token, err := ledger.PurchaseToken(ctx, projectID, user.ID)
		if err != nil {
			if errors.Is(err, market.ErrProjectNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
				return
			}
			log.Printf("PurchaseToken error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to purchase token"})
			return
		}

		c.JSON(http.StatusCreated, token)
	}
}

// ListTokens returns the session fan's holdings.
func ListTokens(ledger *market.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		ctx := c.Request.Context()
		tokens := ledger.TokensByOwner(ctx, user.ID)

		c.JSON(http.StatusOK, models.TokensResponse{
			Tokens: tokens,
			Total:  len(tokens),
		})
	}
}
