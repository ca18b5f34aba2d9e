package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fave/market"
	"fave/middleware"
	"fave/models"
	"fave/profile"
)

// Dashboard payloads compose the ledger queries and the profile image into
// the role-specific view. The routes sit behind SessionRequired plus a role
// gate, so an absent session yields 401 and the client redirects to signup.

type artistDashboard struct {
	User         *models.User     `json:"user"`
	ProfileImage string           `json:"profile_image,omitempty"`
	Projects     []models.Project `json:"projects"`
}

type fanDashboard struct {
	User         *models.User     `json:"user"`
	ProfileImage string           `json:"profile_image,omitempty"`
	Tokens       []models.Token   `json:"tokens"`
	Marketplace  []models.Project `json:"marketplace"`
}

func ArtistDashboard(ledger *market.Ledger, images *profile.Images) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		ctx := c.Request.Context()

		image, _ := images.Get(ctx, user.Role)

		c.JSON(http.StatusOK, artistDashboard{
			User:         user,
			ProfileImage: image,
			Projects:     ledger.ProjectsByOwner(ctx, user.ID),
		})
	}
}

func FanDashboard(ledger *market.Ledger, images *profile.Images) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		ctx := c.Request.Context()

		image, _ := images.Get(ctx, user.Role)

		c.JSON(http.StatusOK, fanDashboard{
			User:         user,
			ProfileImage: image,
			Tokens:       ledger.TokensByOwner(ctx, user.ID),
			Marketplace:  ledger.Projects(ctx),
		})
	}
}
