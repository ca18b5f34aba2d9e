package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fave/market"
	"fave/middleware"
	"fave/models"
)

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// CreateProject handles an artist's listing submission. Validation failures
// name the offending field so the form can show the error inline.
func CreateProject(ledger *market.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form models.ProjectForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := middleware.CurrentUser(c)

		ctx := c.Request.Context()
		project, err := ledger.AddProject(ctx, form, user.ID)
		if err != nil {
			if ve, ok := market.AsValidationError(err); ok {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": ve.Error(),
					"field": ve.Field,
				})
				return
			}
			log.Printf("AddProject error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

// ListProjects returns every listing, the fan-facing marketplace view.
func ListProjects(ledger *market.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects := ledger.Projects(ctx)

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

// MyProjects returns the session artist's own listings.
func MyProjects(ledger *market.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		ctx := c.Request.Context()
		projects := ledger.ProjectsByOwner(ctx, user.ID)

		c.JSON(http.StatusOK, models.ProjectsResponse{
			Projects: projects,
			Total:    len(projects),
		})
	}
}

func GetProject(ledger *market.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project ID"})
			return
		}

		ctx := c.Request.Context()
		project, err := ledger.ProjectByID(ctx, projectID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}

		c.JSON(http.StatusOK, project)
	}
}
