package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"fave/auth"
	"fave/middleware"
	"fave/models"
)

func Signup(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		resp, err := sessions.Signup(ctx, req)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredential) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "credential rejected"})
				return
			}
			log.Printf("Signup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sign up"})
			return
		}

		c.JSON(http.StatusCreated, resp)
	}
}

func Login(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		resp, err := sessions.Login(ctx, req)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredential) || errors.Is(err, auth.ErrUnknownUser) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "credential rejected"})
				return
			}
			log.Printf("Login error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// GetSession is the dashboard gate: 200 with the user when a session is
// present, 401 otherwise. Runs behind SessionRequired.
func GetSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, middleware.CurrentUser(c))
	}
}

func Logout(sessions *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		ctx := c.Request.Context()
		if err := sessions.Logout(ctx, parts[1]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log out"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
	}
}
