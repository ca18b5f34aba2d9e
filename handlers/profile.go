package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"fave/middleware"
	"fave/profile"
)

// UploadProfileImage accepts a multipart upload under the "image" part and
// stores it for the session user's role. Non-image uploads are rejected
// before anything is written.
func UploadProfileImage(images *profile.Images) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
			return
		}

		if fileHeader.Size > profile.MaxImageBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, profile.MaxImageBytes+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
			return
		}
		if len(data) > profile.MaxImageBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
			return
		}

		user := middleware.CurrentUser(c)
		contentType := fileHeader.Header.Get("Content-Type")

		ctx := c.Request.Context()
		dataURL, err := images.Set(ctx, user.Role, contentType, data)
		if err != nil {
			if errors.Is(err, profile.ErrUnsupportedFile) {
				c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "file must be an image"})
				return
			}
			log.Printf("Profile image upload error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"image": dataURL})
	}
}

// GetProfileImage returns the stored image for the session user's role.
func GetProfileImage(images *profile.Images) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		ctx := c.Request.Context()
		dataURL, err := images.Get(ctx, user.Role)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no profile image set"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"image": dataURL})
	}
}
