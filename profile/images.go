// Package profile stores per-role profile images as data URLs, the same
// embedded form a browser produces when reading a picked file.
package profile

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"fave/models"
	"fave/store"
)

// ErrUnsupportedFile is returned when the uploaded file is not an image.
var ErrUnsupportedFile = errors.New("unsupported file type: expected an image")

// ErrNoImage is returned by Get when no image has been uploaded for the role.
var ErrNoImage = errors.New("no profile image set")

// MaxImageBytes caps uploads. Images are stored inline in the kv store, so
// oversized files would bloat every read of the key.
const MaxImageBytes = 5 << 20

// Images persists one image per role.
type Images struct {
	store store.Store
}

func NewImages(s store.Store) *Images {
	return &Images{store: s}
}

// Set validates that contentType is an image type, encodes data as a data
// URL and persists it under the role's key. The encoded URL is returned so
// the caller can show it immediately.
func (im *Images) Set(ctx context.Context, role models.Role, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedFile
	}
	if len(data) > MaxImageBytes {
		return "", fmt.Errorf("image too large: %d bytes (max %d)", len(data), MaxImageBytes)
	}

	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	if err := store.WriteJSON(ctx, im.store, imageKey(role), dataURL); err != nil {
		return "", err
	}
	return dataURL, nil
}

// Get returns the stored data URL for role, or ErrNoImage.
func (im *Images) Get(ctx context.Context, role models.Role) (string, error) {
	var dataURL string
	if !store.ReadJSON(ctx, im.store, imageKey(role), &dataURL) {
		return "", ErrNoImage
	}
	return dataURL, nil
}

func imageKey(role models.Role) string {
	if role == models.RoleArtist {
		return store.KeyArtistProfileImage
	}
	return store.KeyFanProfileImage
}
