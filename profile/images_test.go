package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fave/models"
	"fave/store"
)

func TestSetAndGet(t *testing.T) {
	images := NewImages(store.NewMemory())
	ctx := context.Background()

	dataURL, err := images.Set(ctx, models.RoleArtist, "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	stored, err := images.Get(ctx, models.RoleArtist)
	require.NoError(t, err)
	assert.Equal(t, dataURL, stored)
}

func TestRolesAreIndependent(t *testing.T) {
	images := NewImages(store.NewMemory())
	ctx := context.Background()

	_, err := images.Set(ctx, models.RoleArtist, "image/png", []byte("artist"))
	require.NoError(t, err)
	_, err = images.Set(ctx, models.RoleFan, "image/jpeg", []byte("fan"))
	require.NoError(t, err)

	artistURL, err := images.Get(ctx, models.RoleArtist)
	require.NoError(t, err)
	fanURL, err := images.Get(ctx, models.RoleFan)
	require.NoError(t, err)

	assert.NotEqual(t, artistURL, fanURL)
	assert.Contains(t, artistURL, "image/png")
	assert.Contains(t, fanURL, "image/jpeg")
}

func TestRejectsNonImage(t *testing.T) {
	s := store.NewMemory()
	images := NewImages(s)
	ctx := context.Background()

	tests := []string{"text/plain", "application/pdf", "audio/mpeg", ""}
	for _, contentType := range tests {
		t.Run(contentType, func(t *testing.T) {
			_, err := images.Set(ctx, models.RoleFan, contentType, []byte("payload"))
			assert.ErrorIs(t, err, ErrUnsupportedFile)
		})
	}

	// Nothing was written.
	_, err := s.Read(ctx, store.KeyFanProfileImage)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestRejectsOversizedImage(t *testing.T) {
	images := NewImages(store.NewMemory())

	_, err := images.Set(context.Background(), models.RoleFan, "image/png", make([]byte, MaxImageBytes+1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFile)
}

func TestGetWithoutImage(t *testing.T) {
	images := NewImages(store.NewMemory())

	_, err := images.Get(context.Background(), models.RoleArtist)
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestOverwriteReplacesImage(t *testing.T) {
	images := NewImages(store.NewMemory())
	ctx := context.Background()

	_, err := images.Set(ctx, models.RoleArtist, "image/png", []byte("first"))
	require.NoError(t, err)
	second, err := images.Set(ctx, models.RoleArtist, "image/png", []byte("second"))
	require.NoError(t, err)

	stored, err := images.Get(ctx, models.RoleArtist)
	require.NoError(t, err)
	assert.Equal(t, second, stored)
}
