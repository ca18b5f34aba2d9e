package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// Collection keys. Values are opaque serialized blobs; there is no
// versioning or migration strategy for format changes.
const (
	KeyMarketplaceProjects = "marketplace_projects"
	KeyUserTokens          = "user_tokens"
	KeyArtistProfileImage  = "artist_profile_image"
	KeyFanProfileImage     = "fan_profile_image"
	KeyUsers               = "users"
	KeySessions            = "sessions"
	KeyContactMessages     = "contact_messages"
)

// ErrKeyNotFound is returned by Read when no value is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistence port. Implementations must make a successful
// Write observable to every subscriber by sending the written key on the
// subscription channel.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error

	// Subscribe returns a channel that receives the key of every
	// subsequent successful Write. The subscription ends when ctx does.
	// Slow consumers miss notifications rather than blocking writers.
	Subscribe(ctx context.Context) <-chan string

	Close()
}

// ReadJSON decodes the value under key into dest and reports whether dest
// was populated. Missing keys and undecodable values are treated as absent:
// the caller's default in dest is left untouched and the condition is
// logged, never returned.
func ReadJSON(ctx context.Context, s Store, key string, dest interface{}) bool {
	raw, err := s.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("store: read %s failed, using default: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("store: corrupt value under %s, using default: %v", key, err)
		return false
	}
	return true
}

// WriteJSON serializes value and stores it under key. On failure the
// in-memory state the caller holds is unaffected; the error is returned for
// the caller to surface.
func WriteJSON(ctx context.Context, s Store, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.Write(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}
