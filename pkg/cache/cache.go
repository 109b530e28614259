// Package cache provides a pluggable byte cache for rendered artifacts.
//
// Rendering a variant is deterministic in its resolved configuration, so
// artifacts are cached under a hash of that configuration plus the render
// options. The file backend is the default for CLI use; redis and mongo
// backends serve shared runners (CI), and the null backend disables caching
// entirely.
package cache

import (
	"context"
	"time"
)

// TTLs for cached data.
const (
	// TTLArtifact is how long rendered artifacts stay cached. Artifacts
	// are cheap to regenerate, so a bounded TTL keeps backends tidy.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache stores opaque byte values under string keys.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the render options that contribute to an artifact's
// cache key. Two renders with equal resolved configs and equal opts emit
// identical bytes.
type ArtifactKeyOpts struct {
	Variant string  `json:"variant"`
	Color   string  `json:"color,omitempty"`
	Size    float64 `json:"size,omitempty"`
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey generates a key for a rendered artifact from the resolved
	// configuration hash and the render options.
	ArtifactKey(configHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: prefix plus SHA-256 of the key
// components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(configHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", configHash, opts)
}
