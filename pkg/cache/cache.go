// Package cache stores rendered artifacts and node placements between runs.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON entry files under a directory, for the CLI
//   - [RedisCache]: a shared Redis instance, for the preview server
//   - [NullCache]: stores nothing, used with --no-cache
//
// Keys are built by a [Keyer] from content hashes so that a changed dataset
// or a changed render option never hits a stale entry.
package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// TTLs per entry kind.
const (
	TTLPlacement = 7 * 24 * time.Hour
	TTLArtifact  = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}

// GetJSON decodes the value at key into v. It returns ErrCacheMiss when the
// key is absent or the stored value no longer decodes.
func GetJSON(ctx context.Context, c Cache, key string, v any) error {
	data, hit, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if !hit || json.Unmarshal(data, v) != nil {
		return ErrCacheMiss
	}
	return nil
}

// SetJSON encodes v and stores it at key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}

// DefaultDir returns the CLI cache directory: $XDG_CACHE_HOME/linkdraw, or
// the platform user cache directory.
func DefaultDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "linkdraw"), nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linkdraw"), nil
}

// ArtifactKeyOpts holds every option that changes rendered bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	RankDir     string  `json:"rank_dir,omitempty"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Zoom        float64 `json:"zoom"`
	Progress    float64 `json:"progress"`
	Highlight   []int   `json:"highlight,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
	Background  string  `json:"background,omitempty"`
	Title       string  `json:"title,omitempty"`
	Font        string  `json:"font,omitempty"`
	Scale       float64 `json:"scale,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// PlacementKey is the key for node positions computed for a dataset.
	PlacementKey(datasetHash string) string
	// ArtifactKey is the key for one rendered output of a dataset.
	ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes dataset hash and options into "kind:sha256" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PlacementKey implements Keyer.
func (DefaultKeyer) PlacementKey(datasetHash string) string {
	return hashKey("placement", datasetHash)
}

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(datasetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", datasetHash, opts)
}
