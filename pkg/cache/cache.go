// Package cache stores rendered artifacts between builds.
//
// A build is keyed by the hash of its deck source plus the render options, so
// an unchanged deck is served from the cache instead of being assembled and
// serialized again. The cache is best-effort: callers log backend errors and
// carry on as if they had missed.
//
// Backends are picked by URL with [Open]:
//
//	""  or "none"              no caching ([NullCache])
//	"file:///path" or "/path"  one JSON file per entry ([FileCache])
//	"redis://host:6379/0"      Redis ([RedisCache])
//	"mongodb://host:27017"     MongoDB ([MongoCache])
package cache

import (
	"context"
	"strings"
	"time"

	"github.com/matzehuels/slidedeck/pkg/errors"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's connections.
	Close() error
}

// TTLs for the kinds of entries the pipeline writes.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLPreview  = time.Hour
)

// Open returns the backend named by url.
func Open(ctx context.Context, url string) (Cache, error) {
	var (
		c   Cache
		err error
	)
	switch {
	case url == "" || url == "none":
		return NewNullCache(), nil
	case strings.HasPrefix(url, "file://"):
		c, err = fileCache(strings.TrimPrefix(url, "file://"))
	case strings.HasPrefix(url, "redis://"), strings.HasPrefix(url, "rediss://"):
		c, err = redisCache(ctx, url)
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		c, err = mongoCache(ctx, url)
	case !strings.Contains(url, "://"):
		c, err = fileCache(url)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported cache url %q", url)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// The helpers below keep typed nil pointers out of the Cache interface.

func fileCache(dir string) (Cache, error) {
	c, err := NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func redisCache(ctx context.Context, url string) (Cache, error) {
	c, err := NewRedisCache(ctx, url)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func mongoCache(ctx context.Context, url string) (Cache, error) {
	c, err := NewMongoCache(ctx, url, DefaultMongoDatabase, DefaultMongoCollection)
	if err != nil {
		return nil, err
	}
	return c, nil
}
