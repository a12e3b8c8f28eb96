// Package cache holds read-through caching of list and profile responses.
package cache

import (
	"context"
	"strconv"
)

// Cache stores JSON-serialisable values under string keys. Each record kind
// has a generation; entries are written under the generation read before the
// data was loaded, and Invalidate moves the kind to a new generation. A fill
// that races a submit therefore lands on a generation nobody reads again.
type Cache interface {
	// Generation returns the current generation of the kind named by prefix.
	Generation(ctx context.Context, prefix string) (int64, error)
	// Get loads key into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
	// Invalidate retires every entry of the kind named by prefix.
	Invalidate(ctx context.Context, prefix string) error
}

// Key prefixes, one per record kind, so a submit can drop all variants of its listing.
const (
	ProfilePrefix    = "profile:"
	ProjectsPrefix   = "projects:"
	ExperiencePrefix = "experience:"
)

// Key builds the entry key for one variant of a kind at a generation.
func Key(prefix string, gen int64, variant string) string {
	return prefix + strconv.FormatInt(gen, 10) + ":" + variant
}

// Noop is used when no cache backend is configured.
type Noop struct{}

func (Noop) Generation(context.Context, string) (int64, error) { return 0, nil }
func (Noop) Get(context.Context, string, any) (bool, error)    { return false, nil }
func (Noop) Set(context.Context, string, any) error            { return nil }
func (Noop) Invalidate(context.Context, string) error          { return nil }
