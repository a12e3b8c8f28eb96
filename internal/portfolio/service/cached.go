package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/cache"
)

// readThrough serves one variant of a kind from the cache, falling back to load and
// filling the cache on a miss. The generation is read before load runs, so a fill
// that overlaps a submit is written to an already retired generation.
// Cache errors are logged and otherwise ignored.
func readThrough[T any](ctx context.Context, c cache.Cache, log zerolog.Logger, prefix, variant string, load func() (T, error)) (T, error) {
	gen, err := c.Generation(ctx, prefix)
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("cache generation read failed")
		return load()
	}
	key := cache.Key(prefix, gen, variant)

	var v T
	hit, err := c.Get(ctx, key, &v)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	}
	if hit {
		return v, nil
	}

	v, err = load()
	if err != nil {
		return v, err
	}
	if err := c.Set(ctx, key, v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return v, nil
}

func invalidate(ctx context.Context, c cache.Cache, log zerolog.Logger, prefix string) {
	if err := c.Invalidate(ctx, prefix); err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("cache invalidate failed")
	}
}
