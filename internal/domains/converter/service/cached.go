package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"zonecast/config"
	"zonecast/internal/domains/converter/model"
	"zonecast/shared"
	"zonecast/shared/cache"

	"github.com/rs/zerolog/log"
)

const cacheKeyConversion = "conversion"

// CachedConverter is a Converter whose conversion passes are memoized in the shared cache.
type CachedConverter interface {
	Converter
}

type cachedImpl struct {
	Converter
	cache  cache.RedisCache
	ttl    int
	prefix string
}

func NewCached(inner Converter, c cache.RedisCache, cfg *config.Config) CachedConverter {
	return &cachedImpl{
		Converter: inner,
		cache:     c,
		ttl:       cfg.Cache.TTL,
		prefix:    shared.BuildCacheKey(cacheKeyConversion, cfg.Converter.Basis, strconv.FormatBool(cfg.Refine())),
	}
}

// Convert serves a pass from the cache when possible. Failed passes are never cached,
// and a broken cache only costs a recomputation.
func (c *cachedImpl) Convert(ctx context.Context, selection model.SourceSelection, targets []model.ZoneID) (model.Conversion, error) {
	key := c.key(selection, targets)

	var cached model.Conversion

	err := c.cache.Get(ctx, key, &cached)
	if err == nil {
		log.Trace().Str("key", key).Msg("conversion served from cache")

		return cached, nil
	}

	if !errors.Is(err, cache.Nil) {
		log.Warn().Err(err).Str("key", key).Msg("failed to read cached conversion")
	}

	res, err := c.Converter.Convert(ctx, selection, targets)
	if err != nil {
		return res, err
	}

	if err := c.cache.Save(ctx, key, res, c.ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache conversion")
	}

	return res, nil
}

func (c *cachedImpl) key(selection model.SourceSelection, targets []model.ZoneID) string {
	names := make([]string, len(targets))
	for i, target := range targets {
		names[i] = target.String()
	}

	return shared.BuildCacheKey(c.prefix, selection.Zone.String(), selection.Civil.String(), strings.Join(names, ","))
}
