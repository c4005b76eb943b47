// Package cache decorates the catalog store with a Redis read-through cache.
//
// Reference rows change rarely but are read on every listing join, so lookups
// by ID are cached under a TTL. List endpoints stay uncached: they are only
// hit while filling dropdowns, not per submission. Listing rows are never
// cached; their joined display fields must be recomputed on every read.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"autobox/internal/catalog"
	"autobox/internal/platform/metrics"
)

// Store wraps an inner catalog store with Redis caching for Find* calls.
type Store struct {
	inner   catalog.Store
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

// New builds the caching decorator. A nil client disables caching and returns
// the inner store untouched.
func New(inner catalog.Store, client *redis.Client, ttl time.Duration, m *metrics.Metrics) catalog.Store {
	if client == nil {
		return inner
	}
	return &Store{inner: inner, client: client, ttl: ttl, metrics: m}
}

func (s *Store) recordHit() {
	if s.metrics != nil {
		s.metrics.CatalogCacheHits.Inc()
	}
}

func (s *Store) recordMiss() {
	if s.metrics != nil {
		s.metrics.CatalogCacheMisses.Inc()
	}
}

// readThrough loads key from Redis into dst, or fills it via load and caches
// the result. Redis failures degrade to the inner store rather than failing
// the lookup.
func (s *Store) readThrough(ctx context.Context, key string, dst any, load func() (any, error)) error {
	// Redis misses and transport errors both degrade to the inner store.
	raw, err := s.client.Get(ctx, key).Result()
	if err == nil {
		if unmarshalErr := json.Unmarshal([]byte(raw), dst); unmarshalErr == nil {
			s.recordHit()
			return nil
		}
	}
	s.recordMiss()

	value, err := load()
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode catalog row: %w", err)
	}
	_ = s.client.Set(ctx, key, encoded, s.ttl).Err()

	// Copy the loaded value into dst via the JSON round trip already in hand.
	return json.Unmarshal(encoded, dst)
}

func (s *Store) FindBrand(ctx context.Context, id int64) (*catalog.Brand, error) {
	var b catalog.Brand
	err := s.readThrough(ctx, fmt.Sprintf("catalog:brand:%d", id), &b, func() (any, error) {
		return s.inner.FindBrand(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) FindModel(ctx context.Context, id int64) (*catalog.Model, error) {
	var m catalog.Model
	err := s.readThrough(ctx, fmt.Sprintf("catalog:model:%d", id), &m, func() (any, error) {
		return s.inner.FindModel(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Store) FindRegion(ctx context.Context, id int64) (*catalog.Region, error) {
	var r catalog.Region
	err := s.readThrough(ctx, fmt.Sprintf("catalog:region:%d", id), &r, func() (any, error) {
		return s.inner.FindRegion(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) FindCity(ctx context.Context, id int64) (*catalog.City, error) {
	var c catalog.City
	err := s.readThrough(ctx, fmt.Sprintf("catalog:city:%d", id), &c, func() (any, error) {
		return s.inner.FindCity(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListBrands(ctx context.Context) ([]*catalog.Brand, error) {
	return s.inner.ListBrands(ctx)
}

func (s *Store) ListModelsByBrand(ctx context.Context, brandID int64) ([]*catalog.Model, error) {
	return s.inner.ListModelsByBrand(ctx, brandID)
}

func (s *Store) ListRegions(ctx context.Context) ([]*catalog.Region, error) {
	return s.inner.ListRegions(ctx)
}

func (s *Store) ListCitiesByRegion(ctx context.Context, regionID int64) ([]*catalog.City, error) {
	return s.inner.ListCitiesByRegion(ctx, regionID)
}
