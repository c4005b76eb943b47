//go:build integration

package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autobox/internal/catalog"
	"autobox/pkg/testutil/containers"
)

// countingStore counts how often each lookup reaches the inner store.
type countingStore struct {
	*catalog.InMemoryStore
	brandLookups atomic.Int64
}

func (s *countingStore) FindBrand(ctx context.Context, id int64) (*catalog.Brand, error) {
	s.brandLookups.Add(1)
	return s.InMemoryStore.FindBrand(ctx, id)
}

func TestCacheServesRepeatReadsFromRedis(t *testing.T) {
	ctx := context.Background()
	client := containers.StartRedis(ctx, t)

	inner := &countingStore{InMemoryStore: catalog.NewInMemoryStore()}
	inner.SeedBrand(catalog.Brand{ID: 1, Name: "Toyota", Active: true})

	cached := New(inner, client.Client, time.Minute, nil)

	first, err := cached.FindBrand(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", first.Name)

	second, err := cached.FindBrand(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", second.Name)

	assert.Equal(t, int64(1), inner.brandLookups.Load(), "second read is served from Redis")
}

func TestCacheExpiresWithTTL(t *testing.T) {
	ctx := context.Background()
	client := containers.StartRedis(ctx, t)

	inner := &countingStore{InMemoryStore: catalog.NewInMemoryStore()}
	inner.SeedBrand(catalog.Brand{ID: 1, Name: "Toyota", Active: true})

	cached := New(inner, client.Client, 100*time.Millisecond, nil)

	_, err := cached.FindBrand(ctx, 1)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)

	_, err = cached.FindBrand(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inner.brandLookups.Load(), "expired entry falls through to the store")
}

func TestCacheMissPropagatesNotFound(t *testing.T) {
	ctx := context.Background()
	client := containers.StartRedis(ctx, t)

	inner := &countingStore{InMemoryStore: catalog.NewInMemoryStore()}
	cached := New(inner, client.Client, time.Minute, nil)

	_, err := cached.FindBrand(ctx, 404)
	require.Error(t, err)
}

func TestNilClientDisablesCaching(t *testing.T) {
	inner := catalog.NewInMemoryStore()
	assert.Same(t, inner, New(inner, nil, time.Minute, nil))
}
