package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "autobox/pkg/domain-errors"
)

func seededStore() *InMemoryStore {
	store := NewInMemoryStore()
	store.SeedBrand(Brand{ID: 1, Name: "Toyota", Active: true})
	store.SeedBrand(Brand{ID: 2, Name: "Chevrolet", Active: true})
	store.SeedBrand(Brand{ID: 3, Name: "Saab", Active: false})
	store.SeedModel(Model{ID: 10, BrandID: 1, Name: "Yaris", Active: true})
	store.SeedModel(Model{ID: 11, BrandID: 1, Name: "Corolla", Active: true})
	store.SeedModel(Model{ID: 12, BrandID: 1, Name: "Tercel", Active: false})
	store.SeedModel(Model{ID: 20, BrandID: 2, Name: "Sail", Active: true})
	store.SeedRegion(Region{ID: 100, Name: "Metropolitana"})
	store.SeedRegion(Region{ID: 101, Name: "Valparaiso"})
	store.SeedCity(City{ID: 1000, RegionID: 100, Name: "Santiago"})
	store.SeedCity(City{ID: 1001, RegionID: 100, Name: "Maipu"})
	store.SeedCity(City{ID: 1002, RegionID: 101, Name: "Quilpue"})
	return store
}

func TestServiceBrands(t *testing.T) {
	svc := NewService(seededStore())

	brands, err := svc.Brands(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(brands))
	for _, b := range brands {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"Chevrolet", "Toyota"}, names, "inactive brands stay hidden and output is sorted")
}

func TestServiceModelsByBrand(t *testing.T) {
	svc := NewService(seededStore())

	t.Run("known brand", func(t *testing.T) {
		models, err := svc.ModelsByBrand(context.Background(), 1)
		require.NoError(t, err)
		require.Len(t, models, 2)
		assert.Equal(t, "Corolla", models[0].Name)
		assert.Equal(t, "Yaris", models[1].Name)
	})

	t.Run("unknown brand", func(t *testing.T) {
		_, err := svc.ModelsByBrand(context.Background(), 999)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestServiceCitiesByRegion(t *testing.T) {
	svc := NewService(seededStore())

	t.Run("known region", func(t *testing.T) {
		cities, err := svc.CitiesByRegion(context.Background(), 100)
		require.NoError(t, err)
		require.Len(t, cities, 2)
		assert.Equal(t, "Maipu", cities[0].Name)
		assert.Equal(t, "Santiago", cities[1].Name)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := svc.CitiesByRegion(context.Background(), 999)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestServiceRegions(t *testing.T) {
	svc := NewService(seededStore())

	regions, err := svc.Regions(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	assert.Equal(t, "Metropolitana", regions[0].Name)
}
