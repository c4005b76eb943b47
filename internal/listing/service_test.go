package listing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autobox/internal/catalog"
	"autobox/internal/vehicle"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/requestcontext"
)

var testTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func testContext() context.Context {
	return requestcontext.WithTime(context.Background(), testTime)
}

func testCatalog() *catalog.InMemoryStore {
	store := catalog.NewInMemoryStore()
	store.SeedBrand(catalog.Brand{ID: 1, Name: "Toyota", Active: true})
	store.SeedModel(catalog.Model{ID: 10, BrandID: 1, Name: "Yaris", Active: true})
	store.SeedRegion(catalog.Region{ID: 100, Name: "Metropolitana"})
	store.SeedCity(catalog.City{ID: 1000, RegionID: 100, Name: "Santiago"})
	return store
}

func testVehicle() *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:      42,
		OwnerID: 7,
		BrandID: 1,
		ModelID: 10,
		Plate:   "BBCD12",
		Year:    2020,
		Color:   "red",
		Mileage: 50000,
	}
}

func TestCreateDerivesListing(t *testing.T) {
	store := NewInMemoryStore()
	svc := NewService(store, testCatalog(), nil)

	l, err := svc.Create(testContext(), 7, testVehicle(), Attributes{Price: 8500000, CityID: 1000})
	require.NoError(t, err)

	assert.Equal(t, "Vehicle BBCD12", l.Title)
	assert.Equal(t, StatusActive, l.Status)
	assert.Equal(t, TypeSale, l.Type, "empty type defaults to sale")
	assert.Equal(t, int64(8500000), l.Price)
	assert.Equal(t, int64(42), l.VehicleID)
	assert.Equal(t, int64(7), l.SellerID)
	assert.Equal(t, "", l.Description)
	assert.Equal(t, testTime, l.PublishedAt)
}

func TestCreateKeepsExplicitType(t *testing.T) {
	svc := NewService(NewInMemoryStore(), testCatalog(), nil)

	l, err := svc.Create(testContext(), 7, testVehicle(), Attributes{
		Price:  8500000,
		CityID: 1000,
		Type:   TypeAuction,
	})
	require.NoError(t, err)
	assert.Equal(t, TypeAuction, l.Type)
}

func TestCreateRejectsUnknownCity(t *testing.T) {
	store := NewInMemoryStore()
	svc := NewService(store, testCatalog(), nil)

	_, err := svc.Create(testContext(), 7, testVehicle(), Attributes{Price: 8500000, CityID: 999})
	require.Error(t, err)

	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidReference))
	assert.Equal(t, 0, store.Count(), "nothing persisted when the city is unknown")
}

func TestDetailJoinsReferenceNames(t *testing.T) {
	cat := testCatalog()
	svc := NewService(NewInMemoryStore(), cat, nil)
	v := testVehicle()

	l, err := svc.Create(testContext(), 7, v, Attributes{Price: 8500000, CityID: 1000})
	require.NoError(t, err)

	detail, err := svc.Detail(testContext(), l, v)
	require.NoError(t, err)

	assert.Equal(t, "Toyota", detail.BrandName)
	assert.Equal(t, "Yaris", detail.ModelName)
	assert.Equal(t, "Santiago", detail.CityName)
	assert.Equal(t, "Metropolitana", detail.RegionName)
	assert.Equal(t, "BBCD12", detail.Plate)
	assert.Equal(t, 50000, detail.Mileage)
}

func TestDetailIsRecomputedPerRead(t *testing.T) {
	cat := testCatalog()
	svc := NewService(NewInMemoryStore(), cat, nil)
	v := testVehicle()

	l, err := svc.Create(testContext(), 7, v, Attributes{Price: 8500000, CityID: 1000})
	require.NoError(t, err)

	before, err := svc.Detail(testContext(), l, v)
	require.NoError(t, err)
	require.Equal(t, "Toyota", before.BrandName)

	cat.SeedBrand(catalog.Brand{ID: 1, Name: "Toyota Chile", Active: true})

	after, err := svc.Detail(testContext(), l, v)
	require.NoError(t, err)
	assert.Equal(t, "Toyota Chile", after.BrandName, "display names come from the catalog at read time")
}

func TestParseType(t *testing.T) {
	cases := map[string]Type{
		"":                TypeSale,
		"sale":            TypeSale,
		" Auction ":       TypeAuction,
		"inspection_sale": TypeInspectionSale,
	}
	for raw, want := range cases {
		got, err := ParseType(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}

	_, err := ParseType("raffle")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
