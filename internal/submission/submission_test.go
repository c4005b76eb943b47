package submission

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autobox/internal/audit"
	"autobox/internal/catalog"
	"autobox/internal/listing"
	"autobox/internal/vehicle"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/requestcontext"
)

var testTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func testContext() context.Context {
	return requestcontext.WithTime(context.Background(), testTime)
}

type capturedEvent struct {
	action   audit.Action
	actorID  int64
	entityID int64
	plate    string
}

type capturingAuditor struct {
	mu     sync.Mutex
	events []capturedEvent
}

func (a *capturingAuditor) Record(_ context.Context, action audit.Action, actorID, entityID int64, plate string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, capturedEvent{action, actorID, entityID, plate})
}

func (a *capturingAuditor) actions() []audit.Action {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]audit.Action, 0, len(a.events))
	for _, e := range a.events {
		out = append(out, e.action)
	}
	return out
}

type fixture struct {
	svc      *Service
	vehicles *vehicle.InMemoryStore
	listings listing.Store
	auditor  *capturingAuditor
}

func newFixture(t *testing.T, listingStore listing.Store) *fixture {
	t.Helper()

	cat := catalog.NewInMemoryStore()
	cat.SeedBrand(catalog.Brand{ID: 1, Name: "Toyota", Active: true})
	cat.SeedModel(catalog.Model{ID: 10, BrandID: 1, Name: "Yaris", Active: true})
	cat.SeedRegion(catalog.Region{ID: 100, Name: "Metropolitana"})
	cat.SeedCity(catalog.City{ID: 1000, RegionID: 100, Name: "Santiago"})

	vehicles := vehicle.NewInMemoryStore()
	auditor := &capturingAuditor{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := New(
		vehicle.NewService(vehicles, nil),
		listing.NewService(listingStore, cat, nil),
		auditor,
		nil,
		logger,
	)
	return &fixture{svc: svc, vehicles: vehicles, listings: listingStore, auditor: auditor}
}

func fullForm() RawForm {
	return RawForm{
		Plate:        "bbcd12",
		Price:        "8500000",
		Mileage:      "50000",
		CityID:       "1000",
		BrandID:      "1",
		ModelID:      "10",
		Year:         "2020",
		Color:        "red",
		FuelType:     "gasoline",
		Transmission: "manual",
	}
}

func TestSubmitNewVehicle(t *testing.T) {
	f := newFixture(t, listing.NewInMemoryStore())

	result, err := f.svc.Submit(testContext(), 7, 7, fullForm())
	require.NoError(t, err)
	require.True(t, result.OK)
	require.NotNil(t, result.Listing)

	d := result.Listing
	assert.Equal(t, "Vehicle BBCD12", d.Listing.Title, "plate is normalized into the title")
	assert.Equal(t, listing.StatusActive, d.Listing.Status)
	assert.Equal(t, listing.TypeSale, d.Listing.Type)
	assert.Equal(t, int64(8500000), d.Listing.Price)
	assert.Equal(t, "BBCD12", d.Plate)
	assert.Equal(t, 50000, d.Mileage)
	assert.Equal(t, "Toyota", d.BrandName)
	assert.Equal(t, "Yaris", d.ModelName)
	assert.Equal(t, "Santiago", d.CityName)
	assert.Equal(t, "Metropolitana", d.RegionName)
	assert.Equal(t, 1, f.vehicles.Count())

	assert.Equal(t, []audit.Action{audit.ActionVehicleCreated, audit.ActionListingCreated}, f.auditor.actions())
}

func TestSubmitKnownPlateUpdates(t *testing.T) {
	store := listing.NewInMemoryStore()
	f := newFixture(t, store)

	_, err := f.svc.Submit(testContext(), 7, 7, fullForm())
	require.NoError(t, err)

	// Re-submission carries only the always-required fields: a known plate
	// does not need the identity attributes again.
	result, err := f.svc.Submit(testContext(), 7, 7, RawForm{
		Plate:   "BBCD12",
		Price:   "7900000",
		Mileage: "85000",
		CityID:  "1000",
		Color:   "blue",
	})
	require.NoError(t, err)
	require.True(t, result.OK)

	assert.Equal(t, 85000, result.Listing.Mileage)
	assert.Equal(t, "blue", result.Listing.Color)
	assert.Equal(t, 1, f.vehicles.Count(), "same plate converges on one vehicle record")
	assert.Equal(t, 2, store.Count(), "each submission publishes its own listing")
	assert.Contains(t, f.auditor.actions(), audit.ActionVehicleUpdated)
}

func TestSubmitUnknownPlateNeedsFullPayload(t *testing.T) {
	store := listing.NewInMemoryStore()
	f := newFixture(t, store)

	form := fullForm()
	form.FuelType = ""
	form.BrandID = ""

	_, err := f.svc.Submit(testContext(), 7, 7, form)
	require.Error(t, err)

	assert.True(t, dErrors.HasCode(err, dErrors.CodeIncompleteVehicle))
	assert.Contains(t, dErrors.MessageOf(err), "brand")
	assert.Contains(t, dErrors.MessageOf(err), "fuel type")
	assert.Equal(t, 0, f.vehicles.Count(), "nothing persisted")
	assert.Equal(t, 0, store.Count())
}

func TestSubmitCollectsFieldErrors(t *testing.T) {
	store := listing.NewInMemoryStore()
	f := newFixture(t, store)

	form := fullForm()
	form.Plate = "12BBCD"
	form.Price = "50000"
	form.Mileage = "-1"

	result, err := f.svc.Submit(testContext(), 7, 7, form)
	require.NoError(t, err, "field rejections are a result, not an error")
	require.False(t, result.OK)

	assert.Contains(t, result.Errors["license_plate"], "Invalid plate format")
	assert.Contains(t, result.Errors["price"], "too low")
	assert.Equal(t, "Mileage cannot be negative", result.Errors["mileage"])
	assert.Equal(t, 0, f.vehicles.Count())
	assert.Equal(t, 0, store.Count())
}

// A fractional price must be rejected at validation, never truncated into a
// published listing.
func TestSubmitRejectsFractionalPrice(t *testing.T) {
	store := listing.NewInMemoryStore()
	f := newFixture(t, store)

	form := fullForm()
	form.Price = "150000.50"

	result, err := f.svc.Submit(testContext(), 7, 7, form)
	require.NoError(t, err)
	require.False(t, result.OK)

	assert.Equal(t, "Price must be a whole number", result.Errors["price"])
	assert.Nil(t, result.Listing)
	assert.Equal(t, 0, f.vehicles.Count())
	assert.Equal(t, 0, store.Count(), "no listing is published from a price the parser cannot carry")
}

func TestSubmitValidatesYearAgainstRequestTime(t *testing.T) {
	f := newFixture(t, listing.NewInMemoryStore())

	form := fullForm()
	form.Year = "2028"

	result, err := f.svc.Submit(testContext(), 7, 7, form)
	require.NoError(t, err)
	require.False(t, result.OK)
	assert.Equal(t, "Year cannot be in the future", result.Errors["year"])

	form.Year = "2027" // one year ahead is allowed
	result, err = f.svc.Submit(testContext(), 7, 7, form)
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestSubmitUnknownCity(t *testing.T) {
	f := newFixture(t, listing.NewInMemoryStore())

	form := fullForm()
	form.CityID = "999"

	_, err := f.svc.Submit(testContext(), 7, 7, form)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidReference))
}

func TestSubmitOtherOwnersPlate(t *testing.T) {
	f := newFixture(t, listing.NewInMemoryStore())

	_, err := f.svc.Submit(testContext(), 7, 7, fullForm())
	require.NoError(t, err)

	_, err = f.svc.Submit(testContext(), 8, 8, fullForm())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}

type failingListingStore struct {
	*listing.InMemoryStore
	fail bool
}

func (s *failingListingStore) Insert(ctx context.Context, l *listing.Listing) (*listing.Listing, error) {
	if s.fail {
		return nil, errors.New("connection reset")
	}
	return s.InMemoryStore.Insert(ctx, l)
}

// The vehicle upsert is not compensated when the listing insert fails. The
// next submission of the same plate takes the update path and completes.
func TestSubmitListingFailureKeepsVehicle(t *testing.T) {
	store := &failingListingStore{InMemoryStore: listing.NewInMemoryStore(), fail: true}
	f := newFixture(t, store)

	_, err := f.svc.Submit(testContext(), 7, 7, fullForm())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInternal))
	assert.Equal(t, 1, f.vehicles.Count(), "vehicle row survives the listing failure")
	assert.Equal(t, 0, store.Count())

	store.fail = false
	result, err := f.svc.Submit(testContext(), 7, 7, fullForm())
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, 1, f.vehicles.Count())
	assert.Equal(t, 1, store.Count())
}
