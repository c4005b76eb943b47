package listing

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"autobox/internal/catalog"
	"autobox/internal/platform/metrics"
	"autobox/internal/vehicle"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/platform/sentinel"
	"autobox/pkg/requestcontext"
)

// Service creates listings and assembles their joined read model.
type Service struct {
	store   Store
	catalog catalog.Store
	metrics *metrics.Metrics
}

func NewService(store Store, cat catalog.Store, m *metrics.Metrics) *Service {
	return &Service{store: store, catalog: cat, metrics: m}
}

// Create publishes a vehicle. The title is derived from the plate, the status
// is always active, and an empty type defaults to a plain sale. The city is
// checked against the catalog before the insert; the database's foreign keys
// stay as a backstop for references this service does not pre-check.
func (s *Service) Create(ctx context.Context, sellerID int64, v *vehicle.Vehicle, attrs Attributes) (*Listing, error) {
	if attrs.Type == "" {
		attrs.Type = TypeSale
	}

	if _, err := s.catalog.FindCity(ctx, attrs.CityID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeInvalidReference, "city does not exist")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up city")
	}

	now := requestcontext.Now(ctx)
	created, err := s.store.Insert(ctx, &Listing{
		VehicleID:   v.ID,
		SellerID:    sellerID,
		Title:       fmt.Sprintf("Vehicle %s", v.Plate),
		Description: attrs.Description,
		Price:       attrs.Price,
		Type:        attrs.Type,
		Status:      StatusActive,
		CityID:      attrs.CityID,
		VideoURL:    attrs.VideoURL,
		PublishedAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, sentinel.ErrInvalidReference) {
			return nil, dErrors.New(dErrors.CodeInvalidReference, "listing references a missing record")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create listing")
	}
	if s.metrics != nil {
		s.metrics.ListingsCreated.Inc()
	}
	return created, nil
}

// Detail joins the listing with the vehicle's display fields and the catalog
// names. Assembled on every call so catalog renames are always reflected.
func (s *Service) Detail(ctx context.Context, l *Listing, v *vehicle.Vehicle) (*Detail, error) {
	var (
		brand *catalog.Brand
		model *catalog.Model
		city  *catalog.City
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		brand, err = s.catalog.FindBrand(gctx, v.BrandID)
		return err
	})
	g.Go(func() (err error) {
		model, err = s.catalog.FindModel(gctx, v.ModelID)
		return err
	})
	g.Go(func() (err error) {
		city, err = s.catalog.FindCity(gctx, l.CityID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to assemble listing detail")
	}

	region, err := s.catalog.FindRegion(ctx, city.RegionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to assemble listing detail")
	}

	return &Detail{
		Listing:    *l,
		Plate:      v.Plate,
		Year:       v.Year,
		Mileage:    v.Mileage,
		Color:      v.Color,
		BrandName:  brand.Name,
		ModelName:  model.Name,
		CityName:   city.Name,
		RegionName: region.Name,
	}, nil
}
