package catalog

import (
	"context"
	"errors"

	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/platform/sentinel"
)

// Service exposes reference data to transport handlers, translating store
// sentinels into coded errors.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Brands(ctx context.Context) ([]*Brand, error) {
	brands, err := s.store.ListBrands(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list brands")
	}
	return brands, nil
}

func (s *Service) ModelsByBrand(ctx context.Context, brandID int64) ([]*Model, error) {
	if _, err := s.store.FindBrand(ctx, brandID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "brand not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up brand")
	}
	models, err := s.store.ListModelsByBrand(ctx, brandID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list models")
	}
	return models, nil
}

func (s *Service) Regions(ctx context.Context) ([]*Region, error) {
	regions, err := s.store.ListRegions(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list regions")
	}
	return regions, nil
}

func (s *Service) CitiesByRegion(ctx context.Context, regionID int64) ([]*City, error) {
	if _, err := s.store.FindRegion(ctx, regionID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "region not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up region")
	}
	cities, err := s.store.ListCitiesByRegion(ctx, regionID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list cities")
	}
	return cities, nil
}
