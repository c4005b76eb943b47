package vehicle

import (
	"context"
	"errors"

	"autobox/internal/platform/metrics"
	"autobox/internal/validation"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/platform/sentinel"
	"autobox/pkg/requestcontext"
)

// Service resolves and upserts vehicle records.
type Service struct {
	store   Store
	metrics *metrics.Metrics
}

func NewService(store Store, m *metrics.Metrics) *Service {
	return &Service{store: store, metrics: m}
}

// Resolve looks up a vehicle by plate. Absence is a normal outcome, reported
// via found; plates are normalized before the lookup so "bbcd12" and
// " BBCD12 " resolve the same record.
func (s *Service) Resolve(ctx context.Context, plate string) (*Vehicle, bool, error) {
	normalized := validation.NormalizePlate(plate)

	v, err := s.store.FindByPlate(ctx, normalized)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to resolve vehicle")
	}
	return v, true, nil
}

// Upsert routes a submission to the update or insert path based on whether
// the plate already resolves to a record. created reports which path ran.
//
// Two concurrent submissions of the same unknown plate both take the insert
// path; the unique constraint on license_plate breaks the tie, and the loser
// falls back to the update path against the winner's row.
func (s *Service) Upsert(ctx context.Context, ownerID int64, plate string, attrs Attributes) (v *Vehicle, created bool, err error) {
	normalized := validation.NormalizePlate(plate)

	existing, found, err := s.Resolve(ctx, normalized)
	if err != nil {
		return nil, false, err
	}
	if found {
		updated, err := s.update(ctx, existing, ownerID, attrs)
		return updated, false, err
	}

	inserted, err := s.insert(ctx, ownerID, normalized, attrs)
	if err == nil {
		return inserted, true, nil
	}
	if !dErrors.HasCode(err, dErrors.CodeConflict) {
		return nil, false, err
	}

	// Lost the insert race: someone created this plate between the resolve
	// and the insert. Re-resolve and update the winner's row instead.
	existing, found, resolveErr := s.Resolve(ctx, normalized)
	if resolveErr != nil {
		return nil, false, resolveErr
	}
	if !found {
		return nil, false, err
	}
	updated, err := s.update(ctx, existing, ownerID, attrs)
	return updated, false, err
}

func (s *Service) update(ctx context.Context, existing *Vehicle, ownerID int64, attrs Attributes) (*Vehicle, error) {
	if existing.OwnerID != ownerID {
		return nil, dErrors.New(dErrors.CodeForbidden, "vehicle is registered to a different owner")
	}

	updated, err := s.store.UpdateByPlateOwner(ctx, existing.Plate, ownerID, attrs.Mileage, attrs.Color, requestcontext.Now(ctx))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "vehicle not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to update vehicle")
	}
	if s.metrics != nil {
		s.metrics.VehiclesUpdated.Inc()
	}
	return updated, nil
}

func (s *Service) insert(ctx context.Context, ownerID int64, plate string, attrs Attributes) (*Vehicle, error) {
	payload := NewVehicle{
		OwnerID:      ownerID,
		Plate:        plate,
		BrandID:      attrs.BrandID,
		ModelID:      attrs.ModelID,
		Year:         attrs.Year,
		Color:        attrs.Color,
		Mileage:      attrs.Mileage,
		FuelType:     attrs.FuelType,
		Transmission: attrs.Transmission,
		EngineSize:   attrs.EngineSize,
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	inserted, err := s.store.Insert(ctx, &Vehicle{
		OwnerID:      payload.OwnerID,
		BrandID:      payload.BrandID,
		ModelID:      payload.ModelID,
		Plate:        payload.Plate,
		Year:         payload.Year,
		Color:        payload.Color,
		Mileage:      payload.Mileage,
		FuelType:     payload.FuelType,
		Transmission: payload.Transmission,
		EngineSize:   payload.EngineSize,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		switch {
		case errors.Is(err, sentinel.ErrConflict):
			return nil, dErrors.Wrap(err, dErrors.CodeConflict, "vehicle already registered")
		case errors.Is(err, sentinel.ErrInvalidReference):
			return nil, dErrors.Wrap(err, dErrors.CodeInvalidReference, "brand or model does not exist")
		default:
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create vehicle")
		}
	}
	if s.metrics != nil {
		s.metrics.VehiclesCreated.Inc()
	}
	return inserted, nil
}
