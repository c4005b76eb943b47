// Package submission is the single entry point for publishing a vehicle:
// validate the form, upsert the vehicle record, create the listing, return
// the joined result.
package submission

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"autobox/internal/audit"
	"autobox/internal/listing"
	"autobox/internal/platform/metrics"
	"autobox/internal/validation"
	"autobox/internal/vehicle"
	dErrors "autobox/pkg/domain-errors"
	"autobox/pkg/requestcontext"
)

// RawForm is the submission as the client sent it: all strings, validated
// and parsed here, nowhere else.
type RawForm struct {
	Plate        string `json:"license_plate"`
	Price        string `json:"price"`
	Mileage      string `json:"mileage"`
	CityID       string `json:"city_id"`
	BrandID      string `json:"brand_id"`
	ModelID      string `json:"model_id"`
	Year         string `json:"year"`
	Color        string `json:"color"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`
	EngineSize   string `json:"engine_size"`
	Description  string `json:"description"`
	ListingType  string `json:"listing_type"`
	VideoURL     string `json:"video_url"`
}

// Result is the outcome of a submission. Field-level rejections set OK false
// and fill Errors; anything past validation that fails comes back as an
// error with a code.
type Result struct {
	OK      bool              `json:"ok"`
	Errors  map[string]string `json:"errors,omitempty"`
	Listing *listing.Detail   `json:"listing,omitempty"`
}

// Service runs the submission pipeline.
type Service struct {
	vehicles *vehicle.Service
	listings *listing.Service
	auditor  audit.Publisher
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func New(vehicles *vehicle.Service, listings *listing.Service, auditor audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		vehicles: vehicles,
		listings: listings,
		auditor:  auditor,
		metrics:  m,
		logger:   logger,
	}
}

// numericID validates an optional reference id field.
func numericID(label string) validation.Func {
	return func(value string) validation.Outcome {
		if _, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64); err != nil {
			return validation.Outcome{Valid: false, Message: label + " is not valid"}
		}
		return validation.Outcome{Valid: true}
	}
}

func enumRule(parse func(string) error) validation.Func {
	return func(value string) validation.Outcome {
		if err := parse(value); err != nil {
			return validation.Outcome{Valid: false, Message: dErrors.MessageOf(err)}
		}
		return validation.Outcome{Valid: true}
	}
}

// rules builds the rule set for one form. Listing fields are always
// mandatory; vehicle identity fields are validated only when supplied,
// because a known plate does not need them.
func (s *Service) rules(ctx context.Context, form RawForm) validation.Rules {
	rules := validation.Rules{
		"license_plate": validation.Plate,
		"price":         validation.Price,
		"mileage":       validation.Mileage,
		"city_id":       numericID("City"),
	}
	if strings.TrimSpace(form.Year) != "" {
		rules["year"] = validation.YearIn(requestcontext.Now(ctx).Year())
	}
	if strings.TrimSpace(form.BrandID) != "" {
		rules["brand_id"] = numericID("Brand")
	}
	if strings.TrimSpace(form.ModelID) != "" {
		rules["model_id"] = numericID("Model")
	}
	if strings.TrimSpace(form.FuelType) != "" {
		rules["fuel_type"] = enumRule(func(v string) error {
			_, err := vehicle.ParseFuelType(v)
			return err
		})
	}
	if strings.TrimSpace(form.Transmission) != "" {
		rules["transmission"] = enumRule(func(v string) error {
			_, err := vehicle.ParseTransmission(v)
			return err
		})
	}
	if strings.TrimSpace(form.ListingType) != "" {
		rules["listing_type"] = enumRule(func(v string) error {
			_, err := listing.ParseType(v)
			return err
		})
	}
	if strings.TrimSpace(form.EngineSize) != "" {
		rules["engine_size"] = func(value string) validation.Outcome {
			if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
				return validation.Outcome{Valid: false, Message: "Engine size is not valid"}
			}
			return validation.Outcome{Valid: true}
		}
	}
	return rules
}

// Submit runs the full pipeline on behalf of one authenticated account.
// ownerID scopes the vehicle record; sellerID is credited with the listing.
//
// The vehicle upsert and the listing insert are separate statements: if the
// listing insert fails, the vehicle row stays. The next submission of the
// same plate takes the update path, so the half-finished state heals itself.
func (s *Service) Submit(ctx context.Context, ownerID, sellerID int64, form RawForm) (*Result, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveSubmitDuration(time.Since(start))
	}()

	values := map[string]string{
		"license_plate": form.Plate,
		"price":         form.Price,
		"mileage":       form.Mileage,
		"city_id":       form.CityID,
		"brand_id":      form.BrandID,
		"model_id":      form.ModelID,
		"year":          form.Year,
		"fuel_type":     form.FuelType,
		"transmission":  form.Transmission,
		"listing_type":  form.ListingType,
		"engine_size":   form.EngineSize,
	}
	formResult := validation.ValidateForm(values, s.rules(ctx, form))
	if !formResult.Valid {
		if s.metrics != nil {
			s.metrics.SubmissionsRejected.Inc()
		}
		return &Result{OK: false, Errors: formResult.Errors}, nil
	}

	attrs, listingAttrs := s.parse(form)

	v, created, err := s.vehicles.Upsert(ctx, ownerID, form.Plate, attrs)
	if err != nil {
		return nil, err
	}
	if s.auditor != nil {
		action := audit.ActionVehicleUpdated
		if created {
			action = audit.ActionVehicleCreated
		}
		s.auditor.Record(ctx, action, ownerID, v.ID, v.Plate)
	}

	l, err := s.listings.Create(ctx, sellerID, v, listingAttrs)
	if err != nil {
		return nil, err
	}
	if s.auditor != nil {
		s.auditor.Record(ctx, audit.ActionListingCreated, sellerID, l.ID, v.Plate)
	}

	detail, err := s.listings.Detail(ctx, l, v)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "listing submitted",
		"request_id", requestcontext.RequestID(ctx),
		"listing_id", l.ID,
		"vehicle_id", v.ID,
		"plate", v.Plate,
		"vehicle_created", created,
	)
	return &Result{OK: true, Listing: detail}, nil
}

// parse converts the validated form into typed payloads. Inputs are already
// past validation, so conversion failures degrade to zero values, which the
// downstream payload checks treat as absent.
func (s *Service) parse(form RawForm) (vehicle.Attributes, listing.Attributes) {
	toInt64 := func(v string) int64 {
		n, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n
	}
	toInt := func(v string) int {
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}

	attrs := vehicle.Attributes{
		BrandID: toInt64(form.BrandID),
		ModelID: toInt64(form.ModelID),
		Year:    toInt(form.Year),
		Color:   strings.TrimSpace(form.Color),
		Mileage: toInt(form.Mileage),
	}
	if ft, err := vehicle.ParseFuelType(form.FuelType); err == nil && strings.TrimSpace(form.FuelType) != "" {
		attrs.FuelType = ft
	}
	if tr, err := vehicle.ParseTransmission(form.Transmission); err == nil && strings.TrimSpace(form.Transmission) != "" {
		attrs.Transmission = tr
	}
	if strings.TrimSpace(form.EngineSize) != "" {
		if size, err := strconv.ParseFloat(strings.TrimSpace(form.EngineSize), 64); err == nil {
			attrs.EngineSize = &size
		}
	}

	listingType, _ := listing.ParseType(form.ListingType)
	listingAttrs := listing.Attributes{
		Price:       toInt64(form.Price),
		CityID:      toInt64(form.CityID),
		Description: strings.TrimSpace(form.Description),
		Type:        listingType,
	}
	if url := strings.TrimSpace(form.VideoURL); url != "" {
		listingAttrs.VideoURL = &url
	}
	return attrs, listingAttrs
}
