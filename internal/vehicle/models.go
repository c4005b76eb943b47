// Package vehicle owns the vehicle record: one row per license plate,
// resolved and upserted when an owner submits a listing.
package vehicle

import (
	"fmt"
	"strings"
	"time"

	dErrors "autobox/pkg/domain-errors"
)

// FuelType enumerates accepted fuel types.
type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelHybrid   FuelType = "hybrid"
	FuelElectric FuelType = "electric"
	FuelGas      FuelType = "gas"
)

// ParseFuelType validates a raw fuel type string.
func ParseFuelType(raw string) (FuelType, error) {
	switch FuelType(strings.ToLower(strings.TrimSpace(raw))) {
	case FuelGasoline:
		return FuelGasoline, nil
	case FuelDiesel:
		return FuelDiesel, nil
	case FuelHybrid:
		return FuelHybrid, nil
	case FuelElectric:
		return FuelElectric, nil
	case FuelGas:
		return FuelGas, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid fuel type: %q", raw))
	}
}

// Transmission enumerates accepted transmission types.
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
	TransmissionCVT       Transmission = "cvt"
)

// ParseTransmission validates a raw transmission string.
func ParseTransmission(raw string) (Transmission, error) {
	switch Transmission(strings.ToLower(strings.TrimSpace(raw))) {
	case TransmissionManual:
		return TransmissionManual, nil
	case TransmissionAutomatic:
		return TransmissionAutomatic, nil
	case TransmissionCVT:
		return TransmissionCVT, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid transmission: %q", raw))
	}
}

// Vehicle is one registered vehicle. Plate is unique across the table and is
// the identity callers resolve by.
type Vehicle struct {
	ID           int64        `json:"id"`
	OwnerID      int64        `json:"owner_id"`
	BrandID      int64        `json:"brand_id"`
	ModelID      int64        `json:"model_id"`
	Plate        string       `json:"license_plate"`
	Year         int          `json:"year"`
	Color        string       `json:"color"`
	Mileage      int          `json:"mileage"`
	FuelType     FuelType     `json:"fuel_type"`
	Transmission Transmission `json:"transmission"`
	EngineSize   *float64     `json:"engine_size,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Attributes is the full set of vehicle fields a submission may carry. Zero
// values mean the field was not supplied; whether that is acceptable depends
// on whether the plate already resolves to a record.
type Attributes struct {
	BrandID      int64
	ModelID      int64
	Year         int
	Color        string
	Mileage      int
	FuelType     FuelType
	Transmission Transmission
	EngineSize   *float64
}

// NewVehicle is the payload for creating a vehicle record. All identity
// attributes are mandatory; Validate names the ones missing.
type NewVehicle struct {
	OwnerID      int64
	Plate        string
	BrandID      int64
	ModelID      int64
	Year         int
	Color        string
	Mileage      int
	FuelType     FuelType
	Transmission Transmission
	EngineSize   *float64
}

// Validate reports the mandatory attributes missing from the payload.
func (n NewVehicle) Validate() error {
	var missing []string
	if n.BrandID == 0 {
		missing = append(missing, "brand")
	}
	if n.ModelID == 0 {
		missing = append(missing, "model")
	}
	if n.Year == 0 {
		missing = append(missing, "year")
	}
	if n.FuelType == "" {
		missing = append(missing, "fuel type")
	}
	if n.Transmission == "" {
		missing = append(missing, "transmission")
	}
	if len(missing) == 0 {
		return nil
	}
	return dErrors.New(dErrors.CodeIncompleteVehicle,
		fmt.Sprintf("new vehicle requires: %s", strings.Join(missing, ", ")))
}
