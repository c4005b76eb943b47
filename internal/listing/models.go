// Package listing publishes vehicles for sale and serves their joined read
// model.
package listing

import (
	"fmt"
	"strings"
	"time"

	dErrors "autobox/pkg/domain-errors"
)

// Type is how a vehicle is offered.
type Type string

const (
	TypeSale           Type = "sale"
	TypeAuction        Type = "auction"
	TypeInspectionSale Type = "inspection_sale"
)

// ParseType validates a raw listing type. Empty input defaults to a plain
// sale.
func ParseType(raw string) (Type, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return TypeSale, nil
	}
	switch Type(trimmed) {
	case TypeSale:
		return TypeSale, nil
	case TypeAuction:
		return TypeAuction, nil
	case TypeInspectionSale:
		return TypeInspectionSale, nil
	default:
		return "", dErrors.New(dErrors.CodeValidation, fmt.Sprintf("invalid listing type: %q", raw))
	}
}

// Status is the lifecycle state of a listing. Submissions only ever produce
// active listings; the other states exist for the read side.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusSold      Status = "sold"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Listing is one published offer for a vehicle.
type Listing struct {
	ID          int64     `json:"id"`
	VehicleID   int64     `json:"vehicle_id"`
	SellerID    int64     `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Type        Type      `json:"listing_type"`
	Status      Status    `json:"status"`
	CityID      int64     `json:"city_id"`
	VideoURL    *string   `json:"video_url,omitempty"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Attributes is the seller-supplied part of a new listing. The title is never
// supplied; it is derived from the vehicle's plate.
type Attributes struct {
	Price       int64
	CityID      int64
	Description string
	Type        Type
	VideoURL    *string
}

// Detail is the joined read model: the listing plus the display fields from
// the vehicle and the reference catalog. It is assembled per read and never
// stored, so renames in the catalog show up on the next read.
type Detail struct {
	Listing    Listing `json:"listing"`
	Plate      string  `json:"license_plate"`
	Year       int     `json:"year"`
	Mileage    int     `json:"mileage"`
	Color      string  `json:"color"`
	BrandName  string  `json:"brand"`
	ModelName  string  `json:"model"`
	CityName   string  `json:"city"`
	RegionName string  `json:"region"`
}
