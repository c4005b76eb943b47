package httptransport

import (
	"context"
	"time"

	"autobox/internal/account"
	"autobox/internal/catalog"
	"autobox/internal/listing"
	"autobox/internal/submission"
)

// SubmissionService publishes a vehicle listing on behalf of an account.
type SubmissionService interface {
	Submit(ctx context.Context, ownerID, sellerID int64, form submission.RawForm) (*submission.Result, error)
}

// AccountService registers and authenticates accounts.
type AccountService interface {
	Register(ctx context.Context, input account.RegisterInput) (*account.Account, map[string]string, error)
	Authenticate(ctx context.Context, email, password string) (*account.Account, error)
}

// CatalogService serves reference data.
type CatalogService interface {
	Brands(ctx context.Context) ([]*catalog.Brand, error)
	ModelsByBrand(ctx context.Context, brandID int64) ([]*catalog.Model, error)
	Regions(ctx context.Context) ([]*catalog.Region, error)
	CitiesByRegion(ctx context.Context, regionID int64) ([]*catalog.City, error)
}

// ListingReader serves published listings.
type ListingReader interface {
	ListActive(ctx context.Context) ([]*listing.Listing, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]*listing.Listing, error)
}

// TokenIssuer exchanges an authenticated account for a bearer token.
type TokenIssuer interface {
	Issue(accountID int64, email string, now time.Time) (string, error)
}
