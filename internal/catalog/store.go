package catalog

import "context"

// Store reads reference data. Absence is reported as sentinel.ErrNotFound.
type Store interface {
	FindBrand(ctx context.Context, id int64) (*Brand, error)
	FindModel(ctx context.Context, id int64) (*Model, error)
	FindRegion(ctx context.Context, id int64) (*Region, error)
	FindCity(ctx context.Context, id int64) (*City, error)

	ListBrands(ctx context.Context) ([]*Brand, error)
	ListModelsByBrand(ctx context.Context, brandID int64) ([]*Model, error)
	ListRegions(ctx context.Context) ([]*Region, error)
	ListCitiesByRegion(ctx context.Context, regionID int64) ([]*City, error)
}
