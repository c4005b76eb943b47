// Package catalog serves the reference data the marketplace validates and
// joins against: vehicle brands and models, regions and cities.
package catalog

// Brand is a vehicle manufacturer.
type Brand struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"is_active"`
}

// Model is a vehicle model belonging to one brand.
type Model struct {
	ID      int64  `json:"id"`
	BrandID int64  `json:"brand_id"`
	Name    string `json:"name"`
	Active  bool   `json:"is_active"`
}

// Region is a top-level administrative region.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// City belongs to one region. Listings are published against a city.
type City struct {
	ID       int64  `json:"id"`
	RegionID int64  `json:"region_id"`
	Name     string `json:"name"`
}
