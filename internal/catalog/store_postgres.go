package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"autobox/pkg/platform/sentinel"
)

// PostgresStore reads reference data from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed catalog store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindBrand(ctx context.Context, id int64) (*Brand, error) {
	const query = `SELECT id, name, is_active FROM vehicle_brands WHERE id = $1`

	var b Brand
	err := s.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Name, &b.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find brand: %w", err)
	}
	return &b, nil
}

func (s *PostgresStore) FindModel(ctx context.Context, id int64) (*Model, error) {
	const query = `SELECT id, brand_id, name, is_active FROM vehicle_models WHERE id = $1`

	var m Model
	err := s.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.BrandID, &m.Name, &m.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find model: %w", err)
	}
	return &m, nil
}

func (s *PostgresStore) FindRegion(ctx context.Context, id int64) (*Region, error) {
	const query = `SELECT id, name FROM regions WHERE id = $1`

	var r Region
	err := s.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find region: %w", err)
	}
	return &r, nil
}

func (s *PostgresStore) FindCity(ctx context.Context, id int64) (*City, error) {
	const query = `SELECT id, region_id, name FROM cities WHERE id = $1`

	var c City
	err := s.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.RegionID, &c.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find city: %w", err)
	}
	return &c, nil
}

func (s *PostgresStore) ListBrands(ctx context.Context) ([]*Brand, error) {
	const query = `SELECT id, name, is_active FROM vehicle_brands WHERE is_active = TRUE ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var out []*Brand
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Active); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		out = append(out, &b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListModelsByBrand(ctx context.Context, brandID int64) ([]*Model, error) {
	const query = `SELECT id, brand_id, name, is_active FROM vehicle_models
		WHERE brand_id = $1 AND is_active = TRUE ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()

	var out []*Model
	for rows.Next() {
		var m Model
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name, &m.Active); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListRegions(ctx context.Context) ([]*Region, error) {
	const query = `SELECT id, name FROM regions ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	defer rows.Close()

	var out []*Region
	for rows.Next() {
		var r Region
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, fmt.Errorf("scan region: %w", err)
		}
		out = append(out, &r)
	}
	return out, rows.Err()
}

func (s *PostgresStore) ListCitiesByRegion(ctx context.Context, regionID int64) ([]*City, error) {
	const query = `SELECT id, region_id, name FROM cities WHERE region_id = $1 ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, regionID)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	defer rows.Close()

	var out []*City
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.ID, &c.RegionID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan city: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
