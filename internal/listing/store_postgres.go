package listing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"autobox/internal/platform/postgres"
	"autobox/pkg/platform/sentinel"
)

// PostgresStore persists listings in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const listingColumns = `id, vehicle_id, seller_id, title, description, price, listing_type, status, city_id, video_url, published_at, created_at, updated_at`

func (s *PostgresStore) Insert(ctx context.Context, l *Listing) (*Listing, error) {
	query := `
		INSERT INTO vehicle_listings (vehicle_id, seller_id, title, description, price, listing_type, status, city_id, video_url, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + listingColumns

	var inserted Listing
	err := s.db.QueryRowContext(ctx, query,
		l.VehicleID, l.SellerID, l.Title, l.Description, l.Price,
		string(l.Type), string(l.Status), l.CityID, l.VideoURL,
		l.PublishedAt, l.CreatedAt, l.UpdatedAt,
	).Scan(&inserted.ID, &inserted.VehicleID, &inserted.SellerID, &inserted.Title,
		&inserted.Description, &inserted.Price, &inserted.Type, &inserted.Status,
		&inserted.CityID, &inserted.VideoURL, &inserted.PublishedAt,
		&inserted.CreatedAt, &inserted.UpdatedAt)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return nil, sentinel.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert listing: %w", err)
	}
	return &inserted, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id int64) (*Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM vehicle_listings WHERE id = $1`

	var l Listing
	err := s.db.QueryRowContext(ctx, query, id).Scan(&l.ID, &l.VehicleID,
		&l.SellerID, &l.Title, &l.Description, &l.Price, &l.Type, &l.Status,
		&l.CityID, &l.VideoURL, &l.PublishedAt, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return &l, nil
}

func (s *PostgresStore) ListBySeller(ctx context.Context, sellerID int64) ([]*Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM vehicle_listings WHERE seller_id = $1 ORDER BY id`
	return s.list(ctx, query, sellerID)
}

func (s *PostgresStore) ListActive(ctx context.Context) ([]*Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM vehicle_listings WHERE status = 'active' ORDER BY id`
	return s.list(ctx, query)
}

func (s *PostgresStore) list(ctx context.Context, query string, args ...any) ([]*Listing, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	var out []*Listing
	for rows.Next() {
		var l Listing
		if err := rows.Scan(&l.ID, &l.VehicleID, &l.SellerID, &l.Title,
			&l.Description, &l.Price, &l.Type, &l.Status, &l.CityID,
			&l.VideoURL, &l.PublishedAt, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	return out, nil
}
