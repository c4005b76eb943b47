package vehicle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"autobox/internal/platform/postgres"
	"autobox/pkg/platform/sentinel"
)

// PostgresStore persists vehicles in PostgreSQL. The UNIQUE constraint on
// license_plate is the authority on duplicates; it surfaces here as
// sentinel.ErrConflict.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const vehicleColumns = `id, owner_id, brand_id, model_id, license_plate, year, color, mileage, fuel_type, transmission, engine_size, created_at, updated_at`

func scanVehicle(row *sql.Row) (*Vehicle, error) {
	var v Vehicle
	err := row.Scan(&v.ID, &v.OwnerID, &v.BrandID, &v.ModelID, &v.Plate, &v.Year,
		&v.Color, &v.Mileage, &v.FuelType, &v.Transmission, &v.EngineSize,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *PostgresStore) FindByPlate(ctx context.Context, plate string) (*Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE license_plate = $1`

	v, err := scanVehicle(s.db.QueryRowContext(ctx, query, plate))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find vehicle by plate: %w", err)
	}
	return v, nil
}

func (s *PostgresStore) Insert(ctx context.Context, v *Vehicle) (*Vehicle, error) {
	query := `
		INSERT INTO vehicles (owner_id, brand_id, model_id, license_plate, year, color, mileage, fuel_type, transmission, engine_size, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + vehicleColumns

	inserted, err := scanVehicle(s.db.QueryRowContext(ctx, query,
		v.OwnerID, v.BrandID, v.ModelID, v.Plate, v.Year, v.Color, v.Mileage,
		string(v.FuelType), string(v.Transmission), v.EngineSize, v.CreatedAt, v.UpdatedAt))
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return nil, sentinel.ErrConflict
		}
		if postgres.IsForeignKeyViolation(err) {
			return nil, sentinel.ErrInvalidReference
		}
		return nil, fmt.Errorf("insert vehicle: %w", err)
	}
	return inserted, nil
}

func (s *PostgresStore) UpdateByPlateOwner(ctx context.Context, plate string, ownerID int64, mileage int, color string, now time.Time) (*Vehicle, error) {
	// Ownership lives in the predicate so a mismatched owner reads as a
	// missing row, never as an update of someone else's vehicle.
	query := `
		UPDATE vehicles
		SET mileage = $1, color = $2, updated_at = $3
		WHERE license_plate = $4 AND owner_id = $5
		RETURNING ` + vehicleColumns

	updated, err := scanVehicle(s.db.QueryRowContext(ctx, query, mileage, color, now, plate, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return updated, nil
}
