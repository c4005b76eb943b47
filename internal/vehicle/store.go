package vehicle

import (
	"context"
	"time"
)

// Store persists vehicle records.
//
// FindByPlate reports absence as sentinel.ErrNotFound. Insert reports a
// duplicate plate as sentinel.ErrConflict. UpdateByPlateOwner carries the
// ownership check in its predicate and reports zero matched rows as
// sentinel.ErrNotFound.
type Store interface {
	FindByPlate(ctx context.Context, plate string) (*Vehicle, error)
	Insert(ctx context.Context, v *Vehicle) (*Vehicle, error)
	UpdateByPlateOwner(ctx context.Context, plate string, ownerID int64, mileage int, color string, now time.Time) (*Vehicle, error)
}
