package account

import "context"

// Store persists accounts. Insert reports a taken email as
// sentinel.ErrConflict; the Find methods report absence as
// sentinel.ErrNotFound.
type Store interface {
	Insert(ctx context.Context, a *Account) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id int64) (*Account, error)
}
