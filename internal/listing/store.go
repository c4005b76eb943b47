package listing

import "context"

// Store persists listings.
//
// Insert reports a dangling foreign key as sentinel.ErrInvalidReference;
// FindByID reports absence as sentinel.ErrNotFound.
type Store interface {
	Insert(ctx context.Context, l *Listing) (*Listing, error)
	FindByID(ctx context.Context, id int64) (*Listing, error)
	ListBySeller(ctx context.Context, sellerID int64) ([]*Listing, error)
	ListActive(ctx context.Context) ([]*Listing, error)
}
