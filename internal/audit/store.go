package audit

import (
	"context"
	"time"
)

// Store appends and reads audit events.
type Store interface {
	Insert(ctx context.Context, e Event) error
	ListByActor(ctx context.Context, actorID int64, since time.Time) ([]Event, error)
}
