package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"autobox/pkg/requestcontext"
)

// Publisher is what services depend on to emit audit events.
type Publisher interface {
	Record(ctx context.Context, action Action, actorID, entityID int64, plate string)
}

// Recorder buffers events on a channel and writes them from a single worker
// goroutine, keeping audit writes off the request path. When the buffer is
// full the event is dropped and logged; auditing never blocks a submission.
type Recorder struct {
	store  Store
	logger *slog.Logger
	events chan Event
}

func NewRecorder(store Store, logger *slog.Logger, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = 256
	}
	return &Recorder{
		store:  store,
		logger: logger,
		events: make(chan Event, buffer),
	}
}

// Record captures the request's actor, client metadata and timestamp and
// enqueues the event.
func (r *Recorder) Record(ctx context.Context, action Action, actorID, entityID int64, plate string) {
	e := Event{
		ID:           uuid.New(),
		Action:       action,
		ActorID:      actorID,
		EntityID:     entityID,
		Plate:        plate,
		ClientIP:     requestcontext.ClientIP(ctx),
		ClientDevice: DeviceSummary(requestcontext.UserAgent(ctx)),
		OccurredAt:   requestcontext.Now(ctx),
	}

	select {
	case r.events <- e:
	default:
		r.logger.Warn("audit buffer full, dropping event",
			"action", string(action), "actor_id", actorID)
	}
}

// Run writes queued events until ctx is cancelled, then drains whatever is
// already buffered before returning.
func (r *Recorder) Run(ctx context.Context) {
	for {
		select {
		case e := <-r.events:
			r.insert(e)
		case <-ctx.Done():
			for {
				select {
				case e := <-r.events:
					r.insert(e)
				default:
					return
				}
			}
		}
	}
}

func (r *Recorder) insert(e Event) {
	// Detached from the request context: the request may be long gone.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.store.Insert(ctx, e); err != nil {
		r.logger.Error("audit insert failed", "error", err, "action", string(e.Action))
	}
}
