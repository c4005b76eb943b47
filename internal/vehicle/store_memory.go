package vehicle

import (
	"context"
	"sync"
	"time"

	"autobox/pkg/platform/sentinel"
)

// InMemoryStore keeps vehicles keyed by plate. Used by unit tests and local
// runs; mirrors the Postgres store's sentinel semantics, including the unique
// plate constraint.
type InMemoryStore struct {
	mu      sync.Mutex
	byPlate map[string]*Vehicle
	nextID  int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byPlate: make(map[string]*Vehicle), nextID: 1}
}

func (s *InMemoryStore) FindByPlate(_ context.Context, plate string) (*Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byPlate[plate]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (s *InMemoryStore) Insert(_ context.Context, v *Vehicle) (*Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byPlate[v.Plate]; exists {
		return nil, sentinel.ErrConflict
	}
	stored := *v
	stored.ID = s.nextID
	s.nextID++
	s.byPlate[stored.Plate] = &stored
	copied := stored
	return &copied, nil
}

func (s *InMemoryStore) UpdateByPlateOwner(_ context.Context, plate string, ownerID int64, mileage int, color string, now time.Time) (*Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byPlate[plate]
	if !ok || v.OwnerID != ownerID {
		return nil, sentinel.ErrNotFound
	}
	v.Mileage = mileage
	v.Color = color
	v.UpdatedAt = now
	copied := *v
	return &copied, nil
}

// Count reports the number of stored vehicles. Test helper.
func (s *InMemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byPlate)
}
