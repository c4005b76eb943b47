package listing

import (
	"context"
	"sort"
	"sync"

	"autobox/pkg/platform/sentinel"
)

// InMemoryStore keeps listings in a map. Used by unit tests and local runs.
// It does not enforce foreign keys; tests that need ErrInvalidReference use a
// failing stub instead.
type InMemoryStore struct {
	mu     sync.Mutex
	byID   map[int64]*Listing
	nextID int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byID: make(map[int64]*Listing), nextID: 1}
}

func (s *InMemoryStore) Insert(_ context.Context, l *Listing) (*Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *l
	stored.ID = s.nextID
	s.nextID++
	s.byID[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id int64) (*Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *l
	return &copied, nil
}

func (s *InMemoryStore) ListBySeller(_ context.Context, sellerID int64) ([]*Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Listing
	for _, l := range s.byID {
		if l.SellerID != sellerID {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *InMemoryStore) ListActive(_ context.Context) ([]*Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Listing
	for _, l := range s.byID {
		if l.Status != StatusActive {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Count reports the number of stored listings. Test helper.
func (s *InMemoryStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}
