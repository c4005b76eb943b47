package account

import (
	"context"
	"strings"
	"sync"

	"autobox/pkg/platform/sentinel"
)

// InMemoryStore keeps accounts keyed by lowercased email.
type InMemoryStore struct {
	mu      sync.Mutex
	byEmail map[string]*Account
	byID    map[int64]*Account
	nextID  int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byEmail: make(map[string]*Account),
		byID:    make(map[int64]*Account),
		nextID:  1,
	}
}

func (s *InMemoryStore) Insert(_ context.Context, a *Account) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(a.Email)
	if _, exists := s.byEmail[key]; exists {
		return nil, sentinel.ErrConflict
	}
	stored := *a
	stored.ID = s.nextID
	s.nextID++
	s.byEmail[key] = &stored
	s.byID[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id int64) (*Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byID[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copied := *a
	return &copied, nil
}

// Deactivate marks an account inactive. Test helper.
func (s *InMemoryStore) Deactivate(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byID[id]; ok {
		a.Active = false
	}
}
