package catalog

import (
	"context"
	"sort"
	"sync"

	"autobox/pkg/platform/sentinel"
)

// InMemoryStore is the reference-data store used by unit tests and local runs.
type InMemoryStore struct {
	mu      sync.RWMutex
	brands  map[int64]Brand
	models  map[int64]Model
	regions map[int64]Region
	cities  map[int64]City
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		brands:  make(map[int64]Brand),
		models:  make(map[int64]Model),
		regions: make(map[int64]Region),
		cities:  make(map[int64]City),
	}
}

// SeedBrand adds a brand. Test helper.
func (s *InMemoryStore) SeedBrand(b Brand) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brands[b.ID] = b
}

// SeedModel adds a model. Test helper.
func (s *InMemoryStore) SeedModel(m Model) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.models[m.ID] = m
}

// SeedRegion adds a region. Test helper.
func (s *InMemoryStore) SeedRegion(r Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regions[r.ID] = r
}

// SeedCity adds a city. Test helper.
func (s *InMemoryStore) SeedCity(c City) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[c.ID] = c
}

func (s *InMemoryStore) FindBrand(_ context.Context, id int64) (*Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.brands[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &b, nil
}

func (s *InMemoryStore) FindModel(_ context.Context, id int64) (*Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.models[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &m, nil
}

func (s *InMemoryStore) FindRegion(_ context.Context, id int64) (*Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.regions[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &r, nil
}

func (s *InMemoryStore) FindCity(_ context.Context, id int64) (*City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cities[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &c, nil
}

func (s *InMemoryStore) ListBrands(_ context.Context) ([]*Brand, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Brand, 0, len(s.brands))
	for _, b := range s.brands {
		if !b.Active {
			continue
		}
		copied := b
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) ListModelsByBrand(_ context.Context, brandID int64) ([]*Model, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Model
	for _, m := range s.models {
		if m.BrandID != brandID || !m.Active {
			continue
		}
		copied := m
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) ListRegions(_ context.Context) ([]*Region, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Region, 0, len(s.regions))
	for _, r := range s.regions {
		copied := r
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *InMemoryStore) ListCitiesByRegion(_ context.Context, regionID int64) ([]*City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*City
	for _, c := range s.cities {
		if c.RegionID != regionID {
			continue
		}
		copied := c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
