package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "pressboard/contexts/editorial/outlet-service/domain/errors"
	"pressboard/contexts/editorial/outlet-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu      sync.RWMutex
	outlets map[string]ports.Outlet
	now     func() time.Time
}

func NewStore(seed []ports.Outlet) *Store {
	outlets := make(map[string]ports.Outlet, len(seed))
	for _, item := range seed {
		outlets[item.OutletID] = item
	}
	return &Store{
		outlets: outlets,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) CreateOutlet(_ context.Context, outlet ports.Outlet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.outlets[outlet.OutletID]; exists {
		return domainerrors.ErrInvalidOutletInput
	}
	s.outlets[outlet.OutletID] = outlet
	return nil
}

func (s *Store) UpdateOutlet(_ context.Context, outlet ports.Outlet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.outlets[outlet.OutletID]; !exists {
		return domainerrors.ErrOutletNotFound
	}
	s.outlets[outlet.OutletID] = outlet
	return nil
}

func (s *Store) GetOutlet(_ context.Context, outletID string) (ports.Outlet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.outlets[strings.TrimSpace(outletID)]
	if !exists {
		return ports.Outlet{}, domainerrors.ErrOutletNotFound
	}
	return item, nil
}

func (s *Store) ListOutlets(_ context.Context, filter ports.OutletFilter) ([]ports.Outlet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Outlet, 0, len(s.outlets))
	for _, outlet := range s.outlets {
		if filter.Category != "" && outlet.Category != filter.Category {
			continue
		}
		if filter.Language != "" && outlet.Language != filter.Language {
			continue
		}
		if filter.Search != "" && !matchesSearch(outlet, filter.Search) {
			continue
		}
		items = append(items, outlet)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})
	return items, nil
}

func (s *Store) DeleteOutlet(_ context.Context, outletID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(outletID)
	if _, exists := s.outlets[key]; !exists {
		return domainerrors.ErrOutletNotFound
	}
	delete(s.outlets, key)
	return nil
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func matchesSearch(outlet ports.Outlet, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(outlet.Name), needle) ||
		strings.Contains(strings.ToLower(outlet.Description), needle)
}
