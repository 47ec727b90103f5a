package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "pressboard/contexts/editorial/client-service/domain/errors"
	"pressboard/contexts/editorial/client-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu      sync.RWMutex
	clients map[string]ports.Client
	now     func() time.Time
}

func NewStore(seed []ports.Client) *Store {
	clients := make(map[string]ports.Client, len(seed))
	for _, item := range seed {
		clients[item.ClientID] = item
	}
	return &Store{
		clients: clients,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) CreateClient(_ context.Context, client ports.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.ClientID]; exists {
		return domainerrors.ErrInvalidClientInput
	}
	s.clients[client.ClientID] = client
	return nil
}

func (s *Store) UpdateClient(_ context.Context, client ports.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.clients[client.ClientID]; !exists {
		return domainerrors.ErrClientNotFound
	}
	s.clients[client.ClientID] = client
	return nil
}

func (s *Store) GetClient(_ context.Context, clientID string) (ports.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.clients[strings.TrimSpace(clientID)]
	if !exists {
		return ports.Client{}, domainerrors.ErrClientNotFound
	}
	return item, nil
}

func (s *Store) ListClients(_ context.Context, search string) ([]ports.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Client, 0, len(s.clients))
	for _, client := range s.clients {
		if search != "" && !matchesSearch(client, search) {
			continue
		}
		items = append(items, client)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].LastName != items[j].LastName {
			return items[i].LastName < items[j].LastName
		}
		return items[i].FirstName < items[j].FirstName
	})
	return items, nil
}

func (s *Store) DeleteClient(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(clientID)
	if _, exists := s.clients[key]; !exists {
		return domainerrors.ErrClientNotFound
	}
	delete(s.clients, key)
	return nil
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func matchesSearch(client ports.Client, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(client.FirstName), needle) ||
		strings.Contains(strings.ToLower(client.LastName), needle) ||
		strings.Contains(strings.ToLower(client.Company), needle)
}
