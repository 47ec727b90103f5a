package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "pressboard/contexts/identity/user-service/domain/errors"
	"pressboard/contexts/identity/user-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu    sync.RWMutex
	users map[string]ports.User
	now   func() time.Time
}

func NewStore(seed []ports.User) *Store {
	users := make(map[string]ports.User, len(seed))
	for _, item := range seed {
		users[item.UserID] = item
	}
	return &Store{
		users: users,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) CreateUser(_ context.Context, user ports.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; exists {
		return domainerrors.ErrInvalidUserInput
	}
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken
		}
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) UpdateUser(_ context.Context, user ports.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; !exists {
		return domainerrors.ErrUserNotFound
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.users[strings.TrimSpace(userID)]
	if !exists {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return item, nil
}

func (s *Store) ListUsers(_ context.Context, search string) ([]ports.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.User, 0, len(s.users))
	for _, user := range s.users {
		if search != "" && !matchesSearch(user, search) {
			continue
		}
		items = append(items, user)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].LastName != items[j].LastName {
			return items[i].LastName < items[j].LastName
		}
		return items[i].FirstName < items[j].FirstName
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func matchesSearch(user ports.User, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(user.FirstName), needle) ||
		strings.Contains(strings.ToLower(user.LastName), needle) ||
		strings.Contains(strings.ToLower(user.Email), needle)
}
