package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pressboard/contexts/collaboration/message-service/ports"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	messages []ports.Message
	now      func() time.Time
}

func NewStore(seed []ports.Message) *Store {
	messages := make([]ports.Message, len(seed))
	copy(messages, seed)
	return &Store{
		messages: messages,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) CreateMessage(_ context.Context, message ports.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, message)
	return nil
}

func (s *Store) ListMessagesByTask(_ context.Context, taskID string) ([]ports.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.Message, 0)
	for _, message := range s.messages {
		if message.TaskID == strings.TrimSpace(taskID) {
			items = append(items, message)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) MarkMessagesRead(_ context.Context, taskID, readerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, message := range s.messages {
		if message.TaskID == taskID && message.UserID != readerID {
			s.messages[i].IsRead = true
		}
	}
	return nil
}

func (s *Store) CountUnread(_ context.Context, taskID, readerID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, message := range s.messages {
		if message.TaskID == taskID && message.UserID != readerID && !message.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
