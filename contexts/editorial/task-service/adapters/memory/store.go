package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"pressboard/contexts/editorial/task-service/domain/entities"
	domainerrors "pressboard/contexts/editorial/task-service/domain/errors"
	"pressboard/contexts/editorial/task-service/ports"

	"github.com/google/uuid"
)

type undoEntry struct {
	snapshot  ports.UndoSnapshot
	expiresAt time.Time
}

type Store struct {
	mu sync.RWMutex

	tasks   map[string]entities.Task
	history []entities.StatusHistoryEntry
	undo    map[string]undoEntry

	now func() time.Time
}

func NewStore(seed []entities.Task) *Store {
	tasks := make(map[string]entities.Task, len(seed))
	for _, item := range seed {
		tasks[item.TaskID] = item
	}
	return &Store{
		tasks:   tasks,
		history: make([]entities.StatusHistoryEntry, 0),
		undo:    make(map[string]undoEntry),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// SetNow swaps the store clock. Tests use it to step through the undo window.
func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) CreateTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.TaskID]; exists {
		return domainerrors.ErrInvalidTaskInput
	}
	s.tasks[task.TaskID] = task
	return nil
}

func (s *Store) UpdateTask(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.TaskID]; !exists {
		return domainerrors.ErrTaskNotFound
	}
	s.tasks[task.TaskID] = task
	return nil
}

func (s *Store) GetTask(_ context.Context, taskID string) (entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.tasks[strings.TrimSpace(taskID)]
	if !exists {
		return entities.Task{}, domainerrors.ErrTaskNotFound
	}
	return item, nil
}

func (s *Store) ListTasks(_ context.Context, filter ports.TaskFilter) ([]entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		if filter.AuthorID != "" && task.AuthorID != filter.AuthorID {
			continue
		}
		if filter.EditorID != "" && task.EditorID != filter.EditorID {
			continue
		}
		if filter.ManagerID != "" && task.ManagerID != filter.ManagerID {
			continue
		}
		if filter.ClientID != "" && task.ClientID != filter.ClientID {
			continue
		}
		if filter.OutletID != "" && task.OutletID != filter.OutletID {
			continue
		}
		if filter.Search != "" && !matchesSearch(task, filter.Search) {
			continue
		}
		items = append(items, task)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].StatusChangedAt.Before(items[j].StatusChangedAt)
	})
	return items, nil
}

func (s *Store) DeleteTask(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(taskID)
	if _, exists := s.tasks[key]; !exists {
		return domainerrors.ErrTaskNotFound
	}
	delete(s.tasks, key)
	kept := s.history[:0]
	for _, entry := range s.history {
		if entry.TaskID != key {
			kept = append(kept, entry)
		}
	}
	s.history = kept
	return nil
}

func (s *Store) CommitStatusChange(_ context.Context, task entities.Task, entry entities.StatusHistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.TaskID]; !exists {
		return domainerrors.ErrTaskNotFound
	}
	s.tasks[task.TaskID] = task
	s.history = append(s.history, entry)
	return nil
}

func (s *Store) CommitUndo(_ context.Context, task entities.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[task.TaskID]; !exists {
		return domainerrors.ErrTaskNotFound
	}
	s.tasks[task.TaskID] = task

	newest := -1
	for i, entry := range s.history {
		if entry.TaskID != task.TaskID {
			continue
		}
		if newest < 0 || entry.CreatedAt.After(s.history[newest].CreatedAt) {
			newest = i
		}
	}
	if newest >= 0 {
		s.history = append(s.history[:newest], s.history[newest+1:]...)
	}
	return nil
}

func (s *Store) ListHistoryByTask(_ context.Context, taskID string) ([]entities.StatusHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.StatusHistoryEntry, 0)
	for _, entry := range s.history {
		if entry.TaskID == strings.TrimSpace(taskID) {
			items = append(items, entry)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) Put(_ context.Context, taskID string, snapshot ports.UndoSnapshot, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.undo[strings.TrimSpace(taskID)] = undoEntry{snapshot: snapshot, expiresAt: expiresAt}
	return nil
}

func (s *Store) GetAndConsume(_ context.Context, taskID string, now time.Time) (ports.UndoSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(taskID)
	entry, exists := s.undo[key]
	if !exists {
		return ports.UndoSnapshot{}, false, nil
	}
	delete(s.undo, key)
	if !now.Before(entry.expiresAt) {
		return ports.UndoSnapshot{}, false, nil
	}
	return entry.snapshot, true, nil
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func matchesSearch(task entities.Task, search string) bool {
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(task.Title), needle) ||
		strings.Contains(strings.ToLower(task.Description), needle)
}
