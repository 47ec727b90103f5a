package memory

import (
	"context"
	"sync"
	"time"

	"pressboard/contexts/editorial/analytics-service/ports"
)

type Store struct {
	mu    sync.RWMutex
	stats []ports.TaskStat
	now   func() time.Time
}

func NewStore(seed []ports.TaskStat) *Store {
	stats := make([]ports.TaskStat, len(seed))
	copy(stats, seed)
	return &Store{
		stats: stats,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) SetNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) ListStats(_ context.Context, filter ports.StatFilter) ([]ports.TaskStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.TaskStat, 0, len(s.stats))
	for _, stat := range s.stats {
		if filter.AuthorID != "" && stat.AuthorID != filter.AuthorID {
			continue
		}
		if filter.EditorID != "" && stat.EditorID != filter.EditorID {
			continue
		}
		if filter.ManagerID != "" && stat.ManagerID != filter.ManagerID {
			continue
		}
		if filter.ClientID != "" && stat.ClientID != filter.ClientID {
			continue
		}
		if filter.OutletID != "" && stat.OutletID != filter.OutletID {
			continue
		}
		items = append(items, stat)
	}
	return items, nil
}

func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}
