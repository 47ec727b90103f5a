package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	domainerrors "pressboard/contexts/collaboration/file-service/domain/errors"
	"pressboard/contexts/collaboration/file-service/ports"

	"github.com/google/uuid"
)

// Store keeps both metadata and blobs in memory, for tests and the
// in-memory bootstrap profile.
type Store struct {
	mu      sync.RWMutex
	records map[string]ports.FileRecord
	blobs   map[string][]byte
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]ports.FileRecord),
		blobs:   make(map[string][]byte),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) CreateFile(_ context.Context, record ports.FileRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records[record.FileID]; exists {
		return domainerrors.ErrInvalidFileInput
	}
	s.records[record.FileID] = record
	return nil
}

func (s *Store) GetFile(_ context.Context, fileID string) (ports.FileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.records[strings.TrimSpace(fileID)]
	if !exists {
		return ports.FileRecord{}, domainerrors.ErrFileNotFound
	}
	return item, nil
}

func (s *Store) ListFilesByTask(_ context.Context, taskID string) ([]ports.FileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.FileRecord, 0)
	for _, record := range s.records {
		if record.TaskID == strings.TrimSpace(taskID) {
			items = append(items, record)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].UploadedAt.After(items[j].UploadedAt)
	})
	return items, nil
}

func (s *Store) DeleteFile(_ context.Context, fileID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(fileID)
	if _, exists := s.records[key]; !exists {
		return domainerrors.ErrFileNotFound
	}
	delete(s.records, key)
	return nil
}

func (s *Store) Save(_ context.Context, storedName string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(content))
	copy(buf, content)
	s.blobs[storedName] = buf
	return nil
}

func (s *Store) Read(_ context.Context, storedName string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	content, exists := s.blobs[storedName]
	if !exists {
		return nil, domainerrors.ErrFileNotFound
	}
	return content, nil
}

func (s *Store) Delete(_ context.Context, storedName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, storedName)
	return nil
}

func (s *Store) Now() time.Time {
	return s.now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
