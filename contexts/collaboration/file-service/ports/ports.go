package ports

import (
	"context"
	"time"
)

// FileRecord is attachment metadata. The bytes live in a BlobStore
// under StoredName, never under the client-supplied Filename.
type FileRecord struct {
	FileID     string
	TaskID     string
	Filename   string
	StoredName string
	Size       int64
	UploadedAt time.Time
}

type Repository interface {
	CreateFile(ctx context.Context, record FileRecord) error
	GetFile(ctx context.Context, fileID string) (FileRecord, error)
	ListFilesByTask(ctx context.Context, taskID string) ([]FileRecord, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// BlobStore persists raw attachment bytes keyed by stored name.
type BlobStore interface {
	Save(ctx context.Context, storedName string, content []byte) error
	Read(ctx context.Context, storedName string) ([]byte, error)
	Delete(ctx context.Context, storedName string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
