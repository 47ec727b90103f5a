package application

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	domainerrors "pressboard/contexts/collaboration/file-service/domain/errors"
	"pressboard/contexts/collaboration/file-service/ports"
)

const defaultMaxUploadSize = 10 * 1024 * 1024

type Service struct {
	Repo          ports.Repository
	Blobs         ports.BlobStore
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
	MaxUploadSize int64
}

func (s Service) UploadFile(ctx context.Context, taskID, filename string, content []byte) (ports.FileRecord, error) {
	taskID = strings.TrimSpace(taskID)
	filename = strings.TrimSpace(filename)
	if taskID == "" || filename == "" || len(content) == 0 {
		return ports.FileRecord{}, domainerrors.ErrInvalidFileInput
	}
	if int64(len(content)) > s.maxUploadSize() {
		return ports.FileRecord{}, domainerrors.ErrFileTooLarge
	}

	fileID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.FileRecord{}, err
	}
	storedName := fileID + filepath.Ext(filename)
	if err := s.Blobs.Save(ctx, storedName, content); err != nil {
		return ports.FileRecord{}, err
	}

	record := ports.FileRecord{
		FileID:     fileID,
		TaskID:     taskID,
		Filename:   filepath.Base(filename),
		StoredName: storedName,
		Size:       int64(len(content)),
		UploadedAt: s.now(),
	}
	if err := s.Repo.CreateFile(ctx, record); err != nil {
		// Metadata write failed, drop the orphaned blob.
		if cleanupErr := s.Blobs.Delete(ctx, storedName); cleanupErr != nil {
			resolveLogger(s.Logger).Warn("orphaned blob left behind",
				"event", "file_blob_cleanup_failed",
				"module", "collaboration/file-service",
				"layer", "application",
				"stored_name", storedName,
				"error", cleanupErr.Error(),
			)
		}
		return ports.FileRecord{}, err
	}

	resolveLogger(s.Logger).Info("file uploaded",
		"event", "file_uploaded",
		"module", "collaboration/file-service",
		"layer", "application",
		"task_id", taskID,
		"file_id", fileID,
		"size", record.Size,
	)
	return record, nil
}

func (s Service) ListFiles(ctx context.Context, taskID string) ([]ports.FileRecord, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, domainerrors.ErrInvalidFileInput
	}
	return s.Repo.ListFilesByTask(ctx, strings.TrimSpace(taskID))
}

func (s Service) DownloadFile(ctx context.Context, fileID string) (ports.FileRecord, []byte, error) {
	record, err := s.Repo.GetFile(ctx, strings.TrimSpace(fileID))
	if err != nil {
		return ports.FileRecord{}, nil, err
	}
	content, err := s.Blobs.Read(ctx, record.StoredName)
	if err != nil {
		return ports.FileRecord{}, nil, err
	}
	return record, content, nil
}

func (s Service) DeleteFile(ctx context.Context, fileID string) error {
	record, err := s.Repo.GetFile(ctx, strings.TrimSpace(fileID))
	if err != nil {
		return err
	}
	if err := s.Blobs.Delete(ctx, record.StoredName); err != nil {
		resolveLogger(s.Logger).Warn("blob delete failed",
			"event", "file_blob_delete_failed",
			"module", "collaboration/file-service",
			"layer", "application",
			"stored_name", record.StoredName,
			"error", err.Error(),
		)
	}
	return s.Repo.DeleteFile(ctx, record.FileID)
}

func (s Service) maxUploadSize() int64 {
	if s.MaxUploadSize <= 0 {
		return defaultMaxUploadSize
	}
	return s.MaxUploadSize
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
