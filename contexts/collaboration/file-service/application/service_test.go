package application

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"pressboard/contexts/collaboration/file-service/adapters/memory"
	domainerrors "pressboard/contexts/collaboration/file-service/domain/errors"
)

func newService(maxSize int64) Service {
	store := memory.NewStore()
	return Service{Repo: store, Blobs: store, Clock: store, IDGen: store, MaxUploadSize: maxSize}
}

func TestUploadAndDownloadRoundTrip(t *testing.T) {
	service := newService(0)
	ctx := context.Background()
	content := []byte("press release draft")

	record, err := service.UploadFile(ctx, "task-1", "draft.docx", content)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if record.Filename != "draft.docx" || record.Size != int64(len(content)) {
		t.Fatalf("bad record: %+v", record)
	}
	if !strings.HasSuffix(record.StoredName, ".docx") || record.StoredName == "draft.docx" {
		t.Fatalf("stored name must be generated with original extension: %q", record.StoredName)
	}

	got, data, err := service.DownloadFile(ctx, record.FileID)
	if err != nil {
		t.Fatalf("download failed: %v", err)
	}
	if got.FileID != record.FileID || !bytes.Equal(data, content) {
		t.Fatalf("round trip mismatch")
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	service := newService(8)

	_, err := service.UploadFile(context.Background(), "task-1", "big.pdf", []byte("123456789"))
	if !errors.Is(err, domainerrors.ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestUploadStripsDirectoryFromFilename(t *testing.T) {
	service := newService(0)

	record, err := service.UploadFile(context.Background(), "task-1", "../../etc/passwd", []byte("x"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if record.Filename != "passwd" {
		t.Fatalf("directory not stripped: %q", record.Filename)
	}
}

func TestListFilesNewestFirst(t *testing.T) {
	service := newService(0)
	ctx := context.Background()

	first, _ := service.UploadFile(ctx, "task-1", "a.txt", []byte("a"))
	second, _ := service.UploadFile(ctx, "task-1", "b.txt", []byte("b"))
	_, _ = service.UploadFile(ctx, "task-2", "c.txt", []byte("c"))

	items, err := service.ListFiles(ctx, "task-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 files, got %d", len(items))
	}
	// Equal timestamps can keep either order; both must belong to the task.
	seen := map[string]bool{items[0].FileID: true, items[1].FileID: true}
	if !seen[first.FileID] || !seen[second.FileID] {
		t.Fatalf("wrong files: %+v", items)
	}
}

func TestDeleteFileRemovesBlobAndRecord(t *testing.T) {
	service := newService(0)
	ctx := context.Background()

	record, _ := service.UploadFile(ctx, "task-1", "a.txt", []byte("a"))
	if err := service.DeleteFile(ctx, record.FileID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, _, err := service.DownloadFile(ctx, record.FileID); !errors.Is(err, domainerrors.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}
