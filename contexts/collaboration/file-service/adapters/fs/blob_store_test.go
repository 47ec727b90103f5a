package fsadapter

import (
	"bytes"
	"context"
	"errors"
	"testing"

	domainerrors "pressboard/contexts/collaboration/file-service/domain/errors"
)

func TestBlobStoreRoundTrip(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}
	ctx := context.Background()

	if err := store.Save(ctx, "abc.pdf", []byte("content")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := store.Read(ctx, "abc.pdf")
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(got, []byte("content")) {
		t.Fatalf("round trip mismatch: %q", got)
	}

	if err := store.Delete(ctx, "abc.pdf"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Read(ctx, "abc.pdf"); !errors.Is(err, domainerrors.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
	// Deleting again is a no-op.
	if err := store.Delete(ctx, "abc.pdf"); err != nil {
		t.Fatalf("second delete failed: %v", err)
	}
}

func TestBlobStoreRejectsPathEscape(t *testing.T) {
	store, err := NewBlobStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store failed: %v", err)
	}

	if err := store.Save(context.Background(), "../escape.txt", []byte("x")); !errors.Is(err, domainerrors.ErrInvalidFileInput) {
		t.Fatalf("expected ErrInvalidFileInput, got %v", err)
	}
}
