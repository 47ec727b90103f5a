package fsadapter

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	domainerrors "pressboard/contexts/collaboration/file-service/domain/errors"
)

// BlobStore stores attachment bytes as flat files under a root
// directory. Stored names are generated server side, so a name that
// tries to escape the root is rejected outright.
type BlobStore struct {
	root string
}

func NewBlobStore(root string) (*BlobStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("blob store root required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &BlobStore{root: root}, nil
}

func (b *BlobStore) Save(_ context.Context, storedName string, content []byte) error {
	path, err := b.resolve(storedName)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

func (b *BlobStore) Read(_ context.Context, storedName string) ([]byte, error) {
	path, err := b.resolve(storedName)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domainerrors.ErrFileNotFound
		}
		return nil, err
	}
	return content, nil
}

func (b *BlobStore) Delete(_ context.Context, storedName string) error {
	path, err := b.resolve(storedName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (b *BlobStore) resolve(storedName string) (string, error) {
	name := strings.TrimSpace(storedName)
	if name == "" || name != filepath.Base(name) {
		return "", domainerrors.ErrInvalidFileInput
	}
	return filepath.Join(b.root, name), nil
}
