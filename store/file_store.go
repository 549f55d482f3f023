package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	models "cart-manager/model"
)

// FileStore keeps the cart in a single file using the format in codec.go.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Close() error { return nil }

// Save writes to a temporary file next to the target and renames it into
// place, so the previous snapshot survives a failed write.
func (s *FileStore) Save(items []models.Item) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	// no-op once the rename has happened
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(Encode(items)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

func (s *FileStore) Load() ([]models.Item, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %w", ErrNoSnapshot, err)
	}
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
