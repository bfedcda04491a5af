// Package storage holds uploaded documents for the duration of one
// request. Files are keyed by a fresh ULID, never by the client's
// filename alone: two concurrent uploads of "notes.pdf" must not be
// able to overwrite or delete each other.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"learntendo/internal/domain"
	"learntendo/internal/util"

	"go.uber.org/zap"
)

type LocalStore struct {
	dir    string
	logger *zap.Logger
}

var _ domain.UploadStore = (*LocalStore)(nil)

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string, logger *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalStore{dir: dir, logger: logger}, nil
}

// Save writes the content under a per-request-unique key and returns
// the stored path. The original extension is preserved because the
// extractor dispatches on it.
func (s *LocalStore) Save(filename string, content io.Reader) (string, error) {
	name := util.NewULID() + "_" + filepath.Base(filename)
	path := filepath.Join(s.dir, name)

	// O_EXCL: a key collision must fail loudly, not silently merge two
	// requests' bytes.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	s.logger.Debug("stored uploaded document", zap.String("path", path))
	return path, nil
}

// Remove deletes a stored file. Removing an already-deleted file is
// not an error; cleanup runs on every exit path and may race a crash
// recovery sweep.
func (s *LocalStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("failed to remove uploaded document", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}
