// Package upload manages the scratch directory that holds uploaded images for
// the lifetime of a single request.
package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultMediaType = "application/octet-stream"

// Upload is one spooled file. It is owned by the request that created it.
type Upload struct {
	Path      string
	MediaType string
	Size      int64
}

type Store struct {
	dir    string
	logger *zap.SugaredLogger
}

func NewStore(dir string, logger *zap.SugaredLogger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save copies r into a new uniquely named file. A partially written file is
// removed before the error is returned.
func (s *Store) Save(r io.Reader, mediaType string) (*Upload, error) {
	if mediaType == "" {
		mediaType = defaultMediaType
	}

	path := filepath.Join(s.dir, uuid.NewString())
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("create upload: %w", err)
	}

	n, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write upload: %w", err)
	}

	return &Upload{Path: path, MediaType: mediaType, Size: n}, nil
}

func (s *Store) Read(u *Upload) ([]byte, error) {
	data, err := os.ReadFile(u.Path)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}

// Remove deletes the upload. Removing an already missing file is not an error.
func (s *Store) Remove(u *Upload) error {
	if err := os.Remove(u.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Sweep deletes regular files in the scratch directory whose modification time
// is older than ttl and returns how many were removed.
func (s *Store) Sweep(ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read upload dir: %w", err)
	}

	deadline := time.Now().Add(-ttl)
	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			s.logger.Warnw("Failed to stat upload during sweep", "name", e.Name(), "error", err)
			continue
		}
		if !fi.ModTime().Before(deadline) {
			continue
		}
		full := filepath.Join(s.dir, e.Name())
		if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
			s.logger.Warnw("Failed to remove stale upload", "path", full, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
