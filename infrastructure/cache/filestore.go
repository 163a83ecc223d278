package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arizon-automation/sales-dashboard/pkg/log"
)

// FileStore keeps one file per cache key under a directory. Entry age
// is taken from the file's modification time.
type FileStore struct {
	dir string
	ttl time.Duration
}

func NewFileStore(dir string, ttl time.Duration) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &FileStore{dir: dir, ttl: ttl}, nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool) {
	path := s.path(key)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}

	if time.Since(info.ModTime()) > s.ttl {
		return nil, false
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("cache read failed, treating as miss")
		return nil, false
	}

	return payload, true
}

// Set writes to a temporary file and renames it into place so readers
// never observe a partial entry.
func (s *FileStore) Set(_ context.Context, key string, payload []byte) {
	tmp, err := os.CreateTemp(s.dir, "entry-*.tmp")
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("cache write failed")
		return
	}

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		log.L.WithError(err).WithField("key", key).Warn("cache write failed")
		return
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		log.L.WithError(err).WithField("key", key).Warn("cache write failed")
		return
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		log.L.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

func (s *FileStore) Clear(_ context.Context) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("reading cache directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !clearable(entry.Name()) {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("removing cache entry: %w", err)
		}
	}

	return nil
}

// clearable matches cache entries and temp files stranded by a failed
// rename. Anything else in the directory is left alone.
func clearable(name string) bool {
	if filepath.Ext(name) == ".json" {
		return true
	}
	stray, _ := filepath.Match("entry-*.tmp", name)
	return stray
}

// path hashes the key so arbitrary key contents map to a safe filename.
func (s *FileStore) path(key string) string {
	sum := sha256.Sum256([]byte(key))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}
