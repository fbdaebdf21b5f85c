// Package cache holds the byte stores behind the LLM replay cache.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// FileStore keeps one JSON file per key under Dir.
type FileStore struct {
	Dir string

	// StrictPerms enforces 0700 on the directory and 0600 on files.
	StrictPerms bool
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir, StrictPerms: true}
}

// KeyFrom digests the given parts into a stable hex key.
func KeyFrom(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte("\n\n"))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (s *FileStore) ensureDir() error {
	if s == nil || s.Dir == "" {
		return errors.New("cache dir not configured")
	}
	perm := os.FileMode(0o755)
	if s.StrictPerms {
		perm = 0o700
	}
	return os.MkdirAll(s.Dir, perm)
}

func (s *FileStore) pathFor(key string) string {
	return filepath.Join(s.Dir, key+".json")
}

// Get returns the cached bytes for key. A missing entry is not an error.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := s.ensureDir(); err != nil {
		return nil, false, err
	}
	p := s.pathFor(key)
	b, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	// mtime doubles as last-access time for Prune.
	now := time.Now()
	_ = os.Chtimes(p, now, now)
	return b, true, nil
}

// Save writes data under key, replacing any previous entry.
func (s *FileStore) Save(_ context.Context, key string, data []byte) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	mode := os.FileMode(0o644)
	if s.StrictPerms {
		mode = 0o600
	}
	tmp := s.pathFor(key) + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	return os.Rename(tmp, s.pathFor(key))
}

// Prune removes entries not accessed within maxAge and returns how many
// files were deleted.
func (s *FileStore) Prune(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.Dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
