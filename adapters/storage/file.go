package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "kingshot-calc/internal/errors"
	"kingshot-calc/internal/logging"
)

const fileExt = ".json"

// FileStore keeps one JSON file per key
type FileStore struct {
	basePath string
	mu       sync.RWMutex
	now      func() time.Time
	log      *zap.Logger
}

// NewFileStore creates a file store
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, apperrors.Storage("failed to create storage directory", err)
	}
	return &FileStore{
		basePath: basePath,
		now:      time.Now,
		log:      logging.Named("storage").With(zap.String("path", basePath)),
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.basePath, key+fileExt)
}

// Save writes to a temporary file and renames it over the old one
func (s *FileStore) Save(ctx context.Context, key string, value interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}
	entry, err := encode(key, value, s.now())
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return apperrors.Storage("failed to marshal "+key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.basePath, "."+key+"-*")
	if err != nil {
		return apperrors.Storage("failed to create temp file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return apperrors.Storage("failed to write "+key, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Storage("failed to write "+key, err)
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return apperrors.Storage("failed to replace "+key, err)
	}
	s.log.Debug("saved", zap.String("key", key))
	return nil
}

// Load reads key into dest
func (s *FileStore) Load(ctx context.Context, key string, dest interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := checkKey(key); err != nil {
		return false, err
	}

	s.mu.RLock()
	data, err := os.ReadFile(s.path(key))
	s.mu.RUnlock()
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Storage("failed to read "+key, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return false, apperrors.Storage("corrupt entry "+key, err)
	}
	return true, decode(&entry, dest)
}

// Remove deletes key
func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return apperrors.Storage("failed to remove "+key, err)
	}
	return nil
}

// ClearAll removes every given key
func (s *FileStore) ClearAll(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		if err := s.Remove(ctx, key); err != nil {
			return err
		}
	}
	s.log.Info("cleared", zap.Int("keys", len(keys)))
	return nil
}

// Keys lists stored keys
func (s *FileStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.basePath)
	if err != nil {
		return nil, apperrors.Storage("failed to read storage", err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != fileExt {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) Close() error {
	return nil
}
