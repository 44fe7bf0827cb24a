// Package storage provides last-write-wins persistence for calculator state.
// Each key holds one JSON document; saving a key replaces it.
// Supports two backends: file and memory.
package storage

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "kingshot-calc/internal/errors"
)

// Backend is a storage backend type
type Backend string

const (
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// Store is the storage interface
type Store interface {
	// Save replaces the value stored under key
	Save(ctx context.Context, key string, value interface{}) error

	// Load decodes the value under key into dest. found is false when
	// nothing is stored.
	Load(ctx context.Context, key string, dest interface{}) (found bool, err error)

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error

	// ClearAll removes the given keys
	ClearAll(ctx context.Context, keys ...string) error

	// Keys lists stored keys in sorted order
	Keys(ctx context.Context) ([]string, error)

	// Close closes the store
	Close() error
}

// Entry is the stored envelope around a value
type Entry struct {
	Key     string          `json:"key"`
	SavedAt time.Time       `json:"saved_at"`
	Value   json.RawMessage `json:"value"`
}

var keyRules = validator.New()

// checkKey rejects keys that cannot be used as file names
func checkKey(key string) error {
	if err := keyRules.Var(key, `required,max=128,excludesall=/\`); err != nil {
		return apperrors.Storage("invalid key "+`"`+key+`"`, err)
	}
	return nil
}

func encode(key string, value interface{}, now time.Time) (*Entry, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, apperrors.Storage("failed to marshal "+key, err)
	}
	return &Entry{Key: key, SavedAt: now, Value: raw}, nil
}

func decode(e *Entry, dest interface{}) error {
	if err := json.Unmarshal(e.Value, dest); err != nil {
		return apperrors.Storage("failed to unmarshal "+e.Key, err)
	}
	return nil
}

// StoreFactory creates stores by backend type
func StoreFactory(backend Backend, config map[string]string) (Store, error) {
	switch backend {
	case BackendFile:
		path := config["path"]
		if path == "" {
			path = ".kscalc"
		}
		return NewFileStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, apperrors.Newf(apperrors.TypeConfig, "unsupported backend: %s", backend)
	}
}

// Ensure interfaces are implemented
var _ io.Closer = (*FileStore)(nil)
var _ io.Closer = (*MemoryStore)(nil)
