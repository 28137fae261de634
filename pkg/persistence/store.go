package persistence

import (
	"fmt"
	"path/filepath"

	"github.com/xiaomi388/empmanag/pkg/types"
)

// Store abstracts record persistence. DumpRecords replaces everything the
// backend held before.
type Store interface {
	LoadRecords() ([]types.Record, error)
	DumpRecords(records []types.Record) error
	Close() error
	// Path is the file the backend reads and writes.
	Path() string
}

// NewStoreWithBackend creates a Store for the given backend and optional path.
func NewStoreWithBackend(backend, path string) (Store, error) {
	return NewStore(types.StorageConfig{Backend: backend, Path: path})
}

// Resolve fills in the default backend and the backend's default path.
func Resolve(cfg types.StorageConfig) (types.StorageConfig, error) {
	if cfg.Backend == "" {
		cfg.Backend = BackendJSON
	}

	switch cfg.Backend {
	case BackendJSON:
		if cfg.Path == "" {
			cfg.Path = DefaultRecordPath
		}
	case BackendSQLite:
		if cfg.Path == "" {
			cfg.Path = DefaultSQLitePath
		}
	default:
		return cfg, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}

	return cfg, nil
}

// SameLocation reports whether a and b resolve to the same backend file.
func SameLocation(a, b types.StorageConfig) (bool, error) {
	ra, err := Resolve(a)
	if err != nil {
		return false, err
	}
	rb, err := Resolve(b)
	if err != nil {
		return false, err
	}

	pa, err := filepath.Abs(ra.Path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", ra.Path, err)
	}
	pb, err := filepath.Abs(rb.Path)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", rb.Path, err)
	}

	return pa == pb, nil
}

// NewStore creates a Store based on the storage configuration.
func NewStore(cfg types.StorageConfig) (Store, error) {
	cfg, err := Resolve(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Backend == BackendSQLite {
		return NewSQLiteStore(cfg.Path)
	}
	return NewJSONStore(cfg.Path), nil
}
