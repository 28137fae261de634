package persistence

import "github.com/xiaomi388/empmanag/pkg/types"

// JSONStore implements Store using a single JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) LoadRecords() ([]types.Record, error) {
	return LoadRecords(s.path)
}

func (s *JSONStore) DumpRecords(records []types.Record) error {
	return DumpRecords(s.path, records)
}

func (s *JSONStore) Close() error {
	return nil
}
