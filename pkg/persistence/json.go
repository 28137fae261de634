package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/empmanag/pkg/types"
)

// DumpRecords writes records to path as indented JSON, replacing whatever the
// file held before. The write is not atomic.
func DumpRecords(path string, records []types.Record) error {
	if records == nil {
		records = []types.Record{}
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadRecords reads the record file at path. A missing file or one that does
// not parse as a JSON array of records yields an empty slice and no error.
func LoadRecords(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logrus.WithField("path", path).Debug("record file does not exist, starting empty")
		return []types.Record{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	records := []types.Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		logrus.WithError(err).WithField("path", path).Warn("record file is corrupt, starting empty")
		return []types.Record{}, nil
	}
	if records == nil {
		records = []types.Record{}
	}

	return records, nil
}
