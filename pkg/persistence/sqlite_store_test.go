package persistence

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/xiaomi388/empmanag/pkg/types"
)

func newTestRecords() []types.Record {
	return []types.Record{
		{ID: 1, Name: "Alice", Age: 30, Department: "ENG", Position: "DEV", Salary: 50000},
		{ID: 3, Name: "Carol", Age: 45, Department: "OPS", Position: "LEAD", Salary: 92000.5,
			Extra: map[string]any{"email": "carol@example.com"}},
		{ID: 1, Name: "Dave", Age: 22, Department: "ENG", Position: "INTERN", Salary: 12000},
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	records := newTestRecords()

	if err := store.DumpRecords(records); err != nil {
		t.Fatalf("DumpRecords: %v", err)
	}

	loaded, err := store.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}

	expected, _ := json.Marshal(records)
	actual, _ := json.Marshal(loaded)

	if string(expected) != string(actual) {
		t.Errorf("round-trip mismatch.\nExpected: %s\nActual:   %s", string(expected), string(actual))
	}
}

func TestSQLiteStoreEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	loaded, err := store.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}

	if len(loaded) != 0 {
		t.Errorf("expected empty, got %d records", len(loaded))
	}
}

func TestSQLiteStoreOverwrite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	defer store.Close()

	if err := store.DumpRecords(newTestRecords()); err != nil {
		t.Fatalf("DumpRecords (first): %v", err)
	}

	records2 := []types.Record{
		{ID: 1, Name: "Bob", Age: 33, Department: "HR", Position: "MANAGER", Salary: 70000},
	}
	if err := store.DumpRecords(records2); err != nil {
		t.Fatalf("DumpRecords (second): %v", err)
	}

	loaded, err := store.LoadRecords()
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}

	if len(loaded) != 1 || loaded[0].Name != "Bob" {
		t.Errorf("expected single record 'Bob', got %+v", loaded)
	}
}
