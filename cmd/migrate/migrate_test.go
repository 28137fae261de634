package migrate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/xiaomi388/empmanag/pkg/persistence"
	"github.com/xiaomi388/empmanag/pkg/types"
)

func TestRunJSONToSQLiteAndBack(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "emp.json")
	dbPath := filepath.Join(dir, "emp.db")
	backPath := filepath.Join(dir, "back.json")

	records := []types.Record{
		{ID: 1, Name: "Alice", Age: 30, Department: "ENG", Position: "DEV", Salary: 50000},
		{ID: 2, Name: "Bob", Age: 41, Department: "OPS", Position: "SRE", Salary: 61000.5,
			Extra: map[string]any{"email": "bob@example.com"}},
	}
	if err := persistence.DumpRecords(jsonPath, records); err != nil {
		t.Fatalf("DumpRecords: %v", err)
	}

	res, err := Run(persistence.BackendJSON, jsonPath, persistence.BackendSQLite, dbPath)
	if err != nil {
		t.Fatalf("Run json->sqlite: %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("expected 2 records migrated, got %d", res.Count)
	}
	if res.Source != jsonPath || res.Dest != dbPath {
		t.Fatalf("unexpected paths in result: %+v", res)
	}

	if _, err := Run(persistence.BackendSQLite, dbPath, persistence.BackendJSON, backPath); err != nil {
		t.Fatalf("Run sqlite->json: %v", err)
	}

	loaded, err := persistence.LoadRecords(backPath)
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	expected, _ := json.Marshal(records)
	actual, _ := json.Marshal(loaded)
	if string(expected) != string(actual) {
		t.Errorf("round-trip mismatch.\nExpected: %s\nActual:   %s", expected, actual)
	}
}

func TestRunRejectsSameStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emp.json")
	if _, err := Run(persistence.BackendJSON, path, persistence.BackendJSON, path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunRejectsSameStoreViaDefaultPath(t *testing.T) {
	dir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get wd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	records := []types.Record{{ID: 1, Name: "Alice"}}
	if err := persistence.DumpRecords(persistence.DefaultRecordPath, records); err != nil {
		t.Fatalf("DumpRecords: %v", err)
	}

	for _, dest := range []string{persistence.DefaultRecordPath, "emp_manag_sys.json", filepath.Join(dir, "emp_manag_sys.json")} {
		if _, err := Run(persistence.BackendJSON, "", persistence.BackendJSON, dest); err == nil {
			t.Fatalf("expected error for dest %q", dest)
		}
	}

	loaded, err := persistence.LoadRecords(persistence.DefaultRecordPath)
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("source file changed: %+v", loaded)
	}
}
