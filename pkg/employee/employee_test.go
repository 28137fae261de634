package employee

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xiaomi388/empmanag/pkg/config"
	"github.com/xiaomi388/empmanag/pkg/form"
	"github.com/xiaomi388/empmanag/pkg/types"
)

func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "emp_manag_sys.json")

	origConfig, origPath := config.ConfigPath, config.PathOverride
	config.ConfigPath = filepath.Join(dir, "config.yaml")
	config.PathOverride = dataPath
	t.Cleanup(func() {
		config.ConfigPath, config.PathOverride = origConfig, origPath
	})

	return dataPath
}

func readRecords(t *testing.T, path string) []types.Record {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read records: %v", err)
	}
	var records []types.Record
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("failed to unmarshal records: %v", err)
	}
	return records
}

func alice() form.Employee {
	return form.Employee{Name: "alice", Age: 30, Department: "eng", Position: "dev", Salary: 50000}
}

func TestAddNormalizesAndSaves(t *testing.T) {
	dataPath := setupWorkspace(t)

	var out bytes.Buffer
	if err := Add(&out, alice()); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !strings.Contains(out.String(), "Employee added successfully!") {
		t.Fatalf("unexpected output %q", out.String())
	}

	records := readRecords(t, dataPath)
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.ID != 1 || r.Name != "Alice" || r.Department != "ENG" || r.Position != "DEV" {
		t.Fatalf("unexpected record %+v", r)
	}
}

func TestAddRejectsInvalidInput(t *testing.T) {
	dataPath := setupWorkspace(t)

	e := alice()
	e.Age = 12
	if err := Add(&bytes.Buffer{}, e); err == nil {
		t.Fatalf("expected validation error")
	}
	if _, err := os.Stat(dataPath); !os.IsNotExist(err) {
		t.Fatalf("record file should not be written on invalid input")
	}
}

func TestUpdateAndDelete(t *testing.T) {
	dataPath := setupWorkspace(t)

	for i := 0; i < 2; i++ {
		if err := Add(&bytes.Buffer{}, alice()); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	var out bytes.Buffer
	if err := Update(&out, 2, "salary", "60000"); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !strings.Contains(out.String(), "Employee updated successfully!") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if records := readRecords(t, dataPath); records[1].Salary != 60000 || records[0].Salary != 50000 {
		t.Fatalf("unexpected records after update: %+v", records)
	}

	if err := Update(&bytes.Buffer{}, 7, "salary", "60000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := Update(&bytes.Buffer{}, 1, "email", "x"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}

	out.Reset()
	if err := Delete(&out, 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !strings.Contains(out.String(), "Employee with ID 1 deleted successfully!") {
		t.Fatalf("unexpected output %q", out.String())
	}
	if records := readRecords(t, dataPath); len(records) != 1 || records[0].ID != 2 {
		t.Fatalf("unexpected records after delete: %+v", records)
	}

	if err := Delete(&bytes.Buffer{}, 42); err != nil {
		t.Fatalf("Delete of unknown id: %v", err)
	}
}

func TestList(t *testing.T) {
	setupWorkspace(t)

	if err := Add(&bytes.Buffer{}, alice()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	var out bytes.Buffer
	if err := List(&out); err != nil {
		t.Fatalf("List: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 || strings.Join(strings.Fields(lines[1]), " ") != "1 Alice 30 ENG DEV 50000" {
		t.Fatalf("unexpected table %q", out.String())
	}
}
