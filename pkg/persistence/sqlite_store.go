package persistence

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/xiaomi388/empmanag/pkg/types"
)

// seq keeps insertion order; ids are not unique so they can not be the key.
const schema = `
CREATE TABLE IF NOT EXISTS records (
    seq        INTEGER PRIMARY KEY AUTOINCREMENT,
    id         INTEGER NOT NULL,
    name       TEXT NOT NULL DEFAULT '',
    age        INTEGER NOT NULL DEFAULT 0,
    department TEXT NOT NULL DEFAULT '',
    position   TEXT NOT NULL DEFAULT '',
    salary     REAL NOT NULL DEFAULT 0,
    extra      TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_records_id ON records(id);
`

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) LoadRecords() ([]types.Record, error) {
	rows, err := s.db.Query("SELECT id, name, age, department, position, salary, extra FROM records ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := []types.Record{}
	for rows.Next() {
		var (
			r     types.Record
			extra string
		)
		if err := rows.Scan(&r.ID, &r.Name, &r.Age, &r.Department, &r.Position, &r.Salary, &extra); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		if extra != "" {
			if err := json.Unmarshal([]byte(extra), &r.Extra); err != nil {
				return nil, fmt.Errorf("failed to unmarshal extra attributes of record %d: %w", r.ID, err)
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("record rows error: %w", err)
	}

	return records, nil
}

func (s *SQLiteStore) DumpRecords(records []types.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Reset the sequence too so seq restarts at 1 for the new contents.
	if _, err := tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = 'records'"); err != nil {
		return fmt.Errorf("failed to reset record sequence: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO records (id, name, age, department, position, salary, extra) VALUES (?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		extra := ""
		if len(r.Extra) > 0 {
			data, err := json.Marshal(r.Extra)
			if err != nil {
				return fmt.Errorf("failed to marshal extra attributes of record %d: %w", r.ID, err)
			}
			extra = string(data)
		}

		if _, err := stmt.Exec(r.ID, r.Name, r.Age, r.Department, r.Position, r.Salary, extra); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", r.ID, err)
		}
	}

	return tx.Commit()
}
