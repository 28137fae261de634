// Package recordstore holds the in-memory employee records and hands them to a
// persistence backend on Save.
package recordstore

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/empmanag/pkg/persistence"
	"github.com/xiaomi388/empmanag/pkg/types"
)

// IDScheme decides which id a newly added record gets.
type IDScheme string

const (
	// IDSchemePositional assigns len(records)+1. After a deletion this can
	// hand out an id that another record still carries.
	IDSchemePositional = IDScheme("positional")
	// IDSchemeMonotonic assigns max(id)+1.
	IDSchemeMonotonic = IDScheme("monotonic")
)

func ParseIDScheme(s string) (IDScheme, error) {
	switch IDScheme(s) {
	case "", IDSchemePositional:
		return IDSchemePositional, nil
	case IDSchemeMonotonic:
		return IDSchemeMonotonic, nil
	default:
		return "", fmt.Errorf("unknown id scheme: %s", s)
	}
}

type Option func(*Store)

func WithIDScheme(scheme IDScheme) Option {
	return func(s *Store) {
		s.scheme = scheme
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// Store owns the ordered sequence of records. It is not safe for concurrent use.
type Store struct {
	backend persistence.Store
	records []types.Record
	scheme  IDScheme
	log     logrus.FieldLogger
}

// New loads the records from backend and returns a store owning them.
func New(backend persistence.Store, opts ...Option) (*Store, error) {
	s := &Store{
		backend: backend,
		scheme:  IDSchemePositional,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := backend.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}
	if records == nil {
		records = []types.Record{}
	}
	s.records = records

	s.log.WithField("count", len(records)).Debug("loaded records")
	return s, nil
}

// NextID returns the id the next Add will assign.
func (s *Store) NextID() int {
	if s.scheme == IDSchemeMonotonic {
		highest := 0
		for _, r := range s.records {
			if r.ID > highest {
				highest = r.ID
			}
		}
		return highest + 1
	}

	return len(s.records) + 1
}

// Add appends a new record. Inputs are not validated and it always succeeds.
func (s *Store) Add(name string, age int, department, position string, salary float64) (types.Record, bool) {
	r := types.Record{
		ID:         s.NextID(),
		Name:       name,
		Age:        age,
		Department: department,
		Position:   position,
		Salary:     salary,
	}
	s.records = append(s.records, r)

	s.log.WithField("id", r.ID).Debug("added record")
	return r.Clone(), true
}

// List returns the records in insertion order.
func (s *Store) List() []types.Record {
	out := make([]types.Record, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.Clone())
	}

	return out
}

// Len returns the number of records held.
func (s *Store) Len() int {
	return len(s.records)
}

// Update sets field on the first record with the given id. It reports false
// when no record matches. Field names outside types.Fields become extra
// attributes of the record.
func (s *Store) Update(id int, field string, value any) (bool, error) {
	for i := range s.records {
		if s.records[i].ID != id {
			continue
		}

		r := s.records[i].Clone()
		if err := r.Set(field, value); err != nil {
			return false, err
		}
		s.records[i] = r

		entry := s.log.WithFields(logrus.Fields{"id": id, "field": field})
		if !types.IsKnownField(field) {
			entry.Warn("updated unknown field, stored as extra attribute")
		} else {
			entry.Debug("updated record")
		}
		return true, nil
	}

	s.log.WithField("id", id).Debug("update found no record")
	return false, nil
}

// Delete removes every record with the given id. It reports true even when
// nothing matched.
func (s *Store) Delete(id int) bool {
	var removed int
	s.records, removed = types.FilterOutRecords(s.records, id)

	s.log.WithFields(logrus.Fields{"id": id, "removed": removed}).Debug("deleted records")
	return true
}

// Save writes the full sequence to the backend, replacing its prior contents.
func (s *Store) Save() error {
	if err := s.backend.DumpRecords(s.records); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}

	s.log.WithField("count", len(s.records)).Debug("saved records")
	return nil
}

func (s *Store) Close() error {
	return s.backend.Close()
}
