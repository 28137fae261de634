// Package employee implements the user-facing actions of the employee
// manager on top of the record store: each one opens the store from the
// config, runs, saves if it changed anything and reports the outcome.
package employee

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/xiaomi388/empmanag/pkg/config"
	"github.com/xiaomi388/empmanag/pkg/form"
	"github.com/xiaomi388/empmanag/pkg/persistence"
	"github.com/xiaomi388/empmanag/pkg/recordstore"
	"github.com/xiaomi388/empmanag/pkg/render"
	"github.com/xiaomi388/empmanag/pkg/types"
)

var ErrNotFound = errors.New("employee not found")

// Open loads the config and returns the record store it points at.
func Open() (*recordstore.Store, error) {
	cfg, err := config.Load(config.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logrus.SetLevel(cfg.Level())

	backend, err := persistence.NewStore(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	store, err := recordstore.New(backend, recordstore.WithIDScheme(cfg.IDScheme()))
	if err != nil {
		backend.Close()
		return nil, err
	}

	return store, nil
}

func withStore(fn func(s *recordstore.Store) (bool, error)) error {
	s, err := Open()
	if err != nil {
		return err
	}
	defer s.Close()

	changed, err := fn(s)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	if err := s.Save(); err != nil {
		return err
	}
	return nil
}

func Add(w io.Writer, e form.Employee) error {
	e, err := form.Prepare(e)
	if err != nil {
		return err
	}

	return withStore(func(s *recordstore.Store) (bool, error) {
		r, ok := s.Add(e.Name, e.Age, e.Department, e.Position, e.Salary)
		if !ok {
			return false, errors.New("failed to add employee")
		}
		logrus.WithField("id", r.ID).Info("employee added")
		fmt.Fprintln(w, "Employee added successfully!")
		return true, nil
	})
}

func List(w io.Writer) error {
	return withStore(func(s *recordstore.Store) (bool, error) {
		return false, render.Table(w, s.List())
	})
}

// Update sets field of the employee with the given id to the value typed in raw.
func Update(w io.Writer, id int, field, raw string) error {
	value, err := form.CoerceUpdate(field, raw)
	if err != nil {
		return err
	}

	return withStore(func(s *recordstore.Store) (bool, error) {
		ok, err := s.Update(id, field, value)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, ErrNotFound
		}
		fmt.Fprintln(w, "Employee updated successfully!")
		return true, nil
	})
}

// Delete removes the employee with the given id. Like the store it reports
// success for unknown ids, with a warning in the log.
func Delete(w io.Writer, id int) error {
	return withStore(func(s *recordstore.Store) (bool, error) {
		if _, ok := types.GetRecord(s.List(), id); !ok {
			logrus.WithField("id", id).Warn("no employee with this id")
		}
		if !s.Delete(id) {
			return false, ErrNotFound
		}
		fmt.Fprintf(w, "Employee with ID %d deleted successfully!\n", id)
		return true, nil
	})
}
