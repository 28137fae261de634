package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// ErrInvalidValue is returned when a value can not be coerced to the type of a record field.
var ErrInvalidValue = errors.New("invalid value for field")

const (
	FieldID         = "id"
	FieldName       = "name"
	FieldAge        = "age"
	FieldDepartment = "department"
	FieldPosition   = "position"
	FieldSalary     = "salary"
)

// Fields lists the known record fields in table order.
var Fields = []string{FieldID, FieldName, FieldAge, FieldDepartment, FieldPosition, FieldSalary}

// Record is one employee's stored attributes plus its assigned id.
//
// Extra keeps attributes that are not one of the known fields. They are written
// flattened into the same JSON object as the known fields.
type Record struct {
	ID         int
	Name       string
	Age        int
	Department string
	Position   string
	Salary     float64
	Extra      map[string]any
}

type recordFields struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Age        int     `json:"age"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
}

func IsKnownField(field string) bool {
	for _, f := range Fields {
		if f == field {
			return true
		}
	}

	return false
}

// ToInt converts value to an int. Strings are parsed as base 10 and
// numbers with a fractional part are rejected.
func ToInt(value any) (int, error) {
	switch v := value.(type) {
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 0)
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return 0, fmt.Errorf("%v is not a whole number", v)
		}
	}

	return cast.ToIntE(value)
}

// Set assigns value to field, coercing it to the field's type. Unknown field
// names are stored in Extra unchanged.
func (r *Record) Set(field string, value any) error {
	switch field {
	case FieldID, FieldAge:
		v, err := ToInt(value)
		if err != nil {
			return fmt.Errorf("%w %s: %v", ErrInvalidValue, field, err)
		}
		if field == FieldID {
			r.ID = v
		} else {
			r.Age = v
		}
	case FieldSalary:
		v, err := cast.ToFloat64E(value)
		if err != nil {
			return fmt.Errorf("%w %s: %v", ErrInvalidValue, field, err)
		}
		r.Salary = v
	case FieldName, FieldDepartment, FieldPosition:
		v, err := cast.ToStringE(value)
		if err != nil {
			return fmt.Errorf("%w %s: %v", ErrInvalidValue, field, err)
		}
		switch field {
		case FieldName:
			r.Name = v
		case FieldDepartment:
			r.Department = v
		default:
			r.Position = v
		}
	default:
		if r.Extra == nil {
			r.Extra = map[string]any{}
		}
		r.Extra[field] = value
	}

	return nil
}

// Clone returns a copy of the record that shares nothing with r.
func (r Record) Clone() Record {
	if r.Extra == nil {
		return r
	}

	extra := make(map[string]any, len(r.Extra))
	for k, v := range r.Extra {
		extra[k] = v
	}
	r.Extra = extra
	return r
}

// ExtraKeys returns the keys of Extra in sorted order.
func (r Record) ExtraKeys() []string {
	keys := make([]string, 0, len(r.Extra))
	for k := range r.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r Record) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(recordFields{
		ID:         r.ID,
		Name:       r.Name,
		Age:        r.Age,
		Department: r.Department,
		Position:   r.Position,
		Salary:     r.Salary,
	})
	if err != nil {
		return nil, err
	}

	if len(r.Extra) == 0 {
		return base, nil
	}

	var buf bytes.Buffer
	buf.Write(base[:len(base)-1])
	for _, k := range r.ExtraKeys() {
		if IsKnownField(k) {
			continue
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Extra[k])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal attribute %q: %w", k, err)
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var rec Record
	for k, v := range raw {
		if !IsKnownField(k) {
			if rec.Extra == nil {
				rec.Extra = map[string]any{}
			}
			rec.Extra[k] = v
			continue
		}
		if v == nil {
			continue
		}
		if err := rec.Set(k, v); err != nil {
			return err
		}
	}

	*r = rec
	return nil
}

// GetRecord returns the first record with the given id.
func GetRecord(records []Record, id int) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}

	return Record{}, false
}

// FilterOutRecords returns records without any entry carrying the given id,
// along with how many were dropped.
func FilterOutRecords(records []Record, id int) ([]Record, int) {
	kept := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	return kept, len(records) - len(kept)
}
