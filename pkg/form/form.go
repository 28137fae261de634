// Package form prepares user input for the record store: it normalizes text,
// checks ranges and coerces update values to the field types.
package form

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"github.com/xiaomi388/empmanag/pkg/types"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrUnknownField = errors.New("unknown field")

// Input limits, matching the original entry form.
const (
	MinAge    = 18
	MaxAge    = 65
	MinSalary = 12000
	MaxSalary = 250000
)

// EditableFields are the fields a user may pick when updating a record.
var EditableFields = []string{types.FieldName, types.FieldAge, types.FieldDepartment, types.FieldPosition, types.FieldSalary}

type Employee struct {
	Name       string  `validate:"required"`
	Age        int     `validate:"gte=18,lte=65"`
	Department string  `validate:"required"`
	Position   string  `validate:"required"`
	Salary     float64 `validate:"gte=12000,lte=250000"`
}

var validate = validator.New()

var (
	upper = cases.Upper(language.Und)
	lower = cases.Lower(language.Und)
)

// Capitalize upper-cases the first letter of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper.String(s[:size]) + lower.String(s[size:])
}

// Normalize trims every text field, capitalizes the name and upper-cases the
// department and position.
func (e Employee) Normalize() Employee {
	e.Name = Capitalize(strings.TrimSpace(e.Name))
	e.Department = upper.String(strings.TrimSpace(e.Department))
	e.Position = upper.String(strings.TrimSpace(e.Position))
	return e
}

func (e Employee) Validate() error {
	if err := validate.Struct(e); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, describe(fe))
			}
			return fmt.Errorf("invalid employee: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid employee: %w", err)
	}

	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// Prepare normalizes e and validates the result.
func Prepare(e Employee) (Employee, error) {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func IsEditable(field string) bool {
	for _, f := range EditableFields {
		if f == field {
			return true
		}
	}
	return false
}

// CoerceUpdate turns the raw text typed for field into the value stored on
// the record: an int for age, a float for salary, the text itself otherwise.
func CoerceUpdate(field, raw string) (any, error) {
	if !IsEditable(field) {
		return nil, fmt.Errorf("%w: %q, choose one of %s", ErrUnknownField, field, strings.Join(EditableFields, ", "))
	}

	raw = strings.TrimSpace(raw)
	switch field {
	case types.FieldAge:
		v, err := types.ToInt(raw)
		if err != nil {
			return nil, fmt.Errorf("age must be an integer: %w", err)
		}
		return v, nil
	case types.FieldSalary:
		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("salary must be a number: %w", err)
		}
		return v, nil
	default:
		return raw, nil
	}
}
