// Package validate checks the shape of decoded wire data (map[string]any)
// before it is turned into typed values.
//
// Getters accept both values built in Go (string, int, map[string]string, ...)
// and values produced by encoding/json (float64 numbers, []any, map[string]any),
// so a structure exported by this module and one decoded from JSON import the
// same way.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError describes a single failed check. It unwraps to ErrMissingField,
// ErrTypeMismatch or ErrInvalidValue.
type FieldError struct {
	Context  string // e.g. "Button", "Reply Button", "User"
	Field    string
	Expected string // only for type mismatches
	Got      string
	Err      error
}

func (e *FieldError) Error() string {
	prefix := "validate: "
	if e.Context != "" {
		prefix += e.Context + ": "
	}
	switch {
	case errors.Is(e.Err, ErrMissingField):
		return fmt.Sprintf("%smissing required field %q", prefix, e.Field)
	case errors.Is(e.Err, ErrInvalidValue):
		return fmt.Sprintf("%sfield %q must be one of %s, %q given", prefix, e.Field, e.Expected, e.Got)
	}
	return fmt.Sprintf("%sfield %q must be of type %s, %s given", prefix, e.Field, e.Expected, e.Got)
}

func (e *FieldError) Unwrap() error { return e.Err }

func missing(ctx, field string) error {
	return &FieldError{Context: ctx, Field: field, Err: ErrMissingField}
}

func mismatch(ctx, field, expected string, v any) error {
	return &FieldError{Context: ctx, Field: field, Expected: expected, Got: TypeName(v), Err: ErrTypeMismatch}
}

// TypeName returns a short, stable name for the dynamic type of v.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case float32, float64:
		return "float"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "int"
	case []any:
		return "array"
	case map[string]any, map[string]string:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Require fails with ErrMissingField when field is absent from data.
func Require(data map[string]any, field, ctx string) error {
	if _, ok := data[field]; !ok {
		return missing(ctx, field)
	}
	return nil
}

// RequiredString returns data[field] as a string.
func RequiredString(data map[string]any, field, ctx string) (string, error) {
	if err := Require(data, field, ctx); err != nil {
		return "", err
	}
	s, ok := data[field].(string)
	if !ok {
		return "", mismatch(ctx, field, "string", data[field])
	}
	return s, nil
}

// OptionalString returns data[field] as a string. Absent and null values
// report ok=false.
func OptionalString(data map[string]any, field, ctx string) (s string, ok bool, err error) {
	v, present := data[field]
	if !present || v == nil {
		return "", false, nil
	}
	s, ok = v.(string)
	if !ok {
		return "", false, mismatch(ctx, field, "string", v)
	}
	return s, true, nil
}

// Bool returns data[field] as a bool; absent or null reads as false.
func Bool(data map[string]any, field, ctx string) (bool, error) {
	v, present := data[field]
	if !present || v == nil {
		return false, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, mismatch(ctx, field, "bool", v)
	}
	return b, nil
}

// RequiredInt64 returns data[field] as an integer. JSON numbers (float64 or
// json.Number) are accepted when they hold an integral value.
func RequiredInt64(data map[string]any, field, ctx string) (int64, error) {
	if err := Require(data, field, ctx); err != nil {
		return 0, err
	}
	n, ok := toInt64(data[field])
	if !ok {
		return 0, mismatch(ctx, field, "int", data[field])
	}
	return n, nil
}

// OptionalInt64 is like RequiredInt64 but absent/null values report ok=false.
func OptionalInt64(data map[string]any, field, ctx string) (n int64, ok bool, err error) {
	v, present := data[field]
	if !present || v == nil {
		return 0, false, nil
	}
	n, ok = toInt64(v)
	if !ok {
		return 0, false, mismatch(ctx, field, "int", v)
	}
	return n, true, nil
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int64(x), true
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	default:
		return 0, false
	}
}

// Object returns data[field] as a nested object. map[string]string values are
// widened to map[string]any. Absent/null values report ok=false.
func Object(data map[string]any, field, ctx string) (m map[string]any, ok bool, err error) {
	v, present := data[field]
	if !present || v == nil {
		return nil, false, nil
	}
	m, ok = AsObject(v)
	if !ok {
		return nil, false, mismatch(ctx, field, "object", v)
	}
	return m, true, nil
}

// RequiredObject is like Object but fails when the field is absent.
func RequiredObject(data map[string]any, field, ctx string) (map[string]any, error) {
	if err := Require(data, field, ctx); err != nil {
		return nil, err
	}
	m, ok := AsObject(data[field])
	if !ok {
		return nil, mismatch(ctx, field, "object", data[field])
	}
	return m, nil
}

// AsObject converts v to map[string]any when it is an object.
func AsObject(v any) (map[string]any, bool) {
	switch x := v.(type) {
	case map[string]any:
		return x, true
	case map[string]string:
		m := make(map[string]any, len(x))
		for k, s := range x {
			m[k] = s
		}
		return m, true
	default:
		return nil, false
	}
}

// OneOf fails with ErrInvalidValue unless value is one of allowed.
func OneOf(value string, allowed []string, field, ctx string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return &FieldError{Context: ctx, Field: field, Expected: strings.Join(allowed, ", "), Got: value, Err: ErrInvalidValue}
}

// Rows coerces v into rows of objects. It accepts [][]map[string]any as well as
// the []any / []any / map[string]any nesting produced by encoding/json.
func Rows(v any, ctx string) ([][]map[string]any, error) {
	switch x := v.(type) {
	case [][]map[string]any:
		return x, nil
	case []any:
		rows := make([][]map[string]any, 0, len(x))
		for i, r := range x {
			cells, err := row(r, ctx, i)
			if err != nil {
				return nil, err
			}
			rows = append(rows, cells)
		}
		return rows, nil
	default:
		return nil, mismatch(ctx, "rows", "array", v)
	}
}

func row(v any, ctx string, i int) ([]map[string]any, error) {
	field := fmt.Sprintf("rows[%d]", i)
	switch x := v.(type) {
	case []map[string]any:
		return x, nil
	case []any:
		out := make([]map[string]any, 0, len(x))
		for j, b := range x {
			m, ok := AsObject(b)
			if !ok {
				return nil, mismatch(ctx, fmt.Sprintf("%s[%d]", field, j), "object", b)
			}
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, mismatch(ctx, field, "array", v)
	}
}
