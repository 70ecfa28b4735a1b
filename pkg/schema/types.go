package schema

import (
	"fmt"
	"reflect"
	"time"
)

// Type defines the contract for field validation.
// Implementations determine how values are validated against a type.
type Type interface {
	// Name returns the human-readable name of the type (e.g., "string", "int").
	Name() string
	// Validate checks if a value conforms to this type.
	Validate(value any) error
}

// --- Built-in Type Implementations ---

// StringType validates string values.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Validate(value any) error {
	_, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	return nil
}

// IntType validates integer values.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Validate(value any) error {
	switch v := value.(type) {
	case int, int8, int16, int32, int64:
		return nil
	case float64:
		// Accept floats that are whole numbers (from JSON unmarshaling)
		if v == float64(int64(v)) {
			return nil
		}
		return fmt.Errorf("expected int, got float (not a whole number)")
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
}

// IntRangeType validates integers within [Min, Max].
type IntRangeType struct {
	min, max int64
}

func (t *IntRangeType) Name() string { return fmt.Sprintf("int[%d..%d]", t.min, t.max) }

func (t *IntRangeType) Validate(value any) error {
	if err := (&IntType{}).Validate(value); err != nil {
		return err
	}
	n := reflect.ValueOf(value)
	var v int64
	switch n.Kind() {
	case reflect.Float64:
		v = int64(n.Float())
	default:
		v = n.Int()
	}
	if v < t.min || v > t.max {
		return fmt.Errorf("expected int in [%d, %d], got %d", t.min, t.max, v)
	}
	return nil
}

// PositiveNumberType validates strictly positive numbers.
type PositiveNumberType struct{}

func (t *PositiveNumberType) Name() string { return "number>0" }

func (t *PositiveNumberType) Validate(value any) error {
	var v float64
	switch n := value.(type) {
	case float32:
		v = float64(n)
	case float64:
		v = n
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
	if v <= 0 {
		return fmt.Errorf("expected strictly positive number, got %v", v)
	}
	return nil
}

// EnumType validates membership in a fixed string set.
type EnumType struct {
	name   string
	values []string
}

func (t *EnumType) Name() string { return t.name }

func (t *EnumType) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		// Allow domain enum types whose underlying kind is string.
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.String {
			return fmt.Errorf("expected %s string, got %T", t.name, value)
		}
		s = rv.String()
	}
	for _, v := range t.values {
		if s == v {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (want one of %v)", t.name, s, t.values)
}

// DateTimeType validates ISO-8601 datetimes, accepting time.Time values or
// RFC 3339 strings (the JSON wire form).
type DateTimeType struct{}

func (t *DateTimeType) Name() string { return "datetime" }

func (t *DateTimeType) Validate(value any) error {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return fmt.Errorf("datetime must not be zero")
		}
		return nil
	case string:
		if _, err := time.Parse(time.RFC3339, v); err != nil {
			return fmt.Errorf("expected RFC 3339 datetime: %v", err)
		}
		return nil
	default:
		return fmt.Errorf("expected datetime, got %T", value)
	}
}

// SliceType validates slices of a specific element type, optionally bounded.
type SliceType struct {
	elemType Type
	min, max int // max == 0 means unbounded
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Validate(value any) error {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return fmt.Errorf("expected slice, got %T", value)
	}

	if rv.Len() < t.min {
		return fmt.Errorf("expected at least %d elements, got %d", t.min, rv.Len())
	}
	if t.max > 0 && rv.Len() > t.max {
		return fmt.Errorf("expected at most %d elements, got %d", t.max, rv.Len())
	}

	// Validate each element
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if err := t.elemType.Validate(elem); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// CustomType applies a user-defined validation function.
type CustomType struct {
	name     string
	validate func(any) error
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Validate(value any) error {
	return t.validate(value)
}

// --- Factory Functions ---

// String creates a string type validator.
func String() Type { return &StringType{} }

// Int creates an integer type validator.
func Int() Type { return &IntType{} }

// IntRange creates an integer validator bounded to [min, max].
func IntRange(min, max int64) Type { return &IntRangeType{min: min, max: max} }

// PositiveNumber creates a strictly-positive number validator.
func PositiveNumber() Type { return &PositiveNumberType{} }

// Enum creates a fixed string-set validator.
func Enum(name string, values ...string) Type {
	return &EnumType{name: name, values: values}
}

// DateTime creates an ISO-8601 datetime validator.
func DateTime() Type { return &DateTimeType{} }

// Slice creates a slice type validator for elements of the given type.
func Slice(elemType Type) Type {
	return &SliceType{elemType: elemType}
}

// BoundedSlice creates a slice validator with a length range.
func BoundedSlice(elemType Type, min, max int) Type {
	return &SliceType{elemType: elemType, min: min, max: max}
}

// Custom creates a custom type validator with a user-defined function.
func Custom(name string, validate func(any) error) Type {
	return &CustomType{name: name, validate: validate}
}
