package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntRangeType(t *testing.T) {
	day := IntRange(1, 3)

	assert.NoError(t, day.Validate(1))
	assert.NoError(t, day.Validate(3))
	assert.NoError(t, day.Validate(float64(2)), "JSON numbers arrive as float64")

	assert.Error(t, day.Validate(0))
	assert.Error(t, day.Validate(4))
	assert.Error(t, day.Validate(2.5))
	assert.Error(t, day.Validate("2"))
	assert.Equal(t, "int[1..3]", day.Name())
}

func TestPositiveNumberType(t *testing.T) {
	n := PositiveNumber()

	assert.NoError(t, n.Validate(0.5))
	assert.NoError(t, n.Validate(3))
	assert.Error(t, n.Validate(0))
	assert.Error(t, n.Validate(-1.0))
	assert.Error(t, n.Validate("1"))
}

func TestEnumType(t *testing.T) {
	e := Enum("Severity", "none", "mild", "moderate", "severe")

	assert.NoError(t, e.Validate("mild"))
	assert.Error(t, e.Validate("catastrophic"))
	assert.Error(t, e.Validate(42))

	type severity string
	assert.NoError(t, e.Validate(severity("severe")), "named string types pass through")
}

func TestDateTimeType(t *testing.T) {
	dt := DateTime()

	assert.NoError(t, dt.Validate(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)))
	assert.NoError(t, dt.Validate("2026-03-02T08:00:00Z"))
	assert.Error(t, dt.Validate(time.Time{}))
	assert.Error(t, dt.Validate("02/03/2026"))
	assert.Error(t, dt.Validate(1234567890))
}

func TestBoundedSliceType(t *testing.T) {
	doses := BoundedSlice(IntRange(1, 3), 1, 3)

	assert.NoError(t, doses.Validate([]int{1, 2}))
	assert.Error(t, doses.Validate([]int{}), "below minimum length")
	assert.Error(t, doses.Validate([]int{1, 2, 3, 3}), "above maximum length")

	err := doses.Validate([]int{1, 9})
	assert.ErrorContains(t, err, "element 1")
}

func TestCustomType(t *testing.T) {
	nonEmpty := Custom("nonEmpty", func(v any) error {
		s, ok := v.(string)
		if !ok || s == "" {
			return assert.AnError
		}
		return nil
	})

	assert.NoError(t, nonEmpty.Validate("1 tsp"))
	assert.Error(t, nonEmpty.Validate(""))
	assert.Equal(t, "nonEmpty", nonEmpty.Name())
}
