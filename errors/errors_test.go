package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldError(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		fieldErr := NewFieldError()

		assert.True(t, fieldErr.Empty())
		assert.NoError(t, fieldErr.OrNil())
	})

	t.Run("SortedMessages", func(t *testing.T) {
		fieldErr := NewFieldError()
		fieldErr.Add("z", "%d outside [1, %d]", 0, 118)
		fieldErr.Add("name", "cannot be empty")

		err := fieldErr.OrNil()

		assert.EqualError(t, err, "name: cannot be empty; z: 0 outside [1, 118]")
	})

	t.Run("WrapsInvalid", func(t *testing.T) {
		fieldErr := NewFieldError()
		fieldErr.Add("density", "cannot be <= 0.0")

		err := fmt.Errorf("material %q: %w", "Detector", fieldErr)

		assert.True(t, Is(err, ErrInvalid))
		assert.False(t, Is(err, ErrNotFound))
	})
}
