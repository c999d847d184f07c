package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "bad value", ErrInvalidInput)
	assert.Equal(t, "CONFIG_ERROR: bad value: invalid input", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)

	bare := NewAppError("CONFIG_ERROR", "bad value", nil)
	assert.Equal(t, "CONFIG_ERROR: bad value", bare.Error())
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))

	wrapped := WrapError(ErrNotFound, "loading gt.json")
	assert.ErrorIs(t, wrapped, ErrNotFound)
	assert.Contains(t, wrapped.Error(), "loading gt.json")
}

func TestIsSchemaError(t *testing.T) {
	assert.True(t, IsSchemaError(SchemaError("not an object", nil)))
	assert.True(t, IsSchemaError(SchemaErrorf("got %T", []any{})))
	assert.False(t, IsSchemaError(NewAppError("CONFIG_ERROR", "nope", nil)))
	assert.False(t, IsSchemaError(errors.New("plain")))
	assert.False(t, IsSchemaError(nil))
}

// TestIsSchemaError_Wrapped verifies detection survives fmt.Errorf wrapping,
// which the document loader applies to add the file path.
func TestIsSchemaError_Wrapped(t *testing.T) {
	err := fmt.Errorf("gt.json: %w", SchemaError("not an object", nil))
	assert.True(t, IsSchemaError(err))
}
