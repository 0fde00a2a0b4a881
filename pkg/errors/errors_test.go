package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError("workers", 32, "exceeds 8 available cores")
	assert.Contains(t, err.Error(), "workers=32")
	assert.Contains(t, err.Error(), "exceeds 8 available cores")
	assert.True(t, Is(err, ErrInvalidInput))
	assert.False(t, Is(err, ErrUnknownTable))
}

func TestConfigurationError_NoParameter(t *testing.T) {
	err := &ConfigurationError{Message: "no files found"}
	assert.Equal(t, "configuration error: no files found", err.Error())
}

func TestClassificationError(t *testing.T) {
	err := NewClassificationError("ABBY.mystery_2min.2020-01.20200201T000000Z.csv", "mystery_2min")
	assert.Contains(t, err.Error(), `"mystery_2min"`)
	assert.True(t, Is(err, ErrUnknownTable))

	var ce *ClassificationError
	require.True(t, As(err, &ce))
	assert.Equal(t, "mystery_2min", ce.Table)
}

func TestMergeError_Unwrap(t *testing.T) {
	cause := New("column count mismatch")
	err := NewMergeError("temp_2min", "ABBY.temp_2min.2020-01.20200201T000000Z.csv", cause)
	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "temp_2min")
	assert.Contains(t, err.Error(), "ABBY.temp_2min")
}

func TestMergeError_NoFile(t *testing.T) {
	err := NewMergeError("temp_2min", "", New("boom"))
	assert.Equal(t, "merge failed for table temp_2min: boom", err.Error())
}

func TestWrapIO(t *testing.T) {
	assert.NoError(t, WrapIO("write", "/tmp/out.csv", nil))

	cause := fmt.Errorf("permission denied")
	err := WrapIO("write", "/tmp/out.csv", cause)
	require.Error(t, err)
	assert.True(t, Is(err, cause))
	assert.Contains(t, err.Error(), "failed to write /tmp/out.csv")
}
