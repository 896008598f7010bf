package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap("arithmetic_fault", "current salary must be non-zero", cause)

	require.True(t, IsCode(err, "arithmetic_fault"))
	require.False(t, IsCode(err, "invalid_input"))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "current salary must be non-zero: boom", err.Error())
}

func TestCodeOfThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap("invalid_input", "bad", nil))
	require.Equal(t, "invalid_input", CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.Equal(t, "", CodeOf(nil))
}
