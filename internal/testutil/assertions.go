package testutil

import (
	"errors"
	"testing"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/stretchr/testify/require"
)

// RequireCode asserts that err carries a structured error with the given
// code and returns it for further assertions.
func RequireCode(t *testing.T, err error, code gmerr.Code) *gmerr.Error {
	t.Helper()

	require.Error(t, err, "expected an error with code %s", code)
	var gerr *gmerr.Error
	require.True(t, errors.As(err, &gerr), "expected *gmerr.Error, got %T: %v", err, err)
	require.True(t, errors.Is(err, &gmerr.Error{Code: code}), "expected code %s in chain, got %v", code, err)
	return gerr
}
