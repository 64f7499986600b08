package gmexpr

import (
	"errors"
	"testing"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSyntax checks that err is a syntax error raised by parser.
func assertSyntax(t *testing.T, err error, parser string) {
	t.Helper()
	var gerr *gmerr.Error
	require.True(t, errors.As(err, &gerr), "expected *gmerr.Error, got %T", err)
	assert.Equal(t, gmerr.KindSyntax, gerr.Kind)
	assert.Equal(t, parser, gerr.Parser)
}
