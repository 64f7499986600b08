package gmexpr

import (
	"errors"
	"testing"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTopLevel(t *testing.T) {
	testCases := []struct {
		name      string
		text      string
		sep       string
		want      []string
		expectErr bool
	}{
		{name: "plain", text: "a, b ,c", sep: ",", want: []string{"a", "b", "c"}},
		{name: "nested call", text: "isAt(x,y), b", sep: ",", want: []string{"isAt(x,y)", "b"}},
		{name: "quoted separator", text: `"a,b", c`, sep: ",", want: []string{`"a,b"`, "c"}},
		{name: "multi-char separator", text: "a -> b", sep: "->", want: []string{"a", "b"}},
		{name: "no separator", text: "single", sep: ",", want: []string{"single"}},
		{name: "unclosed", text: "f(x, y", sep: ",", expectErr: true},
		{name: "unopened", text: "f)x(", sep: ",", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SplitTopLevel("test", tc.text, tc.sep)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, gmerr.ErrSyntax))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
