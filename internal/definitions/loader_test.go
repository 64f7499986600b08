package definitions

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/testutil"
	"github.com/specialistvlad/gmc/internal/vartype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		"tasks.hcl": `
			task "Carry" {
			  id              = "AT2"
			  sort            = "transport"
			  variable_robots = true
			}

			task "Pick up" {
			  id   = "AT1"
			  sort = "manipulation"
			}
		`,
		"sorts/sorts.hcl": `
			sort "transport" {
			  cardinality = "[2,6]"
			}

			sort "manipulation" {
			  cardinality = "[1]"
			}
		`,
	})

	types := vartype.NewRegistry()
	set, err := NewLoader(types).Load(t.Context(), root)
	require.NoError(t, err)

	require.Len(t, set.Tasks, 2)
	carry, ok := FindTask(set.Tasks, "Carry", "")
	require.True(t, ok)
	assert.Equal(t, AbstractTask{Name: "Carry", ID: "AT2", Sort: "transport", VariableRobots: true}, carry)

	byID, ok := FindTask(set.Tasks, "Unknown name", "AT1")
	require.True(t, ok)
	assert.Equal(t, "Pick up", byID.Name)
	assert.False(t, byID.VariableRobots)

	transport, ok := FindSort(set.Sorts, "transport")
	require.True(t, ok)
	assert.Equal(t, model.RobotRange(2, 6), transport.Cardinality)

	manip, ok := FindSort(set.Sorts, "manipulation")
	require.True(t, ok)
	assert.True(t, manip.Cardinality.Fixed)

	assert.Equal(t, []string{"manipulation", "transport"}, types.Names())
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
		wantIs  error
	}{
		{
			name:    "bad cardinality",
			files:   map[string]string{"a.hcl": `sort "s" { cardinality = "[6,2]" }`},
			wantIs:  gmerr.ErrInvalidRange,
			wantErr: `sort "s"`,
		},
		{
			name:    "missing sort attribute",
			files:   map[string]string{"a.hcl": `task "t" { id = "AT1" }`},
			wantErr: "failed to decode",
		},
		{
			name:    "syntax error",
			files:   map[string]string{"a.hcl": `task "t" {`},
			wantErr: "failed to parse",
		},
		{
			name: "duplicate task",
			files: map[string]string{
				"a.hcl": `task "t" { sort = "s" }`,
				"b.hcl": `task "t" { sort = "s" }`,
			},
			wantErr: "already defined",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteFiles(t, tc.files)
			_, err := NewLoader(nil).Load(t.Context(), root)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			if tc.wantIs != nil {
				assert.True(t, errors.Is(err, tc.wantIs))
			}
		})
	}
}

func TestLoader_MissingPath(t *testing.T) {
	_, err := NewLoader(nil).Load(t.Context(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}
