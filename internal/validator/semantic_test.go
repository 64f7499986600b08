package validator

import (
	"testing"

	"github.com/specialistvlad/gmc/internal/definitions"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemantic(t *testing.T) {
	carry := definitions.AbstractTask{Name: "Carry", ID: "AT2", Sort: "transport", VariableRobots: true}

	testCases := []struct {
		name  string
		tasks []definitions.AbstractTask
		sorts []definitions.SortDefinition
		code  gmerr.Code
		rule  string
	}{
		{
			name:  "compatible range",
			tasks: []definitions.AbstractTask{carry},
			sorts: []definitions.SortDefinition{{Name: "transport", Cardinality: model.RobotRange(2, 6)}},
		},
		{
			name: "matched by short id",
			tasks: []definitions.AbstractTask{
				{Name: "Haul", ID: "AT2", Sort: "transport", VariableRobots: true},
			},
			sorts: []definitions.SortDefinition{{Name: "transport", Cardinality: model.RobotRange(1, 4)}},
		},
		{
			name:  "sort only supports a fixed count",
			tasks: []definitions.AbstractTask{carry},
			sorts: []definitions.SortDefinition{{Name: "transport", Cardinality: model.ExactRobots(3)}},
			code:  gmerr.ErrCodeUndefinedRobotRange,
			rule:  "sort-cardinality",
		},
		{
			name:  "sort range too narrow",
			tasks: []definitions.AbstractTask{carry},
			sorts: []definitions.SortDefinition{{Name: "transport", Cardinality: model.RobotRange(3, 6)}},
			code:  gmerr.ErrCodeUndefinedRobotRange,
			rule:  "sort-cardinality",
		},
		{
			name: "task has fixed robots",
			tasks: []definitions.AbstractTask{
				{Name: "Carry", ID: "AT2", Sort: "transport"},
			},
			sorts: []definitions.SortDefinition{{Name: "transport", Cardinality: model.RobotRange(2, 6)}},
			code:  gmerr.ErrCodeUndefinedRobotRange,
			rule:  "variable-robots",
		},
		{
			name:  "unknown task",
			tasks: []definitions.AbstractTask{{Name: "Other", ID: "AT9", Sort: "transport"}},
			code:  gmerr.ErrCodeUnknownTask,
		},
		{
			name:  "unknown sort",
			tasks: []definitions.AbstractTask{carry},
			code:  gmerr.ErrCodeUnknownSort,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := buildGraph(t, testutil.MissionTree())
			err := Semantic(t.Context(), g, tc.tasks, tc.sorts)
			if tc.code == "" {
				require.NoError(t, err)
				return
			}
			gerr := testutil.RequireCode(t, err, tc.code)
			assert.Equal(t, "AT2", gerr.Subject)
			if tc.rule != "" {
				assert.Equal(t, tc.rule, gerr.Rule)
			}
		})
	}
}

func TestSemantic_FixedCountsAreNotChecked(t *testing.T) {
	tree := testutil.NewTree().
		Goal("n0", "G1: Root").
		Task("n1", "AT1: Lift", "[3]").
		Refine("n1", "n0")

	assert.NoError(t, Semantic(t.Context(), buildGraph(t, tree), nil, nil))
}
