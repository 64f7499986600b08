package validator

import (
	"testing"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructural_MissionTree(t *testing.T) {
	ctx, logs := testutil.LogContext()
	g := buildGraph(t, testutil.MissionTree())
	before, err := model.Fingerprint(g)
	require.NoError(t, err)

	order, err := Structural(ctx, g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 4}, order)
	assert.Contains(t, logs.String(), "Structural validation passed")

	after, err := model.Fingerprint(g)
	require.NoError(t, err)
	assert.Equal(t, before, after, "validation must not mutate the graph")
}

func TestStructural_Violations(t *testing.T) {
	zero := model.RobotRange(0, 2)
	inverted := model.RobotRange(4, 2)

	testCases := []struct {
		name     string
		vertices []model.Vertex
		edges    []model.Edge
		code     gmerr.Code
		subject  string
		rule     string
	}{
		{
			name: "no root",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, 1, 1),
				vtx("G2", model.KindGoal, 0, 0),
			},
			code: gmerr.ErrCodeNoRoot,
		},
		{
			name: "multiple roots",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent),
				vtx("G2", model.KindGoal, model.NoParent),
			},
			code:    gmerr.ErrCodeMultipleRoots,
			subject: "G2",
			rule:    "unique-root",
		},
		{
			name: "orphan cycle",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				vtx("G2", model.KindGoal, 0),
				vtx("G3", model.KindGoal, 3, 3),
				vtx("G4", model.KindGoal, 2, 2),
			},
			code:    gmerr.ErrCodeOrphan,
			subject: "G3",
			rule:    "reachability",
		},
		{
			name: "dangling edge",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent),
			},
			edges:   []model.Edge{{ID: "l1", Kind: model.EdgeDependency, From: 0, To: 7}},
			code:    gmerr.ErrCodeDanglingEdge,
			subject: "l1",
		},
		{
			name: "multiple parents",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1, 2),
				vtx("G2", model.KindGoal, 0, 2),
				vtx("G3", model.KindGoal, 0),
			},
			code:    gmerr.ErrCodeMultipleParents,
			subject: "G3",
			rule:    "single-parent",
		},
		{
			name: "hierarchical edge disagrees with parent",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1, 2),
				vtx("G2", model.KindGoal, 0),
				vtx("G3", model.KindGoal, 0),
			},
			edges:   []model.Edge{{ID: "l1", Kind: model.EdgeAndRefinement, From: 1, To: 2}},
			code:    gmerr.ErrCodeMultipleParents,
			subject: "G3",
			rule:    "edge-parent",
		},
		{
			name: "malformed short id",
			vertices: []model.Vertex{
				vtx("Goal", model.KindGoal, model.NoParent),
			},
			code:    gmerr.ErrCodeMalformedID,
			subject: "id-Goal",
		},
		{
			name: "duplicate name",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				func() model.Vertex {
					v := vtx("G1", model.KindGoal, 0)
					v.ID = "other"
					return v
				}(),
			},
			code: gmerr.ErrCodeDuplicateID,
			rule: "unique-name",
		},
		{
			name: "same address spelled twice",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				vtx("G01", model.KindGoal, 0),
			},
			code:    gmerr.ErrCodeDuplicateID,
			subject: "G01",
			rule:    "unique-name",
		},
		{
			name: "decomposition with one child",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				vtx("D1", model.KindAnd, 0, 2),
				vtx("T1", model.KindTask, 1),
			},
			code:    gmerr.ErrCodeArity,
			subject: "D1",
			rule:    "decomposition-arity",
		},
		{
			name: "task with children",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				vtx("T1", model.KindTask, 0, 2),
				vtx("T2", model.KindTask, 1),
			},
			code:    gmerr.ErrCodeArity,
			subject: "T1",
			rule:    "task-leaf",
		},
		{
			name: "task without robot count",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				withRobots(vtx("T1", model.KindTask, 0), nil),
			},
			code:    gmerr.ErrCodeMissingRobotCount,
			subject: "T1",
		},
		{
			name: "zero robots",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				withRobots(vtx("T1", model.KindTask, 0), &zero),
			},
			code:    gmerr.ErrCodeRobotRange,
			subject: "T1",
		},
		{
			name: "inverted range",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				withRobots(vtx("T1", model.KindTask, 0), &inverted),
			},
			code:    gmerr.ErrCodeRobotRange,
			subject: "T1",
		},
		{
			name: "both conditions",
			vertices: []model.Vertex{
				withProp(withProp(vtx("G1", model.KindGoal, model.NoParent),
					model.PropAchieveCondition, model.NewFlatAchieve("done")),
					model.PropFailureCondition, model.FailureCondition{Condition: "lost"}),
			},
			code:    gmerr.ErrCodeCondition,
			subject: "G1",
			rule:    "single-condition",
		},
		{
			name: "achieve condition kept as raw text",
			vertices: []model.Vertex{
				vtx("G1", model.KindGoal, model.NoParent, 1),
				withProp(vtx("T1", model.KindTask, 0),
					model.PropAchieveCondition, model.RawText{Text: "done"}),
			},
			code:    gmerr.ErrCodeCondition,
			subject: "T1",
			rule:    "condition-discriminant",
		},
		{
			name: "achieve condition without form",
			vertices: []model.Vertex{
				withProp(vtx("G1", model.KindGoal, model.NoParent),
					model.PropAchieveCondition, model.AchieveCondition{}),
			},
			code: gmerr.ErrCodeCondition,
			rule: "condition-discriminant",
		},
		{
			name: "empty quantified body",
			vertices: []model.Vertex{
				withProp(vtx("G1", model.KindGoal, model.NoParent),
					model.PropAchieveCondition, model.NewQuantifiedAchieve("boxes", "b", " ")),
			},
			code: gmerr.ErrCodeCondition,
			rule: "condition-payload",
		},
		{
			name: "empty failure condition",
			vertices: []model.Vertex{
				withProp(vtx("G1", model.KindGoal, model.NoParent),
					model.PropFailureCondition, model.FailureCondition{}),
			},
			code: gmerr.ErrCodeCondition,
			rule: "condition-payload",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := model.New(tc.vertices, tc.edges)
			order, err := Structural(t.Context(), g)
			assert.Nil(t, order)

			gerr := testutil.RequireCode(t, err, tc.code)
			assert.Equal(t, gmerr.KindStructural, gerr.Kind)
			if tc.subject != "" {
				assert.Equal(t, tc.subject, gerr.Subject)
			}
			if tc.rule != "" {
				assert.Equal(t, tc.rule, gerr.Rule)
			}
		})
	}
}

func TestStructural_TaskAchieveConditionFromTree(t *testing.T) {
	tree := testutil.NewTree().
		Goal("n0", "G1: Root").
		Task("n1", "T1: Work", "[1]", testutil.P("AchieveCondition", "done")).
		Refine("n1", "n0")

	_, err := Structural(t.Context(), buildGraph(t, tree))
	gerr := testutil.RequireCode(t, err, gmerr.ErrCodeCondition)
	assert.Equal(t, "T1", gerr.Subject)
}

func TestStructural_OrDecomposition(t *testing.T) {
	tree := testutil.NewTree().
		Goal("n0", "G1: Root").
		Node("n1", testutil.OrType, "D1: choose").
		Task("n2", "T1: left", "[1]").
		Task("n3", "T2: right", "[2]").
		Refine("n1", "n0").
		OrRefine("n2", "n1").
		OrRefine("n3", "n1")

	order, err := Structural(t.Context(), buildGraph(t, tree))
	require.NoError(t, err)
	assert.Len(t, order, 4)
}
