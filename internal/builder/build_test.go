package builder

import (
	"math/rand"
	"testing"

	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/registry"
	"github.com/specialistvlad/gmc/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MissionTree(t *testing.T) {
	ctx, logs := testutil.LogContext()
	b := New(registry.NewDefault())

	g, err := b.Build(ctx, testutil.MissionTree().Tree())
	require.NoError(t, err)

	names := make([]string, g.Len())
	for i := range names {
		names[i] = g.Name(i)
	}
	assert.Equal(t, []string{"G1", "G2", "G3", "AT1", "AT2"}, names)

	assert.Equal(t, []int{0}, g.Roots())
	assert.Equal(t, []int{1, 2}, g.Children(0))
	assert.Equal(t, []int{3}, g.Children(1))
	assert.Equal(t, []int{4}, g.Children(2))
	assert.Equal(t, 2, g.Parent(4))

	type arc struct {
		id       string
		from, to int
	}
	var arcs []arc
	for _, e := range g.Edges() {
		arcs = append(arcs, arc{e.ID, e.From, e.To})
	}
	assert.Equal(t, []arc{
		{"l1", 0, 1},
		{"l3", 0, 2},
		{"l4", 1, 2},
		{"l2", 1, 3},
		{"l0", 2, 4},
	}, arcs)

	root := g.Vertex(0)
	cond, ok := root.Prop(model.PropAchieveCondition)
	require.True(t, ok)
	assert.True(t, cond.(model.AchieveCondition).IsQuantified())

	carry := g.Vertex(4)
	require.NotNil(t, carry.RobotCount)
	assert.Equal(t, model.RobotRange(2, 4), *carry.RobotCount)

	assert.Contains(t, logs.String(), "build_id=")
	assert.Contains(t, logs.String(), "Graph construction successful")
}

func TestBuild_OrderIndependent(t *testing.T) {
	b := New(registry.NewDefault())
	base, err := b.Build(t.Context(), testutil.MissionTree().Tree())
	require.NoError(t, err)
	want, err := model.Fingerprint(base)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		tree := testutil.MissionTree().Tree()
		rng.Shuffle(len(tree.Nodes), func(a, b int) { tree.Nodes[a], tree.Nodes[b] = tree.Nodes[b], tree.Nodes[a] })
		rng.Shuffle(len(tree.Links), func(a, b int) { tree.Links[a], tree.Links[b] = tree.Links[b], tree.Links[a] })

		g, err := b.Build(t.Context(), tree)
		require.NoError(t, err)
		got, err := model.Fingerprint(g)
		require.NoError(t, err)
		assert.Equal(t, want, got, "shuffle %d", i)
	}
}

func TestBuild_RejectsEquivalentNamesInAnyOrder(t *testing.T) {
	tb := testutil.NewTree().
		Goal("n0", "G0: Root").
		Goal("n1", "G1: A").
		Goal("n2", "G01: B").
		Refine("n1", "n0").
		Refine("n2", "n0")
	forward, backward := tb.Tree(), tb.Tree()
	backward.Nodes[1], backward.Nodes[2] = backward.Nodes[2], backward.Nodes[1]

	for _, tree := range []*config.Tree{forward, backward} {
		_, err := New(registry.NewDefault()).Build(t.Context(), tree)
		gerr := testutil.RequireCode(t, err, gmerr.ErrCodeDuplicateID)
		assert.Equal(t, "unique-name", gerr.Rule)
	}
}

func TestBuild_ParallelMatchesSequential(t *testing.T) {
	seq, err := New(registry.NewDefault()).Build(t.Context(), testutil.MissionTree().Tree())
	require.NoError(t, err)
	par, err := New(registry.NewDefault(), WithWorkers(4)).Build(t.Context(), testutil.MissionTree().Tree())
	require.NoError(t, err)

	assert.Equal(t, model.Canonicalize(seq), model.Canonicalize(par))
}

func TestBuild_NilTree(t *testing.T) {
	_, err := New(registry.NewDefault()).Build(t.Context(), nil)
	assert.Error(t, err)
}

func TestBuild_RecordFieldsOverrideAnnotations(t *testing.T) {
	tree := testutil.NewTree().
		Goal("n0", "G1: Root").
		Task("n1", "AT1: Work", "[3]", testutil.P("RobotNumber", "[1,2]"), testutil.P("Group", "true")).
		Refine("n1", "n0").
		Tree()
	no := false
	deadline := 12.5
	tree.Nodes[1].Group = &no
	tree.Nodes[1].Deadline = &deadline

	g, err := New(registry.NewDefault()).Build(t.Context(), tree)
	require.NoError(t, err)

	v := g.Vertex(1)
	assert.Equal(t, model.ExactRobots(3), *v.RobotCount)
	assert.False(t, v.Group)
	assert.True(t, v.Divisible)
	assert.Equal(t, 12.5, v.Deadline)
}

func TestBuild_EmptyTree(t *testing.T) {
	g, err := New(registry.NewDefault()).Build(t.Context(), &config.Tree{})
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}
