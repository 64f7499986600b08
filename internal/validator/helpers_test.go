package validator

import (
	"testing"

	"github.com/specialistvlad/gmc/internal/builder"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/registry"
	"github.com/specialistvlad/gmc/internal/testutil"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, tb *testutil.TreeBuilder) *model.Graph {
	t.Helper()
	g, err := builder.New(registry.NewDefault()).Build(t.Context(), tb.Tree())
	require.NoError(t, err)
	return g
}

// vtx creates a vertex named name with explicit hierarchy indices. Tasks
// get a single robot.
func vtx(name string, kind model.Kind, parent int, children ...int) model.Vertex {
	v := model.NewVertex("id-"+name, name, name+": text", kind)
	v.Parent = parent
	v.Children = children
	if kind == model.KindTask {
		rc := model.ExactRobots(1)
		v.RobotCount = &rc
	}
	return v
}

func withProp(v model.Vertex, key string, p model.Property) model.Vertex {
	v.Props[key] = p
	return v
}

func withRobots(v model.Vertex, rc *model.RobotCount) model.Vertex {
	v.RobotCount = rc
	return v
}
