package testutil

import (
	"fmt"

	"github.com/specialistvlad/gmc/internal/config"
)

// Document tokens used by the fixtures.
const (
	GoalType       = "istar.Goal"
	TaskType       = "istar.Task"
	AndType        = "istar.AndDecomposition"
	OrType         = "istar.OrDecomposition"
	AndLinkType    = "istar.AndRefinementLink"
	OrLinkType     = "istar.OrRefinementLink"
	DependLinkType = "istar.DependencyLink"
)

// TreeBuilder assembles config.Tree fixtures in document order.
type TreeBuilder struct {
	tree config.Tree
}

// NewTree starts an empty fixture.
func NewTree() *TreeBuilder {
	return &TreeBuilder{}
}

// P is shorthand for a config.Property.
func P(key, value string) config.Property {
	return config.Property{Key: key, Value: value}
}

// Node appends a node record of any type.
func (b *TreeBuilder) Node(id, typ, text string, props ...config.Property) *TreeBuilder {
	b.tree.Nodes = append(b.tree.Nodes, config.RawNode{
		ID:         id,
		Type:       typ,
		Text:       text,
		Properties: props,
	})
	return b
}

// Goal appends a goal node.
func (b *TreeBuilder) Goal(id, text string, props ...config.Property) *TreeBuilder {
	return b.Node(id, GoalType, text, props...)
}

// Task appends a task node with the given robot-count text.
func (b *TreeBuilder) Task(id, text, robots string, props ...config.Property) *TreeBuilder {
	b.Node(id, TaskType, text, props...)
	b.tree.Nodes[len(b.tree.Nodes)-1].RobotNumber = robots
	return b
}

// Link appends a link record.
func (b *TreeBuilder) Link(id, typ, source, target string) *TreeBuilder {
	b.tree.Links = append(b.tree.Links, config.RawLink{ID: id, Type: typ, Source: source, Target: target})
	return b
}

// Refine appends an AND-refinement making child a child of parent.
func (b *TreeBuilder) Refine(child, parent string) *TreeBuilder {
	return b.Link(b.nextLinkID(), AndLinkType, child, parent)
}

// OrRefine appends an OR-refinement making child a child of parent.
func (b *TreeBuilder) OrRefine(child, parent string) *TreeBuilder {
	return b.Link(b.nextLinkID(), OrLinkType, child, parent)
}

// Depend appends a dependency link from source to target.
func (b *TreeBuilder) Depend(source, target string) *TreeBuilder {
	return b.Link(b.nextLinkID(), DependLinkType, source, target)
}

// Tree returns a copy of the fixture.
func (b *TreeBuilder) Tree() *config.Tree {
	t := &config.Tree{
		Nodes: make([]config.RawNode, len(b.tree.Nodes)),
		Links: append([]config.RawLink(nil), b.tree.Links...),
	}
	for i, n := range b.tree.Nodes {
		n.Properties = append([]config.Property(nil), n.Properties...)
		t.Nodes[i] = n
	}
	return t
}

func (b *TreeBuilder) nextLinkID() string {
	return fmt.Sprintf("l%d", len(b.tree.Links))
}

// MissionTree is a valid delivery mission written in scrambled document
// order:
//
//	G1 Deliver packages
//	├── G2 Fetch      └── AT1 Pick up  [1]
//	└── G3 Drop       └── AT2 Carry    [2,4]
func MissionTree() *TreeBuilder {
	return NewTree().
		Task("n4", "AT2: Carry", "[2,4]",
			P("Location", "p.dest"),
			P("Params", "p -> pkg")).
		Goal("n2", "G3: Drop",
			P("AchieveCondition", "p.delivered")).
		Goal("n0", "G1: Deliver packages",
			P("Controls", "packages : Sequence(Package)"),
			P("AchieveCondition", "for all p in packages: p.delivered")).
		Task("n3", "AT1: Pick up", "[1]",
			P("FailureCondition", "p.lost")).
		Goal("n1", "G2: Fetch",
			P("Select", "world_db->select(p : Package | p.ready && p.small)")).
		Refine("n4", "n2").
		Refine("n1", "n0").
		Refine("n3", "n1").
		Refine("n2", "n0").
		Depend("n1", "n2")
}
