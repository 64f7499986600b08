package builder

import (
	"cmp"
	"slices"

	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/nodeid"
)

// canonicalOrder sorts vertices by short name and remaps every index held by
// vertices and edges. Children end up ascending; edges are sorted by
// (From, To) with ties broken by edge id. Input slices are not modified.
func canonicalOrder(vertices []model.Vertex, edges []model.Edge) ([]model.Vertex, []model.Edge) {
	perm := make([]int, len(vertices))
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		return nodeid.Compare(vertices[a].Name, vertices[b].Name)
	})

	newIndex := make([]int, len(vertices))
	for newPos, old := range perm {
		newIndex[old] = newPos
	}

	ordered := make([]model.Vertex, len(vertices))
	for newPos, old := range perm {
		v := vertices[old].Clone()
		if v.HasParent() {
			v.Parent = newIndex[v.Parent]
		}
		for j, c := range v.Children {
			v.Children[j] = newIndex[c]
		}
		slices.Sort(v.Children)
		ordered[newPos] = v
	}

	remapped := make([]model.Edge, len(edges))
	for i, e := range edges {
		e.From = newIndex[e.From]
		e.To = newIndex[e.To]
		remapped[i] = e
	}
	slices.SortStableFunc(remapped, func(a, b model.Edge) int {
		if c := cmp.Compare(a.From, b.From); c != 0 {
			return c
		}
		if c := cmp.Compare(a.To, b.To); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	return ordered, remapped
}
