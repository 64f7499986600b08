package validator

import "github.com/specialistvlad/gmc/internal/model"

// Traverse returns the depth-first pre-order of the hierarchy below root.
// Children are visited in ascending index order and every vertex appears at
// most once. An out of range root yields nil.
func Traverse(g *model.Graph, root int) []int {
	if root < 0 || root >= g.Len() {
		return nil
	}

	visited := make([]bool, g.Len())
	order := make([]int, 0, g.Len())
	stack := []int{root}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)

		children := g.Children(v)
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			if c >= 0 && c < g.Len() && !visited[c] {
				stack = append(stack, c)
			}
		}
	}
	return order
}
