package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/nodeid"
)

// Structural validates the shape of g and returns its depth-first visiting
// order. The first violation found is returned as a *gmerr.Error naming the
// offending vertex and rule.
func Structural(ctx context.Context, g *model.Graph) ([]int, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Structural validation started.", "node_count", g.Len(), "edge_count", g.EdgeCount())

	if err := checkIdentifiers(g); err != nil {
		return nil, err
	}
	if err := checkEdges(g); err != nil {
		return nil, err
	}
	if err := checkHierarchy(g); err != nil {
		return nil, err
	}

	roots := g.Roots()
	switch len(roots) {
	case 0:
		return nil, gmerr.New(gmerr.ErrCodeNoRoot, "every vertex has a parent").
			WithSuggestion("Exactly one goal must be left without a refinement link to a parent")
	case 1:
	default:
		names := make([]string, len(roots))
		for i, r := range roots {
			names[i] = g.Name(r)
		}
		return nil, gmerr.NewRule(gmerr.ErrCodeMultipleRoots, g.Name(roots[1]), "unique-root",
			fmt.Sprintf("vertices without parent: %s", strings.Join(names, ", ")))
	}

	order := Traverse(g, roots[0])
	for _, i := range order {
		if err := checkVertex(g, i); err != nil {
			return nil, err
		}
	}

	if len(order) != g.Len() {
		visited := make([]bool, g.Len())
		for _, i := range order {
			visited[i] = true
		}
		for i := range g.Len() {
			if !visited[i] {
				return nil, gmerr.NewRule(gmerr.ErrCodeOrphan, g.Name(i), "reachability",
					fmt.Sprintf("vertex is not reachable from root %s", g.Name(roots[0])))
			}
		}
	}

	logger.Debug("Structural validation passed.", "root", g.Name(roots[0]), "visited", len(order))
	return order, nil
}

func checkIdentifiers(g *model.Graph) error {
	ids := make(map[string]bool, g.Len())
	names := make(map[string]bool, g.Len())
	for i := range g.Len() {
		v := g.Vertex(i)
		if ids[v.ID] {
			return gmerr.NewRule(gmerr.ErrCodeDuplicateID, v.ID, "unique-id", "identifier is used by more than one vertex")
		}
		ids[v.ID] = true
		addr, err := nodeid.Parse(v.Name)
		key := v.Name
		if err == nil {
			key = addr.String()
		}
		if names[key] {
			return gmerr.NewRule(gmerr.ErrCodeDuplicateID, v.Name, "unique-name", "short name is used by more than one vertex")
		}
		names[key] = true

		if err != nil {
			e := gmerr.NewRule(gmerr.ErrCodeMalformedID, v.ID, "short-id", err.Error())
			return e.WithSuggestion(`Start every label with a short id such as "G1:" or "AT2:"`)
		}
	}
	return nil
}

func checkEdges(g *model.Graph) error {
	for _, e := range g.Edges() {
		if !inRange(g, e.From) || !inRange(g, e.To) {
			return gmerr.NewRule(gmerr.ErrCodeDanglingEdge, e.ID, "edge-endpoints",
				fmt.Sprintf("endpoints %d -> %d are outside the graph", e.From, e.To))
		}
		if e.Kind.Hierarchical() && g.Parent(e.To) != e.From {
			return gmerr.NewRule(gmerr.ErrCodeMultipleParents, g.Name(e.To), "edge-parent",
				fmt.Sprintf("%s edge %s does not match the parent of the vertex", e.Kind, e.ID))
		}
	}
	return nil
}

func checkHierarchy(g *model.Graph) error {
	listed := make([]int, g.Len())
	for i := range g.Len() {
		for _, c := range g.Children(i) {
			if !inRange(g, c) {
				return gmerr.NewRule(gmerr.ErrCodeDanglingEdge, g.Name(i), "child-index",
					fmt.Sprintf("child index %d is outside the graph", c))
			}
			listed[c]++
			if listed[c] > 1 || g.Parent(c) != i {
				return gmerr.NewRule(gmerr.ErrCodeMultipleParents, g.Name(c), "single-parent",
					fmt.Sprintf("vertex is listed as a child of %s", g.Name(i)))
			}
		}
	}
	for i := range g.Len() {
		p := g.Parent(i)
		if p == model.NoParent {
			continue
		}
		if !inRange(g, p) || listed[i] == 0 {
			return gmerr.NewRule(gmerr.ErrCodeMultipleParents, g.Name(i), "parent-consistency",
				fmt.Sprintf("parent index %d does not list the vertex as a child", p))
		}
	}
	return nil
}

func checkVertex(g *model.Graph, i int) error {
	v := g.Vertex(i)
	switch {
	case v.Kind.IsDecomposition() && len(v.Children) < 2:
		return gmerr.NewRule(gmerr.ErrCodeArity, v.Name, "decomposition-arity",
			fmt.Sprintf("%s decomposition has %d children, needs at least 2", v.Kind, len(v.Children)))
	case v.Kind == model.KindTask && len(v.Children) > 0:
		return gmerr.NewRule(gmerr.ErrCodeArity, v.Name, "task-leaf",
			fmt.Sprintf("task has %d children", len(v.Children)))
	}

	if v.Kind == model.KindTask {
		if v.RobotCount == nil {
			return gmerr.NewRule(gmerr.ErrCodeMissingRobotCount, v.Name, "task-robot-count",
				"task declares no robot count").WithSuggestion(`Set robot_number to "[n]" or "[min,max]"`)
		}
	}
	if rc := v.RobotCount; rc != nil {
		if rc.Min < 1 || rc.Min > rc.Max || (rc.Fixed && rc.Min != rc.Max) {
			return gmerr.NewRule(gmerr.ErrCodeRobotRange, v.Name, "robot-range",
				fmt.Sprintf("robot count %s is not a valid range", rc))
		}
	}

	return checkConditions(v)
}

func checkConditions(v model.Vertex) error {
	achieve, hasAchieve := v.Prop(model.PropAchieveCondition)
	failure, hasFailure := v.Prop(model.PropFailureCondition)

	if hasAchieve && hasFailure {
		return conditionError(v, "single-condition", "vertex carries both an achieve and a failure condition")
	}

	if hasAchieve {
		cond, ok := achieve.(model.AchieveCondition)
		if !ok {
			return conditionError(v, "condition-discriminant",
				fmt.Sprintf("%s holds a %s payload", model.PropAchieveCondition, model.PropertyName(achieve)))
		}
		switch f := cond.Form().(type) {
		case model.FlatCondition:
			if strings.TrimSpace(f.Condition) == "" {
				return conditionError(v, "condition-payload", "flat achieve condition is empty")
			}
		case model.QuantifiedCondition:
			if f.IteratedVar == "" || f.IterationVar == "" || strings.TrimSpace(f.Condition) == "" {
				return conditionError(v, "condition-payload", "quantified achieve condition has empty fields")
			}
		case nil:
			return conditionError(v, "condition-discriminant", "achieve condition has no form")
		default:
			panic(fmt.Sprintf("validator: unknown achieve form %T", f))
		}
	}

	if hasFailure {
		cond, ok := failure.(model.FailureCondition)
		if !ok {
			return conditionError(v, "condition-discriminant",
				fmt.Sprintf("%s holds a %s payload", model.PropFailureCondition, model.PropertyName(failure)))
		}
		if strings.TrimSpace(cond.Condition) == "" {
			return conditionError(v, "condition-payload", "failure condition is empty")
		}
	}
	return nil
}

func conditionError(v model.Vertex, rule, msg string) error {
	return gmerr.NewRule(gmerr.ErrCodeCondition, v.Name, rule, msg)
}

func inRange(g *model.Graph, i int) bool {
	return i >= 0 && i < g.Len()
}
