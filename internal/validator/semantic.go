package validator

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/definitions"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/gmexpr"
	"github.com/specialistvlad/gmc/internal/model"
)

// Semantic checks every leaf task that asks for a range of robots against
// the abstract task it instantiates and that task's sort. Tasks with a fixed
// robot count are not checked.
func Semantic(ctx context.Context, g *model.Graph, tasks []definitions.AbstractTask, sorts []definitions.SortDefinition) error {
	logger := ctxlog.FromContext(ctx)
	checked := 0

	for i := range g.Len() {
		v := g.Vertex(i)
		if v.Kind != model.KindTask || !v.IsLeaf() || v.RobotCount == nil || v.RobotCount.Fixed {
			continue
		}
		checked++

		// Labels without a readable name fall back to the short id.
		_, name, _ := gmexpr.ParseGoalText(v.Text)
		task, ok := definitions.FindTask(tasks, name, v.Name)
		if !ok {
			e := gmerr.NewReference(gmerr.ErrCodeUnknownTask, v.Name, name)
			if name == "" {
				e.Fragment = v.Name
			}
			return e.WithSuggestion("Declare the task in the definitions file")
		}

		if !task.VariableRobots {
			return gmerr.NewRule(gmerr.ErrCodeUndefinedRobotRange, v.Name, "variable-robots",
				fmt.Sprintf("task %q does not accept a variable robot count but %s is requested", task.Name, v.RobotCount))
		}

		sort, ok := definitions.FindSort(sorts, task.Sort)
		if !ok {
			return gmerr.NewReference(gmerr.ErrCodeUnknownSort, v.Name, task.Sort)
		}
		if sort.Cardinality.Fixed {
			return gmerr.NewRule(gmerr.ErrCodeUndefinedRobotRange, v.Name, "sort-cardinality",
				fmt.Sprintf("sort %q only supports a fixed count %s", sort.Name, sort.Cardinality))
		}
		if !sort.Cardinality.Covers(*v.RobotCount) {
			return gmerr.NewRule(gmerr.ErrCodeUndefinedRobotRange, v.Name, "sort-cardinality",
				fmt.Sprintf("sort %q allows %s, %s is requested", sort.Name, sort.Cardinality, v.RobotCount))
		}
	}

	logger.Debug("Semantic validation passed.", "checked_tasks", checked)
	return nil
}
