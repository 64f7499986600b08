package registry

import "github.com/specialistvlad/gmc/internal/model"

// builtinNodeTypes covers the tokens written by the goal-model editor and
// their short aliases.
var builtinNodeTypes = map[string]model.Kind{
	"istar.Goal":             model.KindGoal,
	"istar.Task":             model.KindTask,
	"istar.AndDecomposition": model.KindAnd,
	"istar.OrDecomposition":  model.KindOr,
	"goal":                   model.KindGoal,
	"task":                   model.KindTask,
	"and":                    model.KindAnd,
	"or":                     model.KindOr,
}

var builtinLinkTypes = map[string]model.EdgeKind{
	"istar.AndRefinementLink": model.EdgeAndRefinement,
	"istar.OrRefinementLink":  model.EdgeOrRefinement,
	"istar.DependencyLink":    model.EdgeDependency,
	"and":                     model.EdgeAndRefinement,
	"or":                      model.EdgeOrRefinement,
	"dependency":              model.EdgeDependency,
}
