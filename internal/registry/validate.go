package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/model"
)

// ValidateRegistry checks that the vocabulary can express a goal model: at
// least one token must map to a goal, to a task and to a refinement link.
// Missing decomposition kinds only produce a warning, since documents that
// never use them still compile.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	nodes := make(map[model.Kind]bool)
	for _, kind := range r.nodeKinds {
		nodes[kind] = true
	}
	links := make(map[model.EdgeKind]bool)
	for _, kind := range r.linkKinds {
		links[kind] = true
	}

	for _, kind := range []model.Kind{model.KindGoal, model.KindTask} {
		if !nodes[kind] {
			errs = append(errs, fmt.Sprintf("no node type maps to kind '%s'", kind))
		}
	}
	if !links[model.EdgeAndRefinement] && !links[model.EdgeOrRefinement] {
		errs = append(errs, "no link type maps to a refinement kind")
	}
	for _, kind := range []model.Kind{model.KindAnd, model.KindOr} {
		if !nodes[kind] {
			logger.Warn("Vocabulary has no node type for a decomposition kind.", "kind", kind.String())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
