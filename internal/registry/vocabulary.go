package registry

import (
	"context"
	"fmt"
	"slices"

	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/model"
)

// Vocabulary is the user-supplied extension of the builtin vocabulary. Keys
// of NodeTypes and LinkTypes are document tokens; values are kind names
// ("goal", "task", "and", "or" for nodes and "and", "or", "dependency" for
// links).
type Vocabulary struct {
	NodeTypes   map[string]string `yaml:"node_types" validate:"dive,keys,required,endkeys,oneof=goal task and or"`
	LinkTypes   map[string]string `yaml:"link_types" validate:"dive,keys,required,endkeys,oneof=and or dependency"`
	DomainTypes []string          `yaml:"domain_types" validate:"dive,required"`
}

var nodeKindNames = map[string]model.Kind{
	"goal": model.KindGoal,
	"task": model.KindTask,
	"and":  model.KindAnd,
	"or":   model.KindOr,
}

var linkKindNames = map[string]model.EdgeKind{
	"and":        model.EdgeAndRefinement,
	"or":         model.EdgeOrRefinement,
	"dependency": model.EdgeDependency,
}

// Extend adds a vocabulary to the registry. Unlike the Register methods it
// reports conflicts as errors, since the input comes from configuration.
func (r *Registry) Extend(ctx context.Context, v Vocabulary) error {
	logger := ctxlog.FromContext(ctx)

	for _, token := range sortedKeys(v.NodeTypes) {
		kind, ok := nodeKindNames[v.NodeTypes[token]]
		if !ok {
			return fmt.Errorf("node type '%s': unknown kind '%s'", token, v.NodeTypes[token])
		}
		if err := r.addNodeType(token, kind); err != nil {
			return err
		}
	}
	for _, token := range sortedKeys(v.LinkTypes) {
		kind, ok := linkKindNames[v.LinkTypes[token]]
		if !ok {
			return fmt.Errorf("link type '%s': unknown kind '%s'", token, v.LinkTypes[token])
		}
		if err := r.addLinkType(token, kind); err != nil {
			return err
		}
	}
	for _, name := range v.DomainTypes {
		if _, err := r.Types.Register(name); err != nil {
			return fmt.Errorf("domain type '%s': %w", name, err)
		}
	}

	logger.Debug("Registry vocabulary extended.",
		"node_types", len(v.NodeTypes),
		"link_types", len(v.LinkTypes),
		"domain_types", len(v.DomainTypes),
	)
	return nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
