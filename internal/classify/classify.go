package classify

import (
	"fmt"

	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/model"
	"github.com/specialistvlad/gmc/internal/registry"
)

// Classifier applies the routing table against a registry. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	reg *registry.Registry
}

// New creates a Classifier that canonicalizes types through reg.
func New(reg *registry.Registry) *Classifier {
	return &Classifier{reg: reg}
}

// Classify applies every annotation in document order. Later annotations
// with the same destination overwrite earlier ones.
func (c *Classifier) Classify(v *model.Vertex, props []config.Property) error {
	for _, p := range props {
		if err := c.ClassifyProperty(v, p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// ClassifyProperty parses one annotation and stores the result on v.
func (c *Classifier) ClassifyProperty(v *model.Vertex, key, value string) error {
	if v.Props == nil {
		v.Props = make(map[string]model.Property)
	}
	r, ok := table[key]
	if !ok || !r.appliesTo.has(v.Kind) {
		v.Props[key] = model.RawText{Text: value}
		return nil
	}
	if err := r.apply(c, v, key, value); err != nil {
		return fmt.Errorf("annotation %q: %w", key, err)
	}
	return nil
}
