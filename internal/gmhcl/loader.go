package gmhcl

import (
	"context"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gmc/internal/config"
	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL goal model loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the goal model file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Tree, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return l.decode(ctx, path, file)
}

// Parse reads a goal model from src. filename is only used in diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Tree, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return l.decode(ctx, filename, file)
}

func (l *Loader) decode(ctx context.Context, filename string, file *hcl.File) (*config.Tree, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	tree := &config.Tree{}
	for _, nb := range root.Nodes {
		node, err := translateNode(nb)
		if err != nil {
			return nil, fmt.Errorf("%s: node %q: %w", filename, nb.ID, err)
		}
		tree.Nodes = append(tree.Nodes, node)
	}
	for _, lb := range root.Links {
		tree.Links = append(tree.Links, config.RawLink{
			ID:     lb.ID,
			Type:   lb.Type,
			Source: lb.Source,
			Target: lb.Target,
		})
	}

	logger.Debug("HCL goal model decoded.", "file", filename, "nodes", len(tree.Nodes), "links", len(tree.Links))
	return tree, nil
}

func translateNode(nb *nodeBlock) (config.RawNode, error) {
	node := config.RawNode{
		ID:        nb.ID,
		Text:      nb.Text,
		Type:      nb.Type,
		Periodic:  nb.Periodic,
		Period:    nb.Period,
		Deadline:  nb.Deadline,
		Group:     nb.Group,
		Divisible: nb.Divisible,
	}
	if nb.X != nil {
		node.X = *nb.X
	}
	if nb.Y != nil {
		node.Y = *nb.Y
	}
	if nb.RobotNumber != nil {
		node.RobotNumber = *nb.RobotNumber
	}

	for _, pb := range nb.Properties {
		props, err := orderedProperties(pb.Body)
		if err != nil {
			return config.RawNode{}, err
		}
		node.Properties = append(node.Properties, props...)
	}
	return node, nil
}

// orderedProperties reads every attribute of body as text, ordered by its
// position in the source.
func orderedProperties(body hcl.Body) ([]config.Property, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	sorted := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		sorted = append(sorted, attr)
	}
	slices.SortFunc(sorted, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	props := make([]config.Property, 0, len(sorted))
	for _, attr := range sorted {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("property %s: %w", attr.Name, diags)
		}
		text, err := valueText(val)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", attr.Name, err)
		}
		props = append(props, config.Property{Key: attr.Name, Value: text})
	}
	return props, nil
}

func valueText(val cty.Value) (string, error) {
	if val.IsNull() {
		return "", nil
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("value must be a string, number or bool: %w", err)
	}
	return str.AsString(), nil
}
