package condexpr

import (
	"maps"
	"slices"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/gmc/internal/gmerr"
)

const parserName = "condexpr"

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, suitable for use as a map key, e.g. "r.pos[0]".
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// Parse reads a condition text as an HCL expression.
func Parse(text string) (hcl.Expression, error) {
	src := strings.TrimSpace(text)
	if src == "" {
		return nil, gmerr.NewSyntax(parserName, text, "empty condition")
	}
	expr, diags := hclsyntax.ParseExpression([]byte(src), parserName, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, gmerr.NewSyntax(parserName, text, diags.Error())
	}
	return expr, nil
}

// Analysis lists what a set of condition texts refer to.
type Analysis struct {
	// References holds every unique variable traversal, sorted by key.
	References []hcl.Traversal
}

// Analyze parses every text and collects their variable references. The
// first text that does not parse stops the analysis.
func Analyze(texts ...string) (Analysis, error) {
	exprs := make([]hcl.Expression, 0, len(texts))
	for _, text := range texts {
		expr, err := Parse(text)
		if err != nil {
			return Analysis{}, err
		}
		exprs = append(exprs, expr)
	}
	return Analysis{References: extractReferences(exprs...)}, nil
}

// RootNames returns the unique root variable names referenced, sorted.
func (a Analysis) RootNames() []string {
	var names []string
	for _, t := range a.References {
		names = append(names, t.RootName())
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Refers reports whether any reference is rooted at name.
func (a Analysis) Refers(name string) bool {
	return slices.ContainsFunc(a.References, func(t hcl.Traversal) bool {
		return t.RootName() == name
	})
}

// extractReferences gathers the unique variable traversals of exprs, sorted
// by key. Variables() already descends into function call arguments.
func extractReferences(exprs ...hcl.Expression) []hcl.Traversal {
	traversals := make(map[string]hcl.Traversal)
	for _, expr := range exprs {
		for _, traversal := range expr.Variables() {
			traversals[TraversalKey(traversal)] = traversal
		}
	}

	out := make([]hcl.Traversal, 0, len(traversals))
	for _, k := range slices.Sorted(maps.Keys(traversals)) {
		out = append(out, traversals[k])
	}
	return out
}
