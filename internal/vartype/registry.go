// Package vartype canonicalizes the type tokens that appear in variable
// declarations ("r : Robot", "rs : Sequence(Robot)") into cty types.
//
// The builtin scalars map onto cty.String, cty.Number and cty.Bool. Domain
// types, such as the sorts of a mission definition, are registered at run
// time and represented as distinct cty capsule types. Sequence(T) is a
// cty list of T.
package vartype

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/zclconf/go-cty/cty"
)

const parserName = "vartype"

// sequenceKeyword is the type constructor for ordered collections.
const sequenceKeyword = "sequence"

var builtins = map[string]cty.Type{
	"string": cty.String,
	"number": cty.Number,
	"bool":   cty.Bool,
}

// DomainValue is the native Go type wrapped by every domain capsule type.
type DomainValue struct {
	Type string
	ID   string
}

var domainNative = reflect.TypeOf(DomainValue{})

// Registry is an open set of domain types. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	domain map[string]cty.Type
}

// NewRegistry returns a registry that knows only the builtin types.
func NewRegistry() *Registry {
	return &Registry{domain: make(map[string]cty.Type)}
}

// Register adds a domain type and returns its capsule type. Registering the
// same name twice returns the same type.
func (r *Registry) Register(name string) (cty.Type, error) {
	name = strings.TrimSpace(name)
	if !hclsyntax.ValidIdentifier(name) {
		return cty.NilType, gmerr.NewSyntax(parserName, name, "domain type names must be simple identifiers")
	}
	if _, ok := builtins[strings.ToLower(name)]; ok || strings.EqualFold(name, sequenceKeyword) {
		return cty.NilType, gmerr.NewSyntax(parserName, name, "domain type shadows a builtin type")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.domain[name]; ok {
		return t, nil
	}
	t := cty.Capsule(name, domainNative)
	r.domain[name] = t
	return t, nil
}

// Has reports whether name is a registered domain type.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.domain[name]
	return ok
}

// Names returns the registered domain type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.domain))
}

// Canonicalize resolves a type token to its cty type.
func (r *Registry) Canonicalize(token string) (cty.Type, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(strings.TrimSpace(token)), parserName, hcl.InitialPos)
	if diags.HasErrors() {
		return cty.NilType, gmerr.NewSyntax(parserName, token, diags.Error())
	}
	return r.resolve(token, expr)
}

// Normalize resolves a type token and returns its canonical spelling, e.g.
// "sequence( Robot )" becomes "Sequence(Robot)".
func (r *Registry) Normalize(token string) (string, error) {
	t, err := r.Canonicalize(token)
	if err != nil {
		return "", err
	}
	return Spell(t), nil
}

func (r *Registry) resolve(token string, expr hclsyntax.Expression) (cty.Type, error) {
	switch e := expr.(type) {
	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			return cty.NilType, gmerr.NewSyntax(parserName, token, "type must be a simple name")
		}
		name := e.Traversal.RootName()
		if t, ok := builtins[strings.ToLower(name)]; ok {
			return t, nil
		}
		r.mu.RLock()
		t, ok := r.domain[name]
		r.mu.RUnlock()
		if !ok {
			return cty.NilType, gmerr.NewUnknownType(parserName, name)
		}
		return t, nil

	case *hclsyntax.FunctionCallExpr:
		if !strings.EqualFold(e.Name, sequenceKeyword) {
			return cty.NilType, gmerr.NewUnknownType(parserName, e.Name)
		}
		if len(e.Args) != 1 || e.ExpandFinal {
			return cty.NilType, gmerr.NewSyntax(parserName, token, "Sequence takes exactly one element type")
		}
		elem, err := r.resolve(token, e.Args[0])
		if err != nil {
			return cty.NilType, err
		}
		return cty.List(elem), nil

	default:
		return cty.NilType, gmerr.NewSyntax(parserName, token, fmt.Sprintf("unsupported type expression %T", expr))
	}
}

// Spell returns the canonical textual spelling of t.
func Spell(t cty.Type) string {
	switch {
	case t.Equals(cty.String):
		return "string"
	case t.Equals(cty.Number):
		return "number"
	case t.Equals(cty.Bool):
		return "bool"
	case t.IsListType():
		return "Sequence(" + Spell(t.ElementType()) + ")"
	default:
		return t.FriendlyName()
	}
}
