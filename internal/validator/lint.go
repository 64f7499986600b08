package validator

import (
	"context"
	"fmt"

	"github.com/specialistvlad/gmc/internal/condexpr"
	"github.com/specialistvlad/gmc/internal/ctxlog"
	"github.com/specialistvlad/gmc/internal/model"
)

// Finding is a non-fatal observation about a vertex.
type Finding struct {
	Vertex  string
	Key     string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s.%s: %s", f.Vertex, f.Key, f.Message)
}

// Lint analyses the condition expressions of every vertex. Findings are
// ordered by vertex index, then by property key.
//
// A condition may only refer to variables bound by its vertex or by one of
// its ancestors: declared in Controls or Monitors, mapped by Params or
// Location, or introduced by a quantifier, a select or an iteration.
func Lint(ctx context.Context, g *model.Graph) []Finding {
	var findings []Finding
	for i := range g.Len() {
		v := g.Vertex(i)
		var scope map[string]bool
		for _, key := range v.PropKeys() {
			p, _ := v.Prop(key)
			if !isCondition(p) {
				continue
			}
			if scope == nil {
				scope = boundNames(g, i)
			}
			if msg := lintCondition(p, scope); msg != "" {
				findings = append(findings, Finding{Vertex: v.Name, Key: key, Message: msg})
			}
		}
	}
	ctxlog.FromContext(ctx).Debug("Lint finished.", "findings", len(findings))
	return findings
}

func isCondition(p model.Property) bool {
	switch p.(type) {
	case model.AchieveCondition, model.FailureCondition, model.IterationRule:
		return true
	case model.RawText, model.ContextRef, model.VarMappingList, model.QueriedProperty:
		return false
	default:
		panic(fmt.Sprintf("validator: unknown property case %T", p))
	}
}

func lintCondition(p model.Property, scope map[string]bool) string {
	var a condexpr.Analysis
	var err error

	switch p := p.(type) {
	case model.AchieveCondition:
		if a, err = condexpr.Analyze(p.Body()); err != nil {
			return fmt.Sprintf("condition is not a valid expression: %v", err)
		}
		if p.IsQuantified() && !a.Refers(p.IterationVar()) {
			return fmt.Sprintf("quantified condition does not reference %q", p.IterationVar())
		}
	case model.FailureCondition:
		if a, err = condexpr.Analyze(p.Condition); err != nil {
			return fmt.Sprintf("condition is not a valid expression: %v", err)
		}
	case model.IterationRule:
		if a, err = condexpr.Analyze(p.EndLoop); err != nil {
			return fmt.Sprintf("end condition is not a valid expression: %v", err)
		}
		if !a.Refers(p.Result.Name) {
			return fmt.Sprintf("end condition does not reference %q", p.Result.Name)
		}
	default:
		panic(fmt.Sprintf("validator: unknown condition case %T", p))
	}

	for _, name := range a.RootNames() {
		if !scope[name] {
			return fmt.Sprintf("condition refers to undeclared variable %q", name)
		}
	}
	return ""
}

// boundNames collects the variables bound by vertex i and its ancestors.
func boundNames(g *model.Graph, i int) map[string]bool {
	scope := make(map[string]bool)
	// The step bound keeps a malformed parent chain from looping.
	for step := 0; i >= 0 && i < g.Len() && step < g.Len(); step++ {
		v := g.Vertex(i)
		for _, key := range v.PropKeys() {
			p, _ := v.Prop(key)
			bind(scope, p)
		}
		i = g.Parent(i)
	}
	return scope
}

func bind(scope map[string]bool, p model.Property) {
	switch p := p.(type) {
	case model.VarMappingList:
		for _, kv := range p {
			scope[kv.Key] = true
		}
	case model.QueriedProperty:
		scope[p.QueriedVar] = true
		scope[p.Result.Name] = true
	case model.IterationRule:
		scope[p.IteratedVar] = true
		scope[p.IterationVar] = true
		scope[p.Result.Name] = true
	case model.AchieveCondition:
		if p.IsQuantified() {
			scope[p.IteratedVar()] = true
			scope[p.IterationVar()] = true
		}
	case model.RawText, model.ContextRef, model.FailureCondition:
	default:
		panic(fmt.Sprintf("validator: unknown property case %T", p))
	}
}
