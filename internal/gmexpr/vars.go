package gmexpr

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
)

// ParseVars parses a comma-separated list of "name : Type" declarations, as
// used by the Controls and Monitors annotations. Empty text yields an empty
// list. Order and duplicates are preserved.
func ParseVars(text string) ([]model.TypedVar, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []model.TypedVar{}, nil
	}

	items, err := SplitTopLevel(ParserVars, text, ",")
	if err != nil {
		return nil, err
	}

	vars := make([]model.TypedVar, 0, len(items))
	for _, item := range items {
		v, err := parseTypedVar(ParserVars, item)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

func parseTypedVar(parser, item string) (model.TypedVar, error) {
	name, typ, found := strings.Cut(item, ":")
	if !found {
		return model.TypedVar{}, gmerr.NewSyntax(parser, item, `expected "name : Type"`)
	}
	name, typ = strings.TrimSpace(name), strings.TrimSpace(typ)
	if !isIdentifier(name) {
		return model.TypedVar{}, gmerr.NewSyntax(parser, item, fmt.Sprintf("invalid variable name %q", name))
	}
	if typ == "" {
		return model.TypedVar{}, gmerr.NewSyntax(parser, item, fmt.Sprintf("missing type for %q", name))
	}
	return model.TypedVar{Name: name, Type: typ}, nil
}

// ParseVarMapping parses a comma-separated list of "key -> value" pairs, as
// used by the Params annotation. Empty text yields an empty list. Order and
// duplicates are preserved.
func ParseVarMapping(text string) (model.VarMappingList, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.VarMappingList{}, nil
	}

	items, err := SplitTopLevel(ParserVarMapping, text, ",")
	if err != nil {
		return nil, err
	}

	out := make(model.VarMappingList, 0, len(items))
	for _, item := range items {
		key, value, found := strings.Cut(item, "->")
		if !found {
			return nil, gmerr.NewSyntax(ParserVarMapping, item, `expected "key -> value"`)
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			return nil, gmerr.NewSyntax(ParserVarMapping, item, "key and value must not be empty")
		}
		out = append(out, model.KeyValue{Key: key, Value: value})
	}
	return out, nil
}

// isIdentifier reports whether s is a letter or underscore followed by
// letters, digits or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
