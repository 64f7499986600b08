package gmexpr

import (
	"regexp"
	"strings"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
)

var selectRegex = regexp.MustCompile(`(?s)^(.+?)\s*->\s*select\s*\((.*)\)$`)

// Logical connectives kept as their own query components.
const (
	connAnd = "&&"
	connOr  = "||"
)

// ParseSelect parses a query of the form
//
//	Var->select(r : Type | filter)
//
// The filter is optional. It is split at its top-level "&&" and "||"
// connectives, which are kept as components, so "a && b" yields
// ["a", "&&", "b"].
func ParseSelect(expr string) (model.QueriedProperty, error) {
	text := strings.TrimSpace(expr)
	m := selectRegex.FindStringSubmatch(text)
	if m == nil {
		return model.QueriedProperty{}, gmerr.NewSyntax(ParserSelect, expr, `expected "Var->select(r : Type | filter)"`)
	}
	queried, inner := strings.TrimSpace(m[1]), m[2]
	if err := checkBalanced(ParserSelect, inner); err != nil {
		return model.QueriedProperty{}, err
	}

	decl, filter := inner, ""
	if bar := indexFilterBar(inner); bar >= 0 {
		decl, filter = inner[:bar], inner[bar+1:]
	}

	result, err := parseTypedVar(ParserSelect, strings.TrimSpace(decl))
	if err != nil {
		return model.QueriedProperty{}, err
	}

	query, err := splitConnectives(strings.TrimSpace(filter))
	if err != nil {
		return model.QueriedProperty{}, err
	}

	return model.QueriedProperty{
		QueriedVar: queried,
		Result:     result,
		Query:      query,
	}, nil
}

// indexFilterBar returns the index of the first top-level "|" that is not
// part of a "||" connective, or -1.
func indexFilterBar(text string) int {
	var sc scanner
	for i := 0; i < len(text); i++ {
		top, _ := sc.step(text[i])
		if !top || text[i] != '|' {
			continue
		}
		if i+1 < len(text) && text[i+1] == '|' {
			i++
			continue
		}
		return i
	}
	return -1
}

// splitConnectives splits filter into atoms and connectives in source order.
func splitConnectives(filter string) ([]string, error) {
	if filter == "" {
		return []string{}, nil
	}

	var out []string
	var sc scanner
	start := 0
	for i := 0; i < len(filter); i++ {
		top, ok := sc.step(filter[i])
		if !ok {
			return nil, gmerr.NewSyntax(ParserSelect, filter, "unmatched closing bracket")
		}
		if !top {
			continue
		}
		conn := ""
		switch {
		case strings.HasPrefix(filter[i:], connAnd):
			conn = connAnd
		case strings.HasPrefix(filter[i:], connOr):
			conn = connOr
		default:
			continue
		}
		atom := strings.TrimSpace(filter[start:i])
		if atom == "" {
			return nil, gmerr.NewSyntax(ParserSelect, filter, "connective "+conn+" without left operand")
		}
		out = append(out, atom, conn)
		i += len(conn) - 1
		start = i + 1
	}

	last := strings.TrimSpace(filter[start:])
	if last == "" {
		return nil, gmerr.NewSyntax(ParserSelect, filter, "dangling connective")
	}
	return append(out, last), nil
}
