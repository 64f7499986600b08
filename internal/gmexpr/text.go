package gmexpr

import (
	"strings"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/nodeid"
)

// DefaultAttribute is the attribute a location reference resolves to when it
// names none.
const DefaultAttribute = "location"

// ParseAtText parses a location reference "var[.attr]", optionally preceded
// by the keyword "at". The attribute defaults to DefaultAttribute.
func ParseAtText(text string) (variable, attr string, err error) {
	s := strings.TrimSpace(text)
	if kw, rest, found := strings.Cut(s, " "); found && strings.EqualFold(kw, "at") {
		s = strings.TrimSpace(rest)
	}

	variable, attr, found := strings.Cut(s, ".")
	if !found {
		attr = DefaultAttribute
	}
	if !isIdentifier(variable) {
		return "", "", gmerr.NewSyntax(ParserAt, text, "expected a variable name")
	}
	if !isIdentifier(attr) {
		return "", "", gmerr.NewSyntax(ParserAt, text, "expected an attribute name after the dot")
	}
	return variable, attr, nil
}

// ParseGoalText splits a node label such as "G3: Deliver box" into its short
// id and its name. The separator may be a colon or whitespace; the name may
// be empty.
func ParseGoalText(text string) (shortID, name string, err error) {
	s := strings.TrimSpace(text)
	shortID = nodeid.ShortID(s)
	if shortID == "" {
		return "", "", gmerr.NewSyntax(ParserGoalText, text, "label has no identifier")
	}
	name = strings.TrimLeft(s[len(shortID):], ": \t")
	return shortID, strings.TrimSpace(name), nil
}
