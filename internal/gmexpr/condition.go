package gmexpr

import (
	"regexp"
	"strings"

	"github.com/specialistvlad/gmc/internal/gmerr"
	"github.com/specialistvlad/gmc/internal/model"
)

// forAllPrefix matches the quantifier keyword in its accepted spellings:
// "for all", "forall" and "forAll".
var forAllPrefix = regexp.MustCompile(`(?i)^for\s*all\s+`)

var iterateRegex = regexp.MustCompile(
	`(?is)^iterate\s+(\S+)\s+in\s+(.+?)\s+with\s+([^\s:]+)\s*:\s*(.+?)\s*=\s*(.+?)\s+until\s+(.+)$`)

// ParseForAll parses a quantifier header "for all X in Collection" and
// returns the iterated collection and the iteration variable.
func ParseForAll(expr string) (iterated, iteration string, err error) {
	text := strings.TrimSpace(expr)
	loc := forAllPrefix.FindStringIndex(text)
	if loc == nil {
		return "", "", gmerr.NewSyntax(ParserForAll, expr, `expected "for all X in Collection"`)
	}

	fields := strings.Fields(text[loc[1]:])
	if len(fields) < 3 || !strings.EqualFold(fields[1], "in") {
		return "", "", gmerr.NewSyntax(ParserForAll, expr, `expected "X in Collection" after the quantifier`)
	}
	iteration = fields[0]
	if !isIdentifier(iteration) {
		return "", "", gmerr.NewSyntax(ParserForAll, expr, "invalid iteration variable "+iteration)
	}
	iterated = strings.Join(fields[2:], " ")
	return iterated, iteration, nil
}

// ParseAchieveCondition parses a goal condition. Text that starts with a
// quantifier is split at its first top-level colon into header and body and
// yields the quantified form; anything else is a flat condition.
func ParseAchieveCondition(text string) (model.AchieveCondition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.AchieveCondition{}, gmerr.NewSyntax(ParserAchieveCondition, text, "empty condition")
	}
	if err := checkBalanced(ParserAchieveCondition, text); err != nil {
		return model.AchieveCondition{}, err
	}

	if !forAllPrefix.MatchString(text) {
		return model.NewFlatAchieve(text), nil
	}

	sep := indexTopLevel(text, ":")
	if sep < 0 {
		return model.AchieveCondition{}, gmerr.NewSyntax(ParserAchieveCondition, text, `missing ":" after quantifier`)
	}
	iterated, iteration, err := ParseForAll(text[:sep])
	if err != nil {
		return model.AchieveCondition{}, err
	}
	body := strings.TrimSpace(text[sep+1:])
	if body == "" {
		return model.AchieveCondition{}, gmerr.NewSyntax(ParserAchieveCondition, text, "empty quantified condition")
	}
	return model.NewQuantifiedAchieve(iterated, iteration, body), nil
}

// ParseFailureCondition parses a task failure condition. The text is kept
// verbatim; it only has to be non-empty and balanced.
func ParseFailureCondition(text string) (model.FailureCondition, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.FailureCondition{}, gmerr.NewSyntax(ParserFailureCondition, text, "empty condition")
	}
	if err := checkBalanced(ParserFailureCondition, text); err != nil {
		return model.FailureCondition{}, err
	}
	return model.FailureCondition{Condition: text}, nil
}

// ParseIterate parses an iteration rule of the form
//
//	iterate X in Collection with acc : Type = init until cond
func ParseIterate(expr string) (model.IterationRule, error) {
	text := strings.TrimSpace(expr)
	m := iterateRegex.FindStringSubmatch(text)
	if m == nil {
		return model.IterationRule{}, gmerr.NewSyntax(ParserIterate, expr,
			`expected "iterate X in Collection with acc : Type = init until cond"`)
	}
	if !isIdentifier(m[1]) || !isIdentifier(m[3]) {
		return model.IterationRule{}, gmerr.NewSyntax(ParserIterate, expr, "invalid variable name")
	}
	return model.IterationRule{
		IteratedVar:  m[2],
		IterationVar: m[1],
		Result:       model.TypedVar{Name: m[3], Type: m[4]},
		ResultInit:   m[5],
		EndLoop:      m[6],
	}, nil
}
