package gmexpr

import (
	"strings"

	"github.com/specialistvlad/gmc/internal/gmerr"
)

// scanner walks a fragment tracking bracket depth and double-quoted strings.
type scanner struct {
	depth   int
	inQuote bool
}

// step updates the state for c and reports whether c is outside any nesting.
// It returns false on an unmatched closing bracket.
func (s *scanner) step(c byte) (topLevel bool, ok bool) {
	if s.inQuote {
		if c == '"' {
			s.inQuote = false
		}
		return false, true
	}
	switch c {
	case '"':
		s.inQuote = true
		return false, true
	case '(', '[', '{':
		s.depth++
		return false, true
	case ')', ']', '}':
		s.depth--
		if s.depth < 0 {
			return false, false
		}
		return false, true
	}
	return s.depth == 0, true
}

func (s *scanner) balanced() bool {
	return s.depth == 0 && !s.inQuote
}

// SplitTopLevel splits text at every occurrence of sep that is not nested in
// brackets or quotes. Parts are trimmed. Unbalanced brackets are a syntax
// error attributed to parser.
func SplitTopLevel(parser, text, sep string) ([]string, error) {
	var parts []string
	var sc scanner
	start := 0
	for i := 0; i < len(text); i++ {
		top, ok := sc.step(text[i])
		if !ok {
			return nil, gmerr.NewSyntax(parser, text, "unmatched closing bracket")
		}
		if top && strings.HasPrefix(text[i:], sep) {
			parts = append(parts, strings.TrimSpace(text[start:i]))
			i += len(sep) - 1
			start = i + 1
		}
	}
	if !sc.balanced() {
		return nil, gmerr.NewSyntax(parser, text, "unbalanced brackets or quotes")
	}
	return append(parts, strings.TrimSpace(text[start:])), nil
}

// indexTopLevel returns the index of the first top-level sep in text, or -1.
func indexTopLevel(text, sep string) int {
	var sc scanner
	for i := 0; i < len(text); i++ {
		top, ok := sc.step(text[i])
		if !ok {
			return -1
		}
		if top && strings.HasPrefix(text[i:], sep) {
			return i
		}
	}
	return -1
}

// checkBalanced reports a syntax error when text has unbalanced brackets.
func checkBalanced(parser, text string) error {
	_, err := SplitTopLevel(parser, text, "\x00")
	return err
}
