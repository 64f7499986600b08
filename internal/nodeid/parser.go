// internal/nodeid/parser.go
package nodeid

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// idRegex matches a canonical short identifier, e.g. `G3` or `AT12`.
var idRegex = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)

// ShortID extracts the identifier prefix of a free-form label: everything up
// to the first colon or whitespace, trimmed.
func ShortID(label string) string {
	label = strings.TrimSpace(label)
	end := strings.IndexFunc(label, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
	if end < 0 {
		return label
	}
	return strings.TrimSpace(label[:end])
}

// Parse creates a new Address by parsing a short identifier.
func Parse(rawID string) (*Address, error) {
	if rawID == "" {
		return nil, fmt.Errorf("identifier cannot be empty")
	}

	matches := idRegex.FindStringSubmatch(rawID)
	if matches == nil {
		return nil, fmt.Errorf("identifier %q must be letters followed by a number", rawID)
	}

	number, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("identifier %q has an out of range number: %w", rawID, err)
	}

	return NewAddress(matches[1], number), nil
}
