// internal/nodeid/compare.go
package nodeid

import (
	"cmp"
	"strings"
)

// Compare is a total order over short identifiers. Goal identifiers sort
// before every other class; within a class identifiers ascend by number,
// then by prefix. Spellings of the same address ("G1", "G01") are ordered by
// their raw text. Identifiers that do not parse sort after all conforming
// ones, ordered by their raw text.
func Compare(a, b string) int {
	addrA, errA := Parse(a)
	addrB, errB := Parse(b)

	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}

	if c := CompareAddress(addrA, addrB); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// CompareAddress orders two parsed identifiers.
func CompareAddress(a, b *Address) int {
	if c := cmp.Compare(class(a), class(b)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Number, b.Number); c != 0 {
		return c
	}
	return strings.Compare(a.Prefix, b.Prefix)
}

func class(a *Address) int {
	if a.IsGoal() {
		return 0
	}
	return 1
}
