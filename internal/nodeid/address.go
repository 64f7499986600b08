// internal/nodeid/address.go
package nodeid

import (
	"strconv"
)

// String serializes the Address into its canonical string representation.
func (a *Address) String() string {
	if a == nil {
		return ""
	}
	return a.Prefix + strconv.Itoa(a.Number)
}

// Equal checks for equality between two Address pointers.
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Prefix == other.Prefix && a.Number == other.Number
}
