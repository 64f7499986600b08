// internal/nodeid/types.go
package nodeid

// GoalPrefix is the identifier prefix of goal-class nodes.
const GoalPrefix = "G"

// Address is the structured representation of a short node identifier.
type Address struct {
	Prefix string
	Number int
}

// NewAddress creates an Address from its parts.
func NewAddress(prefix string, number int) *Address {
	return &Address{Prefix: prefix, Number: number}
}

// IsGoal reports whether the identifier belongs to the goal class.
func (a *Address) IsGoal() bool {
	return a != nil && a.Prefix == GoalPrefix
}
