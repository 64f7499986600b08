package config

// Tree is the unified, format-agnostic representation of one goal model
// document. Record order is the document order.
type Tree struct {
	Nodes []RawNode
	Links []RawLink
}

// RawNode is one node record as written in the document. Nothing in it has
// been interpreted yet.
type RawNode struct {
	ID   string `validate:"required"`
	Text string `validate:"required"`
	// Type is the node type token, e.g. "istar.Goal".
	Type string `validate:"required"`
	X    float64
	Y    float64

	// Properties are the custom annotations in document order.
	Properties []Property `validate:"dive"`

	// Optional scheduling and policy fields. Nil means the document did not
	// set them; a property with the same name may still do so.
	Periodic    *bool
	Period      *float64
	Deadline    *float64
	RobotNumber string
	Group       *bool
	Divisible   *bool
}

// Property is one custom annotation of a node.
type Property struct {
	Key   string `validate:"required"`
	Value string
}

// RawLink is one link record as written in the document.
type RawLink struct {
	ID     string `validate:"required"`
	Type   string `validate:"required"`
	Source string `validate:"required"`
	Target string `validate:"required"`
}

// Prop returns the value of the first property named key.
func (n RawNode) Prop(key string) (string, bool) {
	for _, p := range n.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}
