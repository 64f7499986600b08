// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Vertex, the record for one node of the goal model, and
// RobotCount, its robot-allocation policy.
package model

import (
	"fmt"
	"maps"
	"slices"
)

// NoParent is the Parent value of a vertex without a parent.
const NoParent = -1

// Property keys with a meaning beyond their payload.
const (
	PropAchieveCondition = "AchieveCondition"
	PropFailureCondition = "FailureCondition"
)

// RobotCount is the number of robots a task needs. Fixed counts have
// Min == Max.
type RobotCount struct {
	Min   int
	Max   int
	Fixed bool
}

// ExactRobots returns a fixed robot count of n.
func ExactRobots(n int) RobotCount {
	return RobotCount{Min: n, Max: n, Fixed: true}
}

// RobotRange returns a variable robot count between lo and hi inclusive.
func RobotRange(lo, hi int) RobotCount {
	return RobotCount{Min: lo, Max: hi}
}

// Covers reports whether every count allowed by o is also allowed by r.
func (r RobotCount) Covers(o RobotCount) bool {
	return r.Min <= o.Min && o.Max <= r.Max
}

// String renders the count in its source syntax, "[n]" or "[min,max]".
func (r RobotCount) String() string {
	if r.Fixed {
		return fmt.Sprintf("[%d]", r.Min)
	}
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}

// Vertex is one goal, task or decomposition node.
type Vertex struct {
	// ID is the document identifier that links refer to.
	ID string
	// Name is the short identifier extracted from the label, e.g. "G3".
	Name string
	// Text is the full label.
	Text string
	Kind Kind

	Parent   int
	Children []int

	Props map[string]Property

	X, Y float64

	Periodic bool
	Period   float64
	Deadline float64

	Group     bool
	Divisible bool

	// RobotCount is nil when the node declares none.
	RobotCount *RobotCount
}

// NewVertex returns a parentless vertex with the default policy flags.
func NewVertex(id, name, text string, kind Kind) Vertex {
	return Vertex{
		ID:        id,
		Name:      name,
		Text:      text,
		Kind:      kind,
		Parent:    NoParent,
		Props:     make(map[string]Property),
		Group:     true,
		Divisible: true,
	}
}

// HasParent reports whether the vertex has a parent.
func (v Vertex) HasParent() bool {
	return v.Parent != NoParent
}

// IsLeaf reports whether the vertex has no children.
func (v Vertex) IsLeaf() bool {
	return len(v.Children) == 0
}

// Prop returns the property stored under key.
func (v Vertex) Prop(key string) (Property, bool) {
	p, ok := v.Props[key]
	return p, ok
}

// Clone returns a deep copy of v.
func (v Vertex) Clone() Vertex {
	c := v
	c.Children = append([]int(nil), v.Children...)
	if v.Props != nil {
		c.Props = make(map[string]Property, len(v.Props))
		for k, p := range v.Props {
			c.Props[k] = CloneProperty(p)
		}
	}
	if v.RobotCount != nil {
		rc := *v.RobotCount
		c.RobotCount = &rc
	}
	return c
}

// PropKeys returns the property keys of v in sorted order.
func (v Vertex) PropKeys() []string {
	return sortedKeys(v.Props)
}

func sortedKeys(m map[string]Property) []string {
	return slices.Sorted(maps.Keys(m))
}
