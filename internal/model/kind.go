// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the vertex and edge kinds of a Goal Model.
package model

// Kind is the kind of a vertex.
type Kind int

const (
	KindGoal Kind = iota + 1
	KindTask
	// KindAnd is an AND-decomposition: every child must be achieved.
	KindAnd
	// KindOr is an OR-decomposition: one child suffices.
	KindOr
)

func (k Kind) String() string {
	switch k {
	case KindGoal:
		return "goal"
	case KindTask:
		return "task"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	default:
		return "unknown"
	}
}

// IsDecomposition reports whether the kind is an AND or OR decomposition.
func (k Kind) IsDecomposition() bool {
	return k == KindAnd || k == KindOr
}

// EdgeKind is the kind of a resolved link.
type EdgeKind int

const (
	EdgeAndRefinement EdgeKind = iota + 1
	EdgeOrRefinement
	EdgeDependency
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeAndRefinement:
		return "and-refinement"
	case EdgeOrRefinement:
		return "or-refinement"
	case EdgeDependency:
		return "dependency"
	default:
		return "unknown"
	}
}

// Hierarchical reports whether edges of this kind establish parent/child
// relations.
func (k EdgeKind) Hierarchical() bool {
	return k == EdgeAndRefinement || k == EdgeOrRefinement
}
