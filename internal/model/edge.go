// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
package model

// Edge is a resolved link between two vertices.
type Edge struct {
	ID string
	// Type is the raw link token as written in the document.
	Type string
	Kind EdgeKind

	// Source and Target are the endpoint ids as written in the document.
	Source string
	Target string

	// From and To are vertex indices. For refinement edges From is the
	// parent and To the child, regardless of how the link was written.
	From int
	To   int
}
