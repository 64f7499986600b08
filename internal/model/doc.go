// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the in-memory representation of a compiled Goal
// Model. It is the output of the builder and the input of the validator.
//
// # Core Concepts
//
//   - Graph: an index-addressed arena of vertices and edges. Vertex indices are
//     dense integers and, once the builder has ordered the graph, equal the
//     canonical position of the vertex. Parent and children are expressed as
//     indices only; the graph owns every record.
//
//   - Vertex: one goal, task or decomposition node. It carries the short name
//     extracted from its label, the parsed robot-count policy and a map of
//     classified properties.
//
//   - Property: a closed sum type. Every value stored in Vertex.Props is exactly
//     one of RawText, ContextRef, QueriedProperty, AchieveCondition,
//     FailureCondition, IterationRule or VarMappingList.
//
//   - Edge: a resolved link between two vertices. Refinement edges always point
//     from the parent to the child.
//
// A Graph is immutable after construction. Accessors hand out copies so that a
// caller can never reach into the arena.
package model
