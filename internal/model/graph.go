// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Graph, the arena that owns every vertex and edge of a
// compiled goal model.
//
// Why an arena of indices?
//
// A goal model is a tree of refinements with extra dependency edges on the
// side. Pointer-linked nodes would make the parent/child relation a cycle of
// references and complicate copying. Storing records in slices and relating
// them by index keeps the graph trivially copyable and makes the canonical
// order the builder computes directly observable as the index order.
package model

// Graph is an immutable, index-addressed goal model.
type Graph struct {
	vertices []Vertex
	edges    []Edge

	byID   map[string]int
	byName map[string]int
}

// New takes ownership of vertices and edges and returns the graph over them.
// It does not validate; that is the validator's job. When ids or names are
// duplicated the lookups resolve to the first occurrence.
func New(vertices []Vertex, edges []Edge) *Graph {
	g := &Graph{
		vertices: vertices,
		edges:    edges,
		byID:     make(map[string]int, len(vertices)),
		byName:   make(map[string]int, len(vertices)),
	}
	for i, v := range vertices {
		if _, ok := g.byID[v.ID]; !ok {
			g.byID[v.ID] = i
		}
		if _, ok := g.byName[v.Name]; !ok {
			g.byName[v.Name] = i
		}
	}
	return g
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	return len(g.vertices)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Vertex returns a copy of the vertex at index i. It panics if i is out of
// range.
func (g *Graph) Vertex(i int) Vertex {
	return g.vertices[i].Clone()
}

// Vertices returns copies of all vertices in index order.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.vertices))
	for i, v := range g.vertices {
		out[i] = v.Clone()
	}
	return out
}

// Edge returns the edge at index i. It panics if i is out of range.
func (g *Graph) Edge(i int) Edge {
	return g.edges[i]
}

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Children returns a copy of the child indices of vertex i.
func (g *Graph) Children(i int) []int {
	return append([]int(nil), g.vertices[i].Children...)
}

// Parent returns the parent index of vertex i, or NoParent.
func (g *Graph) Parent(i int) int {
	return g.vertices[i].Parent
}

// Name returns the short name of vertex i without copying the record.
func (g *Graph) Name(i int) string {
	return g.vertices[i].Name
}

// FindByID returns the index of the vertex with the given document id.
func (g *Graph) FindByID(id string) (int, bool) {
	i, ok := g.byID[id]
	return i, ok
}

// FindByName returns the index of the vertex with the given short name.
func (g *Graph) FindByName(name string) (int, bool) {
	i, ok := g.byName[name]
	return i, ok
}

// Roots returns the indices of all parentless vertices in ascending order.
func (g *Graph) Roots() []int {
	var roots []int
	for i, v := range g.vertices {
		if !v.HasParent() {
			roots = append(roots, i)
		}
	}
	return roots
}
