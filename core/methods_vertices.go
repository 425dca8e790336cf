// File: methods_vertices.go
// Role: Vertex lifecycle & queries, plus the per-vertex comparison hooks.
//
// Determinism:
//   - Vertices() returns the graph's sequence order.
//   - Neighbors()/Edges() on a Vertex return insertion order.
//
// Concurrency:
//   - None. Callers own the graph exclusively while mutating it.
package core

import (
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Copy returns a fresh, detached vertex whose Data is a copy of v's Data and
// whose Terminal flag matches v. Caches and neighbors are not carried over.
// Complexity: O(1) plus the cost of Data.Copy.
func (v *Vertex) Copy() *Vertex {
	c := NewVertex(vertexData(v).Copy())
	c.Terminal = v.Terminal

	return c
}

// Equivalent reports whether v and other carry equivalent labels.
func (v *Vertex) Equivalent(other *Vertex, strict bool) bool {
	return vertexData(v).Equivalent(vertexData(other), strict)
}

// IsSpecificCaseOf reports whether v's label is covered by other's label.
func (v *Vertex) IsSpecificCaseOf(other *Vertex) bool {
	return vertexData(v).IsSpecificCaseOf(vertexData(other))
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (v *Vertex) Degree() int {
	if v.edges == nil {
		return 0
	}

	return v.edges.Len()
}

// Neighbors returns v's neighbors in insertion order.
// Complexity: O(d).
func (v *Vertex) Neighbors() []*Vertex {
	if v.edges == nil {
		return nil
	}
	out := make([]*Vertex, 0, v.edges.Len())
	for p := v.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}

	return out
}

// Edges returns the edges incident to v in insertion order.
// Complexity: O(d).
func (v *Vertex) Edges() []*Edge {
	if v.edges == nil {
		return nil
	}
	out := make([]*Edge, 0, v.edges.Len())
	for p := v.edges.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}

	return out
}

// EdgeTo returns the edge joining v and u, if any.
// Complexity: O(1).
func (v *Vertex) EdgeTo(u *Vertex) (*Edge, bool) {
	if v.edges == nil {
		return nil, false
	}

	return v.edges.Get(u)
}

// IsNeighbor reports whether u is adjacent to v.
func (v *Vertex) IsNeighbor(u *Vertex) bool {
	_, ok := v.EdgeTo(u)
	return ok
}

// AddVertex appends v to the graph and resets its neighbor map to empty.
//
// Behavior highlights:
//   - No duplicate check: adding the same vertex twice corrupts the ordering
//     invariants; it is the caller's responsibility not to do so.
//   - Resets the connectivity caches of the whole graph.
//
// Complexity: O(V) for the cache reset, O(1) for the insertion itself.
func (g *Graph) AddVertex(v *Vertex) *Vertex {
	v.edges = orderedmap.New[*Vertex, *Edge]()
	g.vertices = append(g.vertices, v)
	g.members[v] = struct{}{}
	g.ResetConnectivityValues()

	return v
}

// HasVertex reports whether v is part of the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v *Vertex) bool {
	_, ok := g.members[v]
	return ok
}

// RemoveVertex detaches v from every neighbor, clears its own neighbor map and
// removes it from the vertex sequence. Neighbors left isolated stay in the graph.
//
// Errors:
//   - ErrInvalidOperation: v is not part of the graph.
//
// Complexity: O(V + d).
func (g *Graph) RemoveVertex(v *Vertex) error {
	if !g.HasVertex(v) {
		return errors.Wrap(ErrInvalidOperation, "RemoveVertex: vertex not in graph")
	}
	for p := v.edges.Oldest(); p != nil; p = p.Next() {
		p.Key.edges.Delete(v)
	}
	v.edges = orderedmap.New[*Vertex, *Edge]()

	idx := g.IndexOf(v)
	g.vertices = append(g.vertices[:idx], g.vertices[idx+1:]...)
	delete(g.members, v)
	g.ResetConnectivityValues()

	return nil
}

// Vertices returns a copy of the vertex sequence.
// Complexity: O(V).
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertex returns the vertex at position i of the sequence.
// It panics if i is out of range, like a slice index.
func (g *Graph) Vertex(i int) *Vertex { return g.vertices[i] }

// IndexOf returns the position of v in the vertex sequence, or -1.
// Complexity: O(V).
func (g *Graph) IndexOf(v *Vertex) int {
	if !g.HasVertex(v) {
		return -1
	}
	for i, u := range g.vertices {
		if u == v {
			return i
		}
	}

	return -1
}

// Neighbors returns the neighbors of a graph vertex in insertion order.
//
// Errors:
//   - ErrInvalidOperation: v is not part of the graph.
func (g *Graph) Neighbors(v *Vertex) ([]*Vertex, error) {
	if !g.HasVertex(v) {
		return nil, errors.Wrap(ErrInvalidOperation, "Neighbors: vertex not in graph")
	}

	return v.Neighbors(), nil
}

// Degree returns the number of neighbors of a graph vertex.
//
// Errors:
//   - ErrInvalidOperation: v is not part of the graph.
func (g *Graph) Degree(v *Vertex) (int, error) {
	if !g.HasVertex(v) {
		return 0, errors.Wrap(ErrInvalidOperation, "Degree: vertex not in graph")
	}

	return v.Degree(), nil
}
