// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: central Graph, Vertex and Edge types, the comparison capabilities
// domain labels plug into, and the sentinel errors of structural misuse.
//
// This file declares VertexData, EdgeData, BlankVertex, BlankEdge, Vertex, Edge,
// Graph, the sentinel errors and the constructors.
//
// Errors:
//
//	ErrInvalidOperation - vertex/edge referenced that is not part of the graph.
//	ErrOrderRestore     - restoring vertex order after the vertex count changed.

package core

import (
	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidOperation indicates an operation referenced a vertex or edge
	// that is not registered in the graph.
	ErrInvalidOperation = errors.New("core: invalid operation")

	// ErrOrderRestore indicates RestoreVertexOrder was called without a usable
	// snapshot (none saved, or the vertex count changed since).
	ErrOrderRestore = errors.New("core: cannot restore vertex order")
)

// Sentinel values of the connectivity caches.
const (
	// Unset marks a stale connectivity value or an unassigned sorting label.
	Unset = -1
)

// VertexData is the comparison capability a domain vertex label (an atom, a
// template atom) supplies to the graph engine.
//
// Equivalent is symmetric equivalence; strict asks the implementation to also
// compare its fine-grained distinguishing attributes. IsSpecificCaseOf is the
// (non-symmetric) "is covered by" relation used for subgraph matching.
type VertexData interface {
	Copy() VertexData
	Equivalent(other VertexData, strict bool) bool
	IsSpecificCaseOf(other VertexData) bool
}

// EdgeData is the comparison capability a domain edge label (a bond, a template
// bond) supplies to the graph engine.
type EdgeData interface {
	Copy() EdgeData
	Equivalent(other EdgeData, strict bool) bool
	IsSpecificCaseOf(other EdgeData) bool
}

// BlankVertex is the default vertex capability: no semantic distinction, every
// comparison holds. A Vertex with nil Data behaves as if it carried BlankVertex.
type BlankVertex struct{}

// Copy returns a fresh BlankVertex.
func (BlankVertex) Copy() VertexData { return BlankVertex{} }

// Equivalent always reports true.
func (BlankVertex) Equivalent(VertexData, bool) bool { return true }

// IsSpecificCaseOf always reports true.
func (BlankVertex) IsSpecificCaseOf(VertexData) bool { return true }

// BlankEdge is the default edge capability (see BlankVertex).
type BlankEdge struct{}

// Copy returns a fresh BlankEdge.
func (BlankEdge) Copy() EdgeData { return BlankEdge{} }

// Equivalent always reports true.
func (BlankEdge) Equivalent(EdgeData, bool) bool { return true }

// IsSpecificCaseOf always reports true.
func (BlankEdge) IsSpecificCaseOf(EdgeData) bool { return true }

// Vertex is a node of a Graph. Identity is the pointer: two vertices with
// equal Data are still distinct entities.
//
// The neighbor map is owned by the Graph mutation methods and is symmetric:
// if u is a neighbor of v through e, v is a neighbor of u through the same e.
// Neighbors iterate in insertion order, which keeps every traversal built on
// top of them reproducible.
type Vertex struct {
	// Data is the domain label; nil means BlankVertex semantics.
	Data VertexData

	// Terminal is a free flag for domain code (e.g. template boundary atoms).
	Terminal bool

	edges *orderedmap.OrderedMap[*Vertex, *Edge]

	connectivity1 int
	connectivity2 int
	connectivity3 int
	sortingLabel  int
}

// Edge connects two vertices. It is stored as an ordered pair but carries no
// direction; an Edge is reachable only through its endpoints' neighbor maps.
type Edge struct {
	// Data is the domain label; nil means BlankEdge semantics.
	Data EdgeData

	vertex1 *Vertex
	vertex2 *Vertex
}

// Graph is an ordered sequence of vertices. Edges are not stored separately:
// they are discovered through the vertices' neighbor maps.
//
// Invariants:
//   - every edge endpoint is a vertex of the graph;
//   - the vertex sequence has no duplicates (AddVertex does not check; callers must not re-add);
//   - connectivity caches are reset on every topology change.
//
// A Graph is not safe for concurrent use. A Graph together with its vertices
// and edges is one logical unit: copy it per worker instead of sharing it.
type Graph struct {
	vertices []*Vertex
	members  map[*Vertex]struct{}

	// savedOrder is the snapshot taken by SortVertices(true).
	savedOrder []*Vertex
}

// NewVertex returns a detached vertex carrying data, with stale caches.
// Complexity: O(1).
func NewVertex(data VertexData) *Vertex {
	return &Vertex{
		Data:          data,
		edges:         orderedmap.New[*Vertex, *Edge](),
		connectivity1: Unset,
		connectivity2: Unset,
		connectivity3: Unset,
		sortingLabel:  Unset,
	}
}

// NewEdge returns an edge between v1 and v2 carrying data. The edge is not
// registered anywhere until passed to Graph.AddEdge.
// Complexity: O(1).
func NewEdge(v1, v2 *Vertex, data EdgeData) *Edge {
	return &Edge{Data: data, vertex1: v1, vertex2: v2}
}

// NewGraph returns a graph holding vs in the given order. Each vertex is added
// with AddVertex, so any previous neighbor map of vs is discarded.
// Complexity: O(len(vs)).
func NewGraph(vs ...*Vertex) *Graph {
	g := &Graph{
		vertices: make([]*Vertex, 0, len(vs)),
		members:  make(map[*Vertex]struct{}, len(vs)),
	}
	for _, v := range vs {
		g.AddVertex(v)
	}

	return g
}

// vertexData resolves the nil label to the blank capability.
func vertexData(v *Vertex) VertexData {
	if v.Data == nil {
		return BlankVertex{}
	}

	return v.Data
}

// edgeData resolves the nil label to the blank capability.
func edgeData(e *Edge) EdgeData {
	if e.Data == nil {
		return BlankEdge{}
	}

	return e.Data
}
