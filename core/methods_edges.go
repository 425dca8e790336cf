// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/EdgesOf/Edges/EdgeCount,
//       plus the per-edge endpoint accessors and comparison hooks.
// Determinism:
//   - Edges() walks vertices in sequence order and each neighbor map in insertion order,
//     reporting every undirected edge once (from its first-seen endpoint).
// AI-HINT (file):
//   - Edges live only in the endpoints' neighbor maps; there is no global edge catalog.
//   - AddEdge overwrites an existing edge between the same pair (no multigraphs).

package core

import (
	"github.com/pkg/errors"
)

// V1 returns the first endpoint of e.
func (e *Edge) V1() *Vertex { return e.vertex1 }

// V2 returns the second endpoint of e.
func (e *Edge) V2() *Vertex { return e.vertex2 }

// Other returns the endpoint of e opposite to v, or nil when v is not an endpoint.
func (e *Edge) Other(v *Vertex) *Vertex {
	switch v {
	case e.vertex1:
		return e.vertex2
	case e.vertex2:
		return e.vertex1
	default:
		return nil
	}
}

// Copy returns a detached edge with the same endpoints and a copy of e's Data.
// Graph.Copy rewires the endpoints of the result.
func (e *Edge) Copy() *Edge {
	return NewEdge(e.vertex1, e.vertex2, edgeData(e).Copy())
}

// Equivalent reports whether e and other carry equivalent labels.
func (e *Edge) Equivalent(other *Edge, strict bool) bool {
	return edgeData(e).Equivalent(edgeData(other), strict)
}

// IsSpecificCaseOf reports whether e's label is covered by other's label.
func (e *Edge) IsSpecificCaseOf(other *Edge) bool {
	return edgeData(e).IsSpecificCaseOf(edgeData(other))
}

// AddEdge registers e in both endpoints' neighbor maps.
//
// Behavior highlights:
//   - An existing edge between the same pair is replaced by e.
//   - Self-loops are rejected: molecular graphs are simple graphs.
//   - Resets the connectivity caches.
//
// Errors:
//   - ErrInvalidOperation: an endpoint is not in the graph, or V1 == V2.
//
// Complexity: O(V) for the cache reset, O(1) amortized for the insertion.
func (g *Graph) AddEdge(e *Edge) (*Edge, error) {
	if !g.HasVertex(e.vertex1) || !g.HasVertex(e.vertex2) {
		return nil, errors.Wrap(ErrInvalidOperation, "AddEdge: endpoint not in graph")
	}
	if e.vertex1 == e.vertex2 {
		return nil, errors.Wrap(ErrInvalidOperation, "AddEdge: self-loop")
	}
	e.vertex1.edges.Set(e.vertex2, e)
	e.vertex2.edges.Set(e.vertex1, e)
	g.ResetConnectivityValues()

	return e, nil
}

// RemoveEdge unregisters e from both endpoints.
//
// Errors:
//   - ErrInvalidOperation: e is not the edge currently registered between its endpoints.
//
// Complexity: O(V) for the cache reset.
func (g *Graph) RemoveEdge(e *Edge) error {
	if !g.HasVertex(e.vertex1) || !g.HasVertex(e.vertex2) {
		return errors.Wrap(ErrInvalidOperation, "RemoveEdge: endpoint not in graph")
	}
	cur, ok := e.vertex1.edges.Get(e.vertex2)
	if !ok || cur != e {
		return errors.Wrap(ErrInvalidOperation, "RemoveEdge: edge not in graph")
	}
	e.vertex1.edges.Delete(e.vertex2)
	e.vertex2.edges.Delete(e.vertex1)
	g.ResetConnectivityValues()

	return nil
}

// HasEdge reports whether v1 and v2 are adjacent in g.
// Complexity: O(1).
func (g *Graph) HasEdge(v1, v2 *Vertex) bool {
	if !g.HasVertex(v1) || !g.HasVertex(v2) {
		return false
	}

	return v1.IsNeighbor(v2)
}

// GetEdge returns the edge joining v1 and v2.
//
// Errors:
//   - ErrInvalidOperation: either vertex is absent, or they are not adjacent.
func (g *Graph) GetEdge(v1, v2 *Vertex) (*Edge, error) {
	if !g.HasVertex(v1) || !g.HasVertex(v2) {
		return nil, errors.Wrap(ErrInvalidOperation, "GetEdge: vertex not in graph")
	}
	e, ok := v1.EdgeTo(v2)
	if !ok {
		return nil, errors.Wrap(ErrInvalidOperation, "GetEdge: vertices not adjacent")
	}

	return e, nil
}

// EdgesOf returns the edges incident to v in insertion order.
//
// Errors:
//   - ErrInvalidOperation: v is not part of the graph.
func (g *Graph) EdgesOf(v *Vertex) ([]*Edge, error) {
	if !g.HasVertex(v) {
		return nil, errors.Wrap(ErrInvalidOperation, "EdgesOf: vertex not in graph")
	}

	return v.Edges(), nil
}

// Edges returns every edge exactly once.
// Order: vertex sequence order, then neighbor insertion order; an edge is
// reported when first reached.
// Complexity: O(V + E).
func (g *Graph) Edges() []*Edge {
	seen := make(map[*Edge]struct{})
	out := make([]*Edge, 0)
	for _, v := range g.vertices {
		for p := v.edges.Oldest(); p != nil; p = p.Next() {
			if _, dup := seen[p.Value]; dup {
				continue
			}
			seen[p.Value] = struct{}{}
			out = append(out, p.Value)
		}
	}

	return out
}

// EdgeCount returns the number of edges.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	sum := 0
	for _, v := range g.vertices {
		sum += v.edges.Len()
	}

	return sum / 2
}
