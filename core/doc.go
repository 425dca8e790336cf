// Package core provides the labeled, undirected molecular Graph ADT: vertex and
// edge lifecycle, structural copy/merge/split, the connectivity indexer used for
// canonical ordering, and the mapping-validity contract every isomorphism search
// must satisfy.
//
// The Graph G = (V,E) is built around a few rules:
//
//   - Vertices and edges are referenced by pointer identity; labels live in
//     pluggable Data capabilities (VertexData / EdgeData).
//   - Edges are stored only in the endpoints' neighbor maps, which are
//     insertion-ordered (github.com/wk8/go-ordered-map/v2) and symmetric.
//   - The vertex sequence is ordered; SortVertices reorders it by connectivity
//     and RestoreVertexOrder undoes that.
//   - Every topology change resets the connectivity caches.
//
// Why core.Graph?
//
//   - Domain-agnostic: atoms, bonds and template atoms plug in through three
//     comparison hooks (Copy, Equivalent, IsSpecificCaseOf).
//   - Deterministic iteration: neighbors keep insertion order, so every
//     traversal built on top (cycle search, matching) is reproducible.
//   - Cheap sharing: Merge and Split share vertices; Copy(true) isolates.
//
// Comparison capabilities:
//
//	VertexData / EdgeData
//	    Copy() T
//	    Equivalent(other T, strict bool) bool
//	    IsSpecificCaseOf(other T) bool
//	BlankVertex / BlankEdge
//	    The default: every comparison holds. nil Data behaves the same.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v *Vertex) *Vertex          // O(V) (cache reset)
//	RemoveVertex(v *Vertex) error         // O(V + d)
//	HasVertex(v *Vertex) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(e *Edge) (*Edge, error)       // O(V) (cache reset)
//	RemoveEdge(e *Edge) error             // O(V) (cache reset)
//	HasEdge(v1, v2 *Vertex) bool          // O(1)
//	GetEdge(v1, v2 *Vertex) (*Edge, error)
//
//	// Query
//	Vertices() []*Vertex / Edges() []*Edge / Neighbors(v) / EdgesOf(v)
//	VertexCount() / EdgeCount() / IndexOf(v) / Degree(v)
//
//	// Structure
//	Copy(deep bool) *Graph
//	CopyAndMap() (*Graph, map[*Vertex]*Vertex)
//	Merge(other *Graph) *Graph
//	Split() []*Graph
//
//	// Connectivity indexer
//	UpdateConnectivityValues() / ResetConnectivityValues()
//	SortVertices(saveOrder bool) / RestoreVertexOrder() error
//	(*Vertex).Connectivity() / SortKey() / SortingLabel()
//
//	// Matching
//	IsMappingValid(other, mapping, equivalent, strict) bool
//	IsIsomorphic / FindIsomorphism / IsSubgraphIsomorphic /
//	FindSubgraphIsomorphisms (delegating to a Matcher)
//
// Connectivity values (Morgan-style):
//
//	c1(v) = deg(v)
//	c2(v) = Σ c1(u) over neighbors u
//	c3(v) = Σ c2(u) over neighbors u
//	SortKey(v) = -256·c1 - 16·c2 - c3   (ascending = most connected first)
//
// Concurrency:
//
//	A Graph is not safe for concurrent use, and connectivity caches live on
//	the vertices. Treat a Graph plus its vertices as one unit: Copy(true) per
//	worker rather than sharing.
//
// Errors:
//
//	ErrInvalidOperation – vertex/edge not registered in the graph
//	ErrOrderRestore     – no snapshot, or vertex count changed since SortVertices(true)
//
// Errors are wrapped with github.com/pkg/errors; branch with errors.Is.
package core
