// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (bond count) from one or
//     more sources (BFS, Walk).
//   - Result carries Order, Depth and Parent; PathTo rebuilds a shortest path.
//   - WithOnVisit may abort the search with an error.
//   - WithFilterNeighbor prunes individual bonds; WithMaxDepth bounds the
//     radius; WithCoverAll continues component by component until every
//     vertex has been visited.
//
// Determinism
//
//	Neighbors are expanded in edge insertion order and CoverAll restarts in
//	graph vertex order, so the visit sequence is reproducible. The vf2
//	matcher relies on this to order pattern vertices.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, start, bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or a hook error
//	}
//	for _, v := range res.Order {
//		fmt.Println(g.IndexOf(v), res.Depth[v])
//	}
package bfs
