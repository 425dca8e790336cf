// Package dfs implements depth-first traversal and the Cycle Finder on a
// core.Graph: simple-cycle enumeration by chain extension, ring queries by
// size, and linear-time cyclic-vertex detection.
//
// What:
//
//   - Walk: explores as far as possible along each branch before
//     backtracking, on an explicit stack. Supports:
//   - Pre-order and post-order hooks
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal
//   - AllCycles: every simple cycle through a start vertex, found by
//     extending chains [start, ..., tail] until the tail closes on start.
//     Each undirected cycle is reported twice, once per direction.
//   - AllCyclesOfSize / AllSimpleCyclesOfSize: distinct rings of a given
//     size, using the stripped-graph technique (strip terminal and acyclic
//     vertices, then root at the least connected vertex and remove it).
//   - IsVertexInCycle / IsEdgeInCycle / LargestRing: chain-based queries.
//   - CyclicVertices / IsCyclic: bridge detection over one Walk.
//   - UniqueCycles: the single vertex-set deduplication used by every
//     set-returning consumer.
//
// Why:
//   - Ring perception needs exact cycle enumeration with well-defined
//     duplicate and ordering rules.
//   - Molecules are small but some are cages; iterative traversal and depth
//     bounds keep pathological inputs from exhausting the stack.
//
// Complexity:
//
//   - Walk, CyclicVertices, IsCyclic: Time O(V+E), Memory O(V)
//   - AllCycles, IsVertexInCycle, IsEdgeInCycle, LargestRing: exponential
//     in the worst case (one chain per simple path from the start)
//   - AllCyclesOfSize(n): bounded at chains of n vertices
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - core.ErrInvalidOperation start vertex / edge not in graph
//   - hook errors              propagated from OnVisit or OnExit
package dfs
