// Package mcb computes minimum cycle bases and relevant cycles of simple
// undirected graphs given as node-index edge lists.
//
// What:
//
//   - SSSR (smallest set of smallest rings): a minimum cycle basis, i.e. a
//     set of E - V + C linearly independent cycles of minimal total length.
//   - RelevantCycles (RC): the union of all minimum cycle bases; a cycle is
//     relevant iff it is not the GF(2) sum of strictly shorter cycles.
//
// How:
//
//  1. Candidates (Horton / Vismara families): for every root r, every pair of
//     shortest paths r→y, r→z that meet only at r closes into a cycle
//     - over an edge y–z with d(y) = d(z)            (odd cycle, 2d+1), or
//     - over a vertex x adjacent to both, d(x) = d+1 (even cycle, 2d+2).
//     Every relevant cycle is isometric, so it appears in this family.
//  2. Each candidate is encoded as a GF(2) edge-incidence vector
//     (github.com/soniakeys/bits); duplicates collapse on equal vectors.
//  3. Candidates are sorted by length, then by their sorted vertex indices.
//  4. SSSR keeps the greedy independent subset (Gaussian elimination).
//     RC keeps every candidate independent of all strictly shorter ones.
//
// Complexity:
//
//   - Candidate generation enumerates every pair of shortest paths from
//     every root. The count grows combinatorially with the number of
//     equal-length paths, so large fused sheets are expensive: honeycomb
//     lattices of 36, 64 and 100 atoms take roughly 2ms, 30ms and 0.7s
//     (BenchmarkSSSR_Honeycomb). Ordinary molecules stay far below that.
//   - Elimination: O(K·R·E/64) for K candidates and basis rank R.
//
// Errors:
//
//   - ErrBadEdge: endpoint out of range, self-loop, or repeated edge.
//   - ErrNegativeOrder: n < 0.
package mcb
