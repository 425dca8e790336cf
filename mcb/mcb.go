// File: mcb.go
// Role: public entry points (SSSR, RelevantCycles) and input validation.

package mcb

import (
	"github.com/pkg/errors"
)

// SSSR returns a minimum cycle basis of the graph on vertices 0..n-1 with the
// given edges. Each cycle is a vertex sequence in ring order; cycles are
// ordered by length, then by their sorted vertex indices.
//
// Errors:
//   - ErrNegativeOrder, ErrBadEdge (wrapped with the offending edge).
//
// Complexity: see package doc.
func (c *Calculator) SSSR(n int, edges [][2]int) ([][]int, error) {
	g, err := newGraph(n, edges)
	if err != nil {
		return nil, err
	}
	rank := g.m - g.n + g.components()
	if rank == 0 {
		return nil, nil
	}

	basis := newEliminator()
	out := make([][]int, 0, rank)
	for _, cand := range g.candidates() {
		if !basis.insert(cand.edges) {
			continue
		}
		out = append(out, cand.path)
		if basis.rank() == rank {
			break
		}
	}

	return out, nil
}

// RelevantCycles returns every relevant cycle of the graph, in the same order
// and representation as SSSR.
//
// Implementation:
//   - Stage 1: Group candidates by length.
//   - Stage 2: A candidate is relevant iff it is independent of the span of
//     all strictly shorter candidates.
//   - Stage 3: After a group is tested, its members join the span.
func (c *Calculator) RelevantCycles(n int, edges [][2]int) ([][]int, error) {
	g, err := newGraph(n, edges)
	if err != nil {
		return nil, err
	}
	cands := g.candidates()
	shorter := newEliminator()
	var out [][]int

	for i := 0; i < len(cands); {
		j := i
		for j < len(cands) && len(cands[j].path) == len(cands[i].path) {
			j++
		}
		for _, cand := range cands[i:j] {
			if shorter.independent(cand.edges) {
				out = append(out, cand.path)
			}
		}
		for _, cand := range cands[i:j] {
			shorter.insert(cand.edges)
		}
		i = j
	}

	return out, nil
}

// newGraph validates the edge list and builds adjacency in input order.
func newGraph(n int, edges [][2]int) (*graph, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrNegativeOrder, "n=%d", n)
	}
	g := &graph{
		n:      n,
		adj:    make([][]int, n),
		edgeID: make(map[[2]int]int, len(edges)),
	}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || v < 0 || u >= n || v >= n {
			return nil, errors.Wrapf(ErrBadEdge, "edge %d-%d out of range [0,%d)", u, v, n)
		}
		if u == v {
			return nil, errors.Wrapf(ErrBadEdge, "self-loop on %d", u)
		}
		k := pair(u, v)
		if _, dup := g.edgeID[k]; dup {
			return nil, errors.Wrapf(ErrBadEdge, "edge %d-%d listed twice", u, v)
		}
		g.edgeID[k] = g.m
		g.m++
		g.adj[u] = append(g.adj[u], v)
		g.adj[v] = append(g.adj[v], u)
	}

	return g, nil
}

// components counts connected components (isolated vertices included).
func (g *graph) components() int {
	seen := make([]bool, g.n)
	count := 0
	for s := 0; s < g.n; s++ {
		if seen[s] {
			continue
		}
		count++
		seen[s] = true
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.adj[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
	}

	return count
}
