// File: candidates.go
// Role: Horton/Vismara candidate cycles from pairs of shortest paths.

package mcb

import (
	"fmt"
	"slices"

	"github.com/soniakeys/bits"
)

// candidates returns the deduplicated candidate cycles sorted by length, then
// by sorted vertex indices; generation order breaks the remaining ties.
func (g *graph) candidates() []cycle {
	seen := make(map[string]struct{})
	var out []cycle
	add := func(path []int) {
		vec := g.edgeVector(path)
		sig := fmt.Sprint(vec.Bits)
		if _, dup := seen[sig]; dup {
			return
		}
		seen[sig] = struct{}{}
		key := slices.Clone(path)
		slices.Sort(key)
		out = append(out, cycle{path: path, edges: vec, key: key})
	}

	for r := 0; r < g.n; r++ {
		sp := g.shortestPaths(r)

		// odd: y–z edge at equal distance
		for y := 0; y < g.n; y++ {
			if sp.dist[y] < 1 {
				continue
			}
			for _, z := range g.adj[y] {
				if z < y || sp.dist[z] != sp.dist[y] {
					continue
				}
				for _, py := range sp.paths(y) {
					for _, pz := range sp.paths(z) {
						if disjoint(py, pz) {
							add(closeRing(py, pz))
						}
					}
				}
			}
		}

		// even: x with two predecessors y, z
		for x := 0; x < g.n; x++ {
			preds := sp.preds[x]
			for i := 0; i < len(preds); i++ {
				for j := i + 1; j < len(preds); j++ {
					for _, py := range sp.paths(preds[i]) {
						for _, pz := range sp.paths(preds[j]) {
							if disjoint(py, pz) {
								add(closeRing(append(slices.Clone(py), x), pz))
							}
						}
					}
				}
			}
		}
	}

	slices.SortStableFunc(out, func(a, b cycle) int {
		if d := len(a.path) - len(b.path); d != 0 {
			return d
		}
		return slices.Compare(a.key, b.key)
	})

	return out
}

// edgeVector encodes a closed vertex sequence as its GF(2) edge-incidence vector.
func (g *graph) edgeVector(path []int) bits.Bits {
	vec := bits.New(g.m)
	for i := range path {
		vec.SetBit(g.edgeID[pair(path[i], path[(i+1)%len(path)])], 1)
	}

	return vec
}

// shortest holds the BFS layers from one root and memoizes its shortest paths.
type shortest struct {
	root  int
	dist  []int
	preds [][]int
	memo  map[int][][]int
}

// shortestPaths runs BFS from r. Unreachable vertices keep dist -1.
func (g *graph) shortestPaths(r int) *shortest {
	sp := &shortest{
		root:  r,
		dist:  make([]int, g.n),
		preds: make([][]int, g.n),
		memo:  make(map[int][][]int),
	}
	for i := range sp.dist {
		sp.dist[i] = -1
	}
	sp.dist[r] = 0
	queue := []int{r}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			switch sp.dist[v] {
			case -1:
				sp.dist[v] = sp.dist[u] + 1
				sp.preds[v] = append(sp.preds[v], u)
				queue = append(queue, v)
			case sp.dist[u] + 1:
				sp.preds[v] = append(sp.preds[v], u)
			}
		}
	}

	return sp
}

// paths returns every shortest path root→v, each starting at root.
// Paths are built layer by layer, so the recursion depth is bounded by dist[v].
func (sp *shortest) paths(v int) [][]int {
	if p, ok := sp.memo[v]; ok {
		return p
	}
	var out [][]int
	if v == sp.root {
		out = [][]int{{v}}
	} else {
		for _, u := range sp.preds[v] {
			for _, p := range sp.paths(u) {
				out = append(out, append(slices.Clone(p), v))
			}
		}
	}
	sp.memo[v] = out

	return out
}

// disjoint reports whether two root paths share no vertex but the root.
func disjoint(a, b []int) bool {
	in := make(map[int]struct{}, len(a))
	for _, v := range a[1:] {
		in[v] = struct{}{}
	}
	for _, v := range b[1:] {
		if _, ok := in[v]; ok {
			return false
		}
	}

	return true
}

// closeRing joins a root path with the reverse of another, minus the shared root.
func closeRing(a, b []int) []int {
	ring := make([]int, 0, len(a)+len(b)-1)
	ring = append(ring, a...)
	for i := len(b) - 1; i >= 1; i-- {
		ring = append(ring, b[i])
	}

	return ring
}
