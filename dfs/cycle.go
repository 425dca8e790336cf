// File: cycle.go
// Role: Cycle Finder: chain-based enumeration of simple cycles on an
//       undirected core.Graph, plus the linear-time cyclic-vertex test.
//
// A chain is a simple path [start, ..., tail]. It is extended one neighbor at
// a time in insertion order; when the tail is adjacent to start and the chain
// holds more than two vertices, the chain is a cycle. Every undirected cycle
// through start is therefore reported twice, once per traversal direction.
// Consumers that need sets collapse the duplicates with UniqueCycles.
//
// Complexity:
//
//   - AllCycles: exponential in the worst case (one chain per simple path).
//   - CyclicVertices / IsCyclic: O(V + E) (bridge detection over one Walk).
package dfs

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

// exploreChains enumerates every simple path from start in DFS order and calls
// onCycle for each one that closes back to start. onCycle receives the live
// chain; it must copy it to keep it. Returning true from onCycle stops the search.
// maxDepth bounds the number of edges in a chain (Unbounded disables it).
func exploreChains(start *core.Vertex, maxDepth int, onCycle func(chain []*core.Vertex) bool) {
	chain := []*core.Vertex{start}
	inChain := map[*core.Vertex]bool{start: true}
	stack := arraystack.New()
	stack.Push(newFrame(start, 0))

	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.next == len(f.nbrs) {
			stack.Pop()
			delete(inChain, f.v)
			chain = chain[:len(chain)-1]
			continue
		}
		u := f.nbrs[f.next]
		f.next++

		if u == start && len(chain) > 2 {
			if onCycle(chain) {
				return
			}
			continue
		}
		if inChain[u] {
			continue
		}
		if maxDepth != Unbounded && f.depth+1 > maxDepth {
			continue
		}
		chain = append(chain, u)
		inChain[u] = true
		stack.Push(newFrame(u, f.depth+1))
	}
}

// IsVertexInCycle reports whether v lies on at least one simple cycle of g.
//
// Errors:
//   - ErrGraphNil; core.ErrInvalidOperation if v is not in g.
func IsVertexInCycle(g *core.Graph, v *core.Vertex) (bool, error) {
	if err := checkVertex(g, v, "IsVertexInCycle"); err != nil {
		return false, err
	}
	found := false
	exploreChains(v, Unbounded, func([]*core.Vertex) bool {
		found = true
		return true
	})

	return found, nil
}

// IsEdgeInCycle reports whether e lies on at least one simple cycle of g, i.e.
// whether some cycle through e.V1() also passes through e.V2().
//
// Errors:
//   - ErrGraphNil; core.ErrInvalidOperation if e is not registered in g.
func IsEdgeInCycle(g *core.Graph, e *core.Edge) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if cur, err := g.GetEdge(e.V1(), e.V2()); err != nil || cur != e {
		return false, errors.Wrap(core.ErrInvalidOperation, "dfs: IsEdgeInCycle: edge not in graph")
	}
	target := e.V2()
	found := false
	exploreChains(e.V1(), Unbounded, func(chain []*core.Vertex) bool {
		for _, u := range chain {
			if u == target {
				found = true
				return true
			}
		}
		return false
	})

	return found, nil
}

// AllCycles returns every simple cycle through start as a vertex sequence
// beginning with start, in DFS discovery order. Each undirected cycle appears
// twice (both traversal directions).
//
// Errors:
//   - ErrGraphNil; core.ErrInvalidOperation if start is not in g.
func AllCycles(g *core.Graph, start *core.Vertex, opts ...Option) ([][]*core.Vertex, error) {
	if err := checkVertex(g, start, "AllCycles"); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	return allCycles(start, o.MaxDepth), nil
}

func allCycles(start *core.Vertex, maxDepth int) [][]*core.Vertex {
	var cycles [][]*core.Vertex
	exploreChains(start, maxDepth, func(chain []*core.Vertex) bool {
		cycles = append(cycles, append([]*core.Vertex(nil), chain...))
		return false
	})

	return cycles
}

// LargestRing returns the longest cycle through v (the first found among equals),
// or nil when v is acyclic.
//
// Errors:
//   - ErrGraphNil; core.ErrInvalidOperation if v is not in g.
func LargestRing(g *core.Graph, v *core.Vertex, opts ...Option) ([]*core.Vertex, error) {
	cycles, err := AllCycles(g, v, opts...)
	if err != nil {
		return nil, err
	}
	var ring []*core.Vertex
	for _, c := range cycles {
		if len(c) > len(ring) {
			ring = c
		}
	}

	return ring, nil
}

// AllCyclesOfSize returns every distinct cycle of exactly n vertices in g,
// as sequences of g's own vertices.
//
// Implementation:
//   - Stage 1: Deep-copy g; strip terminal (degree ≤ 1) vertices until none
//     remain, then drop every vertex not on a cycle; split into components.
//   - Stage 2: Per component, repeatedly pick as root the least connected
//     vertex (largest SortKey, first in sequence among equals), keep its
//     cycles of length n, remove the root, and strip new terminal vertices.
//   - Stage 3: Map the cycles back to g's vertices; collapse duplicates with
//     UniqueCycles.
//
// Every cycle is found from its first-removed member, so the result is
// exhaustive; chains are bounded at n vertices. The cost on cages (e.g.
// cubane, where every vertex has degree 3) is still exponential in n.
//
// Errors:
//   - ErrGraphNil.
func AllCyclesOfSize(g *core.Graph, n int) ([][]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if n < 3 {
		return nil, nil
	}

	stripped, toNew := g.CopyAndMap()
	toOld := make(map[*core.Vertex]*core.Vertex, len(toNew))
	for o, c := range toNew {
		toOld[c] = o
	}
	stripTerminals(stripped)
	cyclic := cyclicSet(stripped)
	for _, v := range stripped.Vertices() {
		if !cyclic[v] {
			_ = stripped.RemoveVertex(v)
		}
	}

	var found [][]*core.Vertex
	if stripped.VertexCount() == 0 {
		return nil, nil
	}
	for _, component := range stripped.Split() {
		for component.VertexCount() > 0 {
			component.UpdateConnectivityValues()
			root := leastConnected(component)
			for _, c := range allCycles(root, n-1) {
				if len(c) != n {
					continue
				}
				mapped := make([]*core.Vertex, n)
				for i, v := range c {
					mapped[i] = toOld[v]
				}
				found = append(found, mapped)
			}
			_ = component.RemoveVertex(root)
			stripTerminals(component)
		}
	}

	return UniqueCycles(found), nil
}

// AllSimpleCyclesOfSize is AllCyclesOfSize restricted to chordless rings: a
// cycle is dropped when one of its vertices has more than two neighbors
// inside the cycle.
func AllSimpleCyclesOfSize(g *core.Graph, n int) ([][]*core.Vertex, error) {
	cycles, err := AllCyclesOfSize(g, n)
	if err != nil {
		return nil, err
	}
	out := make([][]*core.Vertex, 0, len(cycles))
	for _, c := range cycles {
		if isChordless(c) {
			out = append(out, c)
		}
	}

	return out, nil
}

// CyclicVertices returns the vertices of g lying on at least one cycle, in
// sequence order.
//
// Implementation:
//   - One forest Walk gives depth, parent and post-order.
//   - Low-links in post-order identify bridges; a vertex is cyclic iff some
//     incident edge is not a bridge.
//
// Complexity: O(V + E).
func CyclicVertices(g *core.Graph) ([]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	set := cyclicSet(g)
	out := make([]*core.Vertex, 0, len(set))
	for _, v := range g.Vertices() {
		if set[v] {
			out = append(out, v)
		}
	}

	return out, nil
}

// IsCyclic reports whether g contains at least one cycle.
func IsCyclic(g *core.Graph) (bool, error) {
	vs, err := CyclicVertices(g)
	if err != nil {
		return false, err
	}

	return len(vs) > 0, nil
}

// cyclicSet marks every vertex incident to a non-bridge edge.
func cyclicSet(g *core.Graph) map[*core.Vertex]bool {
	res, _ := Walk(g, nil, WithFullTraversal())
	low := make(map[*core.Vertex]int, len(res.Order))
	out := make(map[*core.Vertex]bool)

	for _, v := range res.Order {
		lv := res.Depth[v]
		parent, hasParent := res.Parent[v]
		for _, u := range v.Neighbors() {
			if p, ok := res.Parent[u]; ok && p == v {
				lv = min(lv, low[u])
				continue
			}
			if hasParent && u == parent {
				continue
			}
			// back edge: always on a cycle
			lv = min(lv, res.Depth[u])
			out[v] = true
			out[u] = true
		}
		low[v] = lv
		if hasParent && lv <= res.Depth[parent] {
			out[v] = true
			out[parent] = true
		}
	}

	return out
}

// stripTerminals removes degree-0 and degree-1 vertices until none remain.
func stripTerminals(g *core.Graph) {
	for {
		removed := false
		for _, v := range g.Vertices() {
			if v.Degree() <= 1 {
				_ = g.RemoveVertex(v)
				removed = true
			}
		}
		if !removed {
			return
		}
	}
}

// leastConnected returns the vertex with the largest SortKey, first in
// sequence order among equals. Connectivity values must be current.
func leastConnected(g *core.Graph) *core.Vertex {
	var best *core.Vertex
	for _, v := range g.Vertices() {
		if best == nil || v.SortKey() > best.SortKey() {
			best = v
		}
	}

	return best
}

// isChordless reports whether every member of c has at most two neighbors in c.
func isChordless(c []*core.Vertex) bool {
	members := make(map[*core.Vertex]struct{}, len(c))
	for _, v := range c {
		members[v] = struct{}{}
	}
	for _, v := range c {
		count := 0
		for _, u := range v.Neighbors() {
			if _, ok := members[u]; ok {
				count++
			}
		}
		if count > 2 {
			return false
		}
	}

	return true
}

func checkVertex(g *core.Graph, v *core.Vertex, op string) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasVertex(v) {
		return errors.Wrapf(core.ErrInvalidOperation, "dfs: %s: vertex not in graph", op)
	}

	return nil
}
