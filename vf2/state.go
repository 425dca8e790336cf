// File: state.go
// Role: search state, pattern order and the backtracking loop.
// AI-HINT (file):
//   - core1/core2 are the partial mapping in both directions; the graphs'
//     vertices are never touched during the search.
//   - The loop runs on an explicit stack (one frame per pattern vertex), so
//     pattern size does not bound goroutine stack depth.

package vf2

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/molgraph/bfs"
	"github.com/katalvlaran/molgraph/core"
)

type state struct {
	g1, g2   *core.Graph
	subgraph bool
	strict   bool

	core1 map[*core.Vertex]*core.Vertex // g1 → g2
	core2 map[*core.Vertex]*core.Vertex // g2 → g1
	order []*core.Vertex                // unseeded g2 vertices, in match order
}

// frame holds the candidates tried for order[depth].
type frame struct {
	depth  int
	cands  []*core.Vertex
	next   int
	mapped *core.Vertex
}

func newState(g1, g2 *core.Graph, subgraph, strict bool) *state {
	return &state{
		g1:       g1,
		g2:       g2,
		subgraph: subgraph,
		strict:   strict,
		core1:    make(map[*core.Vertex]*core.Vertex, g2.VertexCount()),
		core2:    make(map[*core.Vertex]*core.Vertex, g2.VertexCount()),
	}
}

// seed maps the pairs of initial in g1 order, each checked against the
// pairs before it. It fails on a foreign vertex or an infeasible pair.
func (s *state) seed(initial core.Mapping) bool {
	placed := 0
	for _, v := range s.g1.Vertices() {
		w, ok := initial[v]
		if !ok {
			continue
		}
		if !s.g2.HasVertex(w) || !s.feasible(v, w) {
			return false
		}
		s.pair(v, w)
		placed++
	}

	return placed == len(initial)
}

func (s *state) pair(v, w *core.Vertex) {
	s.core1[v] = w
	s.core2[w] = v
}

func (s *state) unpair(v, w *core.Vertex) {
	delete(s.core1, v)
	delete(s.core2, w)
}

// matchOrder lists the unseeded vertices of g2 breadth-first: the seeds'
// neighborhoods first, then each remaining component from its first vertex in
// sequence order. Every vertex after a component's first has a neighbor
// placed before it.
func matchOrder(g2 *core.Graph, seeded map[*core.Vertex]*core.Vertex) ([]*core.Vertex, error) {
	var seeds []*core.Vertex
	for _, w := range g2.Vertices() {
		if _, ok := seeded[w]; ok {
			seeds = append(seeds, w)
		}
	}
	res, err := bfs.Walk(g2, seeds, bfs.WithCoverAll())
	if err != nil {
		return nil, err
	}

	return res.Order[len(seeds):], nil
}

// candidates returns the unmapped g1 vertices that may pair with w: the
// neighbors of the image of w's first mapped neighbor, or every unmapped g1
// vertex when w has none.
func (s *state) candidates(w *core.Vertex) []*core.Vertex {
	pool := s.g1.Vertices()
	for _, u := range w.Neighbors() {
		if v, ok := s.core2[u]; ok {
			pool = v.Neighbors()
			break
		}
	}
	out := make([]*core.Vertex, 0, len(pool))
	for _, v := range pool {
		if _, used := s.core1[v]; !used {
			out = append(out, v)
		}
	}

	return out
}

// feasible reports whether pairing v (g1) with w (g2) keeps the partial
// mapping valid in the current mode.
func (s *state) feasible(v, w *core.Vertex) bool {
	if _, used := s.core1[v]; used {
		return false
	}
	if _, used := s.core2[w]; used {
		return false
	}
	if s.subgraph {
		if v.Degree() < w.Degree() || !v.IsSpecificCaseOf(w) {
			return false
		}
	} else {
		if v.Degree() != w.Degree() || !v.Equivalent(w, s.strict) {
			return false
		}
		a1, a2, a3 := v.Connectivity()
		b1, b2, b3 := w.Connectivity()
		if a1 != b1 || a2 != b2 || a3 != b3 {
			return false
		}
	}

	for _, we := range w.Edges() {
		v2, ok := s.core2[we.Other(w)]
		if !ok {
			continue
		}
		ve, ok := v.EdgeTo(v2)
		if !ok {
			return false
		}
		if s.subgraph && !ve.IsSpecificCaseOf(we) {
			return false
		}
		if !s.subgraph && !ve.Equivalent(we, s.strict) {
			return false
		}
	}
	if s.subgraph {
		return true
	}
	for _, v2 := range v.Neighbors() {
		if w2, ok := s.core1[v2]; ok && !w.IsNeighbor(w2) {
			return false
		}
	}

	return true
}

// snapshot copies the complete mapping for the caller.
func (s *state) snapshot() core.Mapping {
	out := make(core.Mapping, len(s.core1))
	for v, w := range s.core1 {
		out[v] = w
	}

	return out
}

// search enumerates complete mappings in depth-first order and hands each to
// onMatch; returning true from onMatch stops the search. The state is left
// as seeded.
//
// Complexity: exponential in the worst case; connectivity pruning makes
// molecule-sized inputs fast in practice.
func (s *state) search(onMatch func(core.Mapping) bool) {
	if len(s.order) == 0 {
		onMatch(s.snapshot())
		return
	}

	stack := arraystack.New()
	stack.Push(&frame{depth: 0, cands: s.candidates(s.order[0])})
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		w := s.order[f.depth]
		if f.mapped != nil {
			s.unpair(f.mapped, w)
			f.mapped = nil
		}

		advanced := false
		for f.next < len(f.cands) {
			v := f.cands[f.next]
			f.next++
			if !s.feasible(v, w) {
				continue
			}
			s.pair(v, w)
			f.mapped = v
			if f.depth+1 == len(s.order) {
				if onMatch(s.snapshot()) {
					s.unwind(stack)
					return
				}
				s.unpair(v, w)
				f.mapped = nil
				continue
			}
			stack.Push(&frame{depth: f.depth + 1, cands: s.candidates(s.order[f.depth+1])})
			advanced = true
			break
		}
		if !advanced {
			stack.Pop()
		}
	}
}

// unwind drops every frame and its pairing.
func (s *state) unwind(stack *arraystack.Stack) {
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(*frame)
		if f.mapped != nil {
			s.unpair(f.mapped, s.order[f.depth])
		}
	}
}
