// SPDX-License-Identifier: MIT
//
// File: vf2.go
// Role: Matcher type, options and the four core.Matcher entry points.
// Policy:
//   - No match is false / nil; the Matcher never returns an error.
//   - Both graphs are connectivity-sorted before the search; WithSaveOrder
//     restores their sequences on return.

package vf2

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/molgraph/core"
)

// Matcher is the default core.Matcher: VF2-style backtracking over a
// connectivity-ordered pattern.
type Matcher struct {
	logger *log.Logger
}

var _ core.Matcher = (*Matcher)(nil)

// Option configures a Matcher.
type Option func(m *Matcher)

// WithLogger routes search traces to l. Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("vf2: WithLogger(nil)")
	}

	return func(m *Matcher) { m.logger = l }
}

// New returns a Matcher with a silent logger unless overridden.
func New(opts ...Option) *Matcher {
	m := &Matcher{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// IsIsomorphic reports whether g1 and g2 are isomorphic.
func (m *Matcher) IsIsomorphic(g1, g2 *core.Graph, opts core.MatchOptions) bool {
	_, ok := m.FindIsomorphism(g1, g2, opts)

	return ok
}

// FindIsomorphism returns the first isomorphism from g1 to g2 in search order.
//
// Pruning (isomorphism mode):
//   - vertex and edge counts must agree;
//   - a pair must be Equivalent under opts.Strict, with equal degree and equal
//     connectivity values;
//   - edges among mapped vertices must correspond exactly and be Equivalent.
func (m *Matcher) FindIsomorphism(g1, g2 *core.Graph, opts core.MatchOptions) (core.Mapping, bool) {
	s, ok := m.prepare(g1, g2, false, opts)
	if !ok {
		return nil, false
	}
	defer m.restore(g1, g2, opts)

	var found core.Mapping
	s.search(func(mp core.Mapping) bool {
		found = mp
		return true
	})
	m.logger.Debug("vf2 isomorphism", "vertices", g1.VertexCount(), "found", found != nil)

	return found, found != nil
}

// IsSubgraphIsomorphic reports whether the pattern g2 maps into g1.
func (m *Matcher) IsSubgraphIsomorphic(g1, g2 *core.Graph, opts core.MatchOptions) bool {
	s, ok := m.prepare(g1, g2, true, opts)
	if !ok {
		return false
	}
	defer m.restore(g1, g2, opts)

	found := false
	s.search(func(core.Mapping) bool {
		found = true
		return true
	})

	return found
}

// FindSubgraphIsomorphisms returns every mapping from g1 vertices onto the
// pattern g2, in search order.
//
// Pruning (subgraph mode):
//   - each g1 vertex must be a specific case of its pattern vertex, with at
//     least the pattern's degree;
//   - every pattern edge among mapped vertices needs a g1 edge that is a
//     specific case of it. Extra g1 edges are allowed.
func (m *Matcher) FindSubgraphIsomorphisms(g1, g2 *core.Graph, opts core.MatchOptions) []core.Mapping {
	s, ok := m.prepare(g1, g2, true, opts)
	if !ok {
		return nil
	}
	defer m.restore(g1, g2, opts)

	var out []core.Mapping
	s.search(func(mp core.Mapping) bool {
		out = append(out, mp)
		return false
	})
	m.logger.Debug("vf2 subgraph", "vertices", g1.VertexCount(), "pattern", g2.VertexCount(), "matches", len(out))

	return out
}

// prepare checks the cheap invariants, sorts both graphs and builds the
// search state seeded with opts.InitialMap.
func (m *Matcher) prepare(g1, g2 *core.Graph, subgraph bool, opts core.MatchOptions) (*state, bool) {
	if g1 == nil || g2 == nil {
		return nil, false
	}
	if subgraph {
		if g2.VertexCount() > g1.VertexCount() || g2.EdgeCount() > g1.EdgeCount() {
			return nil, false
		}
	} else if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		return nil, false
	}

	g1.SortVertices(opts.SaveOrder)
	if g2 != g1 {
		g2.SortVertices(opts.SaveOrder)
	}

	s := newState(g1, g2, subgraph, opts.Strict)
	if !s.seed(opts.InitialMap) {
		m.logger.Debug("vf2 seed rejected", "pairs", len(opts.InitialMap))
		m.restore(g1, g2, opts)
		return nil, false
	}
	order, err := matchOrder(g2, s.core2)
	if err != nil {
		m.logger.Warn("vf2 match order", "err", err)
		m.restore(g1, g2, opts)
		return nil, false
	}
	s.order = order

	return s, true
}

// restore reinstates both vertex sequences when opts.SaveOrder is set.
func (m *Matcher) restore(g1, g2 *core.Graph, opts core.MatchOptions) {
	if !opts.SaveOrder {
		return
	}
	if err := g1.RestoreVertexOrder(); err != nil {
		m.logger.Warn("vf2 restore order", "err", err)
	}
	if g2 == g1 {
		return
	}
	if err := g2.RestoreVertexOrder(); err != nil {
		m.logger.Warn("vf2 restore order", "err", err)
	}
}
