// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: isomorphism entry points on Graph delegating to a Matcher.
// Policy:
//   - No search logic here; the Matcher owns it.
//   - "No match" is false / nil, never an error.
// AI-HINT (file):
//   - Pass vf2.New() (or any Matcher) explicitly; core does not pick a default
//     so that it never imports a search implementation.

package core

// IsIsomorphic reports whether g and other are isomorphic under m.
//
// Implementation:
//   - Stage 1: Fold opts into MatchOptions (strict by default).
//   - Stage 2: Delegate to m.IsIsomorphic(g, other, ...).
//
// Complexity: that of the Matcher.
func (g *Graph) IsIsomorphic(other *Graph, m Matcher, opts ...MatchOption) bool {
	return m.IsIsomorphic(g, other, NewMatchOptions(opts...))
}

// FindIsomorphism returns one isomorphism from g to other, or (nil, false).
func (g *Graph) FindIsomorphism(other *Graph, m Matcher, opts ...MatchOption) (Mapping, bool) {
	return m.FindIsomorphism(g, other, NewMatchOptions(opts...))
}

// IsSubgraphIsomorphic reports whether the pattern other maps into g.
func (g *Graph) IsSubgraphIsomorphic(other *Graph, m Matcher, opts ...MatchOption) bool {
	return m.IsSubgraphIsomorphic(g, other, NewMatchOptions(opts...))
}

// FindSubgraphIsomorphisms returns every mapping of g vertices onto the pattern other.
//
// Determinism:
//   - Mappings are reported in the Matcher's search order; for vf2 that order
//     is fixed by the connectivity sort and neighbor insertion order.
func (g *Graph) FindSubgraphIsomorphisms(other *Graph, m Matcher, opts ...MatchOption) []Mapping {
	return m.FindSubgraphIsomorphisms(g, other, NewMatchOptions(opts...))
}
