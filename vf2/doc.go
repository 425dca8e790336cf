// Package vf2 provides the default core.Matcher: graph and subgraph
// isomorphism by VF2-style backtracking.
//
// What:
//
//   - Both graphs are sorted by connectivity (core.Graph.SortVertices); the
//     pattern is then matched breadth-first so that each vertex after the
//     first of its component already has a mapped neighbor, and candidates
//     come from that neighbor's image.
//   - Isomorphism mode prunes on Equivalent(strict), degree and the three
//     connectivity values; subgraph mode on IsSpecificCaseOf and degree.
//   - InitialMap pairs are fixed before the search; SaveOrder restores both
//     vertex sequences afterwards.
//
// Every returned mapping passes core.Graph.IsMappingValid in the matching
// mode (equivalent=true for isomorphism, false for subgraph search).
//
// Usage:
//
//	m := vf2.New()
//	ok := g1.IsIsomorphic(g2, m, core.WithStrict(false))
//	maps := mol.FindSubgraphIsomorphisms(group, m)
package vf2
