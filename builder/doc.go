// SPDX-License-Identifier: MIT

// Package builder assembles deterministic molecular skeletons for tests,
// examples and benchmarks.
//
// A Constructor appends one topology to a graph; BuildGraph starts from an
// empty core.Graph and applies constructors in order, so several skeletons can
// share one graph as separate components:
//
//	g, err := builder.BuildGraph(nil,
//		builder.FusedRings(6, 6), // decalin
//		builder.Chain(3),         // propane, disconnected
//	)
//
// Vertices added by a constructor take the next graph indices, and each
// constructor documents the order in which it numbers them. Labels come from
// WithVertexData / WithEdgeData, which receive those graph indices; without
// them vertices and edges carry nil data (BlankVertex / BlankEdge semantics).
//
// Skeletons:
//
//	Ring(n)            cycloalkane C_n
//	Chain(n)           linear alkane P_n
//	Star(n)            one center with n-1 substituents
//	Complete(n)        K_n (K4 is the tetrahedrane cage)
//	FusedRings(a, b)   ortho-fused bicycle sharing one bond (decalin = 6,6)
//	SpiroRings(a, b)   spiro bicycle sharing one atom (spiro[4.4]nonane = 5,5)
//	Bicyclo(a, b, c)   bridged bicycle bicyclo[a.b.c] (norbornane = 2,2,1)
//	PlatonicSolid(p)   polyhedral cages (Cube = cubane, Dodecahedron = dodecahedrane)
//
// Errors: ErrTooFewVertices for sizes below a skeleton's minimum,
// ErrOptionViolation for unknown solids, ErrConstructFailed for a nil
// constructor. Option constructors panic on nil functions; constructors never
// panic.
package builder
