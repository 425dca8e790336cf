// Package molgraph is an in-memory engine for molecular graphs: labeled
// undirected graphs whose vertices are atoms and whose edges are bonds,
// with the ring and isomorphism machinery chemistry tools are built on.
//
// What is in the box?
//
//	• Core primitives: vertices and edges carrying comparable labels, graph
//	  mutation, copy, merge/split, connectivity values and canonical sorting
//	• Cycles: DFS cycle enumeration and the largest ring through an atom
//	• Ring perception: SSSR, relevant cycles, ring-system merging, fusion class
//	• Matching: VF2 isomorphism and subgraph isomorphism with a mapping audit
//	• Chemistry labels: atoms, bonds, group patterns and adjacency-list I/O
//	• Builders: rings, chains, fused/spiro/bridged bicycles, polyhedral cages
//
// Under the hood, everything is organized under these subpackages:
//
//	core/     Graph, Vertex, Edge, labels, connectivity, Mapping, Matcher contract
//	bfs/      breadth-first search over core graphs
//	dfs/      cycle enumeration on an explicit stack
//	mcb/      minimum cycle basis and relevant cycles over GF(2)
//	rings/    ring perception on top of mcb and dfs
//	vf2/      the default core.Matcher
//	chem/     Atom, Bond, GroupAtom, GroupBond labels
//	adjlist/  adjacency-list reader and writer
//	builder/  deterministic skeleton constructors for tests and examples
//
// Quick ASCII example, norbornane (bicyclo[2.2.1]heptane):
//
//	    1───2
//	   /  6  \
//	  0───────3
//	   \     /
//	    5───4
//
// is two five-rings sharing atoms 0, 6 and 3: a bridged system, fusion
// class "bridged".
//
// The ringinfo command (cmd/ringinfo) reports rings and isomorphisms for
// adjacency-list files:
//
//	go install github.com/katalvlaran/molgraph/cmd/ringinfo@latest
package molgraph
