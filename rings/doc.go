// Package rings implements ring perception on a core.Graph: the smallest set
// of smallest rings (SSSR), the relevant cycles (RC), and the views chemists
// build on them.
//
// What:
//
//   - SSSR / RelevantCycles: computed by a CycleBasis (mcb by default) over
//     node indices, mapped back to vertices and threaded into ring order.
//   - SortCyclicVertices: threads an unordered ring vertex set.
//   - PolycyclicVertices / PolycyclicRings / MonocyclicRings: SSSR views of
//     shared atoms, fused ring systems and isolated rings.
//   - MergeCycleSets / DisparateRings: partition of the relevant cycles into
//     isolated rings and maximal ring systems.
//   - MaxCycleOverlap / FusionClass: largest pairwise ring overlap and its
//     name (none, spiro, fused, bridged).
//
// Usage:
//
//	p := rings.New(rings.WithLogger(logger))
//	sssr, err := p.SSSR(g)
//
// The package-level functions run on Default().
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - ErrMalformedRing         vertex set cannot be threaded into one cycle
//   - core.ErrInvalidOperation vertex not in graph
//   - mcb errors               wrapped, from the CycleBasis
package rings
