// SPDX-License-Identifier: MIT
//
// File: impl_bicyclic.go
// Role: two-ring skeletons: FusedRings (shared bond), SpiroRings (shared
// atom) and Bicyclo (bridged, von Baeyer numbering).
// Determinism:
//   - The first ring is numbered exactly as Ring numbers it; the second ring
//     reuses the shared vertices and appends its own.
// AI-HINT (file):
//   - These are the fixtures for the fusion classes of rings.MaxCycleOverlap:
//     Spiro = 1 shared atom, Fused = 2, Bicyclo(a,b,c) with c > 0 = 3+.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

const (
	methodFused   = "FusedRings"
	methodSpiro   = "SpiroRings"
	methodBicyclo = "Bicyclo"
	minBridge     = 1
)

// FusedRings returns a Constructor for two rings of sizes a and b sharing the
// bond 0-1 (a, b >= 3). Vertices 0..a-1 form the first ring; the second ring
// is 0, a, a+1, ..., a+b-3, 1. FusedRings(6, 6) is decalin.
func FusedRings(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minRing || b < minRing {
			return errors.Wrapf(ErrTooFewVertices, "%s: sizes %d,%d < min=%d", methodFused, a, b, minRing)
		}
		first := cfg.addVertices(g, a)
		if err := cfg.closeRing(g, methodFused, first); err != nil {
			return err
		}
		second := append([]*core.Vertex{first[0]}, cfg.addVertices(g, b-2)...)

		return cfg.linkPath(g, methodFused, append(second, first[1]))
	}
}

// SpiroRings returns a Constructor for two rings of sizes a and b sharing
// vertex 0 (a, b >= 3). The second ring is 0, a, a+1, ..., a+b-2.
// SpiroRings(5, 5) is spiro[4.4]nonane.
func SpiroRings(a, b int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minRing || b < minRing {
			return errors.Wrapf(ErrTooFewVertices, "%s: sizes %d,%d < min=%d", methodSpiro, a, b, minRing)
		}
		first := cfg.addVertices(g, a)
		if err := cfg.closeRing(g, methodSpiro, first); err != nil {
			return err
		}
		second := append([]*core.Vertex{first[0]}, cfg.addVertices(g, b-1)...)

		return cfg.closeRing(g, methodSpiro, second)
	}
}

// Bicyclo returns a Constructor for bicyclo[a.b.c]: two bridgehead atoms
// joined by three bridges of a, b and c atoms (a, b >= 1, c >= 0). A zero
// bridge is a direct bond, so Bicyclo(4, 4, 0) is decalin again.
//
// Numbering follows von Baeyer: bridgehead 0, bridge a as 1..a, bridgehead
// a+1, bridge b as a+2..a+b+1 walking back toward 0, then bridge c.
// Bicyclo(2, 2, 1) is norbornane.
func Bicyclo(a, b, c int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if a < minBridge || b < minBridge || c < 0 {
			return errors.Wrapf(ErrTooFewVertices, "%s: bridges %d.%d.%d", methodBicyclo, a, b, c)
		}
		vs := cfg.addVertices(g, a+b+c+2)
		head, tail := vs[0], vs[a+1]

		if err := cfg.linkPath(g, methodBicyclo, vs[:a+2]); err != nil {
			return err
		}
		back := append(append([]*core.Vertex{tail}, vs[a+2:a+b+2]...), head)
		if err := cfg.linkPath(g, methodBicyclo, back); err != nil {
			return err
		}
		third := append(append([]*core.Vertex{head}, vs[a+b+2:]...), tail)

		return cfg.linkPath(g, methodBicyclo, third)
	}
}
