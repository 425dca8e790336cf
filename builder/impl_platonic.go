// SPDX-License-Identifier: MIT
//
// File: impl_platonic.go
// Role: PlatonicSolid(name), the polyhedral cage hydrocarbons.
// Determinism:
//   - Vertices 0..V-1; edges in the pre-sorted order of variants_platonic.go.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

const methodPlatonic = "PlatonicSolid"

// PlatonicSolid returns a Constructor for the skeleton of one of the five
// Platonic solids. Tetrahedron, Cube and Dodecahedron are the carbon cages of
// tetrahedrane, cubane and dodecahedrane; Octahedron and Icosahedron exceed
// carbon's valence and serve as dense cage fixtures.
//
// Errors: ErrOptionViolation for an unknown name.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		solid, ok := platonicSolids[name]
		if !ok {
			return errors.Wrapf(ErrOptionViolation, "%s: unknown solid %d", methodPlatonic, int(name))
		}
		vs := cfg.addVertices(g, solid.vertices)
		for _, p := range solid.edges {
			if err := cfg.link(g, methodPlatonic, vs[p.u], vs[p.v]); err != nil {
				return err
			}
		}

		return nil
	}
}
