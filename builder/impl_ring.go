// SPDX-License-Identifier: MIT
//
// File: impl_ring.go
// Role: Ring(n), the monocyclic skeleton C_n.
// Determinism:
//   - Vertices 0..n-1 in ring order; edges (0,1), (1,2), ..., (n-2,n-1),
//     then the closing edge (n-1,0).

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

const (
	methodRing = "Ring"
	minRing    = 3
)

// Ring returns a Constructor for a simple cycle of n vertices (n >= 3).
func Ring(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRing {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodRing, n, minRing)
		}
		vs := cfg.addVertices(g, n)

		return cfg.closeRing(g, methodRing, vs)
	}
}

// closeRing links vs as a path and closes it back to vs[0].
func (c builderConfig) closeRing(g *core.Graph, method string, vs []*core.Vertex) error {
	if err := c.linkPath(g, method, vs); err != nil {
		return err
	}

	return c.link(g, method, vs[len(vs)-1], vs[0])
}
