// SPDX-License-Identifier: MIT
//
// File: impl_complete.go
// Role: Complete(n), the clique K_n.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

const (
	methodComplete = "Complete"
	minComplete    = 1
)

// Complete returns a Constructor for K_n (n >= 1). Edges are emitted in
// lexicographic order (i,j), i < j. K4 is the tetrahedrane cage.
//
// Complexity: O(n^2) edges.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minComplete {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodComplete, n, minComplete)
		}
		vs := cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := cfg.link(g, methodComplete, vs[i], vs[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
