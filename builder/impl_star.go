// SPDX-License-Identifier: MIT
//
// File: impl_star.go
// Role: Star(n), one center bonded to n-1 substituents.
// Determinism:
//   - The center is the first vertex; spokes are emitted as (center, leaf)
//     in increasing leaf order.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

const (
	methodStar = "Star"
	minStar    = 2
)

// Star returns a Constructor for a star of n vertices (n >= 2). Star(5) is the
// skeleton of neopentane or of methane with explicit hydrogens.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStar {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodStar, n, minStar)
		}
		vs := cfg.addVertices(g, n)
		for _, leaf := range vs[1:] {
			if err := cfg.link(g, methodStar, vs[0], leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
