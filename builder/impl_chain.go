// SPDX-License-Identifier: MIT
//
// File: impl_chain.go
// Role: Chain(n), the acyclic linear skeleton P_n.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

const (
	methodChain = "Chain"
	minChain    = 1
)

// Chain returns a Constructor for a path of n vertices (n >= 1) with edges
// (0,1), (1,2), ..., (n-2,n-1). A single vertex is methane's skeleton.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChain {
			return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", methodChain, n, minChain)
		}

		return cfg.linkPath(g, methodChain, cfg.addVertices(g, n))
	}
}
