// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor type and the BuildGraph orchestrator.
// Determinism:
//   - Same options and constructor order give the same graph, vertex order
//     and edge order.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

// Constructor appends one topology to g using the resolved builderConfig.
// Constructors validate their parameters before touching g and return
// sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the configuration from
// bopts and applies cons in order.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped with "BuildGraph". No partial graph is
//     returned.
//
// Complexity: the sum of the constructors' costs plus O(len(bopts)).
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, errors.Wrap(err, "BuildGraph")
		}
	}

	return g, nil
}
