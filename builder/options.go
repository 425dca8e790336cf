// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for BuildGraph.
// AI-HINT (file):
//   - Option constructors panic on nil; constructors themselves never panic.
//   - Later options override earlier ones.

package builder

import "github.com/katalvlaran/molgraph/core"

// BuilderOption customizes the builderConfig shared by all constructors of
// one BuildGraph call.
type BuilderOption func(*builderConfig)

// WithVertexData sets the label generator for new vertices. fn receives the
// graph index the vertex will occupy. Panics on nil.
func WithVertexData(fn func(i int) core.VertexData) BuilderOption {
	if fn == nil {
		panic("builder: WithVertexData(nil)")
	}

	return func(c *builderConfig) {
		c.vertexFn = fn
	}
}

// WithEdgeData sets the label generator for new edges. fn receives the graph
// indices of both endpoints, in the order the constructor emits them.
// Panics on nil.
func WithEdgeData(fn func(i, j int) core.EdgeData) BuilderOption {
	if fn == nil {
		panic("builder: WithEdgeData(nil)")
	}

	return func(c *builderConfig) {
		c.edgeFn = fn
	}
}
