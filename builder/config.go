// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: resolved builder configuration and the two primitives every
// constructor uses to grow a graph.
// Determinism:
//   - Vertices are appended, so a constructor's local index k lands at graph
//     index base+k where base is the vertex count before it ran.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

// builderConfig aggregates the knobs used by constructors. It is passed by
// value.
type builderConfig struct {
	// vertexFn labels a vertex from its graph index.
	vertexFn func(i int) core.VertexData
	// edgeFn labels an edge from the graph indices of its endpoints.
	edgeFn func(i, j int) core.EdgeData
}

// newBuilderConfig applies opts in order over the defaults (unlabeled
// vertices and edges).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		vertexFn: func(int) core.VertexData { return nil },
		edgeFn:   func(int, int) core.EdgeData { return nil },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addVertices appends n vertices to g and returns them in local order.
func (c builderConfig) addVertices(g *core.Graph, n int) []*core.Vertex {
	base := g.VertexCount()
	vs := make([]*core.Vertex, n)
	for k := range vs {
		vs[k] = g.AddVertex(core.NewVertex(c.vertexFn(base + k)))
	}

	return vs
}

// link adds the edge u-v, labeled from the graph indices of u and v.
func (c builderConfig) link(g *core.Graph, method string, u, v *core.Vertex) error {
	i, j := g.IndexOf(u), g.IndexOf(v)
	if _, err := g.AddEdge(core.NewEdge(u, v, c.edgeFn(i, j))); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%d, %d)", method, i, j)
	}

	return nil
}

// linkPath adds the edges vs[0]-vs[1]-...-vs[len-1].
func (c builderConfig) linkPath(g *core.Graph, method string, vs []*core.Vertex) error {
	for k := 1; k < len(vs); k++ {
		if err := c.link(g, method, vs[k-1], vs[k]); err != nil {
			return err
		}
	}

	return nil
}
