// SPDX-License-Identifier: MIT
// Package core_test shares small labeled fixtures across the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/core"
)

// tag is a minimal vertex label: equal strings are equivalent, "*" covers all.
type tag string

func (t tag) Copy() core.VertexData { return t }

func (t tag) Equivalent(o core.VertexData, _ bool) bool {
	ot, ok := o.(tag)
	return ok && ot == t
}

func (t tag) IsSpecificCaseOf(o core.VertexData) bool {
	ot, ok := o.(tag)
	return ok && (ot == "*" || ot == t)
}

// order is a minimal edge label: equal orders are equivalent, 0 covers all.
type order int

func (b order) Copy() core.EdgeData { return b }

func (b order) Equivalent(o core.EdgeData, _ bool) bool {
	ob, ok := o.(order)
	return ok && ob == b
}

func (b order) IsSpecificCaseOf(o core.EdgeData) bool {
	ob, ok := o.(order)
	return ok && (ob == 0 || ob == b)
}

// newVertices returns n fresh vertices labeled with the given tags, or blank when none.
func newVertices(n int, tags ...tag) []*core.Vertex {
	vs := make([]*core.Vertex, n)
	for i := range vs {
		var data core.VertexData
		if i < len(tags) {
			data = tags[i]
		}
		vs[i] = core.NewVertex(data)
	}

	return vs
}

// connect adds an unlabeled edge between vs[i] and vs[j] for every pair.
func connect(t *testing.T, g *core.Graph, vs []*core.Vertex, pairs ...[2]int) {
	t.Helper()
	for _, p := range pairs {
		_, err := g.AddEdge(core.NewEdge(vs[p[0]], vs[p[1]], nil))
		require.NoError(t, err)
	}
}

// ringGraph builds an n-membered ring 0-1-...-(n-1)-0.
func ringGraph(t *testing.T, n int) (*core.Graph, []*core.Vertex) {
	t.Helper()
	vs := newVertices(n)
	g := core.NewGraph(vs...)
	for i := 0; i < n; i++ {
		connect(t, g, vs, [2]int{i, (i + 1) % n})
	}

	return g, vs
}

// chainGraph builds an n-vertex path 0-1-...-(n-1).
func chainGraph(t *testing.T, n int) (*core.Graph, []*core.Vertex) {
	t.Helper()
	vs := newVertices(n)
	g := core.NewGraph(vs...)
	for i := 0; i+1 < n; i++ {
		connect(t, g, vs, [2]int{i, i + 1})
	}

	return g, vs
}
