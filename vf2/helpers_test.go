package vf2_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/core"
)

// atom is a vertex label: el "*" covers every element; mark is compared only
// in strict mode.
type atom struct {
	el   string
	mark int
}

func (a atom) Copy() core.VertexData { return a }

func (a atom) Equivalent(o core.VertexData, strict bool) bool {
	oa, ok := o.(atom)
	return ok && oa.el == a.el && (!strict || oa.mark == a.mark)
}

func (a atom) IsSpecificCaseOf(o core.VertexData) bool {
	oa, ok := o.(atom)
	return ok && (oa.el == "*" || oa.el == a.el)
}

// bond is an edge label: 0 covers every order.
type bond int

func (b bond) Copy() core.EdgeData { return b }

func (b bond) Equivalent(o core.EdgeData, _ bool) bool {
	ob, ok := o.(bond)
	return ok && ob == b
}

func (b bond) IsSpecificCaseOf(o core.EdgeData) bool {
	ob, ok := o.(bond)
	return ok && (ob == 0 || ob == b)
}

// link is an edge given by endpoint indices and bond order.
type link struct {
	a, b  int
	order bond
}

// mol builds a graph with one vertex per element and the given links.
func mol(t testing.TB, els string, links ...link) (*core.Graph, []*core.Vertex) {
	t.Helper()
	vs := make([]*core.Vertex, len(els))
	for i, r := range els {
		vs[i] = core.NewVertex(atom{el: string(r)})
	}
	g := core.NewGraph(vs...)
	for _, l := range links {
		order := l.order
		if order == 0 {
			order = 1
		}
		_, err := g.AddEdge(core.NewEdge(vs[l.a], vs[l.b], order))
		require.NoError(t, err)
	}

	return g, vs
}

// pattern is mol without the default bond order: 0 stays a wildcard.
func pattern(t testing.TB, els string, links ...link) (*core.Graph, []*core.Vertex) {
	t.Helper()
	vs := make([]*core.Vertex, len(els))
	for i, r := range els {
		vs[i] = core.NewVertex(atom{el: string(r)})
	}
	g := core.NewGraph(vs...)
	for _, l := range links {
		_, err := g.AddEdge(core.NewEdge(vs[l.a], vs[l.b], l.order))
		require.NoError(t, err)
	}

	return g, vs
}

// ringLinks returns single bonds closing the ring base..base+n-1.
func ringLinks(base, n int) []link {
	out := make([]link, n)
	for i := 0; i < n; i++ {
		out[i] = link{a: base + i, b: base + (i+1)%n}
	}

	return out
}
