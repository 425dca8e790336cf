package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/core"
)

// name is a printable vertex label for readable assertions.
type name string

func (n name) Copy() core.VertexData                     { return n }
func (n name) Equivalent(o core.VertexData, _ bool) bool { return o == core.VertexData(n) }
func (n name) IsSpecificCaseOf(o core.VertexData) bool   { return o == core.VertexData(n) }

// build creates n vertices named "0".."n-1" and the given undirected edges.
func build(t testing.TB, n int, edges ...[2]int) (*core.Graph, []*core.Vertex) {
	t.Helper()
	vs := make([]*core.Vertex, n)
	for i := range vs {
		label := string(rune('0' + i))
		if i >= 10 {
			label = string(rune('a' + i - 10))
		}
		vs[i] = core.NewVertex(name(label))
	}
	g := core.NewGraph(vs...)
	for _, e := range edges {
		_, err := g.AddEdge(core.NewEdge(vs[e[0]], vs[e[1]], nil))
		require.NoError(t, err)
	}

	return g, vs
}

// ring returns the edges of the ring 0-1-...-(n-1)-0 offset by base.
func ring(base, n int) [][2]int {
	out := make([][2]int, n)
	for i := 0; i < n; i++ {
		out[i] = [2]int{base + i, base + (i+1)%n}
	}

	return out
}

// names renders a vertex sequence as a string of labels.
func names(vs []*core.Vertex) string {
	out := make([]rune, 0, len(vs))
	for _, v := range vs {
		out = append(out, []rune(string(v.Data.(name)))...)
	}

	return string(out)
}

// decalin: two six-membered rings fused on edge 0-1.
func decalin(t testing.TB) (*core.Graph, []*core.Vertex) {
	edges := ring(0, 6)
	edges = append(edges, [2]int{0, 6}, [2]int{6, 7}, [2]int{7, 8}, [2]int{8, 9}, [2]int{9, 1})

	return build(t, 10, edges...)
}

// cubane: the cube graph, vertices 0-3 bottom face, 4-7 top face.
func cubane(t testing.TB) (*core.Graph, []*core.Vertex) {
	edges := ring(0, 4)
	edges = append(edges, ring(4, 4)...)
	edges = append(edges, [2]int{0, 4}, [2]int{1, 5}, [2]int{2, 6}, [2]int{3, 7})

	return build(t, 8, edges...)
}
