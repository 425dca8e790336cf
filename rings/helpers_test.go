package rings_test

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

// build creates n vertices named "0".."9","a".. and the given undirected edges.
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

// ring returns the edges of the ring base..base+n-1.
func ring(base, n int) [][2]int {
	out := make([][2]int, n)
	for i := 0; i < n; i++ {
		out[i] = [2]int{base + i, base + (i+1)%n}
	}

	return out
}

func names(vs []*core.Vertex) string {
	out := ""
	for _, v := range vs {
		out += string(v.Data.(name))
	}

	return out
}

func decalin(t testing.TB) (*core.Graph, []*core.Vertex) {
	edges := append(ring(0, 6), [2]int{0, 6}, [2]int{6, 7}, [2]int{7, 8}, [2]int{8, 9}, [2]int{9, 1})

	return build(t, 10, edges...)
}

// spiro: two triangles sharing vertex 0.
func spiro(t testing.TB) (*core.Graph, []*core.Vertex) {
	return build(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{0, 3}, [2]int{3, 4}, [2]int{4, 0})
}

// norbornane: bicyclo[2.2.1]heptane, bridgeheads 0 and 3, bridge 6.
func norbornane(t testing.TB) (*core.Graph, []*core.Vertex) {
	return build(t, 7, append(ring(0, 6), [2]int{0, 6}, [2]int{6, 3})...)
}

func cubane(t testing.TB) (*core.Graph, []*core.Vertex) {
	edges := append(ring(0, 4), ring(4, 4)...)
	edges = append(edges, [2]int{0, 4}, [2]int{1, 5}, [2]int{2, 6}, [2]int{3, 7})

	return build(t, 8, edges...)
}

// biphenyl: two hexagons joined by the single bond 5-6.
func biphenyl(t testing.TB) (*core.Graph, []*core.Vertex) {
	edges := append(ring(0, 6), ring(6, 6)...)

	return build(t, 12, append(edges, [2]int{5, 6})...)
}

// requireRing checks vs is a closed simple cycle of g in ring order.
func requireRing(t *testing.T, g *core.Graph, vs []*core.Vertex) {
	t.Helper()
	require.GreaterOrEqual(t, len(vs), 3)
	seen := make(map[*core.Vertex]bool, len(vs))
	for i, v := range vs {
		require.False(t, seen[v], "vertex repeated in %s", names(vs))
		seen[v] = true
		require.True(t, g.HasEdge(v, vs[(i+1)%len(vs)]), "ring %s broken at %d", names(vs), i)
	}
}
