// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/core"
)

// TestUpdateConnectivityValues VERIFIES the three Morgan levels on a 3-chain.
func TestUpdateConnectivityValues(t *testing.T) {
	g, vs := chainGraph(t, 3)
	g.UpdateConnectivityValues()

	want := [][3]int{{1, 2, 2}, {2, 2, 4}, {1, 2, 2}}
	for i, v := range vs {
		c1, c2, c3 := v.Connectivity()
		assert.Equal(t, want[i], [3]int{c1, c2, c3}, "vertex %d", i)
	}
	assert.Equal(t, -290, vs[0].SortKey())
	assert.Equal(t, -548, vs[1].SortKey())
}

// TestSortVertices VERIFIES most-connected-first stable ordering and labels.
func TestSortVertices(t *testing.T) {
	g, vs := chainGraph(t, 3)
	g.SortVertices(false)

	assert.Equal(t, []*core.Vertex{vs[1], vs[0], vs[2]}, g.Vertices())
	assert.Equal(t, 0, vs[1].SortingLabel())
	assert.Equal(t, 1, vs[0].SortingLabel())
	assert.Equal(t, 2, vs[2].SortingLabel())
}

// TestSortVertices_Idempotent VERIFIES a second call keeps labels and order.
func TestSortVertices_Idempotent(t *testing.T) {
	vs := newVertices(6)
	g := core.NewGraph(vs...)
	connect(t, g, vs, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3}, [2]int{3, 4}, [2]int{3, 5})

	g.SortVertices(false)
	first := g.Vertices()
	labels := make([]int, len(vs))
	for i, v := range vs {
		labels[i] = v.SortingLabel()
	}

	g.SortVertices(false)
	assert.Equal(t, first, g.Vertices())
	for i, v := range vs {
		assert.Equal(t, labels[i], v.SortingLabel())
	}
}

// TestRestoreVertexOrder VERIFIES the save/restore round trip and its errors.
func TestRestoreVertexOrder(t *testing.T) {
	g, vs := chainGraph(t, 3)

	assert.ErrorIs(t, g.RestoreVertexOrder(), core.ErrOrderRestore)

	g.SortVertices(true)
	require.NotEqual(t, vs, g.Vertices())
	require.NoError(t, g.RestoreVertexOrder())
	assert.Equal(t, vs, g.Vertices())

	g.SortVertices(true)
	g.AddVertex(core.NewVertex(nil))
	assert.ErrorIs(t, g.RestoreVertexOrder(), core.ErrOrderRestore)
}

// TestRestoreVertexOrder_Swapped VERIFIES that replacing a vertex after the
// snapshot fails the restore and keeps the sequence in line with HasVertex.
func TestRestoreVertexOrder_Swapped(t *testing.T) {
	g, vs := chainGraph(t, 3)
	g.SortVertices(true)

	require.NoError(t, g.RemoveVertex(vs[2]))
	d := g.AddVertex(core.NewVertex(nil))
	before := g.Vertices()

	assert.ErrorIs(t, g.RestoreVertexOrder(), core.ErrOrderRestore)
	assert.Equal(t, before, g.Vertices())
	assert.Contains(t, g.Vertices(), d)
	assert.NotContains(t, g.Vertices(), vs[2])
}
