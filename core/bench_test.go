// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/katalvlaran/molgraph/core"
)

// benchLadder builds a ladder of n rungs (2n vertices, 3n-2 edges).
func benchLadder(n int) *core.Graph {
	top := make([]*core.Vertex, n)
	bottom := make([]*core.Vertex, n)
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		top[i] = g.AddVertex(core.NewVertex(nil))
		bottom[i] = g.AddVertex(core.NewVertex(nil))
		_, _ = g.AddEdge(core.NewEdge(top[i], bottom[i], nil))
		if i > 0 {
			_, _ = g.AddEdge(core.NewEdge(top[i-1], top[i], nil))
			_, _ = g.AddEdge(core.NewEdge(bottom[i-1], bottom[i], nil))
		}
	}

	return g
}

// BenchmarkGraph_CopyDeep measures CopyAndMap on a 200-vertex ladder.
func BenchmarkGraph_CopyDeep(b *testing.B) {
	g := benchLadder(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Copy(true)
	}
}

// BenchmarkGraph_SortVertices measures a full connectivity recompute + sort.
func BenchmarkGraph_SortVertices(b *testing.B) {
	g := benchLadder(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ResetConnectivityValues()
		g.SortVertices(false)
	}
}

// BenchmarkGraph_Split measures Split on a graph of 50 disjoint ladders.
func BenchmarkGraph_Split(b *testing.B) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		g = g.Merge(benchLadder(4))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Split()
	}
}
