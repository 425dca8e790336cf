// File: connectivity.go
// Role: Connectivity Indexer: Morgan-style extended connectivity values and
//       the canonical vertex ordering built on them.
// Determinism:
//   - SortVertices is a stable sort; ties keep their previous relative order.
// AI-HINT (file):
//   - Connectivity values are caches. Every topology mutation resets them; any
//     algorithm needing them must call UpdateConnectivityValues or SortVertices.
//   - SortKey is ascending-is-more-connected: the most connected vertex sorts first.

package core

import (
	"cmp"
	"slices"

	"github.com/pkg/errors"
)

// Weights of the three connectivity levels inside SortKey.
const (
	sortWeight1 = 256
	sortWeight2 = 16
	sortWeight3 = 1
)

// Connectivity returns the cached connectivity values of v (Unset when stale).
func (v *Vertex) Connectivity() (c1, c2, c3 int) {
	return v.connectivity1, v.connectivity2, v.connectivity3
}

// SortingLabel returns the position assigned by the last SortVertices, or Unset.
func (v *Vertex) SortingLabel() int { return v.sortingLabel }

// SortKey is the ordering key of v: -256*c1 - 16*c2 - c3.
// Only meaningful after UpdateConnectivityValues.
func (v *Vertex) SortKey() int {
	return -sortWeight1*v.connectivity1 - sortWeight2*v.connectivity2 - sortWeight3*v.connectivity3
}

// resetConnectivity marks every cache of v stale.
func (v *Vertex) resetConnectivity() {
	v.connectivity1 = Unset
	v.connectivity2 = Unset
	v.connectivity3 = Unset
	v.sortingLabel = Unset
}

// ResetConnectivityValues marks the caches of every vertex stale.
// Complexity: O(V).
func (g *Graph) ResetConnectivityValues() {
	for _, v := range g.vertices {
		v.resetConnectivity()
	}
}

// UpdateConnectivityValues recomputes the three connectivity levels.
//
// Implementation (three full passes, each reading only the previous level):
//  1. c1 = degree.
//  2. c2 = sum of neighbors' c1.
//  3. c3 = sum of neighbors' c2.
//
// Complexity: O(V + E).
func (g *Graph) UpdateConnectivityValues() {
	for _, v := range g.vertices {
		v.connectivity1 = v.edges.Len()
	}
	for _, v := range g.vertices {
		sum := 0
		for p := v.edges.Oldest(); p != nil; p = p.Next() {
			sum += p.Key.connectivity1
		}
		v.connectivity2 = sum
	}
	for _, v := range g.vertices {
		sum := 0
		for p := v.edges.Oldest(); p != nil; p = p.Next() {
			sum += p.Key.connectivity2
		}
		v.connectivity3 = sum
	}
}

// SortVertices orders the vertex sequence by SortKey ascending and assigns
// each vertex its position as SortingLabel.
//
// Behavior highlights:
//   - saveOrder snapshots the current sequence first (see RestoreVertexOrder).
//   - No-op when every vertex already carries a valid sorting label.
//
// Complexity: O(V log V + E).
func (g *Graph) SortVertices(saveOrder bool) {
	if saveOrder {
		g.savedOrder = make([]*Vertex, len(g.vertices))
		copy(g.savedOrder, g.vertices)
	}
	if g.labelsValid() {
		return
	}
	g.UpdateConnectivityValues()
	slices.SortStableFunc(g.vertices, func(a, b *Vertex) int {
		return cmp.Compare(a.SortKey(), b.SortKey())
	})
	for i, v := range g.vertices {
		v.sortingLabel = i
	}
}

// RestoreVertexOrder reinstates the sequence saved by SortVertices(true).
//
// Errors:
//   - ErrOrderRestore: no snapshot, or the vertex set changed since it was taken.
//     The sequence is left untouched.
func (g *Graph) RestoreVertexOrder() error {
	if g.savedOrder == nil {
		return errors.Wrap(ErrOrderRestore, "RestoreVertexOrder: no saved order")
	}
	if len(g.savedOrder) != len(g.vertices) {
		return errors.Wrapf(ErrOrderRestore, "RestoreVertexOrder: saved %d vertices, graph has %d",
			len(g.savedOrder), len(g.vertices))
	}
	for _, v := range g.savedOrder {
		if !g.HasVertex(v) {
			return errors.Wrap(ErrOrderRestore, "RestoreVertexOrder: a saved vertex was removed")
		}
	}
	copy(g.vertices, g.savedOrder)
	g.savedOrder = nil

	return nil
}

func (g *Graph) labelsValid() bool {
	for _, v := range g.vertices {
		if v.sortingLabel < 0 {
			return false
		}
	}

	return true
}
