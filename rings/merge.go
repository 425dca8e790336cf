// File: merge.go
// Role: MergeCycleSets, partitioning rings into isolated rings and maximal
//       connected ring systems.
// Determinism:
//   - Input rings are processed left to right; clusters hold vertex indices
//     in a sorted set, so every system is reported in graph sequence order.
// AI-HINT (file):
//   - A single pass may leave two clusters that touch (a ring joins only the
//     first cluster it meets). The passes repeat over the merged clusters
//     until at most one of them can still absorb another.

package rings

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

// cluster is one ring or a union of rings. ring is kept only while the
// cluster holds a single input ring.
type cluster struct {
	set  *treeset.Set
	ring []*core.Vertex
}

// overlaps reports whether a and b share a vertex.
func (a *cluster) overlaps(b *cluster) bool {
	small, large := a, b
	if small.set.Size() > large.set.Size() {
		small, large = large, small
	}
	it := small.set.Iterator()
	for it.Next() {
		if large.set.Contains(it.Value()) {
			return true
		}
	}

	return false
}

// absorb adds every vertex of b to a; a stops being a single ring.
func (a *cluster) absorb(b *cluster) {
	a.set.Add(b.set.Values()...)
	a.ring = nil
}

// mergePass runs one left-to-right pass. A cluster first tries the merged
// clusters and joins the first one it overlaps; the grown cluster then
// swallows every unmerged cluster it touches. A cluster joining no merged
// cluster but touching unmerged ones founds a new merged cluster with them.
// Anything else stays unmerged.
func mergePass(in []*cluster) (unmerged, merged []*cluster) {
	for _, c := range in {
		var target *cluster
		for _, m := range merged {
			if m.overlaps(c) {
				m.absorb(c)
				target = m
				break
			}
		}

		if target == nil {
			var hit bool
			fresh := &cluster{set: treeset.NewWith(utils.IntComparator)}
			fresh.absorb(c)
			unmerged, hit = drain(unmerged, fresh)
			if !hit {
				unmerged = append(unmerged, c)
				continue
			}
			merged = append(merged, fresh)
			continue
		}
		unmerged, _ = drain(unmerged, target)
	}

	return unmerged, merged
}

// drain moves every cluster of pool that overlaps into into it and returns
// the remaining pool.
func drain(pool []*cluster, into *cluster) ([]*cluster, bool) {
	kept := pool[:0]
	hit := false
	for _, u := range pool {
		if into.overlaps(u) {
			into.absorb(u)
			hit = true
			continue
		}
		kept = append(kept, u)
	}

	return kept, hit
}

// MergeCycleSets partitions cycles into isolated rings and maximal connected
// ring systems. Rings sharing at least one vertex belong to the same system,
// transitively.
//
// Returns:
//   - monocyclic: the rings that share no vertex with any other, as given.
//   - polycyclic: one vertex set per ring system, in graph sequence order.
//
// Errors:
//   - ErrGraphNil.
//   - ErrMalformedRing for an empty cycle.
//   - core.ErrInvalidOperation (wrapped) for a vertex not in g.
func (p *Perceiver) MergeCycleSets(g *core.Graph, cycles [][]*core.Vertex) (monocyclic, polycyclic [][]*core.Vertex, err error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	vs := g.Vertices()
	index := make(map[*core.Vertex]int, len(vs))
	for i, v := range vs {
		index[v] = i
	}

	clusters := make([]*cluster, 0, len(cycles))
	for _, ring := range cycles {
		if len(ring) == 0 {
			return nil, nil, errors.Wrap(ErrMalformedRing, "MergeCycleSets: empty cycle")
		}
		c := &cluster{set: treeset.NewWith(utils.IntComparator), ring: ring}
		for _, v := range ring {
			i, ok := index[v]
			if !ok {
				return nil, nil, errors.Wrap(core.ErrInvalidOperation, "MergeCycleSets: vertex not in graph")
			}
			c.set.Add(i)
		}
		clusters = append(clusters, c)
	}

	singles, poly := mergePass(clusters)
	var settled []*cluster
	for pass := 2; len(poly) > 1; pass++ {
		var done []*cluster
		done, poly = mergePass(poly)
		settled = append(done, settled...)
		p.logger.Debug("merge pass", "pass", pass, "settled", len(done), "pending", len(poly))
	}
	poly = append(poly, settled...)

	for _, c := range singles {
		monocyclic = append(monocyclic, c.ring)
	}
	for _, c := range poly {
		set := make([]*core.Vertex, 0, c.set.Size())
		for _, i := range c.set.Values() {
			set = append(set, vs[i.(int)])
		}
		polycyclic = append(polycyclic, set)
	}
	p.logger.Debug("merged cycle sets", "cycles", len(cycles), "monocyclic", len(monocyclic), "polycyclic", len(polycyclic))

	return monocyclic, polycyclic, nil
}
