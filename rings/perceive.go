// File: perceive.go
// Role: SSSR / RC wrapping, ring threading, polycyclic & monocyclic views,
//       maximum ring overlap.
// Determinism:
//   - Rings follow the CycleBasis order; each ring is re-threaded by
//     SortCyclicVertices; vertex sets are reported in graph sequence order.

package rings

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
	"github.com/katalvlaran/molgraph/dfs"
)

// indexed is a graph snapshot in the node-index form a CycleBasis consumes.
type indexed struct {
	vertices []*core.Vertex
	index    map[*core.Vertex]int
	edges    [][2]int
}

func newIndexed(g *core.Graph) *indexed {
	vs := g.Vertices()
	ix := &indexed{
		vertices: vs,
		index:    make(map[*core.Vertex]int, len(vs)),
	}
	for i, v := range vs {
		ix.index[v] = i
	}
	for _, e := range g.Edges() {
		ix.edges = append(ix.edges, [2]int{ix.index[e.V1()], ix.index[e.V2()]})
	}

	return ix
}

// rings maps basis cycles back to vertices and threads each one.
func (p *Perceiver) rings(g *core.Graph, ix *indexed, cycles [][]int) ([][]*core.Vertex, error) {
	out := make([][]*core.Vertex, 0, len(cycles))
	for _, c := range cycles {
		vs := make([]*core.Vertex, len(c))
		for i, n := range c {
			vs[i] = ix.vertices[n]
		}
		ring, err := SortCyclicVertices(g, vs)
		if err != nil {
			return nil, err
		}
		out = append(out, ring)
	}

	return out, nil
}

// SSSR returns the smallest set of smallest rings of g, each in ring order.
//
// Errors:
//   - ErrGraphNil; errors from the CycleBasis, wrapped.
func (p *Perceiver) SSSR(g *core.Graph) ([][]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix := newIndexed(g)
	cycles, err := p.basis.SSSR(len(ix.vertices), ix.edges)
	if err != nil {
		return nil, errors.Wrap(err, "rings: SSSR")
	}
	p.logger.Debug("sssr", "vertices", len(ix.vertices), "edges", len(ix.edges), "rings", len(cycles))

	return p.rings(g, ix, cycles)
}

// RelevantCycles returns the relevant cycles of g, each in ring order.
//
// Errors:
//   - ErrGraphNil; errors from the CycleBasis, wrapped.
func (p *Perceiver) RelevantCycles(g *core.Graph) ([][]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix := newIndexed(g)
	cycles, err := p.basis.RelevantCycles(len(ix.vertices), ix.edges)
	if err != nil {
		return nil, errors.Wrap(err, "rings: RelevantCycles")
	}
	p.logger.Debug("relevant cycles", "vertices", len(ix.vertices), "rings", len(cycles))

	return p.rings(g, ix, cycles)
}

// SortCyclicVertices threads vs into ring order: it starts from the last
// vertex and repeatedly appends the first remaining vertex adjacent to the
// tail. The input slice is not modified.
//
// Errors:
//   - ErrMalformedRing: fewer than 3 vertices, a tail with no adjacent remaining vertex,
//     or a thread whose ends are not adjacent.
func SortCyclicVertices(g *core.Graph, vs []*core.Vertex) ([]*core.Vertex, error) {
	if len(vs) < 3 {
		return nil, errors.Wrapf(ErrMalformedRing, "%d vertices cannot close a ring", len(vs))
	}
	remaining := make([]*core.Vertex, len(vs)-1)
	copy(remaining, vs[:len(vs)-1])
	ordered := make([]*core.Vertex, 0, len(vs))
	ordered = append(ordered, vs[len(vs)-1])

	for len(remaining) > 0 {
		tail := ordered[len(ordered)-1]
		next := -1
		for i, v := range remaining {
			if g.HasEdge(tail, v) {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, errors.Wrapf(ErrMalformedRing, "stuck after %d of %d vertices", len(ordered), len(vs))
		}
		ordered = append(ordered, remaining[next])
		remaining = append(remaining[:next], remaining[next+1:]...)
	}
	if !g.HasEdge(ordered[len(ordered)-1], ordered[0]) {
		return nil, errors.Wrap(ErrMalformedRing, "thread does not close")
	}

	return ordered, nil
}

// PolycyclicVertices returns the vertices shared by at least two SSSR rings,
// in graph sequence order.
func (p *Perceiver) PolycyclicVertices(g *core.Graph) ([]*core.Vertex, error) {
	sssr, err := p.SSSR(g)
	if err != nil {
		return nil, err
	}

	return polycyclicVertices(g, sssr), nil
}

func polycyclicVertices(g *core.Graph, sssr [][]*core.Vertex) []*core.Vertex {
	count := make(map[*core.Vertex]int)
	for _, ring := range sssr {
		for _, v := range ring {
			count[v]++
		}
	}
	var out []*core.Vertex
	for _, v := range g.Vertices() {
		if count[v] >= 2 {
			out = append(out, v)
		}
	}

	return out
}

// PolycyclicRings merges the SSSR rings that contain a polycyclic vertex into
// connected ring systems; each system is reported as its vertex set in graph
// sequence order. Rings sharing no vertex with another ring are excluded.
func (p *Perceiver) PolycyclicRings(g *core.Graph) ([][]*core.Vertex, error) {
	sssr, err := p.SSSR(g)
	if err != nil {
		return nil, err
	}
	shared := polycyclicVertices(g, sssr)
	if len(shared) == 0 {
		return nil, nil
	}
	isShared := make(map[*core.Vertex]bool, len(shared))
	for _, v := range shared {
		isShared[v] = true
	}
	var touching [][]*core.Vertex
	for _, ring := range sssr {
		for _, v := range ring {
			if isShared[v] {
				touching = append(touching, ring)
				break
			}
		}
	}
	mono, poly, err := p.MergeCycleSets(g, touching)
	if err != nil {
		return nil, err
	}
	if len(mono) > 0 {
		// a ring holding a shared vertex always meets another ring
		return nil, errors.Wrap(ErrMalformedRing, "PolycyclicRings: isolated ring among shared ones")
	}

	return poly, nil
}

// MonocyclicRings returns the SSSR rings that share no vertex with any other
// SSSR ring, each in ring order.
func (p *Perceiver) MonocyclicRings(g *core.Graph) ([][]*core.Vertex, error) {
	sssr, err := p.SSSR(g)
	if err != nil {
		return nil, err
	}
	shared := make(map[*core.Vertex]bool)
	for _, v := range polycyclicVertices(g, sssr) {
		shared[v] = true
	}
	var out [][]*core.Vertex
	for _, ring := range sssr {
		isolated := true
		for _, v := range ring {
			if shared[v] {
				isolated = false
				break
			}
		}
		if isolated {
			out = append(out, ring)
		}
	}

	return out, nil
}

// DisparateRings partitions the relevant cycles of g into isolated rings
// (monocyclic, in ring order) and maximal connected ring systems
// (polycyclic, as vertex sets in graph sequence order).
func (p *Perceiver) DisparateRings(g *core.Graph) (monocyclic, polycyclic [][]*core.Vertex, err error) {
	rc, err := p.RelevantCycles(g)
	if err != nil {
		return nil, nil, err
	}
	if len(rc) == 0 {
		return nil, nil, nil
	}

	return p.MergeCycleSets(g, rc)
}

// MaxCycleOverlap returns the largest number of vertices shared by two SSSR
// rings of g; 0 when g has fewer than two rings or none share a vertex.
// Feed the result to FusionClass to name the ring fusion.
func (p *Perceiver) MaxCycleOverlap(g *core.Graph) (int, error) {
	sssr, err := p.SSSR(g)
	if err != nil {
		return 0, err
	}
	sets := make([]map[*core.Vertex]struct{}, len(sssr))
	for i, ring := range sssr {
		sets[i] = make(map[*core.Vertex]struct{}, len(ring))
		for _, v := range ring {
			sets[i][v] = struct{}{}
		}
	}
	best := 0
	for i := 0; i < len(sssr); i++ {
		for j := i + 1; j < len(sssr); j++ {
			shared := 0
			for _, v := range sssr[j] {
				if _, ok := sets[i][v]; ok {
					shared++
				}
			}
			best = max(best, shared)
		}
	}

	return best, nil
}

// LargestRing returns the longest cycle through v, or nil when v is acyclic.
func (p *Perceiver) LargestRing(g *core.Graph, v *core.Vertex) ([]*core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return dfs.LargestRing(g, v)
}
