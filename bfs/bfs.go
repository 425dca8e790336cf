// File: bfs.go
// Role: BFS / Walk, the queue-driven traversal.
// Determinism:
//   - Sources first, then neighbors in edge insertion order.

package bfs

import (
	"github.com/emirpasic/gods/queues/arrayqueue"
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     *core.Vertex
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	queue   *arrayqueue.Queue
	visited map[*core.Vertex]bool
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit error.
func BFS(g *core.Graph, start *core.Vertex, opts ...Option) (*Result, error) {
	return Walk(g, []*core.Vertex{start}, opts...)
}

// Walk runs a multi-source breadth-first search: every source starts at
// depth 0 and sources are visited first, in the given order. With no
// sources and WithCoverAll, the search starts at the first vertex of g.
func Walk(g *core.Graph, sources []*core.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, ErrStartVertexNotFound
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   arrayqueue.New(),
		visited: make(map[*core.Vertex]bool, n),
		res: &Result{
			Order:  make([]*core.Vertex, 0, n),
			Depth:  make(map[*core.Vertex]int, n),
			Parent: make(map[*core.Vertex]*core.Vertex, n),
		},
	}
	for _, s := range sources {
		if !w.visited[s] {
			w.enqueue(s, 0, nil)
		}
	}
	if err := w.loop(); err != nil {
		return w.res, err
	}
	if !o.CoverAll {
		return w.res, nil
	}
	for _, v := range g.Vertices() {
		if w.visited[v] {
			continue
		}
		w.enqueue(v, 0, nil)
		if err := w.loop(); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// enqueue marks v visited at depth d, records its parent and queues it.
func (w *walker) enqueue(v *core.Vertex, d int, parent *core.Vertex) {
	w.visited[v] = true
	w.res.Depth[v] = d
	if parent != nil {
		w.res.Parent[v] = parent
	}
	w.queue.Enqueue(queueItem{v: v, depth: d})
}

// loop processes the queue until empty or error.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		raw, _ := w.queue.Dequeue()
		item := raw.(queueItem)
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return errors.Wrapf(err, "bfs: OnVisit at vertex %d", w.graph.IndexOf(item.v))
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor in edge insertion order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nbr := range item.v.Neighbors() {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, next, item.v)
	}
}
