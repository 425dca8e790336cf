// File: types.go
// Role: options, sentinel errors and the Result of a breadth-first search.

package bfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when a source is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option (e.g. negative depth) is recorded and surfaced as
// ErrOptionViolation when the search starts.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v *core.Vertex, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr-neighbor.
	FilterNeighbor func(curr, neighbor *core.Vertex) bool

	// CoverAll restarts the search from the first unvisited vertex, in
	// graph order, whenever the queue runs dry, until every vertex is seen.
	CoverAll bool

	err error
}

// DefaultOptions returns Options with no depth limit, no filtering, a no-op
// OnVisit and CoverAll off.
func DefaultOptions() Options {
	return Options{
		OnVisit:        func(*core.Vertex, int) error { return nil },
		FilterNeighbor: func(_, _ *core.Vertex) bool { return true },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v *core.Vertex, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option, ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor *core.Vertex) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithCoverAll makes the search visit every vertex of the graph, one
// connected component after another.
func WithCoverAll() Option {
	return func(o *Options) {
		o.CoverAll = true
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices in visit sequence, sources first.
//   - Depth: distance in edges from the nearest source (or from the restart
//     vertex of its component under CoverAll).
//   - Parent: predecessor in the BFS forest; roots have no entry.
type Result struct {
	Order  []*core.Vertex
	Depth  map[*core.Vertex]int
	Parent map[*core.Vertex]*core.Vertex
}

// PathTo reconstructs the path from the root of dest's tree to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest *core.Vertex) ([]*core.Vertex, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, errors.New("bfs: no path to vertex")
	}
	path := []*core.Vertex{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
