// File: types.go
// Role: sentinels, Options and the traversal result.

package dfs

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk or to a
	// cycle query.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Unbounded is the MaxDepth value that disables the depth limit.
const Unbounded = -1

// Option configures optional behavior of Walk and of the cycle queries.
type Option func(*Options)

// Options holds configurable parameters for traversal and cycle search.
type Options struct {
	// OnVisit, if non-nil, is invoked when Walk discovers a vertex (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(v *core.Vertex) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before it is appended to Result.Order.
	OnExit func(v *core.Vertex) error

	// MaxDepth limits how many edges a path may extend from its start.
	// For Walk, a depth of 0 visits only the start vertex. For cycle search
	// it bounds the chain, so only cycles of at most MaxDepth+1 vertices are
	// reported. Unbounded (the default) disables the limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted by Walk for each neighbor;
	// returning false skips it.
	FilterNeighbor func(v *core.Vertex) bool

	// FullTraversal makes Walk restart from every unvisited vertex in
	// sequence order, covering disconnected components.
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns Options with no hooks, no depth limit, no filtering
// and single-source traversal.
func DefaultOptions() Options {
	return Options{MaxDepth: Unbounded}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v *core.Vertex) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v *core.Vertex) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits path length to limit edges. Negative disables the limit.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			limit = Unbounded
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(v *core.Vertex) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of Walk.
type Result struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []*core.Vertex

	// Depth maps each reached vertex to its distance (#edges) from its root.
	Depth map[*core.Vertex]int

	// Parent maps each non-root reached vertex to the vertex it was discovered from.
	Parent map[*core.Vertex]*core.Vertex

	// Visited flags the reached vertices.
	Visited map[*core.Vertex]bool

	// SkippedNeighbors mirrors Options.SkippedNeighbors after the walk.
	SkippedNeighbors int
}

// frame is one level of an explicit DFS stack.
type frame struct {
	v     *core.Vertex
	nbrs  []*core.Vertex
	next  int
	depth int
}

func newFrame(v *core.Vertex, depth int) *frame {
	return &frame{v: v, nbrs: v.Neighbors(), depth: depth}
}

func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
