// File: dfs.go
// Role: Walk, iterative depth-first traversal on an explicit gods arraystack.
// Complexity: O(V + E) time plus hooks and filters; O(V) memory.

package dfs

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/core"
)

// walker encapsulates state during Walk.
type walker struct {
	opts Options
	res  *Result
}

// Walk performs depth-first search on g. Neighbors are explored in insertion
// order, so the result is reproducible.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - core.ErrInvalidOperation if start is not in g (single-source mode).
//   - any error returned by OnVisit or OnExit, wrapped; Order is cleared.
func Walk(g *core.Graph, start *core.Vertex, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := applyOptions(opts)
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, errors.Wrap(core.ErrInvalidOperation, "dfs: Walk: start vertex not in graph")
	}

	vertices := g.Vertices()
	res := &Result{
		Order:   make([]*core.Vertex, 0, len(vertices)),
		Depth:   make(map[*core.Vertex]int, len(vertices)),
		Parent:  make(map[*core.Vertex]*core.Vertex, len(vertices)),
		Visited: make(map[*core.Vertex]bool, len(vertices)),
	}
	w := &walker{opts: o, res: res}

	if o.FullTraversal {
		for _, v := range vertices {
			if res.Visited[v] {
				continue
			}
			if err := w.traverse(v); err != nil {
				return res, err
			}
		}
	} else if err := w.traverse(start); err != nil {
		return res, err
	}
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse explores the tree rooted at root.
func (w *walker) traverse(root *core.Vertex) error {
	if err := w.visit(root, 0); err != nil {
		return err
	}
	stack := arraystack.New()
	stack.Push(newFrame(root, 0))

	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if f.next == len(f.nbrs) {
			stack.Pop()
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(f.v); err != nil {
					w.res.Order = nil
					return errors.Wrap(err, "dfs: OnExit hook")
				}
			}
			w.res.Order = append(w.res.Order, f.v)
			continue
		}
		u := f.nbrs[f.next]
		f.next++

		if w.res.Visited[u] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.opts.MaxDepth != Unbounded && f.depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[u] = f.v
		if err := w.visit(u, f.depth+1); err != nil {
			return err
		}
		stack.Push(newFrame(u, f.depth+1))
	}

	return nil
}

// visit marks v reached at depth and runs the pre-order hook.
func (w *walker) visit(v *core.Vertex, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil
			return errors.Wrap(err, "dfs: OnVisit hook")
		}
	}

	return nil
}
