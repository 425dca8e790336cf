// File: utils.go
// Role: vertex-set signatures and cycle deduplication.

package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/molgraph/core"
)

// UniqueCycles collapses cycles that visit the same vertex set, keeping the
// first occurrence of each set in input order. Rotations and reversals of a
// cycle, such as the two directions reported by AllCycles, collapse to one.
// Time Complexity: O(C·L log L) for C cycles of average length L.
func UniqueCycles(cycles [][]*core.Vertex) [][]*core.Vertex {
	if len(cycles) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(cycles))
	out := make([][]*core.Vertex, 0, len(cycles))
	for _, c := range cycles {
		sig := SetSig(c)
		if _, dup := seen[sig]; dup {
			continue
		}
		seen[sig] = struct{}{}
		out = append(out, c)
	}

	return out
}

// SetSig returns an order-independent signature of the vertex set of vs.
// Signatures are only comparable within one process.
// Time Complexity: O(n log n).
func SetSig(vs []*core.Vertex) string {
	keys := make([]string, len(vs))
	for i, v := range vs {
		keys[i] = fmt.Sprintf("%p", v)
	}
	sort.Strings(keys)

	return strings.Join(keys, ",")
}
