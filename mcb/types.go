package mcb

import (
	"github.com/pkg/errors"
	"github.com/soniakeys/bits"
)

// Sentinel errors for input validation.
var (
	// ErrBadEdge is returned for an edge with an endpoint outside [0,n), a
	// self-loop, or an edge listed twice.
	ErrBadEdge = errors.New("mcb: bad edge")

	// ErrNegativeOrder is returned when n < 0.
	ErrNegativeOrder = errors.New("mcb: negative vertex count")
)

// Calculator is the default cycle-basis engine. The zero value is ready to use
// and holds no state between calls.
type Calculator struct{}

// New returns a Calculator.
func New() *Calculator { return &Calculator{} }

// cycle is one candidate: the vertex sequence along the ring and its edge vector.
type cycle struct {
	path  []int
	edges bits.Bits
	key   []int // sorted vertex indices, for the deterministic tie-break
}

// graph is the validated adjacency form of an edge list.
type graph struct {
	n      int
	adj    [][]int
	edgeID map[[2]int]int
	m      int
}

// pair returns the canonical (low, high) key of an undirected edge.
func pair(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}
