// File: gf2.go
// Role: incremental Gaussian elimination over GF(2) edge vectors.

package mcb

import (
	"github.com/soniakeys/bits"
)

// eliminator keeps a row-echelon basis: each row is stored under its lowest
// set bit (its pivot), and pivots are distinct.
type eliminator struct {
	rows map[int]bits.Bits
}

func newEliminator() *eliminator {
	return &eliminator{rows: make(map[int]bits.Bits)}
}

// reduce returns v minus its projection on the basis, and the pivot of the
// remainder (-1 when v lies in the span). v is not modified.
func (e *eliminator) reduce(v bits.Bits) (bits.Bits, int) {
	r := bits.New(v.Num)
	r.Xor(r, v)
	for {
		p := r.OneFrom(0)
		if p < 0 {
			return r, -1
		}
		row, ok := e.rows[p]
		if !ok {
			return r, p
		}
		r.Xor(r, row)
	}
}

// independent reports whether v lies outside the span of the basis.
func (e *eliminator) independent(v bits.Bits) bool {
	_, p := e.reduce(v)
	return p >= 0
}

// insert adds v to the basis when independent and reports whether it did.
func (e *eliminator) insert(v bits.Bits) bool {
	r, p := e.reduce(v)
	if p < 0 {
		return false
	}
	e.rows[p] = r

	return true
}

// rank returns the number of basis rows.
func (e *eliminator) rank() int { return len(e.rows) }
