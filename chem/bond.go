// File: bond.go
// Role: molecule bonds and group bonds as core.EdgeData.

package chem

import (
	"slices"

	"github.com/katalvlaran/molgraph/core"
)

// Bond is an edge label for molecules.
type Bond struct {
	Order float64
}

var _ core.EdgeData = (*Bond)(nil)

// Copy returns an independent copy of b.
func (b *Bond) Copy() core.EdgeData { return &Bond{Order: b.Order} }

// Equivalent compares bond orders. strict is ignored.
func (b *Bond) Equivalent(other core.EdgeData, _ bool) bool {
	o, ok := other.(*Bond)
	return ok && sameOrder(o.Order, b.Order)
}

// IsSpecificCaseOf is equivalence against a Bond and admission against a
// GroupBond.
func (b *Bond) IsSpecificCaseOf(other core.EdgeData) bool {
	switch o := other.(type) {
	case *Bond:
		return b.Equivalent(o, true)
	case *GroupBond:
		return o.admits(b.Order)
	default:
		return false
	}
}

// String returns the adjacency-list symbol of b.
func (b *Bond) String() string { return OrderSymbol(b.Order) }

// GroupBond is an edge label for patterns: the admitted orders, or any order
// when empty.
type GroupBond struct {
	Orders []float64
}

var _ core.EdgeData = (*GroupBond)(nil)

// Copy returns a deep copy of g.
func (g *GroupBond) Copy() core.EdgeData { return &GroupBond{Orders: slices.Clone(g.Orders)} }

// Equivalent reports whether both admit the same orders.
func (g *GroupBond) Equivalent(other core.EdgeData, _ bool) bool {
	o, ok := other.(*GroupBond)
	if !ok {
		return false
	}
	for _, x := range g.Orders {
		if !o.admits(x) || len(o.Orders) == 0 {
			return false
		}
	}
	for _, x := range o.Orders {
		if !g.admits(x) || len(g.Orders) == 0 {
			return false
		}
	}

	return true
}

// IsSpecificCaseOf reports whether every order g admits is admitted by other.
func (g *GroupBond) IsSpecificCaseOf(other core.EdgeData) bool {
	o, ok := other.(*GroupBond)
	if !ok {
		return false
	}
	if len(o.Orders) == 0 {
		return true
	}
	if len(g.Orders) == 0 {
		return false
	}
	for _, x := range g.Orders {
		if !o.admits(x) {
			return false
		}
	}

	return true
}

// String renders g as "S" or "[S,D]".
func (g *GroupBond) String() string {
	if len(g.Orders) == 0 {
		return "[S,B,D,T,Q]"
	}

	return list(g.Orders, OrderSymbol)
}

func (g *GroupBond) admits(order float64) bool {
	if len(g.Orders) == 0 {
		return true
	}
	for _, x := range g.Orders {
		if sameOrder(x, order) {
			return true
		}
	}

	return false
}
