// SPDX-License-Identifier: MIT
//
// File: atom.go
// Role: molecule atoms and group atoms as core.VertexData.
// AI-HINT (file):
//   - A molecule Atom is a specific case of a GroupAtom when every listed
//     attribute admits it; an empty attribute list admits everything.
//   - Equivalent never mixes kinds: an Atom is never equivalent to a GroupAtom.

package chem

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/molgraph/core"
)

// Atom is a vertex label for molecules.
type Atom struct {
	Element   string
	Radicals  int
	LonePairs int
	Charge    int
	// Label is a reaction-center tag such as "*1"; it takes no part in
	// comparisons.
	Label string
}

var _ core.VertexData = (*Atom)(nil)

// Copy returns an independent copy of a.
func (a *Atom) Copy() core.VertexData {
	c := *a
	return &c
}

// Equivalent compares elements; strict also compares radicals, lone pairs
// and charge.
func (a *Atom) Equivalent(other core.VertexData, strict bool) bool {
	o, ok := other.(*Atom)
	if !ok || o.Element != a.Element {
		return false
	}
	if !strict {
		return true
	}

	return o.Radicals == a.Radicals && o.LonePairs == a.LonePairs && o.Charge == a.Charge
}

// IsSpecificCaseOf is strict equivalence against an Atom and admission
// against a GroupAtom.
func (a *Atom) IsSpecificCaseOf(other core.VertexData) bool {
	switch o := other.(type) {
	case *Atom:
		return a.Equivalent(o, true)
	case *GroupAtom:
		return o.admitsElement(a.Element) &&
			admits(o.Radicals, a.Radicals) &&
			admits(o.LonePairs, a.LonePairs) &&
			admits(o.Charges, a.Charge)
	default:
		return false
	}
}

// String renders a in adjacency-list notation, e.g. "C u1 p0 c0".
func (a *Atom) String() string {
	return fmt.Sprintf("%s u%d p%d c%s", a.Element, a.Radicals, a.LonePairs, signed(a.Charge))
}

// GroupAtom is a vertex label for patterns. Each list holds the admitted
// values; an empty list admits any value.
type GroupAtom struct {
	Types     []string
	Radicals  []int
	LonePairs []int
	Charges   []int
	Label     string
}

var _ core.VertexData = (*GroupAtom)(nil)

// Copy returns a deep copy of g.
func (g *GroupAtom) Copy() core.VertexData {
	return &GroupAtom{
		Types:     slices.Clone(g.Types),
		Radicals:  slices.Clone(g.Radicals),
		LonePairs: slices.Clone(g.LonePairs),
		Charges:   slices.Clone(g.Charges),
		Label:     g.Label,
	}
}

// Equivalent reports whether both groups admit the same values. strict is
// ignored: a group has no attributes beyond its lists.
func (g *GroupAtom) Equivalent(other core.VertexData, _ bool) bool {
	o, ok := other.(*GroupAtom)
	if !ok {
		return false
	}

	return sameSet(g.Types, o.Types) &&
		sameSet(g.Radicals, o.Radicals) &&
		sameSet(g.LonePairs, o.LonePairs) &&
		sameSet(g.Charges, o.Charges)
}

// IsSpecificCaseOf reports whether every value g admits is admitted by other.
func (g *GroupAtom) IsSpecificCaseOf(other core.VertexData) bool {
	o, ok := other.(*GroupAtom)
	if !ok {
		return false
	}
	for _, t := range g.Types {
		if !o.admitsType(t) {
			return false
		}
	}
	if len(g.Types) == 0 && !o.admitsType(AnyAtom) {
		return false
	}

	return narrower(g.Radicals, o.Radicals) &&
		narrower(g.LonePairs, o.LonePairs) &&
		narrower(g.Charges, o.Charges)
}

// String renders g in adjacency-list notation, e.g. "[C,O] u[0,1]".
func (g *GroupAtom) String() string {
	var sb strings.Builder
	if len(g.Types) == 0 {
		sb.WriteString(AnyAtom)
	} else {
		sb.WriteString(list(g.Types, func(s string) string { return s }))
	}
	if len(g.Radicals) > 0 {
		sb.WriteString(" u" + list(g.Radicals, func(n int) string { return fmt.Sprint(n) }))
	}
	if len(g.LonePairs) > 0 {
		sb.WriteString(" p" + list(g.LonePairs, func(n int) string { return fmt.Sprint(n) }))
	}
	if len(g.Charges) > 0 {
		sb.WriteString(" c" + list(g.Charges, signed))
	}

	return sb.String()
}

// admitsElement reports whether an atom of element el fits g.Types.
func (g *GroupAtom) admitsElement(el string) bool {
	if len(g.Types) == 0 {
		return true
	}
	for _, t := range g.Types {
		switch t {
		case AnyAtom:
			return true
		case AnyHeavyAtom:
			if el != "H" {
				return true
			}
		case el:
			return true
		}
	}

	return false
}

// admitsType reports whether the type t (an element or wildcard) is covered
// by g.Types.
func (g *GroupAtom) admitsType(t string) bool {
	switch t {
	case AnyAtom:
		return len(g.Types) == 0 || slices.Contains(g.Types, AnyAtom)
	case AnyHeavyAtom:
		return len(g.Types) == 0 || slices.Contains(g.Types, AnyAtom) || slices.Contains(g.Types, AnyHeavyAtom)
	default:
		return g.admitsElement(t)
	}
}

// admits reports whether v is in allowed, or allowed is empty.
func admits(allowed []int, v int) bool {
	return len(allowed) == 0 || slices.Contains(allowed, v)
}

// narrower reports whether every value admitted by sub is admitted by super.
func narrower(sub, super []int) bool {
	if len(super) == 0 {
		return true
	}
	if len(sub) == 0 {
		return false
	}
	for _, v := range sub {
		if !slices.Contains(super, v) {
			return false
		}
	}

	return true
}

func sameSet[T comparable](a, b []T) bool {
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	for _, v := range b {
		if !slices.Contains(a, v) {
			return false
		}
	}

	return true
}

func signed(n int) string {
	if n > 0 {
		return fmt.Sprintf("+%d", n)
	}

	return fmt.Sprint(n)
}

func list[T any](vs []T, format func(T) string) string {
	if len(vs) == 1 {
		return format(vs[0])
	}
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = format(v)
	}

	return "[" + strings.Join(parts, ",") + "]"
}
