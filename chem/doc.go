// Package chem supplies the chemistry labels carried by core graphs:
// Atom and Bond for molecules, GroupAtom and GroupBond for patterns
// (reaction templates, functional groups).
//
// Comparison rules:
//
//   - Atom.Equivalent: same element; strict adds radicals, lone pairs and
//     charge.
//   - Atom.IsSpecificCaseOf(GroupAtom): the element is listed (or matched by
//     the wildcards R / R!H) and every listed attribute contains the atom's
//     value. Empty lists admit anything.
//   - GroupAtom.IsSpecificCaseOf(GroupAtom): every admitted value of the
//     narrower group is admitted by the wider one.
//   - Bonds follow the same rules over bond orders (S=1, B=1.5, D=2, T=3, Q=4).
package chem
