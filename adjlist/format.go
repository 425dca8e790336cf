// File: format.go
// Role: Format, the inverse of ParseMolecule / ParseGroup.

package adjlist

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/chem"
)

// Format renders doc as an adjacency list that ParseMolecule (for *chem.Atom
// graphs) or ParseGroup (for *chem.GroupAtom graphs) reads back into the same
// graph. Atoms are numbered by vertex order from 1; every property is written
// out, so no default applies on the way back.
//
// Errors: ErrBadAtom / ErrBadBond for vertex or edge data of another type.
func Format(doc *Document) (string, error) {
	var sb strings.Builder
	if doc.Name != "" {
		sb.WriteString(doc.Name + "\n")
	}
	switch len(doc.Multiplicity) {
	case 0:
	case 1:
		fmt.Fprintf(&sb, "multiplicity %d\n", doc.Multiplicity[0])
	default:
		parts := make([]string, len(doc.Multiplicity))
		for i, m := range doc.Multiplicity {
			parts[i] = fmt.Sprint(m)
		}
		fmt.Fprintf(&sb, "multiplicity [%s]\n", strings.Join(parts, ","))
	}

	g := doc.Graph
	for i, v := range g.Vertices() {
		var label string
		switch a := v.Data.(type) {
		case *chem.Atom:
			label = a.Label
		case *chem.GroupAtom:
			label = a.Label
		default:
			return "", errors.Wrapf(ErrBadAtom, "atom %d: data %T has no adjacency-list form", i+1, v.Data)
		}
		fmt.Fprintf(&sb, "%d", i+1)
		if label != "" {
			sb.WriteString(" " + label)
		}
		fmt.Fprintf(&sb, " %s", v.Data)
		for _, e := range v.Edges() {
			switch e.Data.(type) {
			case *chem.Bond, *chem.GroupBond:
			default:
				return "", errors.Wrapf(ErrBadBond, "atom %d: bond data %T has no adjacency-list form", i+1, e.Data)
			}
			fmt.Fprintf(&sb, " {%d,%s}", g.IndexOf(e.Other(v))+1, e.Data)
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
