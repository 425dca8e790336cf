// SPDX-License-Identifier: MIT
//
// File: adjlist.go
// Role: ParseMolecule / ParseGroup: adjacency-list text to labeled core graphs.
// Determinism:
//   - Vertices follow atom-line order; each bond is added once, when its first
//     endpoint's line is read, in the order the line lists it.

package adjlist

import (
	"slices"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/chem"
	"github.com/katalvlaran/molgraph/core"
)

// Sentinel errors for adjacency-list reading.
var (
	// ErrSyntax wraps grammar failures; the message carries the position.
	ErrSyntax = errors.New("adjlist: syntax error")

	// ErrBadAtom reports an atom line that is well formed but meaningless:
	// duplicate index or label, unknown element, repeated property, or a
	// list where a molecule needs a single value.
	ErrBadAtom = errors.New("adjlist: bad atom")

	// ErrBadBond reports an unknown neighbor, a self bond, a bond listed on
	// only one side or with different orders on each side, or an unknown
	// order symbol.
	ErrBadBond = errors.New("adjlist: bad bond")

	// ErrMultiplicity reports a multiplicity the radical count cannot reach.
	ErrMultiplicity = errors.New("adjlist: inconsistent multiplicity")
)

// Document is a parsed adjacency list.
type Document struct {
	// Name is the optional first-line identifier.
	Name string

	// Multiplicity holds the admitted spin multiplicities: exactly one for a
	// molecule (derived from the radicals when omitted), any number for a
	// group (empty admits any).
	Multiplicity []int

	// Graph carries *chem.Atom / *chem.Bond for molecules and
	// *chem.GroupAtom / *chem.GroupBond for groups.
	Graph *core.Graph

	// Labeled maps reaction-center labels such as "*1" to their vertex.
	Labeled map[string]*core.Vertex
}

// ParseMolecule reads a molecule adjacency list.
//
// Behavior highlights:
//   - u and c default to 0; p defaults to the lone pairs left after bonds,
//     radicals and charge: (valence - u - c - sum of bond orders) / 2,
//     floored at 0.
//   - Multiplicity defaults to radicals+1; when given, radicals-(m-1) must be
//     even and non-negative.
//
// Errors: ErrSyntax, ErrBadAtom, ErrBadBond, ErrMultiplicity, all wrapped
// with the line of the offending atom.
func ParseMolecule(text string) (*Document, error) {
	return parse(text, false)
}

// ParseGroup reads a group (pattern) adjacency list. Element lists, property
// lists and bond-order lists are allowed; types may use the wildcards R and
// R!H.
func ParseGroup(text string) (*Document, error) {
	return parse(text, true)
}

// builder accumulates one document.
type builder struct {
	group   bool
	doc     *Document
	byIndex map[int]*core.Vertex
	lines   map[int]*atomLine
}

func parse(text string, group bool) (*Document, error) {
	ast, err := parser.ParseString("", text)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}

	b := &builder{
		group:   group,
		doc:     &Document{Name: ast.Name, Graph: core.NewGraph(), Labeled: make(map[string]*core.Vertex)},
		byIndex: make(map[int]*core.Vertex, len(ast.Atoms)),
		lines:   make(map[int]*atomLine, len(ast.Atoms)),
	}
	for _, line := range ast.Atoms {
		if err := b.addAtom(line); err != nil {
			return nil, err
		}
	}
	if err := b.addBonds(ast.Atoms); err != nil {
		return nil, err
	}
	if !group {
		if err := b.finishMolecule(ast); err != nil {
			return nil, err
		}
	} else if ast.Multiplicity != nil {
		b.doc.Multiplicity = ast.Multiplicity.Values
	}

	return b.doc, nil
}

func (b *builder) addAtom(line *atomLine) error {
	if _, dup := b.byIndex[line.Index]; dup {
		return atomErr(line, "duplicate index")
	}
	if line.Label != "" {
		if _, dup := b.doc.Labeled[line.Label]; dup {
			return atomErr(line, "duplicate label "+line.Label)
		}
	}
	for _, t := range line.Types {
		if !chem.IsElement(t) && !(b.group && (t == chem.AnyAtom || t == chem.AnyHeavyAtom)) {
			return atomErr(line, "unknown element "+t)
		}
	}
	props, err := readProps(line)
	if err != nil {
		return err
	}

	var data core.VertexData
	if b.group {
		data = &chem.GroupAtom{
			Types:     line.Types,
			Radicals:  props['u'],
			LonePairs: props['p'],
			Charges:   props['c'],
			Label:     line.Label,
		}
	} else {
		if len(line.Types) != 1 {
			return atomErr(line, "a molecule atom needs exactly one element")
		}
		a := &chem.Atom{Element: line.Types[0], LonePairs: core.Unset, Label: line.Label}
		for kind, vs := range props {
			if len(vs) != 1 {
				return atomErr(line, "a molecule atom needs a single "+string(kind)+" value")
			}
			switch kind {
			case 'u':
				a.Radicals = vs[0]
			case 'p':
				a.LonePairs = vs[0]
			case 'c':
				a.Charge = vs[0]
			}
		}
		data = a
	}

	v := b.doc.Graph.AddVertex(core.NewVertex(data))
	b.byIndex[line.Index] = v
	b.lines[line.Index] = line
	if line.Label != "" {
		b.doc.Labeled[line.Label] = v
	}

	return nil
}

// readProps collects the u/p/c properties of a line, keyed by letter.
func readProps(line *atomLine) (map[byte][]int, error) {
	props := make(map[byte][]int, 3)
	for _, p := range line.Props {
		var kind byte
		var values []int
		if p.Scalar != "" {
			kind = p.Scalar[0]
			n, err := strconv.Atoi(p.Scalar[1:])
			if err != nil {
				return nil, atomErr(line, "bad property "+p.Scalar)
			}
			values = []int{n}
		} else {
			kind = p.Open[0]
			values = p.List
		}
		if _, dup := props[kind]; dup {
			return nil, atomErr(line, "repeated property "+string(kind))
		}
		props[kind] = values
	}

	return props, nil
}

func (b *builder) addBonds(lines []*atomLine) error {
	for _, line := range lines {
		v := b.byIndex[line.Index]
		listed := make(map[int]bool, len(line.Bonds))
		for _, ref := range line.Bonds {
			if listed[ref.Neighbor] {
				return bondErr(line, ref, "listed twice")
			}
			listed[ref.Neighbor] = true
			u, ok := b.byIndex[ref.Neighbor]
			if !ok {
				return bondErr(line, ref, "unknown neighbor")
			}
			if u == v {
				return bondErr(line, ref, "self bond")
			}
			orders, err := b.orders(line, ref)
			if err != nil {
				return err
			}
			back := b.reverse(ref.Neighbor, line.Index)
			if back == nil {
				return bondErr(line, ref, "not listed by the neighbor")
			}
			backOrders, err := b.orders(b.lines[ref.Neighbor], back)
			if err != nil {
				return err
			}
			if !sameOrders(orders, backOrders) {
				return bondErr(line, ref, "orders differ between the two sides")
			}
			if b.doc.Graph.HasEdge(v, u) {
				continue
			}
			if _, err := b.doc.Graph.AddEdge(core.NewEdge(v, u, b.edgeData(orders))); err != nil {
				return errors.Wrapf(err, "adjlist: line %d", line.Pos.Line)
			}
		}
	}

	return nil
}

// reverse finds the reference from atom from back to atom to.
func (b *builder) reverse(from, to int) *bondRef {
	for _, ref := range b.lines[from].Bonds {
		if ref.Neighbor == to {
			return ref
		}
	}

	return nil
}

func (b *builder) orders(line *atomLine, ref *bondRef) ([]float64, error) {
	if !b.group && len(ref.Orders) != 1 {
		return nil, bondErr(line, ref, "a molecule bond needs exactly one order")
	}
	out := make([]float64, len(ref.Orders))
	for i, sym := range ref.Orders {
		o, ok := chem.OrderFromSymbol(sym)
		if !ok {
			return nil, bondErr(line, ref, "unknown order "+sym)
		}
		out[i] = o
	}

	return out, nil
}

func (b *builder) edgeData(orders []float64) core.EdgeData {
	if b.group {
		return &chem.GroupBond{Orders: orders}
	}

	return &chem.Bond{Order: orders[0]}
}

// finishMolecule fills default lone pairs and checks the multiplicity.
func (b *builder) finishMolecule(ast *document) error {
	radicals := 0
	for _, v := range b.doc.Graph.Vertices() {
		a := v.Data.(*chem.Atom)
		radicals += a.Radicals
		if a.LonePairs != core.Unset {
			continue
		}
		bonds := 0.0
		for _, e := range v.Edges() {
			bonds += e.Data.(*chem.Bond).Order
		}
		ve, _ := chem.ValenceElectrons(a.Element)
		a.LonePairs = max(0, int(float64(ve-a.Radicals-a.Charge)-bonds)/2)
	}

	if ast.Multiplicity == nil {
		b.doc.Multiplicity = []int{radicals + 1}
		return nil
	}
	if len(ast.Multiplicity.Values) != 1 {
		return errors.Wrap(ErrMultiplicity, "a molecule has one multiplicity")
	}
	m := ast.Multiplicity.Values[0]
	if m < 1 || radicals-(m-1) < 0 || (radicals-(m-1))%2 != 0 {
		return errors.Wrapf(ErrMultiplicity, "multiplicity %d with %d radical electrons", m, radicals)
	}
	b.doc.Multiplicity = []int{m}

	return nil
}

// sameOrders compares order lists as sets.
func sameOrders(a, b []float64) bool {
	return slices.Equal(slices.Sorted(slices.Values(a)), slices.Sorted(slices.Values(b)))
}

func atomErr(line *atomLine, msg string) error {
	return errors.Wrapf(ErrBadAtom, "line %d, atom %d: %s", line.Pos.Line, line.Index, msg)
}

func bondErr(line *atomLine, ref *bondRef, msg string) error {
	return errors.Wrapf(ErrBadBond, "line %d, bond %d-%d: %s", ref.Pos.Line, line.Index, ref.Neighbor, msg)
}
