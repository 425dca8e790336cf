// File: elements.go
// Role: element table, atom wildcards and bond order symbols.

package chem

// Wildcards accepted in GroupAtom.Types.
const (
	// AnyAtom matches every element.
	AnyAtom = "R"
	// AnyHeavyAtom matches every element except hydrogen.
	AnyHeavyAtom = "R!H"
)

// valence maps element symbols to their valence electron count.
var valence = map[string]int{
	"H": 1, "He": 2,
	"Li": 1, "Be": 2, "B": 3, "C": 4, "N": 5, "O": 6, "F": 7, "Ne": 8,
	"Na": 1, "Mg": 2, "Al": 3, "Si": 4, "P": 5, "S": 6, "Cl": 7, "Ar": 8,
	"K": 1, "Ca": 2, "Ge": 4, "As": 5, "Se": 6, "Br": 7, "Kr": 8,
	"Sn": 4, "I": 7, "Xe": 8,
}

// IsElement reports whether sym is a known element symbol.
func IsElement(sym string) bool {
	_, ok := valence[sym]
	return ok
}

// ValenceElectrons returns the valence electron count of sym.
func ValenceElectrons(sym string) (int, bool) {
	n, ok := valence[sym]
	return n, ok
}

// Bond orders of the adjacency-list symbols.
const (
	OrderSingle    = 1.0
	OrderAromatic  = 1.5
	OrderDouble    = 2.0
	OrderTriple    = 3.0
	OrderQuadruple = 4.0
)

var orderSymbols = []struct {
	sym   string
	order float64
}{
	{"S", OrderSingle},
	{"B", OrderAromatic},
	{"D", OrderDouble},
	{"T", OrderTriple},
	{"Q", OrderQuadruple},
}

// OrderFromSymbol maps S, B, D, T, Q to a bond order.
func OrderFromSymbol(sym string) (float64, bool) {
	for _, s := range orderSymbols {
		if s.sym == sym {
			return s.order, true
		}
	}

	return 0, false
}

// OrderSymbol is the inverse of OrderFromSymbol; "?" for orders without one.
func OrderSymbol(order float64) string {
	for _, s := range orderSymbols {
		if sameOrder(s.order, order) {
			return s.sym
		}
	}

	return "?"
}

const orderTolerance = 1e-9

func sameOrder(a, b float64) bool {
	d := a - b
	return d < orderTolerance && d > -orderTolerance
}
