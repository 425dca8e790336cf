// SPDX-License-Identifier: MIT
//
// File: variants_platonic.go
// Role: PlatonicName and the canonical vertex counts and edge lists of the
// five Platonic solids.
// Determinism:
//   - Each edge list is sorted by (u, v) with u < v, apart from the closing
//     edges grouped with their ring; the lists are never mutated.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// String returns the solid's name, or "Unknown".
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// pair is an edge between two local vertex indices.
type pair struct{ u, v int }

type solid struct {
	vertices int
	edges    []pair
}

var platonicSolids = map[PlatonicName]solid{
	Tetrahedron: {
		// K4.
		vertices: 4,
		edges: []pair{
			{0, 1}, {0, 2}, {0, 3},
			{1, 2}, {1, 3},
			{2, 3},
		},
	},
	Cube: {
		// Faces 0-1-2-3 and 4-5-6-7 joined by the verticals i-(i+4).
		vertices: 8,
		edges: []pair{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
			{4, 5}, {4, 7}, {5, 6}, {6, 7},
		},
	},
	Octahedron: {
		// Poles 0 and 1 over the equator 2-4-3-5.
		vertices: 6,
		edges: []pair{
			{0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {1, 3}, {1, 4}, {1, 5},
			{2, 4}, {2, 5}, {3, 4}, {3, 5},
		},
	},
	Dodecahedron: {
		// Pentagons 0..4 and 5..9, a ten-ring 10..19, and spokes: the top
		// pentagon to the even ring positions, the bottom one to the odd.
		vertices: 20,
		edges: []pair{
			{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
			{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
			{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
			{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
			{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
			{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
		},
	},
	Icosahedron: {
		// Poles 0 and 11 over the pentagons 1..5 and 6..10; top vertex i
		// also bonds bottom vertices i+5 and i+6 (mod the pentagon).
		vertices: 12,
		edges: []pair{
			{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
			{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
			{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
			{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
			{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
			{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
		},
	},
}
