// File: mapping.go
// Role: Mapping Validator: the contract every isomorphism search must satisfy.

package core

// Mapping is a vertex correspondence from one graph (keys) to another (values).
type Mapping map[*Vertex]*Vertex

// IsMappingValid audits mapping from g into other.
//
// Checks, returning false on the first violation:
//  1. Every pair (v, w) satisfies v.Equivalent(w, strict) when equivalent is
//     true, else v.IsSpecificCaseOf(w).
//  2. For every two mapped vertices, edges must agree:
//     - present on both sides: the edges satisfy the same comparison as in (1);
//     - equivalence mode: an edge on only one side fails;
//     - specific-case mode: g may hold an edge other lacks, not the reverse.
//
// The empty mapping is valid. Keys are visited in g's vertex order; keys that
// are not vertices of g follow, and behave as vertices without edges.
//
// Complexity: O(M^2) for M mapped pairs.
func (g *Graph) IsMappingValid(other *Graph, mapping Mapping, equivalent, strict bool) bool {
	keys := g.mappingKeys(mapping)
	for _, v := range keys {
		w := mapping[v]
		if equivalent {
			if !v.Equivalent(w, strict) {
				return false
			}
		} else if !v.IsSpecificCaseOf(w) {
			return false
		}
	}

	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			v1, v2 := keys[i], keys[j]
			w1, w2 := mapping[v1], mapping[v2]
			e1, has1 := g.edgeBetween(v1, v2)
			e2, has2 := other.edgeBetween(w1, w2)
			switch {
			case has1 && has2:
				if equivalent && !e1.Equivalent(e2, strict) {
					return false
				}
				if !equivalent && !e1.IsSpecificCaseOf(e2) {
					return false
				}
			case has1 && !equivalent:
				// subgraph relation: extra edges on the source side are allowed
			case has1 || has2:
				return false
			}
		}
	}

	return true
}

// mappingKeys lists the keys of m in g's vertex order, followed by foreign keys
// in an arbitrary order.
func (g *Graph) mappingKeys(m Mapping) []*Vertex {
	keys := make([]*Vertex, 0, len(m))
	placed := make(map[*Vertex]struct{}, len(m))
	for _, v := range g.vertices {
		if _, ok := m[v]; ok {
			keys = append(keys, v)
			placed[v] = struct{}{}
		}
	}
	for v := range m {
		if _, ok := placed[v]; !ok {
			keys = append(keys, v)
		}
	}

	return keys
}

// edgeBetween is HasEdge + GetEdge without the error path.
func (g *Graph) edgeBetween(v1, v2 *Vertex) (*Edge, bool) {
	if !g.HasVertex(v1) || !g.HasVertex(v2) {
		return nil, false
	}

	return v1.EdgeTo(v2)
}
