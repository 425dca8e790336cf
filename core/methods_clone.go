// File: methods_clone.go
// Role: Copy / CopyAndMap / Merge / Split.
// Determinism:
//   - Every result preserves the relative vertex order of its source(s).
// AI-HINT (file):
//   - Shallow results (Copy(false), Merge, Split) share Vertex and Edge instances
//     with the source; mutating a shared vertex's neighbors through one graph is
//     visible through the other.
//   - Deep results (Copy(true), CopyAndMap) share nothing.

package core

// Copy returns a copy of g.
//
// Shallow (deep == false): a new vertex sequence over the same Vertex and Edge
// instances. Deep (deep == true): every vertex is cloned through its Copy hook,
// every edge through its Copy hook, and the cloned edges are rewired to the
// cloned endpoints.
//
// Complexity: O(V) shallow, O(V + E) deep.
func (g *Graph) Copy(deep bool) *Graph {
	if !deep {
		return sharedGraph(g.vertices)
	}
	clone, _ := g.CopyAndMap()

	return clone
}

// CopyAndMap returns a deep copy of g together with the old→new vertex map.
//
// Steps:
//  1. Clone vertices in sequence order and register them in the new graph.
//  2. Clone each unique edge (Edges() order), rewire through the map, register.
//
// Complexity: O(V + E).
func (g *Graph) CopyAndMap() (*Graph, map[*Vertex]*Vertex) {
	clone := &Graph{
		vertices: make([]*Vertex, 0, len(g.vertices)),
		members:  make(map[*Vertex]struct{}, len(g.vertices)),
	}
	mapping := make(map[*Vertex]*Vertex, len(g.vertices))
	for _, v := range g.vertices {
		nv := v.Copy()
		mapping[v] = nv
		clone.vertices = append(clone.vertices, nv)
		clone.members[nv] = struct{}{}
	}
	for _, e := range g.Edges() {
		ne := e.Copy()
		ne.vertex1 = mapping[e.vertex1]
		ne.vertex2 = mapping[e.vertex2]
		ne.vertex1.edges.Set(ne.vertex2, ne)
		ne.vertex2.edges.Set(ne.vertex1, ne)
	}

	return clone, mapping
}

// Merge returns a new graph whose vertex sequence is g's vertices followed by
// other's. Vertices and edges are shared, not copied; the result is typically
// disconnected (two molecules viewed as one graph).
//
// Complexity: O(V1 + V2).
func (g *Graph) Merge(other *Graph) *Graph {
	vs := make([]*Vertex, 0, len(g.vertices)+len(other.vertices))
	vs = append(vs, g.vertices...)
	vs = append(vs, other.vertices...)

	return sharedGraph(vs)
}

// Split partitions g into one graph per connected component.
//
// Implementation:
//   - Flood-fill from the last vertex of the remaining sequence.
//   - Move the reached vertices (in their original relative order) into a component.
//   - Repeat on the remainder until nothing is left; each round strictly shrinks it.
//
// Components share vertices and edges with g. The component holding g's last
// vertex comes first. An empty graph yields a single empty graph.
//
// Complexity: O(V * C + E) where C is the number of components.
func (g *Graph) Split() []*Graph {
	if len(g.vertices) == 0 {
		return []*Graph{NewGraph()}
	}
	remaining := g.vertices
	out := make([]*Graph, 0, 1)
	for len(remaining) > 0 {
		reached := floodFill(remaining[len(remaining)-1])
		component := make([]*Vertex, 0, len(reached))
		rest := make([]*Vertex, 0, len(remaining)-len(reached))
		for _, v := range remaining {
			if _, ok := reached[v]; ok {
				component = append(component, v)
			} else {
				rest = append(rest, v)
			}
		}
		out = append(out, sharedGraph(component))
		remaining = rest
	}

	return out
}

// floodFill returns every vertex reachable from start (start included).
func floodFill(start *Vertex) map[*Vertex]struct{} {
	reached := map[*Vertex]struct{}{start: {}}
	frontier := []*Vertex{start}
	for i := 0; i < len(frontier); i++ {
		for p := frontier[i].edges.Oldest(); p != nil; p = p.Next() {
			if _, ok := reached[p.Key]; ok {
				continue
			}
			reached[p.Key] = struct{}{}
			frontier = append(frontier, p.Key)
		}
	}

	return reached
}

// sharedGraph builds a graph over vs without touching their neighbor maps.
func sharedGraph(vs []*Vertex) *Graph {
	g := &Graph{
		vertices: make([]*Vertex, len(vs)),
		members:  make(map[*Vertex]struct{}, len(vs)),
	}
	copy(g.vertices, vs)
	for _, v := range vs {
		g.members[v] = struct{}{}
	}

	return g
}
