package rings

import "github.com/katalvlaran/molgraph/core"

// SSSR runs Default().SSSR.
func SSSR(g *core.Graph) ([][]*core.Vertex, error) { return defaultPerceiver.SSSR(g) }

// RelevantCycles runs Default().RelevantCycles.
func RelevantCycles(g *core.Graph) ([][]*core.Vertex, error) {
	return defaultPerceiver.RelevantCycles(g)
}

// PolycyclicVertices runs Default().PolycyclicVertices.
func PolycyclicVertices(g *core.Graph) ([]*core.Vertex, error) {
	return defaultPerceiver.PolycyclicVertices(g)
}

// PolycyclicRings runs Default().PolycyclicRings.
func PolycyclicRings(g *core.Graph) ([][]*core.Vertex, error) {
	return defaultPerceiver.PolycyclicRings(g)
}

// MonocyclicRings runs Default().MonocyclicRings.
func MonocyclicRings(g *core.Graph) ([][]*core.Vertex, error) {
	return defaultPerceiver.MonocyclicRings(g)
}

// DisparateRings runs Default().DisparateRings.
func DisparateRings(g *core.Graph) (monocyclic, polycyclic [][]*core.Vertex, err error) {
	return defaultPerceiver.DisparateRings(g)
}

// MergeCycleSets runs Default().MergeCycleSets.
func MergeCycleSets(g *core.Graph, cycles [][]*core.Vertex) (monocyclic, polycyclic [][]*core.Vertex, err error) {
	return defaultPerceiver.MergeCycleSets(g, cycles)
}

// MaxCycleOverlap runs Default().MaxCycleOverlap.
func MaxCycleOverlap(g *core.Graph) (int, error) { return defaultPerceiver.MaxCycleOverlap(g) }

// LargestRing runs Default().LargestRing.
func LargestRing(g *core.Graph, v *core.Vertex) ([]*core.Vertex, error) {
	return defaultPerceiver.LargestRing(g, v)
}
