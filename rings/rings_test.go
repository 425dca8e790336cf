package rings_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/core"
	"github.com/katalvlaran/molgraph/rings"
)

func TestSSSR(t *testing.T) {
	tests := []struct {
		name  string
		build func(testing.TB) (*core.Graph, []*core.Vertex)
		sizes []int
	}{
		{"decalin", decalin, []int{6, 6}},
		{"spiro", spiro, []int{3, 3}},
		{"norbornane", norbornane, []int{5, 5}},
		{"cubane", cubane, []int{4, 4, 4, 4, 4}},
		{"biphenyl", biphenyl, []int{6, 6}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := tc.build(t)
			sssr, err := rings.SSSR(g)
			require.NoError(t, err)
			require.Len(t, sssr, len(tc.sizes))
			for i, r := range sssr {
				assert.Len(t, r, tc.sizes[i])
				requireRing(t, g, r)
			}
		})
	}
}

func TestSSSR_SingleRing(t *testing.T) {
	g, vs := build(t, 6, ring(0, 6)...)

	sssr, err := rings.SSSR(g)
	require.NoError(t, err)
	require.Len(t, sssr, 1)
	assert.ElementsMatch(t, vs, sssr[0])
	requireRing(t, g, sssr[0])

	overlap, err := rings.MaxCycleOverlap(g)
	require.NoError(t, err)
	assert.Equal(t, 0, overlap)
}

func TestSSSR_Acyclic(t *testing.T) {
	g, _ := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3})

	sssr, err := rings.SSSR(g)
	require.NoError(t, err)
	assert.Empty(t, sssr)

	mono, poly, err := rings.DisparateRings(g)
	require.NoError(t, err)
	assert.Empty(t, mono)
	assert.Empty(t, poly)
}

func TestRelevantCycles(t *testing.T) {
	g, _ := cubane(t)
	rc, err := rings.RelevantCycles(g)
	require.NoError(t, err)
	require.Len(t, rc, 6)
	for _, r := range rc {
		assert.Len(t, r, 4)
		requireRing(t, g, r)
	}

	g, _ = norbornane(t)
	rc, err = rings.RelevantCycles(g)
	require.NoError(t, err)
	assert.Len(t, rc, 2)
}

func TestNilGraph(t *testing.T) {
	_, err := rings.SSSR(nil)
	assert.ErrorIs(t, err, rings.ErrGraphNil)
	_, err = rings.RelevantCycles(nil)
	assert.ErrorIs(t, err, rings.ErrGraphNil)
	_, err = rings.MaxCycleOverlap(nil)
	assert.ErrorIs(t, err, rings.ErrGraphNil)
	_, _, err = rings.MergeCycleSets(nil, nil)
	assert.ErrorIs(t, err, rings.ErrGraphNil)
	_, err = rings.LargestRing(nil, nil)
	assert.ErrorIs(t, err, rings.ErrGraphNil)
}

func TestSortCyclicVertices(t *testing.T) {
	g, vs := build(t, 6, ring(0, 6)...)

	in := []*core.Vertex{vs[2], vs[0], vs[4], vs[1], vs[5], vs[3]}
	before := append([]*core.Vertex(nil), in...)
	got, err := rings.SortCyclicVertices(g, in)
	require.NoError(t, err)
	assert.Equal(t, "321054", names(got))
	assert.Equal(t, before, in, "input must not be reordered")
}

func TestSortCyclicVertices_Malformed(t *testing.T) {
	g, vs := build(t, 6, ring(0, 6)...)

	tests := []struct {
		name string
		in   []*core.Vertex
	}{
		{"empty", nil},
		{"single bond", []*core.Vertex{vs[0], vs[1]}},
		{"stuck", []*core.Vertex{vs[0], vs[1], vs[3]}},
		{"open chain", []*core.Vertex{vs[0], vs[1], vs[2]}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rings.SortCyclicVertices(g, tc.in)
			assert.ErrorIs(t, err, rings.ErrMalformedRing)
		})
	}
}

func TestPolycyclicViews_Fused(t *testing.T) {
	g, vs := decalin(t)

	shared, err := rings.PolycyclicVertices(g)
	require.NoError(t, err)
	assert.Equal(t, []*core.Vertex{vs[0], vs[1]}, shared)

	poly, err := rings.PolycyclicRings(g)
	require.NoError(t, err)
	require.Len(t, poly, 1)
	assert.Equal(t, vs, poly[0])

	mono, err := rings.MonocyclicRings(g)
	require.NoError(t, err)
	assert.Empty(t, mono)

	overlap, err := rings.MaxCycleOverlap(g)
	require.NoError(t, err)
	assert.Equal(t, 2, overlap)
	assert.Equal(t, rings.FusionFused, rings.FusionClass(overlap))
}

func TestPolycyclicViews_Isolated(t *testing.T) {
	g, _ := biphenyl(t)

	shared, err := rings.PolycyclicVertices(g)
	require.NoError(t, err)
	assert.Empty(t, shared)

	poly, err := rings.PolycyclicRings(g)
	require.NoError(t, err)
	assert.Empty(t, poly)

	mono, err := rings.MonocyclicRings(g)
	require.NoError(t, err)
	require.Len(t, mono, 2)
	for _, r := range mono {
		requireRing(t, g, r)
	}
}

func TestMaxCycleOverlap(t *testing.T) {
	tests := []struct {
		name    string
		build   func(testing.TB) (*core.Graph, []*core.Vertex)
		overlap int
		fusion  rings.Fusion
	}{
		{"biphenyl", biphenyl, 0, rings.FusionNone},
		{"spiro", spiro, 1, rings.FusionSpiro},
		{"decalin", decalin, 2, rings.FusionFused},
		{"norbornane", norbornane, 3, rings.FusionBridged},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := tc.build(t)
			got, err := rings.MaxCycleOverlap(g)
			require.NoError(t, err)
			assert.Equal(t, tc.overlap, got)
			assert.Equal(t, tc.fusion, rings.FusionClass(got))
		})
	}
}

func TestFusion_String(t *testing.T) {
	assert.Equal(t, "none", rings.FusionNone.String())
	assert.Equal(t, "spiro", rings.FusionSpiro.String())
	assert.Equal(t, "fused", rings.FusionFused.String())
	assert.Equal(t, "bridged", rings.FusionBridged.String())
	assert.Equal(t, rings.FusionBridged, rings.FusionClass(6))
	assert.Equal(t, rings.FusionNone, rings.FusionClass(-1))
}

func TestDisparateRings(t *testing.T) {
	g, vs := cubane(t)
	mono, poly, err := rings.DisparateRings(g)
	require.NoError(t, err)
	assert.Empty(t, mono)
	require.Len(t, poly, 1)
	assert.Equal(t, vs, poly[0])

	g, _ = biphenyl(t)
	mono, poly, err = rings.DisparateRings(g)
	require.NoError(t, err)
	assert.Len(t, mono, 2)
	assert.Empty(t, poly)
}

// TestMergeCycleSets_Fixpoint builds two ring systems that a single pass
// leaves apart: the bridging ring joins only the first system it meets.
func TestMergeCycleSets_Fixpoint(t *testing.T) {
	g, vs := build(t, 14)
	set := func(ix ...int) []*core.Vertex {
		out := make([]*core.Vertex, len(ix))
		for i, n := range ix {
			out[i] = vs[n]
		}

		return out
	}
	cycles := [][]*core.Vertex{
		set(0, 1, 2),
		set(2, 3, 4),
		set(5, 6, 7),
		set(7, 8, 9),
		set(11, 12, 13),
		set(4, 5, 10),
	}

	mono, poly, err := rings.MergeCycleSets(g, cycles)
	require.NoError(t, err)
	require.Len(t, mono, 1)
	assert.Equal(t, "bcd", names(mono[0]))
	require.Len(t, poly, 1)
	assert.Equal(t, "0123456789a", names(poly[0]))
}

func TestMergeCycleSets_Errors(t *testing.T) {
	g, vs := build(t, 3)

	_, _, err := rings.MergeCycleSets(g, [][]*core.Vertex{{}})
	assert.ErrorIs(t, err, rings.ErrMalformedRing)

	stray := core.NewVertex(name("x"))
	_, _, err = rings.MergeCycleSets(g, [][]*core.Vertex{{vs[0], stray}})
	assert.ErrorIs(t, err, core.ErrInvalidOperation)

	mono, poly, err := rings.MergeCycleSets(g, nil)
	require.NoError(t, err)
	assert.Empty(t, mono)
	assert.Empty(t, poly)
}

func TestLargestRing(t *testing.T) {
	g, vs := decalin(t)
	largest, err := rings.LargestRing(g, vs[0])
	require.NoError(t, err)
	assert.Len(t, largest, 10)

	g, vs = build(t, 3, [2]int{0, 1}, [2]int{1, 2})
	largest, err = rings.LargestRing(g, vs[1])
	require.NoError(t, err)
	assert.Nil(t, largest)
}

// fixedBasis returns canned cycles or an error.
type fixedBasis struct {
	cycles [][]int
	err    error
}

func (f fixedBasis) SSSR(int, [][2]int) ([][]int, error)           { return f.cycles, f.err }
func (f fixedBasis) RelevantCycles(int, [][2]int) ([][]int, error) { return f.cycles, f.err }

func TestWithCycleBasis(t *testing.T) {
	g, _ := build(t, 6, ring(0, 6)...)

	boom := errors.New("boom")
	_, err := rings.New(rings.WithCycleBasis(fixedBasis{err: boom})).SSSR(g)
	assert.ErrorIs(t, err, boom)

	_, err = rings.New(rings.WithCycleBasis(fixedBasis{cycles: [][]int{{0, 2}}})).RelevantCycles(g)
	assert.ErrorIs(t, err, rings.ErrMalformedRing)

	got, err := rings.New(rings.WithCycleBasis(fixedBasis{cycles: [][]int{{5, 4, 3, 2, 1, 0}}})).SSSR(g)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "054321", names(got[0]))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g, _ := cubane(t)

	_, _, err := rings.New(rings.WithLogger(logger)).DisparateRings(g)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "relevant cycles")
	assert.Contains(t, buf.String(), "merged cycle sets")
}

func TestOptionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { rings.WithCycleBasis(nil) })
	assert.Panics(t, func() { rings.WithLogger(nil) })
	assert.NotNil(t, rings.Default())
}
