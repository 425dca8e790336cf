package mcb_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/mcb"
)

// ringEdges returns the edges of the ring over the given vertex indices.
func ringEdges(vs ...int) [][2]int {
	out := make([][2]int, len(vs))
	for i := range vs {
		out[i] = [2]int{vs[i], vs[(i+1)%len(vs)]}
	}

	return out
}

// sets returns each cycle's sorted vertex indices.
func sets(cycles [][]int) [][]int {
	out := make([][]int, len(cycles))
	for i, c := range cycles {
		out[i] = slices.Sorted(slices.Values(c))
	}

	return out
}

// assertRings checks every cycle is closed and simple over the edge list.
func assertRings(t *testing.T, edges [][2]int, cycles [][]int) {
	t.Helper()
	adj := make(map[[2]int]bool, 2*len(edges))
	for _, e := range edges {
		adj[e] = true
		adj[[2]int{e[1], e[0]}] = true
	}
	for _, c := range cycles {
		require.GreaterOrEqual(t, len(c), 3)
		seen := map[int]bool{}
		for i, v := range c {
			assert.False(t, seen[v], "vertex %d repeated in %v", v, c)
			seen[v] = true
			assert.True(t, adj[[2]int{v, c[(i+1)%len(c)]}], "ring %v not closed at %d", c, v)
		}
	}
}

var (
	decalinEdges = append(ringEdges(0, 1, 2, 3, 4, 5),
		[2]int{0, 6}, [2]int{6, 7}, [2]int{7, 8}, [2]int{8, 9}, [2]int{9, 1})

	cubaneEdges = append(append(ringEdges(0, 1, 2, 3), ringEdges(4, 5, 6, 7)...),
		[2]int{0, 4}, [2]int{1, 5}, [2]int{2, 6}, [2]int{3, 7})

	// bicyclo[2.2.1]heptane: bridgeheads 0 and 3, one-carbon bridge 6.
	norbornaneEdges = append(ringEdges(0, 1, 2, 3, 4, 5), [2]int{0, 6}, [2]int{6, 3})

	k4Edges = [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
)

func TestSSSR(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		sizes []int
	}{
		{"triangle", 3, ringEdges(0, 1, 2), []int{3}},
		{"hexagon", 6, ringEdges(0, 1, 2, 3, 4, 5), []int{6}},
		{"tree", 4, [][2]int{{0, 1}, {1, 2}, {1, 3}}, nil},
		{"empty", 0, nil, nil},
		{"decalin", 10, decalinEdges, []int{6, 6}},
		{"norbornane", 7, norbornaneEdges, []int{5, 5}},
		{"cubane", 8, cubaneEdges, []int{4, 4, 4, 4, 4}},
		{"K4", 4, k4Edges, []int{3, 3, 3}},
		{"two triangles", 6, append(ringEdges(0, 1, 2), ringEdges(3, 4, 5)...), []int{3, 3}},
	}
	calc := mcb.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.SSSR(tc.n, tc.edges)
			require.NoError(t, err)
			sizes := make([]int, 0, len(got))
			for _, c := range got {
				sizes = append(sizes, len(c))
			}
			if len(tc.sizes) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tc.sizes, sizes)
			assertRings(t, tc.edges, got)
		})
	}
}

func TestSSSR_Order(t *testing.T) {
	got, err := mcb.New().SSSR(10, decalinEdges)
	require.NoError(t, err)
	want := [][]int{{0, 1, 2, 3, 4, 5}, {0, 1, 6, 7, 8, 9}}
	if diff := cmp.Diff(want, sets(got)); diff != "" {
		t.Errorf("SSSR sets mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0, 1, 2}, mustSSSR(t, 3, ringEdges(0, 1, 2))[0])
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, mustSSSR(t, 6, ringEdges(0, 1, 2, 3, 4, 5))[0])
}

func mustSSSR(t *testing.T, n int, edges [][2]int) [][]int {
	t.Helper()
	got, err := mcb.New().SSSR(n, edges)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	return got
}

func TestRelevantCycles(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges [][2]int
		count int
		size  int
	}{
		{"hexagon", 6, ringEdges(0, 1, 2, 3, 4, 5), 1, 6},
		{"decalin", 10, decalinEdges, 2, 6},
		{"norbornane", 7, norbornaneEdges, 2, 5},
		{"cubane", 8, cubaneEdges, 6, 4},
		{"K4", 4, k4Edges, 4, 3},
	}
	calc := mcb.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calc.RelevantCycles(tc.n, tc.edges)
			require.NoError(t, err)
			require.Len(t, got, tc.count)
			for _, c := range got {
				assert.Len(t, c, tc.size)
			}
			assertRings(t, tc.edges, got)
		})
	}

	none, err := calc.RelevantCycles(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	assert.Empty(t, none)
}

// TestRelevantCycles_ContainsSSSR checks RC is a superset of SSSR.
func TestRelevantCycles_ContainsSSSR(t *testing.T) {
	calc := mcb.New()
	for _, edges := range [][][2]int{decalinEdges, cubaneEdges, norbornaneEdges, k4Edges} {
		n := 0
		for _, e := range edges {
			n = max(n, e[0]+1, e[1]+1)
		}
		sssr, err := calc.SSSR(n, edges)
		require.NoError(t, err)
		rc, err := calc.RelevantCycles(n, edges)
		require.NoError(t, err)
		rcSets := sets(rc)
		for _, s := range sets(sssr) {
			assert.Contains(t, rcSets, s)
		}
	}
}

func TestInputValidation(t *testing.T) {
	calc := mcb.New()

	_, err := calc.SSSR(-1, nil)
	assert.ErrorIs(t, err, mcb.ErrNegativeOrder)

	_, err = calc.SSSR(3, [][2]int{{0, 3}})
	assert.ErrorIs(t, err, mcb.ErrBadEdge)

	_, err = calc.RelevantCycles(3, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, mcb.ErrBadEdge)

	_, err = calc.SSSR(3, [][2]int{{0, 1}, {1, 0}})
	assert.ErrorIs(t, err, mcb.ErrBadEdge)
}
