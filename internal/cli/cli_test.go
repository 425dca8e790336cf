package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/adjlist"
	"github.com/katalvlaran/molgraph/builder"
	"github.com/katalvlaran/molgraph/chem"
	"github.com/katalvlaran/molgraph/core"
	"github.com/katalvlaran/molgraph/internal/cli"
)

const methanol = `methanol
1 C u0 p0 c0 {2,S} {3,S} {4,S} {5,S}
2 O u0 p2 c0 {1,S} {6,S}
3 H u0 p0 c0 {1,S}
4 H u0 p0 c0 {1,S}
5 H u0 p0 c0 {1,S}
6 H u0 p0 c0 {2,S}
`

// methanolReordered lists the atoms of methanol starting from the hydroxyl H.
const methanolReordered = `1 H u0 p0 c0 {2,S}
2 O u0 p2 c0 {1,S} {3,S}
3 C u0 p0 c0 {2,S} {4,S} {5,S} {6,S}
4 H {3,S}
5 H {3,S}
6 H {3,S}
`

// methanolOddOxygen differs from methanol only in the oxygen's lone pairs.
const methanolOddOxygen = `1 C {2,S} {3,S} {4,S} {5,S}
2 O p1 {1,S} {6,S}
3 H {1,S}
4 H {1,S}
5 H {1,S}
6 H {2,S}
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// decalinFile writes the carbon skeleton of decalin as an adjacency list.
func decalinFile(t *testing.T) string {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{
		builder.WithVertexData(func(int) core.VertexData { return &chem.Atom{Element: "C"} }),
		builder.WithEdgeData(func(int, int) core.EdgeData { return &chem.Bond{Order: chem.OrderSingle} }),
	}, builder.FusedRings(6, 6))
	require.NoError(t, err)
	text, err := adjlist.Format(&adjlist.Document{Name: "decalin", Multiplicity: []int{1}, Graph: g})
	require.NoError(t, err)

	return writeFile(t, "decalin.adj", text)
}

func TestRings_Fused(t *testing.T) {
	out, _, err := run(t, "rings", decalinFile(t), "--atom", "7")
	require.NoError(t, err)

	for _, want := range []string{
		"decalin\n",
		"atoms 10, bonds 11\n",
		"SSSR: 2\n",
		"relevant cycles: 2\n",
		"polycyclic atoms: 1 2\n",
		"monocyclic rings: 0\n",
		"polycyclic systems: 1\n  1 2 3 4 5 6 7 8 9 10\n",
		"disparate rings: 0 monocyclic, 1 polycyclic\n",
		"fusion: fused (max overlap 2)\n",
	} {
		assert.Contains(t, out, want)
	}

	_, largest, found := strings.Cut(out, "largest ring through 7: ")
	require.True(t, found)
	assert.Len(t, strings.Fields(largest), 10)
}

func TestRings_Acyclic(t *testing.T) {
	out, _, err := run(t, "rings", writeFile(t, "methanol.adj", methanol), "--atom", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "SSSR: 0\n")
	assert.Contains(t, out, "polycyclic atoms: -\n")
	assert.Contains(t, out, "fusion: none (max overlap 0)\n")
	assert.Contains(t, out, "largest ring through 1: -\n")
}

func TestRings_Verbose(t *testing.T) {
	_, logs, err := run(t, "-v", "rings", decalinFile(t))
	require.NoError(t, err)
	assert.Contains(t, logs, "sssr")
	assert.Contains(t, logs, "perceived rings of")

	_, logs, err = run(t, "rings", decalinFile(t))
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestIso(t *testing.T) {
	a := writeFile(t, "a.adj", methanol)
	b := writeFile(t, "b.adj", methanolReordered)
	odd := writeFile(t, "odd.adj", methanolOddOxygen)

	out, _, err := run(t, "iso", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "isomorphic: yes\n  1->3 2->2 ")
	assert.True(t, strings.HasSuffix(out, " 6->1\n"), out)

	out, _, err = run(t, "iso", a, odd)
	require.NoError(t, err)
	assert.Equal(t, "isomorphic: no\n", out)

	out, _, err = run(t, "iso", a, odd, "--strict=false")
	require.NoError(t, err)
	assert.Contains(t, out, "isomorphic: yes\n")

	cfg := writeFile(t, "lenient.toml", "strict = false\n")
	out, _, err = run(t, "--config", cfg, "iso", a, odd)
	require.NoError(t, err)
	assert.Contains(t, out, "isomorphic: yes\n")
}

func TestIso_Subgraph(t *testing.T) {
	mol := writeFile(t, "methanol.adj", methanol)
	hydroxyl := writeFile(t, "hydroxyl.adj", "1 *1 O u0 {2,S}\n2 *2 H {1,S}\n")
	ch := writeFile(t, "ch.adj", "1 C u0 {2,S}\n2 H {1,S}\n")

	out, _, err := run(t, "iso", mol, hydroxyl, "--subgraph", "--group")
	require.NoError(t, err)
	assert.Equal(t, "embeddings: 1\n  2->1 6->2\n", out)

	out, _, err = run(t, "iso", mol, ch, "--subgraph", "--group")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "embeddings: 3\n"), out)

	cfg := writeFile(t, "group.toml", "group_pattern = true\n")
	out, _, err = run(t, "--config", cfg, "iso", mol, hydroxyl, "--subgraph")
	require.NoError(t, err)
	assert.Equal(t, "embeddings: 1\n  2->1 6->2\n", out)
}

func TestErrors(t *testing.T) {
	mol := writeFile(t, "methanol.adj", methanol)
	group := writeFile(t, "group.toml", "group_pattern = true\n")
	unknown := writeFile(t, "unknown.toml", "strict = true\nmatcher = \"vf2\"\n")
	broken := writeFile(t, "broken.adj", "1 C {2,S\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"rings", filepath.Join(t.TempDir(), "nope.adj")}, "read"},
		{"atom out of range", []string{"rings", mol, "--atom", "7"}, "outside 1..6"},
		{"syntax", []string{"rings", broken}, "syntax error"},
		{"group without subgraph", []string{"--config", group, "iso", mol, mol}, "needs --subgraph"},
		{"unknown config key", []string{"--config", unknown, "rings", mol}, "unknown keys matcher"},
		{"arity", []string{"iso", mol}, "accepts 2 arg(s)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := run(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
	assert.ErrorIs(t, runErr(t, "rings", broken), adjlist.ErrSyntax)
}

func runErr(t *testing.T, args ...string) error {
	t.Helper()
	_, _, err := run(t, args...)

	return err
}

func TestLoadConfig(t *testing.T) {
	cfg, err := cli.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cli.DefaultConfig(), cfg)

	cfg, err = cli.LoadConfig(writeFile(t, "c.toml", "group_pattern = true\n"))
	require.NoError(t, err)
	assert.Equal(t, cli.Config{Strict: true, GroupPattern: true}, cfg)

	_, err = cli.LoadConfig(writeFile(t, "bad.toml", "strict = \n"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	cli.SetVersion("v0.1.0", "abc123", "2026-10-18")
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "ringinfo v0.1.0\ncommit: abc123\n")
}
