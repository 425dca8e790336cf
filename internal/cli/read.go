package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/adjlist"
	"github.com/katalvlaran/molgraph/core"
)

// input is a parsed file with its atoms numbered as in the file.
type input struct {
	path   string
	doc    *adjlist.Document
	atoms  []*core.Vertex
	number map[*core.Vertex]int
}

// readInput parses path as a molecule, or as a group pattern when group is
// set. Numbering is captured before any algorithm may reorder the graph.
func readInput(path string, group bool) (*input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read")
	}
	parse := adjlist.ParseMolecule
	if group {
		parse = adjlist.ParseGroup
	}
	doc, err := parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	in := &input{path: path, doc: doc, atoms: doc.Graph.Vertices()}
	in.number = make(map[*core.Vertex]int, len(in.atoms))
	for i, v := range in.atoms {
		in.number[v] = i + 1
	}

	return in, nil
}

// atomList renders vertices by their file numbers, e.g. "1 2 6".
func (in *input) atomList(vs []*core.Vertex) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.Itoa(in.number[v])
	}

	return strings.Join(parts, " ")
}
