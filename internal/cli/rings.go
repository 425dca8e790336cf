package cli

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/molgraph/core"
	"github.com/katalvlaran/molgraph/rings"
)

// ringsOpts holds the flags of the rings command.
type ringsOpts struct {
	group bool // read FILE as a group pattern
	atom  int  // report the largest ring through this atom; 0 skips
}

func newRingsCmd() *cobra.Command {
	var opts ringsOpts

	cmd := &cobra.Command{
		Use:   "rings FILE",
		Short: "Report the rings of a molecule",
		Long: `Report the smallest set of smallest rings, the relevant cycles, the polycyclic
and monocyclic ring systems and how strongly the rings are fused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			in, err := readInput(args[0], opts.group)
			if err != nil {
				return err
			}
			if opts.atom < 0 || opts.atom > len(in.atoms) {
				return errors.Errorf("rings: --atom %d outside 1..%d", opts.atom, len(in.atoms))
			}
			p := rings.New(rings.WithLogger(logger))
			if err := writeRings(cmd.OutOrStdout(), p, in, opts.atom); err != nil {
				return err
			}
			prog.done("perceived rings of " + in.path)

			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.group, "group", false, "read FILE as a group pattern")
	cmd.Flags().IntVar(&opts.atom, "atom", 0, "also report the largest ring through this atom")

	return cmd
}

// writeRings prints the ring report of in to w.
func writeRings(w io.Writer, p *rings.Perceiver, in *input, atom int) error {
	g := in.doc.Graph
	if in.doc.Name != "" {
		fmt.Fprintln(w, in.doc.Name)
	}
	fmt.Fprintf(w, "atoms %d, bonds %d\n", g.VertexCount(), g.EdgeCount())

	sssr, err := p.SSSR(g)
	if err != nil {
		return err
	}
	in.writeCycles(w, "SSSR", sssr)

	rc, err := p.RelevantCycles(g)
	if err != nil {
		return err
	}
	in.writeCycles(w, "relevant cycles", rc)

	poly, err := p.PolycyclicVertices(g)
	if err != nil {
		return err
	}
	if len(poly) == 0 {
		fmt.Fprintln(w, "polycyclic atoms: -")
	} else {
		fmt.Fprintf(w, "polycyclic atoms: %s\n", in.atomList(poly))
	}

	mono, err := p.MonocyclicRings(g)
	if err != nil {
		return err
	}
	in.writeCycles(w, "monocyclic rings", mono)

	systems, err := p.PolycyclicRings(g)
	if err != nil {
		return err
	}
	in.writeCycles(w, "polycyclic systems", systems)

	dMono, dPoly, err := p.DisparateRings(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "disparate rings: %d monocyclic, %d polycyclic\n", len(dMono), len(dPoly))

	overlap, err := p.MaxCycleOverlap(g)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "fusion: %s (max overlap %d)\n", rings.FusionClass(overlap), overlap)

	if atom > 0 {
		return in.writeLargest(w, p, atom)
	}

	return nil
}

func (in *input) writeLargest(w io.Writer, p *rings.Perceiver, atom int) error {
	ring, err := p.LargestRing(in.doc.Graph, in.atoms[atom-1])
	if err != nil {
		return err
	}
	if ring == nil {
		fmt.Fprintf(w, "largest ring through %d: -\n", atom)
		return nil
	}
	fmt.Fprintf(w, "largest ring through %d: %s\n", atom, in.atomList(ring))

	return nil
}

// writeCycles prints a titled count followed by one indented line per cycle.
func (in *input) writeCycles(w io.Writer, title string, cycles [][]*core.Vertex) {
	fmt.Fprintf(w, "%s: %d\n", title, len(cycles))
	for _, c := range cycles {
		fmt.Fprintf(w, "  %s\n", in.atomList(c))
	}
}
