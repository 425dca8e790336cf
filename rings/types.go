// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, the CycleBasis capability, Perceiver and its options,
//       and the Fusion classification of ring overlaps.

package rings

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/katalvlaran/molgraph/mcb"
)

// Sentinel errors for ring perception.
var (
	// ErrMalformedRing indicates a vertex set that cannot be threaded into a
	// single cycle, or whose thread does not close.
	ErrMalformedRing = errors.New("rings: malformed ring")

	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("rings: graph is nil")
)

// CycleBasis computes ring sets over node-index edge lists. Vertices are
// 0..n-1; every returned cycle lists node indices in ring order.
type CycleBasis interface {
	// SSSR returns a minimum cycle basis (smallest set of smallest rings).
	SSSR(n int, edges [][2]int) ([][]int, error)

	// RelevantCycles returns the union of all minimum cycle bases.
	RelevantCycles(n int, edges [][2]int) ([][]int, error)
}

// Perceiver performs ring perception on core graphs. It is stateless between
// calls and safe to share; the graphs it inspects are not.
type Perceiver struct {
	basis  CycleBasis
	logger *log.Logger
}

// Option configures a Perceiver.
type Option func(p *Perceiver)

// WithCycleBasis replaces the default cycle-basis engine (mcb.Calculator).
// Panics on nil: a Perceiver without a basis cannot perceive anything.
func WithCycleBasis(b CycleBasis) Option {
	if b == nil {
		panic("rings: WithCycleBasis(nil)")
	}

	return func(p *Perceiver) { p.basis = b }
}

// WithLogger routes debug traces (basis sizes, merge passes) to l.
// Panics on nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("rings: WithLogger(nil)")
	}

	return func(p *Perceiver) { p.logger = l }
}

// New returns a Perceiver using mcb and a silent logger unless overridden.
func New(opts ...Option) *Perceiver {
	p := &Perceiver{
		basis:  mcb.New(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

var defaultPerceiver = New()

// Default returns the shared Perceiver behind the package-level helpers.
func Default() *Perceiver { return defaultPerceiver }

// Fusion names how two rings of a ring system share atoms.
type Fusion int

const (
	// FusionNone: no two rings share an atom.
	FusionNone Fusion = iota
	// FusionSpiro: rings share exactly one atom.
	FusionSpiro
	// FusionFused: rings share one bond (two atoms).
	FusionFused
	// FusionBridged: rings share three or more atoms.
	FusionBridged
)

// String returns the lowercase name of f.
func (f Fusion) String() string {
	switch f {
	case FusionNone:
		return "none"
	case FusionSpiro:
		return "spiro"
	case FusionFused:
		return "fused"
	default:
		return "bridged"
	}
}

// FusionClass maps a maximum ring overlap (see MaxCycleOverlap) to its Fusion.
func FusionClass(overlap int) Fusion {
	switch {
	case overlap <= 0:
		return FusionNone
	case overlap == 1:
		return FusionSpiro
	case overlap == 2:
		return FusionFused
	default:
		return FusionBridged
	}
}
