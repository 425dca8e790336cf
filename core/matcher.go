// File: matcher.go
// Role: Matcher capability contract and its functional options.
// AI-HINT (file):
//   - Mappings returned by any Matcher go from the first graph (keys) to the
//     second (values) and must pass IsMappingValid in the matching mode:
//     equivalent=true for isomorphism, equivalent=false for subgraph search.
//   - WithSaveOrder(true) obliges the Matcher to leave both vertex sequences
//     as it found them (SortVertices(true) + RestoreVertexOrder).

package core

// Matcher is a graph isomorphism engine. "No match" is a false/empty result,
// never an error.
type Matcher interface {
	// IsIsomorphic reports whether g1 and g2 are isomorphic.
	IsIsomorphic(g1, g2 *Graph, opts MatchOptions) bool

	// FindIsomorphism returns one isomorphism from g1 to g2, if any.
	FindIsomorphism(g1, g2 *Graph, opts MatchOptions) (Mapping, bool)

	// IsSubgraphIsomorphic reports whether g2 (the pattern) maps into g1.
	IsSubgraphIsomorphic(g1, g2 *Graph, opts MatchOptions) bool

	// FindSubgraphIsomorphisms returns every mapping from g1 vertices onto the
	// pattern g2.
	FindSubgraphIsomorphisms(g1, g2 *Graph, opts MatchOptions) []Mapping
}

// MatchOptions carries the per-call knobs of a Matcher.
type MatchOptions struct {
	// InitialMap seeds the search with pairs that must hold (g1 → g2).
	InitialMap Mapping

	// SaveOrder asks the Matcher to restore both vertex sequences on return.
	SaveOrder bool

	// Strict asks vertex/edge comparisons to consider fine-grained attributes.
	Strict bool
}

// MatchOption configures MatchOptions.
type MatchOption func(o *MatchOptions)

// WithInitialMap seeds the search. The map is copied.
func WithInitialMap(m Mapping) MatchOption {
	return func(o *MatchOptions) {
		o.InitialMap = make(Mapping, len(m))
		for k, v := range m {
			o.InitialMap[k] = v
		}
	}
}

// WithSaveOrder toggles restoring the vertex order after the search.
func WithSaveOrder(save bool) MatchOption {
	return func(o *MatchOptions) { o.SaveOrder = save }
}

// WithStrict toggles strict comparisons (default true).
func WithStrict(strict bool) MatchOption {
	return func(o *MatchOptions) { o.Strict = strict }
}

// NewMatchOptions applies opts left-to-right over the defaults
// (no seed, no order restore, strict).
func NewMatchOptions(opts ...MatchOption) MatchOptions {
	o := MatchOptions{Strict: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
