// File: grammar.go
// Role: lexer and participle grammar of the adjacency-list format.
//
// Shape (one atom per line, lines are not significant to the grammar):
//
//	ethanol
//	multiplicity 1
//	1 *1 C u0 p0 c0 {2,S} {4,S}
//	2    O u0 p2 c0 {1,S} {3,S}
//	...
//
// Groups may list alternatives: "[C,O]", "u[0,1]", "{2,[S,D]}".

package adjlist

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type document struct {
	Name         string     `@Ident?`
	Multiplicity *valueList `( "multiplicity" @@ )?`
	Atoms        []*atomLine `@@*`
}

type valueList struct {
	Values []int `  @Int | "[" @Int ( "," @Int )* "]"`
}

type atomLine struct {
	Pos   lexer.Position
	Index int        `@Int`
	Label string     `@Label?`
	Types []string   `( @Ident | "[" @Ident ( "," @Ident )* "]" )`
	Props []*prop    `@@*`
	Bonds []*bondRef `@@*`
}

// prop is u (radicals), p (lone pairs) or c (charge), scalar or list.
type prop struct {
	Scalar string `  @Prop`
	Open   string `| @PropOpen`
	List   []int  `  @Int ( "," @Int )* "]"`
}

type bondRef struct {
	Pos      lexer.Position
	Neighbor int      `"{" @Int ","`
	Orders   []string `( @Ident | "[" @Ident ( "," @Ident )* "]" ) "}"`
}

var adjLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Keyword", Pattern: `multiplicity\b`},
	{Name: "PropOpen", Pattern: `[upc]\[`},
	{Name: "Prop", Pattern: `[upc][+-]?\d+`},
	{Name: "Label", Pattern: `\*\d*`},
	{Name: "Int", Pattern: `[+-]?\d+`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9!]*`},
	{Name: "Punct", Pattern: `[{},\[\]]`},
})

var parser = participle.MustBuild[document](
	participle.Lexer(adjLexer),
	participle.Elide("Comment", "Whitespace"),
)
