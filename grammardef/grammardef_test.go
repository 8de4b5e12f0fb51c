package grammardef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsegrove/parsegrove/ast"
	"github.com/parsegrove/parsegrove/grammardef"
	"github.com/parsegrove/parsegrove/parser"
)

const graphSource = `
tokens {
  ARROW  = /->/
  AT     = /@>/
  SEMI   = /;/
  COMMA  = /,/
  LBRACE = /\{/
  RBRACE = /\}/
  PREFIX = /\/\/\+/
  NAME   = /[a-zA-Z_][a-zA-Z0-9_]*/
  STAR   = /\*/
  WS     = /[ \t]+/
}

filter: WS

grammar {
  TARGET = name: NAME | "*": STAR | (~LBRACE, name: NAME, { ~COMMA, name: NAME }, ~RBRACE) ;
  EDGE   = "->": (name: NAME, ~ARROW, TARGET, ~SEMI) | "@>": (name: NAME, ~AT, TARGET, ~SEMI) ;
  LINE   = PREFIX, EDGE, { EDGE } ;
}

root: LINE
`

func mustBuild(t *testing.T, source string) *parser.Parser {
	tbl, filter, root, err := grammardef.Compile(source)
	require.NoError(t, err)
	p, err := parser.New(tbl, filter, root)
	require.NoError(t, err)
	return p
}

func TestCompile_SimpleArrowEdge(t *testing.T) {
	p := mustBuild(t, graphSource)
	results, err := p.Parse("//+ a->c;", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Success)

	top := results[0].AST
	require.Len(t, top, 2)
	assert.True(t, top[0].IsLeaf())

	structure, ok := top[1].(*ast.Structure)
	require.True(t, ok)
	assert.Equal(t, "->", structure.Name)
}

func TestCompile_BraceGroupTarget(t *testing.T) {
	p := mustBuild(t, graphSource)
	results, err := p.Parse("//+ a->{b,c};", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Success)
}

func TestCompile_UndefinedReference(t *testing.T) {
	_, _, _, err := grammardef.Compile(`
tokens {
  A = /a/
}
grammar {
  LINE = A, B ;
}
root: LINE
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"B"`)
}

func TestCompile_SelfReferentialProductionRejected(t *testing.T) {
	_, _, _, err := grammardef.Compile(`
tokens {
  A = /a/
}
grammar {
  LOOP = A, LOOP ;
}
root: LOOP
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defined in terms of itself")
}

func TestCompile_FilterAppliesToLexedTokens(t *testing.T) {
	p := mustBuild(t, graphSource)
	results, err := p.Parse("//+   a  ->  c ;", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Success)
}

func TestCompile_ProducesTokenTableWithDeclaredIDs(t *testing.T) {
	tbl, _, _, err := grammardef.Compile(graphSource)
	require.NoError(t, err)
	assert.True(t, tbl.Has("NAME"))
	assert.True(t, tbl.Has("ARROW"))
	assert.False(t, tbl.Has("NOPE"))
}
