package lspserver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsegrove/parsegrove/combinator"
	"github.com/parsegrove/parsegrove/parser"
	"github.com/parsegrove/parsegrove/token"
)

func testParser(t *testing.T) *parser.Parser {
	tbl, err := token.NewTable([]token.Descriptor{
		{ID: "A", Pattern: "a"},
		{ID: "B", Pattern: "b"},
	})
	require.NoError(t, err)

	p, err := parser.New(tbl, nil, combinator.And("A", "B"))
	require.NoError(t, err)
	return p
}

func TestCollectDiagnostics_SuccessfulLineYieldsNone(t *testing.T) {
	ls := New(testParser(t), "0.1.0")
	diags := ls.collectDiagnostics("ab")
	assert.Empty(t, diags)
}

func TestCollectDiagnostics_FailureYieldsOneDiagnosticPerLine(t *testing.T) {
	ls := New(testParser(t), "0.1.0")
	diags := ls.collectDiagnostics("ab\nax")
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(1), diags[0].Range.Start.Line)
}

func TestCollectDiagnostics_LexFailureIsReported(t *testing.T) {
	ls := New(testParser(t), "0.1.0")
	diags := ls.collectDiagnostics("a?")
	require.Len(t, diags, 1)
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
}
