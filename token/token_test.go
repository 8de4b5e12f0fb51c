package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsegrove/parsegrove/token"
)

func TestNewTable_DuplicateID(t *testing.T) {
	_, err := token.NewTable([]token.Descriptor{
		{ID: "A", Pattern: "a"},
		{ID: "A", Pattern: "b"},
	})
	require.Error(t, err)
	var dup *token.DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.ID)
}

func TestNewTable_InvalidPattern(t *testing.T) {
	_, err := token.NewTable([]token.Descriptor{
		{ID: "A", Pattern: "("},
	})
	require.Error(t, err)
	var invalid *token.InvalidPatternError
	require.ErrorAs(t, err, &invalid)
}

func TestTable_Has(t *testing.T) {
	tbl, err := token.NewTable([]token.Descriptor{{ID: "A", Pattern: "a"}})
	require.NoError(t, err)
	assert.True(t, tbl.Has("A"))
	assert.False(t, tbl.Has("B"))
}

func TestEof(t *testing.T) {
	eof := token.Eof(3, 10)
	assert.True(t, eof.IsEOF())
	assert.Equal(t, token.EofID, eof.ID())
	assert.Equal(t, token.EofContent, eof.Content)
	assert.EqualValues(t, 3, eof.Line)
	assert.EqualValues(t, 10, eof.Column)
}

func TestDescriptor_Match_Anchored(t *testing.T) {
	tbl, err := token.NewTable([]token.Descriptor{{ID: "NUM", Pattern: `[0-9]+`}})
	require.NoError(t, err)
	d := tbl.At(0)
	text, ok := d.Match("123abc")
	require.True(t, ok)
	assert.Equal(t, "123", text)

	_, ok = d.Match("abc123")
	assert.False(t, ok)
}
