package codegen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsegrove/parsegrove/codegen"
	"github.com/parsegrove/parsegrove/combinator"
)

func graphGrammar() combinator.Expr {
	target := combinator.Or(
		combinator.Named("Name", combinator.Token("NAME")),
		combinator.Named("*", combinator.Token("STAR")),
	)
	edge := combinator.Named("->", combinator.And(
		combinator.Named("Name", combinator.Token("NAME")),
		combinator.Mute("ARROW"),
		target,
		combinator.Mute("SEMI"),
	))
	return combinator.And(combinator.Token("PREFIX"), edge)
}

func TestAccessorNames_DedupesAndSorts(t *testing.T) {
	accessors := codegen.AccessorNames(graphGrammar())
	var tags []string
	for _, a := range accessors {
		tags = append(tags, a.Tag)
	}
	assert.Equal(t, []string{"*", "->", "Name"}, tags)
}

func TestAccessorNames_GeneratesCamelCase(t *testing.T) {
	accessors := codegen.AccessorNames(graphGrammar())
	byTag := map[string]string{}
	for _, a := range accessors {
		byTag[a.Tag] = a.GoName
	}
	assert.Equal(t, "Name", byTag["Name"])
}

func TestWriteGo_EmitsValidLookingSource(t *testing.T) {
	accessors := codegen.AccessorNames(graphGrammar())
	var sb strings.Builder
	require.NoError(t, codegen.WriteGo(&sb, "graphgrammar", accessors))

	out := sb.String()
	assert.Contains(t, out, "package graphgrammar")
	assert.Contains(t, out, `Name = "Name"`)
	assert.Contains(t, out, "const (")
}

func TestWriteGo_EmptyAccessorsOmitsConstBlock(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, codegen.WriteGo(&sb, "empty", nil))
	assert.NotContains(t, sb.String(), "const (")
}
