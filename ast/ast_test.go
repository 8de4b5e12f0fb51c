package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parsegrove/parsegrove/ast"
	"github.com/parsegrove/parsegrove/token"
)

func leaf(id, content string) *ast.Leaf {
	return ast.NewLeaf(token.Token{Meta: token.Descriptor{ID: id}, Content: content})
}

func TestStructure_ChildOrderPreserved(t *testing.T) {
	s := ast.NewStructure("->", []ast.Node{leaf("Name", "a"), leaf("Name", "c")})
	assert.False(t, s.IsLeaf())
	assert.Equal(t, "->", s.Name)
	assert.Len(t, s.Children, 2)
	assert.True(t, s.Children[0].IsLeaf())
}

func TestSprint(t *testing.T) {
	tree := []ast.Node{
		leaf("//+", "//+"),
		ast.NewStructure("->", []ast.Node{leaf("Name", "a"), leaf("Name", "c")}),
	}
	out := ast.Sprint(tree)
	assert.Contains(t, out, "//+ //+")
	assert.Contains(t, out, "->")
	assert.Contains(t, out, "Name a")
	assert.Contains(t, out, "Name c")
}
