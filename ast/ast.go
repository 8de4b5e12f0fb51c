// Package ast defines the two-variant abstract syntax tree produced by the
// combinator evaluator: Leaf (one identified token) and Structure (a named,
// ordered group of children).
package ast

import (
	"strings"

	"github.com/parsegrove/parsegrove/token"
)

// Node is either a Leaf or a Structure. The interface exists so callers can
// walk a tree without a type switch on every node, but the only two
// implementations are the ones in this package.
type Node interface {
	// IsLeaf reports whether this node is a Leaf (as opposed to a Structure).
	IsLeaf() bool

	// Print writes a human-readable, indented rendering of this node and,
	// for a Structure, its children, to sb.
	Print(sb *strings.Builder, indent int)
}

// Leaf owns exactly one identified token and has no children. It is the
// AST fragment emitted by the Token combinator (see package combinator).
type Leaf struct {
	Tok token.Token
}

// NewLeaf wraps tok in a Leaf node.
func NewLeaf(tok token.Token) *Leaf { return &Leaf{Tok: tok} }

func (l *Leaf) IsLeaf() bool { return true }

func (l *Leaf) Print(sb *strings.Builder, indent int) {
	writeIndent(sb, indent)
	sb.WriteString(l.Tok.ID())
	sb.WriteByte(' ')
	sb.WriteString(l.Tok.Content)
	sb.WriteByte('\n')
}

// Structure is a named, ordered group of child nodes, produced by the
// Named combinator. Its name is exactly the name given to the Named
// operator that produced it; its children reflect left-to-right
// consumption order in the grammar.
type Structure struct {
	Name     string
	Children []Node
}

// NewStructure wraps children under name.
func NewStructure(name string, children []Node) *Structure {
	return &Structure{Name: name, Children: children}
}

func (s *Structure) IsLeaf() bool { return false }

func (s *Structure) Print(sb *strings.Builder, indent int) {
	writeIndent(sb, indent)
	sb.WriteString(s.Name)
	sb.WriteByte('\n')
	for _, c := range s.Children {
		c.Print(sb, indent+1)
	}
}

func writeIndent(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
}

// Sprint renders nodes as a human-readable, indented tree. It has no
// bearing on the machine-readable contract; it exists purely for
// diagnostics (error messages, CLI output, test failure dumps).
func Sprint(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		n.Print(&sb, 0)
	}
	return sb.String()
}
