// Package codegen converts an expression tree's Named tags into a small Go
// source file of const identifiers, the way ava12-llx's cmd/llxgen turns a
// compiled grammar into generated Go source. The artifact here is a set of
// name accessors rather than a serialized grammar table, since the
// expression tree itself is already usable at runtime without codegen.
package codegen

import (
	"fmt"
	"io"
	"sort"

	"github.com/iancoleman/strcase"

	"github.com/parsegrove/parsegrove/combinator"
)

// Accessor pairs a Named node's tag with the exported Go identifier
// generated from it.
type Accessor struct {
	Tag    string
	GoName string
}

// AccessorNames walks root and returns one Accessor per distinct Named tag
// found anywhere in the tree, sorted by tag for deterministic output.
func AccessorNames(root combinator.Expr) []Accessor {
	seen := make(map[string]bool)
	var tags []string
	collectTags(root, seen, &tags)
	sort.Strings(tags)

	out := make([]Accessor, len(tags))
	for i, tag := range tags {
		out[i] = Accessor{Tag: tag, GoName: strcase.ToCamel(tag)}
	}
	return out
}

func collectTags(e combinator.Expr, seen map[string]bool, tags *[]string) {
	switch v := e.(type) {
	case *combinator.NamedExpr:
		if !seen[v.Name] {
			seen[v.Name] = true
			*tags = append(*tags, v.Name)
		}
		collectTags(v.X, seen, tags)
	case *combinator.AndExpr:
		collectTags(v.Left, seen, tags)
		collectTags(v.Right, seen, tags)
	case *combinator.OrExpr:
		collectTags(v.Left, seen, tags)
		collectTags(v.Right, seen, tags)
	case *combinator.MuteExpr:
		collectTags(v.X, seen, tags)
	case *combinator.OptionalExpr:
		collectTags(v.X, seen, tags)
	case *combinator.StarExpr:
		collectTags(v.X, seen, tags)
	}
}

// WriteGo emits a Go source file declaring pkg as its package and one
// exported string const per accessor, so a consumer can write
// graphgrammar.Edge instead of the string literal "->".
func WriteGo(w io.Writer, pkg string, accessors []Accessor) error {
	if _, err := fmt.Fprintf(w, "// Code generated by parsegrove/codegen. DO NOT EDIT.\n\npackage %s\n\n", pkg); err != nil {
		return err
	}

	if len(accessors) == 0 {
		return nil
	}

	if _, err := io.WriteString(w, "const (\n"); err != nil {
		return err
	}
	for _, a := range accessors {
		if _, err := fmt.Fprintf(w, "\t%s = %q\n", a.GoName, a.Tag); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")\n")
	return err
}
