// Package grammardef compiles a textual grammar description language into a
// token table and expression tree. The document is parsed with a
// participle.Parser built from struct tags, the same way golangee-dyml
// builds its module and workspace file parsers; the resulting AST is then
// walked to build combinator.Expr values.
package grammardef

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/parsegrove/parsegrove/combinator"
	"github.com/parsegrove/parsegrove/token"
)

var lex = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "comment", Pattern: `//[^\n]*`},
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "Regex", Pattern: `/(?:\\.|[^/\\\n])*/`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[{}\[\]()=,|~:;]`},
})

var docParser = participle.MustBuild[Document](
	participle.Lexer(lex),
	participle.Elide("comment", "whitespace"),
	participle.Unquote("String"),
)

// Document is the parsed shape of a grammar description: a token section, an
// optional filter list, a set of named productions, and a root selection.
type Document struct {
	Tokens  []*TokenDecl  `"tokens" "{" @@* "}"`
	Filter  []string      `("filter" ":" @Ident ("," @Ident)*)?`
	Prods   []*Production `"grammar" "{" @@* "}"`
	RootRef string        `"root" ":" @Ident`
}

// TokenDecl is one `ID = /pattern/` line of the tokens section.
type TokenDecl struct {
	ID      string `@Ident "="`
	Pattern string `@Regex`
}

// Production is one named rule of the grammar section: `Name = Alt ;`.
type Production struct {
	Name string   `@Ident "="`
	Expr *AltExpr `@@ ";"`
}

// AltExpr is alternation: one or more SeqExpr separated by "|".
type AltExpr struct {
	Seqs []*SeqExpr `@@ ("|" @@)*`
}

// SeqExpr is concatenation: one or more Terms separated by ",".
type SeqExpr struct {
	Terms []*Term `@@ ("," @@)*`
}

// Term is a single element of a sequence, possibly named or muted.
type Term struct {
	Named *NamedTerm `  @@`
	Muted *MuteTerm  `| @@`
	Plain *Atom      `| @@`
}

// NamedTerm is `label: atom`, compiling to combinator.Named(label, atom).
type NamedTerm struct {
	Label string `(@Ident | @String) ":"`
	Atom  *Atom  `@@`
}

// MuteTerm is `~atom`, compiling to combinator.Mute(atom).
type MuteTerm struct {
	Atom *Atom `"~" @@`
}

// Atom is a grammar leaf: a reference, a parenthesized group, a bracketed
// optional, or a braced repetition.
type Atom struct {
	Group    *AltExpr `  "(" @@ ")"`
	Optional *AltExpr `| "[" @@ "]"`
	Star     *AltExpr `| "{" @@ "}"`
	Ref      string   `| @Ident`
}

// Parse reads a grammar description document without compiling it.
func Parse(source string) (*Document, error) {
	doc, err := docParser.ParseString("", source)
	if err != nil {
		return nil, errors.Wrap(err, "grammardef: parse")
	}
	return doc, nil
}

// Read is the io.Reader counterpart of Parse.
func Read(r io.Reader) (*Document, error) {
	doc, err := docParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "grammardef: parse")
	}
	return doc, nil
}

// Build compiles a parsed Document into a token table, a filter (nil if the
// document declares none), and the root expression named by RootRef.
func Build(doc *Document) (*token.Table, token.Filter, combinator.Expr, error) {
	descs := make([]token.Descriptor, len(doc.Tokens))
	for i, td := range doc.Tokens {
		descs[i] = token.Descriptor{ID: td.ID, Pattern: stripSlashes(td.Pattern)}
	}
	tbl, err := token.NewTable(descs)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "grammardef: build token table")
	}

	c := &compiler{
		tokenIDs: make(map[string]bool, len(descs)),
		prods:    make(map[string]*Production, len(doc.Prods)),
		cache:    make(map[string]combinator.Expr),
		visiting: make(map[string]bool),
	}
	for _, d := range descs {
		c.tokenIDs[d.ID] = true
	}
	for _, p := range doc.Prods {
		c.prods[p.Name] = p
	}

	root, err := c.ref(doc.RootRef)
	if err != nil {
		return nil, nil, nil, err
	}

	var filter token.Filter
	if len(doc.Filter) > 0 {
		muted := make(map[string]bool, len(doc.Filter))
		for _, id := range doc.Filter {
			muted[id] = true
		}
		filter = func(tk token.Token) bool { return !muted[tk.ID()] }
	}

	return tbl, filter, root, nil
}

// Compile is the one-shot convenience: parse then build.
func Compile(source string) (*token.Table, token.Filter, combinator.Expr, error) {
	doc, err := Parse(source)
	if err != nil {
		return nil, nil, nil, err
	}
	return Build(doc)
}

func stripSlashes(pattern string) string {
	if len(pattern) >= 2 && pattern[0] == '/' && pattern[len(pattern)-1] == '/' {
		return pattern[1 : len(pattern)-1]
	}
	return pattern
}
