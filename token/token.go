// Package token defines the token table and identified-token shape consumed
// by the lexer and referenced by the parser expression algebra.
package token

import "regexp"

// EofID is the id of the synthetic end-of-input sentinel token.
const EofID = "END-OF-INPUT"

// EofContent is the content carried by the end-of-input sentinel.
const EofContent = "EOF"

// Descriptor is one entry of a Table: an opaque id and the anchored regular
// expression that recognizes it. Order among Descriptors in a Table is
// semantically significant (first-match-wins); see Table.
type Descriptor struct {
	ID      string
	Pattern string

	re *regexp.Regexp
}

// compile anchors Pattern at position 0 and caches the compiled regexp.
// Anchoring uses \A rather than ^ so multiline input (should any ever reach
// the lexer) can't let a match start partway through a line.
func (d *Descriptor) compile() error {
	re, err := regexp.Compile(`\A(?:` + d.Pattern + `)`)
	if err != nil {
		return err
	}
	d.re = re
	return nil
}

// Token is one identified lexeme: the descriptor that recognized it, its
// matched text, and its 1-based source coordinates.
type Token struct {
	Meta    Descriptor
	Content string
	Line    uint
	Column  uint
}

// ID returns the id of the descriptor that produced this token.
func (t Token) ID() string { return t.Meta.ID }

// IsEOF reports whether this token is the synthetic end-of-input sentinel.
func (t Token) IsEOF() bool { return t.Meta.ID == EofID }

// Eof builds the end-of-input sentinel at the given coordinates. The
// evaluator passes the line and column of the last real token, or the
// parsed line's number and column 1 if the line produced no tokens.
func Eof(line, column uint) Token {
	return Token{
		Meta:    Descriptor{ID: EofID},
		Content: EofContent,
		Line:    line,
		Column:  column,
	}
}

// Filter decides whether a lexed token should survive past the lexer, e.g.
// to drop whitespace or comment tokens before the parser ever sees them.
// A nil Filter keeps every token.
type Filter func(Token) bool

// Table is an ordered, immutable collection of Descriptors. Order matters:
// the lexer tries Descriptors in Table order and commits to the first match,
// so callers must place longer or more specific patterns before shorter
// prefixes (e.g. a keyword before a general identifier).
type Table struct {
	descriptors []Descriptor
	index       map[string]int
}

// NewTable compiles and indexes the given descriptors, in order. Returns an
// error if any two descriptors share an id or if a pattern fails to compile
// as a regular expression.
func NewTable(descriptors []Descriptor) (*Table, error) {
	t := &Table{
		descriptors: make([]Descriptor, len(descriptors)),
		index:       make(map[string]int, len(descriptors)),
	}
	for i, d := range descriptors {
		if _, dup := t.index[d.ID]; dup {
			return nil, &DuplicateIDError{ID: d.ID}
		}
		if err := d.compile(); err != nil {
			return nil, &InvalidPatternError{ID: d.ID, Pattern: d.Pattern, Cause: err}
		}
		t.descriptors[i] = d
		t.index[d.ID] = i
	}
	return t, nil
}

// Len returns the number of descriptors in the table.
func (t *Table) Len() int { return len(t.descriptors) }

// At returns the i-th descriptor in table order.
func (t *Table) At(i int) Descriptor { return t.descriptors[i] }

// Has reports whether id is declared in the table.
func (t *Table) Has(id string) bool {
	_, ok := t.index[id]
	return ok
}

// DuplicateIDError reports that a Table was built with the same id twice.
type DuplicateIDError struct{ ID string }

func (e *DuplicateIDError) Error() string {
	return "token: duplicate descriptor id " + e.ID
}

// InvalidPatternError reports that a descriptor's pattern did not compile.
type InvalidPatternError struct {
	ID      string
	Pattern string
	Cause   error
}

func (e *InvalidPatternError) Error() string {
	return "token: descriptor " + e.ID + ": invalid pattern " + e.Pattern + ": " + e.Cause.Error()
}

func (e *InvalidPatternError) Unwrap() error { return e.Cause }

// Match tries to match this descriptor at the start of content, returning
// the matched text, or ok == false on no match. The descriptor must have
// come from a built Table (compile has run) or Match panics.
func (d *Descriptor) Match(content string) (text string, ok bool) {
	loc := d.re.FindStringIndex(content)
	if loc == nil || loc[0] != 0 {
		return "", false
	}
	return content[loc[0]:loc[1]], true
}
