// Package lexer turns one line of input into a sequence of identified
// tokens using a token.Table. It is a thin, stateless collaborator: the
// combinator evaluator defines the behavior that actually matters.
package lexer

import (
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/parsegrove/parsegrove/token"
)

// Lex tokenizes one line against table, in declaration order, first-match-wins.
// line is consumed left to right starting at column 1. Position tracking
// happens before filtering is applied, so that columns reported for
// surviving tokens still refer to their original position in line.
//
// Returns a *Error wrapped with a stack trace (github.com/pkg/errors) if no
// descriptor matches at some position, or if a descriptor matches a
// zero-length string (which would otherwise loop forever).
func Lex(table *token.Table, filter token.Filter, line string, lineNumber uint) ([]token.Token, error) {
	all, err := lexAll(table, line, lineNumber)
	if err != nil {
		return nil, err
	}
	if filter == nil {
		return all, nil
	}

	filtered := make([]token.Token, 0, len(all))
	for _, tok := range all {
		if filter(tok) {
			filtered = append(filtered, tok)
		}
	}
	return filtered, nil
}

func lexAll(table *token.Table, line string, lineNumber uint) ([]token.Token, error) {
	tokens := make([]token.Token, 0)
	remaining := line
	column := uint(1)

	for len(remaining) > 0 {
		matched := false
		for i := 0; i < table.Len(); i++ {
			desc := table.At(i)
			text, ok := desc.Match(remaining)
			if !ok {
				continue
			}
			if len(text) == 0 {
				return nil, errors.WithStack(&Error{
					Reason: ZeroLengthMatch,
					ID:     desc.ID,
					Line:   lineNumber,
					Column: column,
				})
			}

			tokens = append(tokens, token.Token{
				Meta:    desc,
				Content: text,
				Line:    lineNumber,
				Column:  column,
			})
			column += uint(utf8.RuneCountInString(text))
			remaining = remaining[len(text):]
			matched = true
			break
		}

		if !matched {
			return nil, errors.WithStack(&Error{
				Reason:    NoMatch,
				Remainder: remaining,
				Line:      lineNumber,
				Column:    column,
			})
		}
	}

	return tokens, nil
}

// Reason enumerates the ways Lex can fail.
type Reason int

const (
	// NoMatch means no descriptor in the table matched at the failing position.
	NoMatch Reason = iota
	// ZeroLengthMatch means a descriptor matched the empty string, which
	// would never advance the cursor.
	ZeroLengthMatch
)

// Error is returned by Lex when the input cannot be fully tokenized.
type Error struct {
	Reason Reason

	// Remainder holds the unconsumed suffix of the line, set when Reason == NoMatch.
	Remainder string

	// ID holds the offending descriptor's id, set when Reason == ZeroLengthMatch.
	ID string

	Line, Column uint
}

func (e *Error) Error() string {
	switch e.Reason {
	case ZeroLengthMatch:
		return "lexer: descriptor " + e.ID + " matched a zero-length lexeme"
	default:
		return "lexer: no token matches remaining input " + quote(e.Remainder) + " at line/col"
	}
}

func quote(s string) string {
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	return "\"" + s + "\""
}
