// Package parser is the top-level driver: it validates a grammar against
// its token table, lexes a line, runs the combinator evaluator over the
// result, and selects either the one total-coverage success or every
// failure tied for furthest progress.
package parser

import (
	"github.com/pkg/errors"

	"github.com/parsegrove/parsegrove/ast"
	"github.com/parsegrove/parsegrove/combinator"
	"github.com/parsegrove/parsegrove/internal/logging"
	"github.com/parsegrove/parsegrove/lexer"
	"github.com/parsegrove/parsegrove/token"
)

// Error is the expected/actual pair attached to a failing Result. It is an
// alias of combinator.Error: the evaluator is what produces these records,
// the driver only selects which ones to return.
type Error = combinator.Error

// Result is one outcome of a Parse call: either a success carrying the
// consumed AST, or a failure carrying the furthest-progress Error.
type Result struct {
	Success bool
	AST     []ast.Node
	NewPos  int
	Err     *Error
}

// Parser holds a validated token table and grammar root, ready to parse
// any number of lines. A *Parser is safe for concurrent use: per-parse
// state (the furthest-progress map) lives in a fresh combinator.Context
// for each call to Parse, never on the shared grammar.
type Parser struct {
	tokens *token.Table
	filter token.Filter
	root   combinator.Expr
}

// New validates that every token id root references exists in tokens, then
// returns a Parser ready to run. The returned error, if any, is a
// *ConstructionError wrapped with a stack trace.
func New(tokens *token.Table, filter token.Filter, root combinator.Expr) (*Parser, error) {
	var unknown []string
	for _, id := range combinator.TokenIDs(root) {
		if !tokens.Has(id) {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		err := errors.WithStack(&ConstructionError{UnknownTokenIDs: unknown})
		logging.Get().Errorf("parser: construction failed: %s", err)
		return nil, err
	}

	logging.Get().Debugf("parser: constructed with %d declared token id(s)", tokens.Len())
	return &Parser{tokens: tokens, filter: filter, root: root}, nil
}

// Parse lexes line (attributing lineNumber to every token it produces) and
// runs the grammar against the result. If lexing fails, it returns a nil
// slice and a wrapped *lexer.Error. Otherwise it returns exactly one
// successful Result if the grammar can consume the whole line, or every
// failed Result tied for furthest progress. If the grammar yields no
// failure at all and no success covers the line, the slice is empty and
// the error is nil; the line is not accepted in that case.
func (p *Parser) Parse(line string, lineNumber uint) ([]Result, error) {
	tokens, err := lexer.Lex(p.tokens, p.filter, line, lineNumber)
	if err != nil {
		logging.Get().Debugf("parser: line %d: lex failed: %s", lineNumber, err)
		return nil, err
	}

	ctx := combinator.NewContext(tokens, lineNumber)

	var success *Result
	var failures []Result

	combinator.Run(ctx, p.root, 0, func(c combinator.Candidate) bool {
		if c.Err == nil {
			if c.NewPos == len(tokens) {
				success = &Result{Success: true, AST: c.AST, NewPos: c.NewPos}
				return false // total coverage found; no need to keep pulling
			}
			return true
		}

		failures = append(failures, Result{Success: false, NewPos: c.NewPos, Err: c.Err})
		return true
	})

	if success != nil {
		logging.Get().Debugf("parser: line %d: parsed successfully", lineNumber)
		return []Result{*success}, nil
	}

	out := furthest(failures)
	logging.Get().Debugf("parser: line %d: %d furthest-progress failure(s)", lineNumber, len(out))
	return out, nil
}

// furthest returns every failure tied for the maximum NewPos among fails.
// fails is empty when every candidate the grammar yields is a success that
// stops short of the end of the line (Epsilon, or Optional(x) matching
// only a prefix, against longer input); furthest then returns nil, and
// no Result reports why the line was not accepted.
func furthest(fails []Result) []Result {
	if len(fails) == 0 {
		return nil
	}

	max := fails[0].NewPos
	for _, f := range fails[1:] {
		if f.NewPos > max {
			max = f.NewPos
		}
	}

	out := make([]Result, 0, len(fails))
	for _, f := range fails {
		if f.NewPos == max {
			out = append(out, f)
		}
	}
	return out
}
