package combinator

import (
	"fmt"

	"github.com/parsegrove/parsegrove/ast"
	"github.com/parsegrove/parsegrove/token"
)

// Error is the expected-token-id/actual-token pair surfaced by a failing
// Candidate. actual is either a real token or the synthetic end-of-input
// sentinel (see token.Eof).
type Error struct {
	Expected string
	Actual   token.Token
}

func (e *Error) Error() string {
	if e.Actual.IsEOF() {
		return fmt.Sprintf("expected %s, got end of input", e.Expected)
	}
	return fmt.Sprintf("expected %s, got %s %q", e.Expected, e.Actual.ID(), e.Actual.Content)
}

// Candidate is one (new_pos, ast, err?) triple produced by evaluating an
// Expr at some position. Err == nil iff this candidate is a success; a
// success's AST holds the fragments produced consuming tokens up to
// NewPos, a failure's AST is always empty and NewPos records how far the
// attempt advanced before failing.
type Candidate struct {
	NewPos int
	AST    []ast.Node
	Err    *Error
}

func (c Candidate) ok() bool { return c.Err == nil }

// Yield receives candidates as the evaluator produces them. Returning false
// tells the producer to stop; it may still have more candidates queued up,
// but the caller has seen enough (e.g. a total-coverage success).
type Yield func(Candidate) bool

// Context is the per-parse state threaded through a single call to Run. It
// holds the furthest-progress map keyed by expression-node identity rather
// than mutating the expression tree, so one compiled grammar can run many
// parses, even concurrently, without synchronization.
type Context struct {
	tokens []token.Token
	eof    token.Token
	best   map[Expr]int
}

// NewContext builds a per-parse context for tokens. lineNumber seeds the
// synthetic end-of-input sentinel's coordinates when tokens is empty.
func NewContext(tokens []token.Token, lineNumber uint) *Context {
	ctx := &Context{
		tokens: tokens,
		best:   make(map[Expr]int),
	}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		ctx.eof = token.Eof(last.Line, last.Column)
	} else {
		ctx.eof = token.Eof(lineNumber, 1)
	}
	return ctx
}

// tokenAt returns the real token at pos, or the end-of-input sentinel if
// pos is past the end of the token vector.
func (ctx *Context) tokenAt(pos int) token.Token {
	if pos >= 0 && pos < len(ctx.tokens) {
		return ctx.tokens[pos]
	}
	return ctx.eof
}

// admitFailure applies the furthest-progress filter for node: a failure at
// position p is suppressed if node has already reported a failure at a
// later position. Returns true if the failure should be yielded.
func (ctx *Context) admitFailure(node Expr, pos int) bool {
	if best, seen := ctx.best[node]; seen && pos < best {
		return false
	}
	ctx.best[node] = pos
	return true
}

// Run evaluates root against ctx's tokens starting at pos, calling yield
// for every candidate it produces (successes always, failures subject to
// §4.5 furthest-progress filtering). It returns false if yield ever
// returned false.
func Run(ctx *Context, root Expr, pos int, yield Yield) bool {
	filtered := func(c Candidate) bool {
		if !c.ok() && !ctx.admitFailure(root, c.NewPos) {
			return true
		}
		return yield(c)
	}

	switch e := root.(type) {
	case *TokenExpr:
		return evalToken(ctx, e, pos, filtered)
	case *AndExpr:
		return evalAnd(ctx, e, pos, filtered)
	case *OrExpr:
		return evalOr(ctx, e, pos, filtered)
	case epsilonExpr:
		return evalEpsilon(pos, filtered)
	case *MuteExpr:
		return evalMute(ctx, e, pos, filtered)
	case *OptionalExpr:
		return evalOptional(ctx, e, pos, filtered)
	case *StarExpr:
		return evalStar(ctx, e, pos, filtered)
	case *NamedExpr:
		return evalNamed(ctx, e, pos, filtered)
	default:
		panic(fmt.Sprintf("combinator: unknown expression type %T", root))
	}
}

func evalToken(ctx *Context, e *TokenExpr, pos int, yield Yield) bool {
	if tok := ctx.tokenAt(pos); pos < len(ctx.tokens) && tok.ID() == e.ID {
		return yield(Candidate{NewPos: pos + 1, AST: []ast.Node{ast.NewLeaf(tok)}})
	}
	return yield(Candidate{NewPos: pos, Err: &Error{Expected: e.ID, Actual: ctx.tokenAt(pos)}})
}

func evalAnd(ctx *Context, e *AndExpr, pos int, yield Yield) bool {
	return Run(ctx, e.Left, pos, func(lc Candidate) bool {
		if !lc.ok() {
			return yield(lc)
		}
		return Run(ctx, e.Right, lc.NewPos, func(rc Candidate) bool {
			if !rc.ok() {
				return yield(rc)
			}
			combined := make([]ast.Node, 0, len(lc.AST)+len(rc.AST))
			combined = append(combined, lc.AST...)
			combined = append(combined, rc.AST...)
			return yield(Candidate{NewPos: rc.NewPos, AST: combined})
		})
	})
}

// evalOr yields every candidate from Left, then every candidate from
// Right, both from the same start position. This left-before-right order
// is a contract of the operator, not an accident of implementation.
func evalOr(ctx *Context, e *OrExpr, pos int, yield Yield) bool {
	if !Run(ctx, e.Left, pos, yield) {
		return false
	}
	return Run(ctx, e.Right, pos, yield)
}

func evalEpsilon(pos int, yield Yield) bool {
	return yield(Candidate{NewPos: pos})
}

func evalMute(ctx *Context, e *MuteExpr, pos int, yield Yield) bool {
	return Run(ctx, e.X, pos, func(c Candidate) bool {
		if !c.ok() {
			return yield(c)
		}
		return yield(Candidate{NewPos: c.NewPos})
	})
}

func evalOptional(ctx *Context, e *OptionalExpr, pos int, yield Yield) bool {
	if !yield(Candidate{NewPos: pos}) {
		return false
	}
	return Run(ctx, e.X, pos, yield)
}

func evalStar(ctx *Context, e *StarExpr, pos int, yield Yield) bool {
	return starFrom(ctx, e.X, pos, nil, yield)
}

func starFrom(ctx *Context, x Expr, pos int, acc []ast.Node, yield Yield) bool {
	if !yield(Candidate{NewPos: pos, AST: acc}) {
		return false
	}

	return Run(ctx, x, pos, func(c Candidate) bool {
		if !c.ok() {
			// The chain ends here for this path; candidates already
			// yielded above stand, since Star admits zero matches.
			return yield(c)
		}
		if c.NewPos == pos {
			// A zero-width repetition never makes progress; recursing on
			// it would loop forever for no additional candidate. Keep
			// pulling x's other candidates (it may be ambiguous) instead.
			return true
		}

		next := make([]ast.Node, 0, len(acc)+len(c.AST))
		next = append(next, acc...)
		next = append(next, c.AST...)
		return starFrom(ctx, x, c.NewPos, next, yield)
	})
}

func evalNamed(ctx *Context, e *NamedExpr, pos int, yield Yield) bool {
	return Run(ctx, e.X, pos, func(c Candidate) bool {
		if !c.ok() {
			return yield(c)
		}
		return yield(Candidate{NewPos: c.NewPos, AST: []ast.Node{ast.NewStructure(e.Name, c.AST)}})
	})
}
