// Package combinator defines the parser expression algebra: the eight
// composable grammar terms (token match, sequence, alternation, optional,
// repetition, mute, named group, epsilon) and the backtracking evaluator
// that walks them against a token vector. See eval.go for the evaluator.
package combinator

import "fmt"

// Expr is a node in a parser expression tree. The eight concrete types in
// this file are the only implementations; Expr is a closed, tagged variant
// rather than an open interface grammar authors extend.
type Expr interface {
	isExpr()
}

// Operand is anything that can appear where an Expr is expected: an Expr
// itself, or a string, which is coerced to Token(id). Operand is an empty
// interface, so the compiler accepts any value here; a value that is
// neither an Expr nor a string panics when the expression is built.
type Operand interface{}

func asExpr(o Operand) Expr {
	switch v := o.(type) {
	case Expr:
		return v
	case string:
		return Token(v)
	default:
		panic(fmt.Sprintf("combinator: %T is not a valid expression operand", o))
	}
}

// TokenExpr consumes one token whose id equals ID, emitting a single Leaf.
type TokenExpr struct{ ID string }

func (*TokenExpr) isExpr() {}

// Token builds an Expr that matches exactly one token with the given id.
func Token(id string) Expr { return &TokenExpr{ID: id} }

// AndExpr parses Left, then Right at the position Left left off; it
// concatenates their AST fragments in order. Use And/Seq to build one from
// more than two operands.
type AndExpr struct{ Left, Right Expr }

func (*AndExpr) isExpr() {}

// And sequences two or more operands left to right, right-folding pairwise.
// And(a) returns a itself; And() panics, since an empty sequence isn't a
// meaningful grammar term.
func And(xs ...Operand) Expr {
	return foldRight(xs, func(a, b Expr) Expr { return &AndExpr{Left: a, Right: b} })
}

// Seq is an alias of And.
func Seq(xs ...Operand) Expr { return And(xs...) }

// OrExpr tries Left and Right independently from the same start position
// and yields every candidate from both, Left's first. It does not dedupe:
// an ambiguous grammar using Or(x, x) yields x's results twice.
type OrExpr struct{ Left, Right Expr }

func (*OrExpr) isExpr() {}

// Or builds an alternation of two or more operands, right-folding pairwise
// so that, e.g., Or(a, b, c) tries a, then b, then c in that order.
func Or(xs ...Operand) Expr {
	return foldRight(xs, func(a, b Expr) Expr { return &OrExpr{Left: a, Right: b} })
}

// Alt is an alias of Or.
func Alt(xs ...Operand) Expr { return Or(xs...) }

// epsilonExpr always succeeds, consumes nothing, and emits no AST.
type epsilonExpr struct{}

func (epsilonExpr) isExpr() {}

// Epsilon is the always-success, zero-consumption expression.
var Epsilon Expr = epsilonExpr{}

// MuteExpr parses X and discards whatever AST it produced on success;
// failures propagate unchanged. Used to suppress separators and
// punctuation that carry no semantic content (commas, braces, ';').
type MuteExpr struct{ X Expr }

func (*MuteExpr) isExpr() {}

// Mute suppresses x's AST output while preserving its position advancement.
func Mute(x Operand) Expr { return &MuteExpr{X: asExpr(x)} }

// OptionalExpr first yields a zero-consumption success, then yields every
// result of X. Equivalent to Or(Epsilon, x).
type OptionalExpr struct{ X Expr }

func (*OptionalExpr) isExpr() {}

// Optional makes x optional: Optional(x) ≡ Or(Epsilon, x).
func Optional(x Operand) Expr { return &OptionalExpr{X: asExpr(x)} }

// StarExpr yields a zero-repetition success first, then repeatedly
// re-parses X, yielding one candidate per cumulative repetition with AST
// accumulated across repetitions. The zero-repetition candidate always
// comes first, so a greedy-looking use of Star inside And may be satisfied
// by the empty repetition before longer ones are even tried. That ordering
// is deliberate, not a bug.
type StarExpr struct{ X Expr }

func (*StarExpr) isExpr() {}

// Star repeats x zero or more times.
func Star(x Operand) Expr { return &StarExpr{X: asExpr(x)} }

// NamedExpr parses X and wraps each successful result's AST fragments in a
// single ast.Structure tagged Name.
type NamedExpr struct {
	Name string
	X    Expr
}

func (*NamedExpr) isExpr() {}

// Named wraps x's output in a Structure node tagged name on every success.
func Named(name string, x Operand) Expr { return &NamedExpr{Name: name, X: asExpr(x)} }

func foldRight(xs []Operand, combine func(a, b Expr) Expr) Expr {
	if len(xs) == 0 {
		panic("combinator: empty operand sequence")
	}

	exprs := make([]Expr, len(xs))
	for i, x := range xs {
		exprs[i] = asExpr(x)
	}

	result := exprs[len(exprs)-1]
	for i := len(exprs) - 2; i >= 0; i-- {
		result = combine(exprs[i], result)
	}
	return result
}
