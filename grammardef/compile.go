package grammardef

import (
	"github.com/pkg/errors"

	"github.com/parsegrove/parsegrove/combinator"
)

// compiler resolves named productions into combinator.Expr values, caching
// each by name and detecting self-referential definitions. Productions have
// no recursion primitive available to them (the eight operators describe a
// flat line grammar), so a production that refers to itself, directly or
// through another production, is a construction error rather than silently
// looping forever.
type compiler struct {
	tokenIDs map[string]bool
	prods    map[string]*Production
	cache    map[string]combinator.Expr
	visiting map[string]bool
}

func (c *compiler) ref(name string) (combinator.Expr, error) {
	if e, ok := c.cache[name]; ok {
		return e, nil
	}
	if c.tokenIDs[name] {
		return combinator.Token(name), nil
	}

	prod, ok := c.prods[name]
	if !ok {
		return nil, errors.Errorf("grammardef: undefined reference %q", name)
	}
	if c.visiting[name] {
		return nil, errors.Errorf("grammardef: production %q is defined in terms of itself", name)
	}

	c.visiting[name] = true
	expr, err := c.alt(prod.Expr)
	delete(c.visiting, name)
	if err != nil {
		return nil, errors.Wrapf(err, "grammardef: production %q", name)
	}

	c.cache[name] = expr
	return expr, nil
}

func (c *compiler) alt(a *AltExpr) (combinator.Expr, error) {
	seqs := make([]combinator.Operand, len(a.Seqs))
	for i, s := range a.Seqs {
		e, err := c.seq(s)
		if err != nil {
			return nil, err
		}
		seqs[i] = e
	}
	if len(seqs) == 1 {
		return seqs[0].(combinator.Expr), nil
	}
	return combinator.Or(seqs...), nil
}

func (c *compiler) seq(s *SeqExpr) (combinator.Expr, error) {
	terms := make([]combinator.Operand, len(s.Terms))
	for i, t := range s.Terms {
		e, err := c.term(t)
		if err != nil {
			return nil, err
		}
		terms[i] = e
	}
	if len(terms) == 1 {
		return terms[0].(combinator.Expr), nil
	}
	return combinator.And(terms...), nil
}

func (c *compiler) term(t *Term) (combinator.Expr, error) {
	switch {
	case t.Named != nil:
		atom, err := c.atom(t.Named.Atom)
		if err != nil {
			return nil, err
		}
		return combinator.Named(t.Named.Label, atom), nil
	case t.Muted != nil:
		atom, err := c.atom(t.Muted.Atom)
		if err != nil {
			return nil, err
		}
		return combinator.Mute(atom), nil
	default:
		return c.atom(t.Plain)
	}
}

func (c *compiler) atom(a *Atom) (combinator.Expr, error) {
	switch {
	case a.Group != nil:
		return c.alt(a.Group)
	case a.Optional != nil:
		inner, err := c.alt(a.Optional)
		if err != nil {
			return nil, err
		}
		return combinator.Optional(inner), nil
	case a.Star != nil:
		inner, err := c.alt(a.Star)
		if err != nil {
			return nil, err
		}
		return combinator.Star(inner), nil
	default:
		return c.ref(a.Ref)
	}
}
