// Package subst implements substitutions over internal/term's locally
// nameless representation as streams of fronts indexed from 1, each
// either a replacement term or a bound-variable reference, with a pure
// shift applied past the end of any explicitly given fronts. The public
// shape is Identity/Compose/Apply: a substitution is a first-class,
// composable value, not something only ever applied once inline.
package subst

import "github.com/go-tptp/huet/internal/term"

// Front is the replacement assigned to one index: either a term (Term !=
// nil) or a bound-variable reference (Term == nil, Bound holds the target
// index).
type Front struct {
	Term  term.Term
	Bound int
}

// Subst is a substitution, indices from 1. It is represented internally
// as a lookup function rather than a literal array, so that Compose can
// be defined directly by functional composition instead of by computing
// a closed-form finite-fronts-plus-shift normal form (which, for two
// substitutions with differently-sized explicit fronts, does not collapse
// to a uniform tail shift over the common representation).
type Subst struct {
	lookup func(index int) Front
}

// Identity is the substitution that maps every index to itself.
func Identity() Subst {
	return Subst{lookup: func(i int) Front { return Front{Bound: i} }}
}

// ShiftBy is the pure substitution that renames every index i to i+n.
func ShiftBy(n int) Subst {
	if n == 0 {
		return Identity()
	}
	return Subst{lookup: func(i int) Front { return Front{Bound: i + n} }}
}

// Cons prepends front as the image of index 1, shifting s down by one
// position: Cons(f, s) maps 1 -> f and n+1 -> s's image of n.
func Cons(f Front, s Subst) Subst {
	return Subst{lookup: func(i int) Front {
		if i == 1 {
			return f
		}
		return s.lookup(i - 1)
	}}
}

// ConsBound is Cons with a bound-reference front, the common case when
// building a substitution that keeps one position as itself.
func ConsBound(bound int, s Subst) Subst {
	return Cons(Front{Bound: bound}, s)
}

// Lookup returns the front s assigns to index i (i >= 1).
func Lookup(s Subst, i int) Front {
	return s.lookup(i)
}

// Lift pushes s under one binder: it keeps index 1 (the new innermost
// bound variable) as itself, and maps index n+1 to s's image of n,
// shifted by one to account for the extra binder. Used when a caller
// needs to manipulate a substitution directly rather than going through
// Apply's own binder-depth bookkeeping.
func Lift(s Subst) Subst {
	return ConsBound(1, Compose(ShiftBy(1), s))
}

// Compose builds the substitution equivalent to first applying inner,
// then outer: Apply(Compose(outer, inner), t) == Apply(outer, Apply(inner, t)).
func Compose(outer, inner Subst) Subst {
	return Subst{lookup: func(i int) Front {
		f := inner.lookup(i)
		if f.Term != nil {
			return Front{Term: Apply(outer, f.Term)}
		}
		return outer.lookup(f.Bound)
	}}
}

// Apply pushes s homomorphically through t, respecting binders: a Var
// whose index falls within the binder depth reached so far is left
// alone (it is bound locally, not by s); any other Var is looked up in s
// at its position relative to that depth, and — if the front is a term —
// the replacement is itself shifted up by the depth so its own free
// variables still refer correctly from inside the binders just crossed.
func Apply(s Subst, t term.Term) term.Term {
	return applyAt(s, t, 0)
}

func applyAt(s Subst, t term.Term, depth int) term.Term {
	switch n := t.(type) {
	case term.Var:
		if n.Index <= depth {
			return n
		}
		f := s.lookup(n.Index - depth)
		if f.Term != nil {
			return shiftTerm(f.Term, depth)
		}
		return term.Var{Ty: n.Ty, Index: f.Bound + depth}
	case term.Const, term.DistinctObject:
		return t
	case term.Abs:
		return term.Abs{ParamTy: n.ParamTy, Body: applyAt(s, n.Body, depth+1)}
	case term.TyAbs:
		return term.TyAbs{Body: applyAt(s, n.Body, depth+1)}
	case term.App:
		args := make([]term.Arg, len(n.Args))
		for i, a := range n.Args {
			if a.IsType() {
				args[i] = a
				continue
			}
			args[i] = term.Arg{Term: applyAt(s, a.Term, depth)}
		}
		return term.Apply(applyAt(s, n.Head, depth), args...)
	default:
		return t
	}
}

// shiftTerm renames every free index (at depth 0) in t up by n.
func shiftTerm(t term.Term, n int) term.Term {
	if n == 0 {
		return t
	}
	return applyAt(ShiftBy(n), t, 0)
}
