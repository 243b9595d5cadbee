// Package normal implements beta, eta and delta normalisation over
// internal/term, reducing any well-typed term to the beta-normal,
// eta-long form that internal/huet's rules are defined over, plus the
// flex/rigid head classification that drives which rule applies.
//
// Reduction is leftmost-outermost, and every step function returns a
// (term, changed) pair rather than mutating in place, so a caller can
// tell a fixpoint from a reduction that merely rebuilt the same shape.
package normal

import (
	"github.com/go-tptp/huet/internal/sig"
	"github.com/go-tptp/huet/internal/subst"
	"github.com/go-tptp/huet/internal/term"
	"github.com/go-tptp/huet/internal/typ"
)

// BetaStep performs one leftmost-outermost beta-reduction step on t,
// reporting whether a redex was found and reduced.
func BetaStep(t term.Term) (term.Term, bool) {
	switch n := t.(type) {
	case term.Var, term.Const, term.DistinctObject:
		return t, false
	case term.Abs:
		body, changed := BetaStep(n.Body)
		if !changed {
			return t, false
		}
		return term.Abs{ParamTy: n.ParamTy, Body: body}, true
	case term.TyAbs:
		body, changed := BetaStep(n.Body)
		if !changed {
			return t, false
		}
		return term.TyAbs{Body: body}, true
	case term.App:
		if redex, ok := headRedex(n); ok {
			return redex, true
		}
		if head, changed := BetaStep(n.Head); changed {
			return term.Apply(head, n.Args...), true
		}
		for i, a := range n.Args {
			if a.IsType() {
				continue
			}
			if reduced, changed := BetaStep(a.Term); changed {
				args := append([]term.Arg(nil), n.Args...)
				args[i] = term.Arg{Term: reduced}
				return term.Apply(n.Head, args...), true
			}
		}
		return t, false
	default:
		return t, false
	}
}

// headRedex reduces an App whose head is itself an Abs or TyAbs by
// consuming the matching leading argument.
func headRedex(n term.App) (term.Term, bool) {
	if len(n.Args) == 0 {
		return nil, false
	}
	switch head := n.Head.(type) {
	case term.Abs:
		if n.Args[0].IsType() {
			return nil, false
		}
		reduced := subst.Apply(subst.Cons(subst.Front{Term: n.Args[0].Term}, subst.Identity()), head.Body)
		return term.Apply(reduced, n.Args[1:]...), true
	case term.TyAbs:
		if !n.Args[0].IsType() {
			return nil, false
		}
		reduced := substituteType(head.Body, 0, n.Args[0].Type)
		return term.Apply(reduced, n.Args[1:]...), true
	default:
		return nil, false
	}
}

// substituteType replaces type variable `index` (relative to the nearest
// enclosing TyAbs, 0-based) with replacement throughout every type
// annotation in t, shifting as it crosses further TyAbs binders. Abs
// binders are term binders and do not shift the type-variable index space.
func substituteType(t term.Term, index int, replacement typ.Type) term.Term {
	switch n := t.(type) {
	case term.Var:
		return term.Var{Ty: typ.Substitute(n.Ty, index, replacement), Index: n.Index}
	case term.Const:
		return term.Const{Ty: typ.Substitute(n.Ty, index, replacement), Sym: n.Sym}
	case term.DistinctObject:
		return term.DistinctObject{Ty: typ.Substitute(n.Ty, index, replacement), Sym: n.Sym}
	case term.Abs:
		return term.Abs{
			ParamTy: typ.Substitute(n.ParamTy, index, replacement),
			Body:    substituteType(n.Body, index, replacement),
		}
	case term.TyAbs:
		return term.TyAbs{Body: substituteType(n.Body, index+1, replacement)}
	case term.App:
		args := make([]term.Arg, len(n.Args))
		for i, a := range n.Args {
			if a.IsType() {
				args[i] = term.Arg{Type: typ.Substitute(a.Type, index, replacement)}
				continue
			}
			args[i] = term.Arg{Term: substituteType(a.Term, index, replacement)}
		}
		return term.Apply(substituteType(n.Head, index, replacement), args...)
	default:
		return t
	}
}

// BetaNormalize reduces t to its beta-normal form.
func BetaNormalize(t term.Term) term.Term {
	for {
		next, changed := BetaStep(t)
		if !changed {
			return t
		}
		t = next
	}
}

// DeltaStep unfolds the leftmost occurrence of a Defined constant in t
// (searching abstraction bodies, then an application's head, then its
// arguments), looked up in table, reporting whether an unfolding happened.
func DeltaStep(t term.Term, table *sig.Table) (term.Term, bool) {
	switch n := t.(type) {
	case term.Const:
		if e, ok := table.Lookup(int(n.Sym)); ok && e.Kind == sig.Defined && e.Definition != nil {
			return e.Definition, true
		}
		return t, false
	case term.Abs:
		body, changed := DeltaStep(n.Body, table)
		if !changed {
			return t, false
		}
		return term.Abs{ParamTy: n.ParamTy, Body: body}, true
	case term.TyAbs:
		body, changed := DeltaStep(n.Body, table)
		if !changed {
			return t, false
		}
		return term.TyAbs{Body: body}, true
	case term.App:
		if head, changed := DeltaStep(n.Head, table); changed {
			return term.Apply(head, n.Args...), true
		}
		for i, a := range n.Args {
			if a.IsType() {
				continue
			}
			if reduced, changed := DeltaStep(a.Term, table); changed {
				args := append([]term.Arg(nil), n.Args...)
				args[i] = term.Arg{Term: reduced}
				return term.Apply(n.Head, args...), true
			}
		}
		return t, false
	default:
		return t, false
	}
}

// EtaExpand expands t into eta-long form: wherever t's type indicates it
// still expects further arguments, wrap it in fresh Abs binders applying
// it to the new bound variables, recursively. A term that is already an
// Abs or TyAbs is never re-wrapped — only its children are expanded —
// since wrapping an existing binder would introduce a beta-redex
// ((\x. M) y) instead of reaching eta-long form. EtaExpand does not
// itself beta-normalise; callers run Normalize to reach a fixpoint of
// both.
func EtaExpand(t term.Term) term.Term {
	switch t.(type) {
	case term.Abs, term.TyAbs:
		return etaExpandChildren(t)
	}
	ty := term.TypeOf(t)
	f, ok := ty.(typ.Func)
	if !ok {
		return etaExpandChildren(t)
	}
	shifted := shiftFree(t, 1)
	applied := term.Apply(shifted, term.Arg{Term: term.Var{Ty: f.Dom, Index: 1}})
	return term.Abs{ParamTy: f.Dom, Body: EtaExpand(applied)}
}

func shiftFree(t term.Term, n int) term.Term {
	return subst.Apply(subst.ShiftBy(n), t)
}

func etaExpandChildren(t term.Term) term.Term {
	switch n := t.(type) {
	case term.Abs:
		return term.Abs{ParamTy: n.ParamTy, Body: EtaExpand(n.Body)}
	case term.TyAbs:
		return term.TyAbs{Body: EtaExpand(n.Body)}
	case term.App:
		args := make([]term.Arg, len(n.Args))
		for i, a := range n.Args {
			if a.IsType() {
				args[i] = a
				continue
			}
			args[i] = term.Arg{Term: EtaExpand(a.Term)}
		}
		return term.Apply(n.Head, args...)
	default:
		return t
	}
}

// Normalize reduces t to beta-normal, delta-expanded, eta-long form: the
// canonical shape internal/huet's rules and equality checks assume.
func Normalize(t term.Term, table *sig.Table) term.Term {
	for {
		betaed := BetaNormalize(t)
		deltaed, changed := DeltaStep(betaed, table)
		if changed {
			t = deltaed
			continue
		}
		etad := BetaNormalize(EtaExpand(betaed))
		if term.Equal(etad, betaed) {
			return etad
		}
		t = etad
	}
}

// HeadKind classifies the head of a normalised term.
type HeadKind int

const (
	// HeadFlex is a free variable head (the equation is flex-*).
	HeadFlex HeadKind = iota
	// HeadRigid is a bound variable, constant, or distinct object head.
	HeadRigid
)

// ClassifyHead reports the HeadKind of t's head, given the binder depth
// at which t occurs.
func ClassifyHead(t term.Term, depth int) HeadKind {
	switch h := term.Head(t).(type) {
	case term.Var:
		if h.IsFree(depth) {
			return HeadFlex
		}
		return HeadRigid
	default:
		return HeadRigid
	}
}

// IsFlex reports whether t (at the given binder depth) has a flexible
// (free-variable) head.
func IsFlex(t term.Term, depth int) bool {
	return ClassifyHead(t, depth) == HeadFlex
}
