// Package huet implements the six Huet pre-unification rules — Delete,
// Decompose, Bind, Func, Imitate, Project — as pure functions over an
// equation plus the signature table and fresh-variable generator they
// consult.
//
// Each rule is dispatched by a type switch over one side of the
// equation with an explicit swap-and-retry when the other side needs to
// play the distinguished role instead, rather than duplicating the case
// twice. Bind and the flex-rigid rules orient themselves the same way,
// via the tie-break below, before ever inspecting rule-specific
// structure.
package huet

import (
	"github.com/go-tptp/huet/internal/fresh"
	"github.com/go-tptp/huet/internal/normal"
	"github.com/go-tptp/huet/internal/sig"
	"github.com/go-tptp/huet/internal/subst"
	"github.com/go-tptp/huet/internal/term"
	"github.com/go-tptp/huet/internal/typ"
)

// Equation is an unsolved pair of same-typed terms, always considered at
// binder depth 0: every Var node appearing in an Equation is, by
// construction, a free (meta) variable, never one bound by an enclosing
// Abs — abstractions introduced by partial bindings live entirely inside
// one side's term, not spanning both sides of an Equation.
type Equation struct {
	Left  term.Term
	Right term.Term
}

// Binding is one entry of the solved set SEq: a free variable's index
// bound to a term.
type Binding struct {
	Var  int
	Type typ.Type
	Term term.Term
}

// orientFlexLeft returns (l, r) with the flexible side first, swapping if
// necessary; ok is false if neither side is flex (the caller shouldn't
// have reached a flex-rigid rule).
func orientFlexLeft(eq Equation) (l, r term.Term, ok bool) {
	if normal.IsFlex(eq.Left, 0) {
		return eq.Left, eq.Right, true
	}
	if normal.IsFlex(eq.Right, 0) {
		return eq.Right, eq.Left, true
	}
	return eq.Left, eq.Right, false
}

// isBareVar reports whether t is nothing but a free variable (no spine
// arguments at all) — the narrower condition Bind requires, distinct from
// merely being flex-headed. Collapsing the two invites a known class of
// unsoundness: Bind must never fire on X(a) = t, only on bare X = t.
func isBareVar(t term.Term) (term.Var, bool) {
	v, ok := t.(term.Var)
	if !ok || !v.IsFree(0) {
		return term.Var{}, false
	}
	return v, true
}

// orientBareVarLeft returns (l, r) with the bare-variable side first, if
// either side qualifies; the tie-break when only one side is a bare
// variable puts it on the left.
func orientBareVarLeft(eq Equation) (v term.Var, l, r term.Term, ok bool) {
	if bv, isVar := isBareVar(eq.Left); isVar {
		return bv, eq.Left, eq.Right, true
	}
	if bv, isVar := isBareVar(eq.Right); isVar {
		return bv, eq.Right, eq.Left, true
	}
	return term.Var{}, eq.Left, eq.Right, false
}

// CanDelete reports whether Delete applies: the two sides are already
// syntactically identical.
func CanDelete(eq Equation) bool {
	return term.Equal(eq.Left, eq.Right)
}

// CanDecompose reports whether Decompose applies: both sides are spine
// applications with identical rigid heads. Equal rigid heads at a
// function-typed equation never arise out of eta-long terms (every
// function-typed subterm is an Abs, handled by Func instead), so this
// rule only ever fires at base/product/sum types.
func CanDecompose(eq Equation) bool {
	lApp, lok := eq.Left.(term.App)
	rApp, rok := eq.Right.(term.App)
	if !lok || !rok || len(lApp.Args) != len(rApp.Args) {
		return false
	}
	return rigidHeadsMatch(lApp.Head, rApp.Head)
}

func rigidHeadsMatch(l, r term.Term) bool {
	switch lh := l.(type) {
	case term.Const:
		rh, ok := r.(term.Const)
		return ok && lh.Sym == rh.Sym
	case term.DistinctObject:
		rh, ok := r.(term.DistinctObject)
		return ok && lh.Sym == rh.Sym
	case term.Var:
		rh, ok := r.(term.Var)
		return ok && !lh.IsFree(0) && !rh.IsFree(0) && lh.Index == rh.Index
	default:
		return false
	}
}

// Decompose replaces a rigid-rigid equation by pointwise equations on its
// term arguments (type arguments are ignored).
func Decompose(eq Equation) []Equation {
	lApp := eq.Left.(term.App)
	rApp := eq.Right.(term.App)
	out := make([]Equation, 0, len(lApp.Args))
	for i := range lApp.Args {
		if lApp.Args[i].IsType() {
			continue
		}
		out = append(out, Equation{Left: lApp.Args[i].Term, Right: rApp.Args[i].Term})
	}
	return out
}

// CanBind reports whether Bind applies: one side is a bare free variable
// not occurring free in the other side.
func CanBind(eq Equation) bool {
	v, _, other, ok := orientBareVarLeft(eq)
	if !ok {
		return false
	}
	return !term.Occurs(v.Index, other, 0)
}

// Bind produces the new solved-set entry for eq, oriented so the bare
// variable is on the left. Callers must check CanBind first.
func Bind(eq Equation) Binding {
	v, _, other, _ := orientBareVarLeft(eq)
	return Binding{Var: v.Index, Type: v.Ty, Term: other}
}

// CanFunc reports whether Func applies: both sides have function type.
func CanFunc(eq Equation) bool {
	_, ok := term.TypeOf(eq.Left).(typ.Func)
	return ok
}

// Func applies both sides to fresh Skolem constants covering the whole
// curried argument list in one step, then beta-normalises, producing a
// single new equation at the function's final result type.
func Func(eq Equation, table *sig.Table) Equation {
	ty := term.TypeOf(eq.Left)
	argTypes, _ := typ.Decompose(ty)
	args := make([]term.Arg, len(argTypes))
	for i, at := range argTypes {
		key := table.Fresh("sk", at)
		args[i] = term.Arg{Term: term.Const{Ty: at, Sym: term.Key(key)}}
	}
	left := normal.BetaNormalize(term.Apply(eq.Left, args...))
	right := normal.BetaNormalize(term.Apply(eq.Right, args...))
	return Equation{Left: left, Right: right}
}

// partialBinding builds λy1...λyn. head (X1 ȳ) … (Xk ȳ), where the yi
// have types flexArgs and the Xi are fresh variables of type
// Curry(flexArgs, headArgs[i]), the standard higher-order partial-binding
// construction. buildHead supplies the skeleton's head term (a constant
// for Imitate, a bound parameter reference for Project); the caller
// already knows n when constructing it.
func partialBinding(flexArgs []typ.Type, headArgTypes []typ.Type, gen *fresh.Generator, buildHead func() term.Term) term.Term {
	n := len(flexArgs)
	body := buildHead()
	if len(headArgTypes) > 0 {
		spineArgs := make([]term.Arg, len(headArgTypes))
		for i, hat := range headArgTypes {
			xiType := typ.Curry(flexArgs, hat)
			freshIdx := gen.Fresh(xiType)
			xi := term.Var{Ty: xiType, Index: freshIdx + n}
			yArgs := make([]term.Arg, n)
			for j := 0; j < n; j++ {
				yArgs[j] = term.Arg{Term: term.Var{Ty: flexArgs[j], Index: n - j}}
			}
			spineArgs[i] = term.Arg{Term: term.Apply(xi, yArgs...)}
		}
		body = term.Apply(body, spineArgs...)
	}
	for i := n - 1; i >= 0; i-- {
		body = term.Abs{ParamTy: flexArgs[i], Body: body}
	}
	return body
}

// CanImitate reports whether Imitate applies: eq is flex-rigid and the
// rigid side's head is a constant (term.Const). Any other rigid head —
// a distinct object or a bound variable — makes it return false, so the
// driver never routes such an equation to Imitate. A bound-variable
// rigid head cannot arise from a depth-0 equation in the first place
// (bound variables cannot appear free at depth 0 — see Equation's doc
// comment).
func CanImitate(eq Equation) bool {
	_, rigid, ok := orientFlexLeft(eq)
	if !ok {
		return false
	}
	switch term.Head(rigid).(type) {
	case term.Const:
		return true
	default:
		return false
	}
}

// Imitate builds the equation that equates the flex head with an
// imitating partial binding of the rigid head. Callers must check
// CanImitate first.
func Imitate(eq Equation, gen *fresh.Generator) Equation {
	flex, rigid, _ := orientFlexLeft(eq)
	flexHeadVar := term.Head(flex).(term.Var)
	rigidConst := term.Head(rigid).(term.Const)

	flexArgs, _ := typ.Decompose(flexHeadVar.Ty)
	rigidArgTypes, _ := typ.Decompose(rigidConst.Ty)

	binding := partialBinding(flexArgs, rigidArgTypes, gen, func() term.Term {
		return term.Const{Ty: rigidConst.Ty, Sym: rigidConst.Sym}
	})
	return Equation{Left: flexHeadVar, Right: binding}
}

// ProjectCandidates reports, for each bound parameter of the flex head
// whose own (possibly curried) result type matches the equation's base
// result type, the 1-based parameter position compatible with
// projection. Project's applicability precondition is exactly this: the
// driver only calls Project on an equation already classified
// flex-rigid (CanImitate or the flex-flex/rigid-rigid classification
// having already been ruled out by the caller); there is no separate
// canApply beyond "give me a compatible parameter index".
func ProjectCandidates(eq Equation) []int {
	flex, _, ok := orientFlexLeft(eq)
	if !ok {
		return nil
	}
	flexHeadVar := term.Head(flex).(term.Var)
	flexArgs, resultTy := typ.Decompose(flexHeadVar.Ty)

	var candidates []int
	for j, at := range flexArgs {
		_, paramResult := typ.Decompose(at)
		if paramResult.Equals(resultTy) {
			candidates = append(candidates, j+1)
		}
	}
	return candidates
}

// Project builds the equation that equates the flex head with the
// projection binding selecting parameter yj (1-based, as returned by
// ProjectCandidates). Callers must only pass indices ProjectCandidates
// returned for this eq.
func Project(eq Equation, paramIndex int, gen *fresh.Generator) Equation {
	flex, _, _ := orientFlexLeft(eq)
	flexHeadVar := term.Head(flex).(term.Var)
	flexArgs, _ := typ.Decompose(flexHeadVar.Ty)

	paramTy := flexArgs[paramIndex-1]
	paramArgTypes, _ := typ.Decompose(paramTy)
	n := len(flexArgs)
	boundIndex := n - paramIndex + 1

	binding := partialBinding(flexArgs, paramArgTypes, gen, func() term.Term {
		return term.Var{Ty: paramTy, Index: boundIndex}
	})
	return Equation{Left: flexHeadVar, Right: binding}
}

// ComputeSubst realises every binding in seq as a single composite
// substitution.
func ComputeSubst(seq []Binding) subst.Subst {
	if len(seq) == 0 {
		return subst.Identity()
	}
	m := 0
	byIndex := make(map[int]Binding, len(seq))
	for _, b := range seq {
		byIndex[b.Var] = b
		if b.Var > m {
			m = b.Var
		}
	}
	s := subst.ShiftBy(m)
	for j := 1; j <= m; j++ {
		idx := m - j + 1
		if b, ok := byIndex[idx]; ok {
			s = subst.Cons(subst.Front{Term: b.Term}, s)
		} else {
			s = subst.Cons(subst.Front{Bound: idx}, s)
		}
	}
	return s
}
