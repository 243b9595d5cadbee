// Package exhaust implements the deterministic exhauster: repeatedly
// applies Delete, Decompose, Bind, and Func — in that priority order —
// to a list of unsolved equations until none applies, accumulating a
// solved set.
package exhaust

import (
	"sort"

	"github.com/go-tptp/huet/internal/huet"
	"github.com/go-tptp/huet/internal/normal"
	"github.com/go-tptp/huet/internal/sig"
	"github.com/go-tptp/huet/internal/subst"
)

// Result is the fixpoint of deterministic rule application: the
// remaining unsolved equations (rigid-rigid first, flex-flex last,
// ready for the nondeterministic driver's head-equation test) and the
// accumulated solved set.
type Result struct {
	Unsolved []huet.Equation
	Solved   []huet.Binding
}

// Run exhausts eq against Delete/Decompose/Bind/Func to fixpoint.
func Run(eqs []huet.Equation, solved []huet.Binding, table *sig.Table) Result {
	unsolved := append([]huet.Equation(nil), eqs...)
	solved = append([]huet.Binding(nil), solved...)

	for {
		progressed := false
		for i := 0; i < len(unsolved); i++ {
			eq := unsolved[i]

			switch {
			case huet.CanDelete(eq):
				unsolved = removeAt(unsolved, i)
				progressed = true

			case huet.CanDecompose(eq):
				sub := huet.Decompose(eq)
				unsolved = replaceAt(unsolved, i, sub...)
				sortByFlexibility(unsolved)
				progressed = true

			case huet.CanBind(eq):
				b := huet.Bind(eq)
				unsolved = removeAt(unsolved, i)
				s := huet.ComputeSubst([]huet.Binding{b})
				applySubstToEquations(unsolved, s)
				applySubstToSolved(solved, s)
				solved = append(solved, b)
				progressed = true

			case huet.CanFunc(eq):
				reduced := huet.Func(eq, table)
				unsolved = replaceAt(unsolved, i, reduced)
				sortByFlexibility(unsolved)
				progressed = true

			default:
				continue
			}
			break
		}
		if !progressed {
			sortByFlexibility(unsolved)
			return Result{Unsolved: unsolved, Solved: solved}
		}
	}
}

func removeAt(eqs []huet.Equation, i int) []huet.Equation {
	out := append([]huet.Equation(nil), eqs[:i]...)
	return append(out, eqs[i+1:]...)
}

func replaceAt(eqs []huet.Equation, i int, with ...huet.Equation) []huet.Equation {
	out := append([]huet.Equation(nil), eqs[:i]...)
	out = append(out, with...)
	return append(out, eqs[i+1:]...)
}

// sortByFlexibility re-sorts eqs in place so rigid-rigid equations come
// first and flex-flex equations come last — the invariant that makes
// the search driver's head-equation test cheap.
func sortByFlexibility(eqs []huet.Equation) {
	rank := func(eq huet.Equation) int {
		l := normal.IsFlex(eq.Left, 0)
		r := normal.IsFlex(eq.Right, 0)
		switch {
		case !l && !r:
			return 0 // rigid-rigid
		case l != r:
			return 1 // flex-rigid
		default:
			return 2 // flex-flex
		}
	}
	sort.SliceStable(eqs, func(i, j int) bool { return rank(eqs[i]) < rank(eqs[j]) })
}

func applySubstToEquations(eqs []huet.Equation, s subst.Subst) {
	for i := range eqs {
		eqs[i].Left = normal.BetaNormalize(subst.Apply(s, eqs[i].Left))
		eqs[i].Right = normal.BetaNormalize(subst.Apply(s, eqs[i].Right))
	}
}

func applySubstToSolved(solved []huet.Binding, s subst.Subst) {
	for i := range solved {
		solved[i].Term = normal.BetaNormalize(subst.Apply(s, solved[i].Term))
	}
}
