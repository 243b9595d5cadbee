package elab

import (
	"context"
	"testing"

	"github.com/go-tptp/huet/internal/ast"
	"github.com/go-tptp/huet/internal/huet"
	"github.com/go-tptp/huet/internal/parser"
	"github.com/go-tptp/huet/internal/search"
	"github.com/go-tptp/huet/internal/term"
)

func mustParse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, errs := parser.ParseString(src, "t.p")
	if len(errs) != 0 {
		t.Fatalf("parse errors for %q: %v", src, errs)
	}
	return f
}

// TestElabDeclareTypeAndFunctor exercises a `type` role declaration
// followed by a use of the declared functor: the functor's elaborated
// type must come from the declaration, not the $i/$o default.
func TestElabDeclareTypeAndFunctor(t *testing.T) {
	f := mustParse(t, `tff(f_type, type, f: $i > $o).
fof(ax, axiom, f(a)).
`)
	e := New()
	for _, in := range f.Inputs {
		if in.RoleName == ast.RoleType {
			td, ok := in.Formula.(*ast.TypeDecl)
			if !ok {
				t.Fatalf("type input formula = %#v, want *ast.TypeDecl", in.Formula)
			}
			if err := e.DeclareType(td); err != nil {
				t.Fatalf("DeclareType: %v", err)
			}
		}
	}
	key, ok := e.Table.Resolve("f")
	if !ok {
		t.Fatalf("f not registered")
	}
	entry, _ := e.Table.Lookup(key)
	if entry.Type.String() != "($i > $o)" {
		t.Fatalf("f's type = %s, want ($i > $o)", entry.Type)
	}
}

// TestElabGoalHigherOrderFindsImitation elaborates a THF conjecture
// quantifying over a function-typed variable applied to an argument —
// the canonical flex-rigid shape — and runs the search driver
// once, expecting an imitation to be found.
func TestElabGoalHigherOrderFindsImitation(t *testing.T) {
	f := mustParse(t, `tff(a_type, type, a: $i).
tff(c_type, type, c: $i).
thf(conj, conjecture, ! [X: $i > $i] : X @ a = c).
`)
	e := New()
	for _, in := range f.Inputs {
		if in.RoleName == ast.RoleType {
			td := in.Formula.(*ast.TypeDecl)
			if err := e.DeclareType(td); err != nil {
				t.Fatalf("DeclareType(%s): %v", td.Name, err)
			}
		}
	}

	var goal Goal
	found := false
	for _, in := range f.Inputs {
		if in.RoleName == ast.RoleConjecture {
			g, err := e.ElabGoal(in)
			if err != nil {
				t.Fatalf("ElabGoal: %v", err)
			}
			goal = g
			found = true
		}
	}
	if !found {
		t.Fatalf("no conjecture found")
	}

	it := search.New([]huet.Equation{goal.Eq}, e.Gen, e.Table, search.DefaultMaxDepth)
	_, ok, err := it.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if !ok {
		t.Fatalf("expected a pre-unifier for X @ a = c")
	}
}

// TestElabGoalAtomAsPropositionEquation elaborates a plain-atom
// conjecture using the formula-as-term-of-type-$o convention: the right
// side becomes the $true constant.
func TestElabGoalAtomAsPropositionEquation(t *testing.T) {
	f := mustParse(t, `tff(p_type, type, p: $i > $o).
tff(a_type, type, a: $i).
fof(conj, conjecture, p(a)).
`)
	e := New()
	for _, in := range f.Inputs {
		if in.RoleName == ast.RoleType {
			td := in.Formula.(*ast.TypeDecl)
			if err := e.DeclareType(td); err != nil {
				t.Fatalf("DeclareType: %v", err)
			}
		}
	}
	for _, in := range f.Inputs {
		if in.RoleName == ast.RoleConjecture {
			g, err := e.ElabGoal(in)
			if err != nil {
				t.Fatalf("ElabGoal: %v", err)
			}
			right, ok := g.Eq.Right.(term.Const)
			if !ok {
				t.Fatalf("right side = %#v, want a term.Const", g.Eq.Right)
			}
			entry, _ := e.Table.Lookup(int(right.Sym))
			if entry.Name != "$true" {
				t.Fatalf("right side registered as %q, want $true", entry.Name)
			}
		}
	}
}

// TestElabFirstOrderArgumentHasNoUnifier checks that a plain first-order
// variable used only as an argument (never as an applied head) behaves
// correctly: f(X) = b has no unifier when f and b are distinct rigid
// constants, since Huet's rules never invert an application to solve for
// an argument.
func TestElabFirstOrderArgumentHasNoUnifier(t *testing.T) {
	f := mustParse(t, `tff(f_type, type, f: $i > $i).
tff(b_type, type, b: $i).
fof(conj, conjecture, ! [X] : f(X) = b).
`)
	e := New()
	for _, in := range f.Inputs {
		if in.RoleName == ast.RoleType {
			td := in.Formula.(*ast.TypeDecl)
			if err := e.DeclareType(td); err != nil {
				t.Fatalf("DeclareType: %v", err)
			}
		}
	}
	var goal Goal
	for _, in := range f.Inputs {
		if in.RoleName == ast.RoleConjecture {
			g, err := e.ElabGoal(in)
			if err != nil {
				t.Fatalf("ElabGoal: %v", err)
			}
			goal = g
		}
	}
	it := search.New([]huet.Equation{goal.Eq}, e.Gen, e.Table, search.DefaultMaxDepth)
	_, ok, err := it.Next(context.Background())
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if ok {
		t.Fatalf("expected no pre-unifier for f(X) = b, got one")
	}
}
