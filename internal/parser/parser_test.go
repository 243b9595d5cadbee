package parser

import (
	"testing"

	"github.com/go-tptp/huet/internal/ast"
)

func parseOK(t *testing.T, src string) *ast.File {
	t.Helper()
	f, errs := ParseString(src, "t.p")
	if len(errs) != 0 {
		t.Fatalf("unexpected parse errors for %q: %v", src, errs)
	}
	return f
}

func TestParseIncludeWithSelection(t *testing.T) {
	f := parseOK(t, `include('Axioms/GRP001-0.ax', [grp_axioms, assoc]).`)
	if len(f.Includes) != 1 {
		t.Fatalf("got %d includes, want 1", len(f.Includes))
	}
	inc := f.Includes[0]
	if inc.Path != "Axioms/GRP001-0.ax" {
		t.Errorf("path = %q", inc.Path)
	}
	if len(inc.Selection) != 2 || inc.Selection[0] != "grp_axioms" || inc.Selection[1] != "assoc" {
		t.Errorf("selection = %v", inc.Selection)
	}
}

func TestParseIncludeNoSelection(t *testing.T) {
	f := parseOK(t, `include('Axioms/GRP001-0.ax').`)
	if len(f.Includes) != 1 || len(f.Includes[0].Selection) != 0 {
		t.Fatalf("got %+v", f.Includes)
	}
}

func TestParseCNFClause(t *testing.T) {
	f := parseOK(t, `cnf(c1, axiom, ~ p(a) | q(b)).`)
	if len(f.Inputs) != 1 {
		t.Fatalf("got %d inputs, want 1", len(f.Inputs))
	}
	in := f.Inputs[0]
	if in.Language != "cnf" || in.Name != "c1" || in.RoleName != ast.RoleAxiom {
		t.Fatalf("got %+v", in)
	}
	bc, ok := in.Formula.(*ast.BinaryConnective)
	if !ok || bc.Op != "|" {
		t.Fatalf("formula = %#v, want top-level |", in.Formula)
	}
	if _, ok := bc.Left.(*ast.Negation); !ok {
		t.Errorf("left = %#v, want Negation", bc.Left)
	}
}

func TestParseFOFQuantifiers(t *testing.T) {
	f := parseOK(t, `fof(ax1, axiom, ! [X] : (p(X) => ? [Y] : q(X,Y))).`)
	in := f.Inputs[0]
	q, ok := in.Formula.(*ast.Quantified)
	if !ok || q.Kind != "!" {
		t.Fatalf("formula = %#v, want top-level !", in.Formula)
	}
	if len(q.Vars) != 1 || q.Vars[0].Name != "X" {
		t.Fatalf("vars = %+v", q.Vars)
	}
	bc, ok := q.Body.(*ast.BinaryConnective)
	if !ok || bc.Op != "=>" {
		t.Fatalf("body = %#v, want =>", q.Body)
	}
	rhs, ok := bc.Right.(*ast.Quantified)
	if !ok || rhs.Kind != "?" {
		t.Fatalf("rhs = %#v, want ?", bc.Right)
	}
}

func TestParseEquationAndDisequation(t *testing.T) {
	f := parseOK(t, `fof(e1, axiom, f(a) = b).
fof(e2, axiom, f(a) != b).`)
	eq, ok := f.Inputs[0].Formula.(*ast.Equation)
	if !ok || eq.Negated {
		t.Fatalf("e1 = %#v", f.Inputs[0].Formula)
	}
	neq, ok := f.Inputs[1].Formula.(*ast.Equation)
	if !ok || !neq.Negated {
		t.Fatalf("e2 = %#v", f.Inputs[1].Formula)
	}
}

func TestParseTFFTypeDeclaration(t *testing.T) {
	f := parseOK(t, `tff(f_type, type, f: $i > $i > $o).`)
	in := f.Inputs[0]
	td, ok := in.Formula.(*ast.TypeDecl)
	if !ok || td.Name != "f" {
		t.Fatalf("formula = %#v, want TypeDecl f", in.Formula)
	}
	arrow, ok := td.Type.(*ast.TypeArrow)
	if !ok {
		t.Fatalf("type = %#v, want TypeArrow", td.Type)
	}
	if arrow.Result.String() != "$o" {
		t.Errorf("result = %s, want $o", arrow.Result)
	}
}

func TestParseTHFLambdaAndApplication(t *testing.T) {
	f := parseOK(t, `thf(t1, axiom, (^ [X: $i] : p @ X) = q).`)
	eq, ok := f.Inputs[0].Formula.(*ast.Equation)
	if !ok {
		t.Fatalf("formula = %#v, want Equation", f.Inputs[0].Formula)
	}
	lam, ok := eq.Left.(*ast.Lambda)
	if !ok {
		t.Fatalf("left = %#v, want Lambda", eq.Left)
	}
	app, ok := lam.Body.(*ast.Apply)
	if !ok || len(app.Args) != 1 {
		t.Fatalf("lambda body = %#v, want Apply with 1 arg", lam.Body)
	}
}

func TestParseAnnotationWithInfo(t *testing.T) {
	f := parseOK(t, `fof(a1, axiom, $true, inference(rule, [], [a0])).`)
	ann := f.Inputs[0].Annotations
	if ann == nil {
		t.Fatalf("expected annotation")
	}
	if _, ok := ann.Source.(*ast.Apply); !ok {
		t.Errorf("source = %#v, want Apply (inference(...))", ann.Source)
	}
}

func TestParseNumberLiterals(t *testing.T) {
	f := parseOK(t, `fof(n1, axiom, p(42, -7, 3/4, 1.5)).`)
	app := f.Inputs[0].Formula.(*ast.FormulaAtom).Term.(*ast.Apply)
	if len(app.Args) != 4 {
		t.Fatalf("got %d args", len(app.Args))
	}
	kinds := []ast.NumberKind{ast.IntegerNumber, ast.IntegerNumber, ast.RationalNumber, ast.RealNumber}
	for i, arg := range app.Args {
		nl, ok := arg.(*ast.NumberLit)
		if !ok {
			t.Fatalf("arg %d = %#v, want NumberLit", i, arg)
		}
		if nl.Kind != kinds[i] {
			t.Errorf("arg %d kind = %v, want %v", i, nl.Kind, kinds[i])
		}
	}
}

func TestParseErrorRecoveryContinuesToNextStatement(t *testing.T) {
	f, errs := ParseString(`fof(bad, axiom, @@@).
fof(good, axiom, $true).`, "t.p")
	if len(errs) == 0 {
		t.Fatalf("expected at least one error")
	}
	var names []string
	for _, in := range f.Inputs {
		names = append(names, in.Name)
	}
	found := false
	for _, n := range names {
		if n == "good" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected recovery to reach 'good', got inputs %v", names)
	}
}

func TestParseDistinctObject(t *testing.T) {
	f := parseOK(t, `fof(d1, axiom, p("a distinct object")).`)
	app := f.Inputs[0].Formula.(*ast.FormulaAtom).Term.(*ast.Apply)
	do, ok := app.Args[0].(*ast.DistinctObject)
	if !ok || do.Value != "a distinct object" {
		t.Fatalf("arg = %#v", app.Args[0])
	}
}
