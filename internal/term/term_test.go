package term

import (
	"testing"

	"github.com/go-tptp/huet/internal/typ"
)

func boolType() typ.Type { return typ.Base{Sym: 1, Name: "$o"} }
func indType() typ.Type  { return typ.Base{Sym: 2, Name: "$i"} }

func TestApplyFlattensSpine(t *testing.T) {
	c := Const{Ty: typ.Curry([]typ.Type{indType(), indType()}, boolType()), Sym: 7}
	once := Apply(c, Arg{Term: Var{Ty: indType(), Index: 1}})
	twice := Apply(once, Arg{Term: Var{Ty: indType(), Index: 2}})

	app, ok := twice.(App)
	if !ok {
		t.Fatalf("expected App, got %T", twice)
	}
	if len(app.Args) != 2 {
		t.Fatalf("expected a flattened 2-arg spine, got %d args", len(app.Args))
	}
	if !Equal(app.Head, c) {
		t.Errorf("expected head %s, got %s", c, app.Head)
	}
}

func TestTypeOfApp(t *testing.T) {
	fnTy := typ.Curry([]typ.Type{indType(), indType()}, boolType())
	c := Const{Ty: fnTy, Sym: 1}
	spine := Apply(c,
		Arg{Term: Var{Ty: indType(), Index: 1}},
		Arg{Term: Var{Ty: indType(), Index: 2}},
	)
	if got := TypeOf(spine); !got.Equals(boolType()) {
		t.Errorf("TypeOf(spine) = %s, want %s", got, boolType())
	}
}

func TestTypeOfAbsAndTyAbs(t *testing.T) {
	abs := Abs{ParamTy: indType(), Body: Var{Ty: indType(), Index: 1}}
	want := typ.Func{Dom: indType(), Cod: indType()}
	if got := TypeOf(abs); !got.Equals(want) {
		t.Errorf("TypeOf(abs) = %s, want %s", got, want)
	}

	tyabs := TyAbs{Body: Var{Ty: typ.Var{Index: 0}, Index: 1}}
	if _, ok := TypeOf(tyabs).(typ.Forall); !ok {
		t.Errorf("TypeOf(tyabs) = %T, want typ.Forall", TypeOf(tyabs))
	}
}

func TestEqualIgnoresNothingButStructure(t *testing.T) {
	a := Apply(Const{Ty: indType(), Sym: 3}, Arg{Term: Var{Ty: indType(), Index: 1}})
	b := Apply(Const{Ty: indType(), Sym: 3}, Arg{Term: Var{Ty: indType(), Index: 1}})
	c := Apply(Const{Ty: indType(), Sym: 3}, Arg{Term: Var{Ty: indType(), Index: 2}})

	if !Equal(a, b) {
		t.Errorf("expected a and b to be Equal")
	}
	if Equal(a, c) {
		t.Errorf("expected a and c to differ (different bound index)")
	}
}

func TestLooseIndicesAndOccurs(t *testing.T) {
	// \x. F(x, y)  where F is free-var index 3, y is free-var index 2,
	// and x is bound (index 1 at depth 1).
	body := Apply(Var{Ty: indType(), Index: 3},
		Arg{Term: Var{Ty: indType(), Index: 1}},
		Arg{Term: Var{Ty: indType(), Index: 2}},
	)
	abs := Abs{ParamTy: indType(), Body: body}

	loose := LooseIndices(abs, 0)
	if len(loose) != 2 {
		t.Fatalf("expected 2 loose indices, got %v", loose)
	}
	if !Occurs(3, abs, 0) {
		t.Errorf("expected free variable 3 to occur")
	}
	if Occurs(1, abs, 0) {
		t.Errorf("bound variable 1 should not be reported as occurring at depth 0")
	}
}

func TestHeadAndArgsOnNonApp(t *testing.T) {
	v := Var{Ty: indType(), Index: 5}
	if Head(v) != Term(v) {
		t.Errorf("Head of a non-App should be itself")
	}
	if Args(v) != nil {
		t.Errorf("Args of a non-App should be nil")
	}
}
