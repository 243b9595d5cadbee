package normal

import (
	"testing"

	"github.com/go-tptp/huet/internal/sig"
	"github.com/go-tptp/huet/internal/term"
	"github.com/go-tptp/huet/internal/typ"
)

func indType() typ.Type { return typ.Base{Sym: typ.Key(sig.KeyIndividual), Name: "$i"} }
func boolType() typ.Type { return typ.Base{Sym: typ.Key(sig.KeyBool), Name: "$o"} }

func TestBetaStepReducesHeadRedex(t *testing.T) {
	// (\x. x)(c) -> c
	c := term.Const{Ty: indType(), Sym: 10}
	abs := term.Abs{ParamTy: indType(), Body: term.Var{Ty: indType(), Index: 1}}
	redex := term.Apply(abs, term.Arg{Term: c})

	out, changed := BetaStep(redex)
	if !changed {
		t.Fatalf("expected a beta-redex to be found")
	}
	if !term.Equal(out, c) {
		t.Errorf("BetaStep result = %s, want %s", out, c)
	}
}

func TestBetaNormalizeToFixpoint(t *testing.T) {
	c := term.Const{Ty: indType(), Sym: 10}
	// (\x. (\y. y)(x))(c) -> (\y.y)(c) -> c
	inner := term.Apply(term.Abs{ParamTy: indType(), Body: term.Var{Ty: indType(), Index: 1}},
		term.Arg{Term: term.Var{Ty: indType(), Index: 1}})
	outer := term.Apply(term.Abs{ParamTy: indType(), Body: inner}, term.Arg{Term: c})

	nf := BetaNormalize(outer)
	if !term.Equal(nf, c) {
		t.Errorf("BetaNormalize = %s, want %s", nf, c)
	}
}

func TestDeltaStepUnfoldsDefinedConstant(t *testing.T) {
	tbl := sig.New()
	c := term.Const{Ty: indType(), Sym: 10}
	key, err := tbl.Register("def_c", sig.Defined, indType(), c)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defined := term.Const{Ty: indType(), Sym: term.Key(key)}

	out, changed := DeltaStep(defined, tbl)
	if !changed {
		t.Fatalf("expected delta-unfold to fire")
	}
	if !term.Equal(out, c) {
		t.Errorf("DeltaStep = %s, want %s", out, c)
	}
}

func TestEtaExpandAddsMissingBinder(t *testing.T) {
	// a free variable of function type $i -> $o, not yet applied, should
	// eta-expand to \x. F(x).
	fTy := typ.Func{Dom: indType(), Cod: boolType()}
	f := term.Var{Ty: fTy, Index: 1}

	expanded := EtaExpand(f)
	abs, ok := expanded.(term.Abs)
	if !ok {
		t.Fatalf("expected Abs, got %T", expanded)
	}
	app, ok := abs.Body.(term.App)
	if !ok {
		t.Fatalf("expected App body, got %T", abs.Body)
	}
	if !term.Equal(app.Args[0].Term, term.Var{Ty: indType(), Index: 1}) {
		t.Errorf("expected bound variable applied to shifted head: %s", app.Args[0].Term)
	}
}

func TestEtaExpandDoesNotWrapExistingAbs(t *testing.T) {
	// eta-expanding an already eta-long abstraction must not introduce a
	// beta-redex: EtaExpand(\x:i. x) should stay \x:i. x, not become
	// \y:i. (\x:i. x) y.
	abs := term.Abs{ParamTy: indType(), Body: term.Var{Ty: indType(), Index: 1}}

	expanded := EtaExpand(abs)
	if !term.Equal(expanded, abs) {
		t.Errorf("EtaExpand(%s) = %s, want unchanged", abs, expanded)
	}
}

func TestNormalizeStableOnIdentityAbstraction(t *testing.T) {
	tbl := sig.New()
	abs := term.Abs{ParamTy: indType(), Body: term.Var{Ty: indType(), Index: 1}}

	nf := Normalize(abs, tbl)
	if !term.Equal(nf, abs) {
		t.Errorf("Normalize(%s) = %s, want unchanged", abs, nf)
	}
	if nf2 := Normalize(nf, tbl); !term.Equal(nf2, nf) {
		t.Errorf("Normalize is not idempotent: %s then %s", nf, nf2)
	}
}

func TestNormalizeUnfoldsDefinedConstant(t *testing.T) {
	tbl := sig.New()
	c := term.Const{Ty: indType(), Sym: 10}
	key, err := tbl.Register("def_c", sig.Defined, indType(), c)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	defined := term.Const{Ty: indType(), Sym: term.Key(key)}

	nf := Normalize(defined, tbl)
	if !term.Equal(nf, c) {
		t.Errorf("Normalize(%s) = %s, want %s", defined, nf, c)
	}
}

func TestClassifyHeadFlexVsRigid(t *testing.T) {
	free := term.Var{Ty: indType(), Index: 5}
	bound := term.Var{Ty: indType(), Index: 1}
	c := term.Const{Ty: indType(), Sym: 1}

	if ClassifyHead(free, 1) != HeadFlex {
		t.Errorf("expected free variable to classify as flex")
	}
	if ClassifyHead(bound, 1) != HeadRigid {
		t.Errorf("expected bound variable to classify as rigid")
	}
	if ClassifyHead(c, 0) != HeadRigid {
		t.Errorf("expected constant to classify as rigid")
	}
}
