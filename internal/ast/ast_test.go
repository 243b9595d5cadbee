package ast

import "testing"

func TestInputString(t *testing.T) {
	in := &Input{
		Language: "fof",
		Name:     "ax1",
		RoleName: RoleAxiom,
		Formula: &BinaryConnective{
			Left:  &FormulaAtom{Term: &ConstRef{Name: "p"}},
			Op:    "|",
			Right: &FormulaAtom{Term: &ConstRef{Name: "q"}},
		},
	}
	want := "fof(ax1, axiom, (p | q))."
	if got := in.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIncludeString(t *testing.T) {
	inc := &Include{Path: "Axioms/SET001-0.ax", Selection: []string{"a1", "a2"}}
	want := "include('Axioms/SET001-0.ax', [a1, a2])"
	if got := inc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestApplyZeroArgsIsBareConst(t *testing.T) {
	a := &Apply{Head: &ConstRef{Name: "c"}}
	if got := a.String(); got != "c" {
		t.Errorf("String() = %q, want %q", got, "c")
	}
}
