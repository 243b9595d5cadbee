package fresh

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-tptp/huet/internal/typ"
)

func TestFreshMintsIncreasingIndices(t *testing.T) {
	g := New(0)
	a := g.Fresh(nil)
	b := g.Fresh(nil)
	if a != 1 || b != 2 {
		t.Fatalf("expected indices 1,2, got %d,%d", a, b)
	}
	if len(g.Existing()) != 2 {
		t.Fatalf("expected 2 recorded entries, got %d", len(g.Existing()))
	}
}

func TestNewWithStartOffsetsNumbering(t *testing.T) {
	g := New(5)
	if got := g.Fresh(nil); got != 6 {
		t.Errorf("Fresh() = %d, want 6", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(0)
	g.Fresh(nil)
	clone := g.Clone()
	clone.Fresh(nil)
	if g.Last() != 1 {
		t.Errorf("original generator should be unaffected by clone's minting, got Last()=%d", g.Last())
	}
	if clone.Last() != 2 {
		t.Errorf("clone.Last() = %d, want 2", clone.Last())
	}
}

// TestExistingRecordsTypesInMintOrder pins the full (index, type) log a
// generator accumulates, not just its length: internal/huet's Imitate and
// Project mint variables of different curried types in a specific order,
// and a caller enumerating Existing() (cmd/prover's printPreUnifier does
// exactly this) depends on that order and on each entry's type being the
// one actually requested, not just *some* type. A plain len() or index-by-
// index field check would miss a swapped-type regression; cmp.Diff
// reports the whole mismatched struct at once.
func TestExistingRecordsTypesInMintOrder(t *testing.T) {
	boolTy := typ.Base{Sym: 1, Name: "$o"}
	indTy := typ.Base{Sym: 2, Name: "$i"}
	fnTy := typ.Func{Dom: indTy, Cod: boolTy}

	g := New(0)
	g.Fresh(indTy)
	g.Fresh(fnTy)
	g.Fresh(boolTy)

	want := []Entry{
		{Index: 1, Type: indTy},
		{Index: 2, Type: fnTy},
		{Index: 3, Type: boolTy},
	}
	got := g.Existing()
	if diff := cmp.Diff(want, got, cmp.Comparer(typesEqual)); diff != "" {
		t.Errorf("Existing() mismatch (-want +got):\n%s", diff)
	}
}

// typesEqual adapts typ.Type's own Equals method to cmp.Comparer's
// signature, since typ.Type is an interface with unexported methods that
// cmp cannot otherwise traverse structurally.
func typesEqual(a, b typ.Type) bool { return a.Equals(b) }
