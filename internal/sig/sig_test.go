package sig

import (
	"testing"

	"github.com/go-tptp/huet/internal/typ"
)

func TestFixedKeysPreregistered(t *testing.T) {
	tbl := New()
	e, ok := tbl.Lookup(KeyBool)
	if !ok || e.Name != "$o" || e.Kind != Fixed {
		t.Fatalf("expected $o pre-registered as Fixed, got %+v, ok=%v", e, ok)
	}
	if !tbl.Exists("$i") {
		t.Errorf("expected $i to exist")
	}
}

func TestRegisterRejectsConflict(t *testing.T) {
	tbl := New()
	boolTy := mustEntryType(t, tbl, KeyBool)
	if _, err := tbl.Register("p", Uninterpreted, boolTy, nil); err != nil {
		t.Fatalf("first registration should succeed: %v", err)
	}
	indTy := mustEntryType(t, tbl, KeyIndividual)
	if _, err := tbl.Register("p", Uninterpreted, indTy, nil); err == nil {
		t.Errorf("expected conflicting re-registration of %q to fail", "p")
	}
}

func TestRegisterIsIdempotentForSameSignature(t *testing.T) {
	tbl := New()
	boolTy := mustEntryType(t, tbl, KeyBool)
	k1, err := tbl.Register("p", Uninterpreted, boolTy, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k2, err := tbl.Register("p", Uninterpreted, boolTy, nil)
	if err != nil {
		t.Fatalf("unexpected error on re-registration with same signature: %v", err)
	}
	if k1 != k2 {
		t.Errorf("expected same key for idempotent registration, got %d and %d", k1, k2)
	}
}

func TestFreshMintsDistinctSkolems(t *testing.T) {
	tbl := New()
	indTy := mustEntryType(t, tbl, KeyIndividual)
	k1 := tbl.Fresh("sk", indTy)
	k2 := tbl.Fresh("sk", indTy)
	if k1 == k2 {
		t.Errorf("expected distinct Skolem keys, got %d twice", k1)
	}
	e1, _ := tbl.Lookup(k1)
	if e1.Kind != Uninterpreted {
		t.Errorf("expected Skolem constant to be Uninterpreted, got %s", e1.Kind)
	}
}

func mustEntryType(t *testing.T, tbl *Table, key int) typ.Type {
	t.Helper()
	e, ok := tbl.Lookup(key)
	if !ok {
		t.Fatalf("key %d not found", key)
	}
	return e.Type
}
