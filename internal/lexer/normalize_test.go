package lexer

import (
	"bytes"
	"testing"
)

func TestNormalizeStripsBOM(t *testing.T) {
	src := append(append([]byte{}, bomUTF8...), []byte("fof(a,axiom,$true).")...)
	got := Normalize(src)
	want := []byte("fof(a,axiom,$true).")
	if !bytes.Equal(got, want) {
		t.Fatalf("Normalize(%q) = %q, want %q", src, got, want)
	}
}

func TestNormalizeNoBOMUnchanged(t *testing.T) {
	src := []byte("cnf(c,axiom,p(a)).")
	got := Normalize(src)
	if !bytes.Equal(got, src) {
		t.Fatalf("Normalize(%q) = %q, want unchanged", src, got)
	}
}
