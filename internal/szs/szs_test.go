package szs

import (
	"strings"
	"testing"
)

func TestTagFormatsStatusLine(t *testing.T) {
	var sb strings.Builder
	if err := Tag(&sb, Theorem, "GRP001-1"); err != nil {
		t.Fatalf("Tag: %v", err)
	}
	want := "% SZS status Theorem for GRP001-1\n"
	if sb.String() != want {
		t.Errorf("Tag() = %q, want %q", sb.String(), want)
	}
}
