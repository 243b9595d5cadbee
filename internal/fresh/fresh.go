// Package fresh implements the free-variable generator: a single-owner
// mutable counter plus an append-only log of the (index, type) pairs it
// has minted, so that a search driver can later enumerate every free
// variable introduced along one derivation.
//
// Grounded on internal/types/inference.go's InferenceContext, which holds
// a freshCounter field and hands out ever-increasing type-variable ids for
// one inference run; generalised here from type variables to term-level
// free variables, and from a single counter to a counter paired with the
// registry of what it minted (read back through Existing, e.g. by
// cmd/prover when it prints the free variables of a pre-unifier).
package fresh

import "github.com/go-tptp/huet/internal/typ"

// Entry records one minted free variable: its index (in internal/term's
// shared bound/free index space) and its type.
type Entry struct {
	Index int
	Type  typ.Type
}

// Generator owns one free-variable counter. It is not safe for concurrent
// use: internal/search gives each branch of its BFS its own Generator
// (typically a Clone of the parent's), so that each candidate derivation
// may observe a consistent, independently-growing set of free variables
// without synchronisation.
type Generator struct {
	next    int
	minted  []Entry
}

// New returns a Generator whose first Fresh call mints index start+1.
// Pass 0 to start a derivation's free-variable numbering from scratch.
func New(start int) *Generator {
	return &Generator{next: start}
}

// Fresh mints and records a new free variable of type ty, returning its
// index.
func (g *Generator) Fresh(ty typ.Type) int {
	g.next++
	g.minted = append(g.minted, Entry{Index: g.next, Type: ty})
	return g.next
}

// Existing returns every (index, type) pair minted so far, oldest first.
// The returned slice is owned by the caller; Generator never mutates a
// slice it has handed out.
func (g *Generator) Existing() []Entry {
	out := make([]Entry, len(g.minted))
	copy(out, g.minted)
	return out
}

// Last returns the highest index minted so far (0 if none yet).
func (g *Generator) Last() int {
	return g.next
}

// Clone returns an independent Generator starting from the same state,
// for a BFS branch that must mint further free variables without
// affecting sibling branches.
func (g *Generator) Clone() *Generator {
	clone := &Generator{next: g.next, minted: make([]Entry, len(g.minted))}
	copy(clone.minted, g.minted)
	return clone
}
