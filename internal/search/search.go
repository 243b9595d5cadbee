// Package search implements the nondeterministic breadth-first driver:
// an immutable Configuration queue advanced by an externally-driven
// Next, producing a lazy sequence of pre-unifiers.
//
// Nothing here can block — every Configuration expansion is pure and
// total — so the "externally driven, cancellable via context" contract
// is implemented synchronously: one Next call runs the BFS queue
// forward, popping and expanding configurations, until it has a
// pre-unifier to hand back or the queue is empty. This is deliberately
// an immutable queue plus a pull-driven Next rather than a mutable
// one-shot iterator; the queue is internal to the Iterator and is not
// exposed to callers.
package search

import (
	"context"

	"github.com/go-tptp/huet/internal/exhaust"
	"github.com/go-tptp/huet/internal/fresh"
	"github.com/go-tptp/huet/internal/huet"
	"github.com/go-tptp/huet/internal/normal"
	"github.com/go-tptp/huet/internal/sig"
	"github.com/go-tptp/huet/internal/subst"
)

// DefaultMaxDepth is the default hard depth bound on search depth.
const DefaultMaxDepth = 60

// Configuration is one BFS search node. Configurations are immutable:
// every transition builds a new one rather than mutating an existing
// node, so a Configuration already in the queue never changes.
type Configuration struct {
	Unsolved []huet.Equation
	Solved   []huet.Binding
	Gen      *fresh.Generator
	Depth    int
}

// PreUnifier is a sound, possibly-incomplete unifier: a substitution
// realising every solved binding, plus any flex-flex equations postponed
// rather than solved. Gen is the fresh-variable generator of the
// Configuration that produced it, so a caller can enumerate every free
// variable minted along this particular derivation (e.g. to print the
// substitution) without needing to rediscover them from Subst alone.
type PreUnifier struct {
	Subst    subst.Subst
	Residual []huet.Equation
	Gen      *fresh.Generator
}

// Iterator drives the BFS queue. Construct with New; pull results with
// Next until ok is false.
type Iterator struct {
	table    *sig.Table
	queue    []Configuration
	maxDepth int
}

// New builds an Iterator over the initial equation set, starting the BFS
// at depth 0 with the given fresh-variable generator and maximum depth
// (use DefaultMaxDepth when the caller has no specific bound).
func New(initial []huet.Equation, gen *fresh.Generator, table *sig.Table, maxDepth int) *Iterator {
	return &Iterator{
		table:    table,
		maxDepth: maxDepth,
		queue:    []Configuration{{Unsolved: initial, Gen: gen, Depth: 0}},
	}
}

// Next advances the search until it produces the next pre-unifier in
// deterministic BFS order, or the queue empties (ok == false, which is
// normal termination, never an error). ctx cancellation
// is checked between configuration expansions; a cancelled context stops
// the search with ok == false and ctx.Err() returned as err — dropping
// the Iterator has the same effect without an explicit error.
func (it *Iterator) Next(ctx context.Context) (PreUnifier, bool, error) {
	for len(it.queue) > 0 {
		select {
		case <-ctx.Done():
			return PreUnifier{}, false, ctx.Err()
		default:
		}

		cfg := it.queue[0]
		it.queue = it.queue[1:]

		res := exhaust.Run(cfg.Unsolved, cfg.Solved, it.table)

		if len(res.Unsolved) == 0 {
			return PreUnifier{Subst: huet.ComputeSubst(res.Solved), Gen: cfg.Gen}, true, nil
		}

		head := res.Unsolved[0]
		lFlex := normal.IsFlex(head.Left, 0)
		rFlex := normal.IsFlex(head.Right, 0)

		switch {
		case !lFlex && !rFlex:
			// rigid-rigid: dead branch, emits nothing.
			continue

		case lFlex && rFlex:
			// flex-flex: postpone every remaining equation and emit.
			return PreUnifier{
				Subst:    huet.ComputeSubst(res.Solved),
				Residual: res.Unsolved,
				Gen:      cfg.Gen,
			}, true, nil

		default:
			it.expandFlexRigid(cfg, res, head)
		}
	}
	return PreUnifier{}, false, nil
}

func (it *Iterator) expandFlexRigid(cfg Configuration, res exhaust.Result, head huet.Equation) {
	if cfg.Depth+1 > it.maxDepth {
		return
	}
	// The original flex-rigid equation is kept (not dropped): once the
	// partial binding is discharged by Bind, it gets substituted back
	// into this equation too, so an occurs violation like X =? f(X)
	// keeps decomposing into fresh equations of the same shape rather
	// than spuriously succeeding against an unconstrained new variable.
	rest := res.Unsolved

	if huet.CanImitate(head) {
		gen := cfg.Gen.Clone()
		newEq := huet.Imitate(head, gen)
		it.enqueue(newEq, rest, res.Solved, gen, cfg.Depth+1)
	}
	for _, param := range huet.ProjectCandidates(head) {
		gen := cfg.Gen.Clone()
		newEq := huet.Project(head, param, gen)
		it.enqueue(newEq, rest, res.Solved, gen, cfg.Depth+1)
	}
}

func (it *Iterator) enqueue(newEq huet.Equation, rest []huet.Equation, solved []huet.Binding, gen *fresh.Generator, depth int) {
	unsolved := make([]huet.Equation, 0, len(rest)+1)
	unsolved = append(unsolved, newEq)
	unsolved = append(unsolved, rest...)
	it.queue = append(it.queue, Configuration{
		Unsolved: unsolved,
		Solved:   append([]huet.Binding(nil), solved...),
		Gen:      gen,
		Depth:    depth,
	})
}
