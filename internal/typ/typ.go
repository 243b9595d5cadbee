// Package typ implements the type language of the unification core: base
// types indexed by an opaque signature key, function/product/sum types,
// type variables, and universally quantified (polymorphic) types.
package typ

import (
	"fmt"

	"github.com/go-tptp/huet/internal/kind"
)

// Key is an opaque reference into the external signature table
// (internal/sig) identifying a base type's symbol.
type Key int

// Type is a type in the unification core's type language. Equality is
// always structural.
type Type interface {
	kindOf() kind.Kind
	String() string
	Equals(Type) bool
	// substituteVar replaces type variable `index` (0-based, counting
	// outward from the innermost Forall) with replacement, shifting
	// remaining variable indices as it crosses binders.
	substituteVar(index int, replacement Type) Type
}

// Base is a base type identified by a signature key, e.g. $i or $o or a
// user-declared type constructor's result type.
type Base struct {
	Sym  Key
	Name string // display name only; Sym is the canonical identity
}

func (Base) kindOf() kind.Kind { return kind.Star{} }
func (b Base) String() string  { return b.Name }
func (b Base) Equals(o Type) bool {
	other, ok := o.(Base)
	return ok && b.Sym == other.Sym
}
func (b Base) substituteVar(int, Type) Type { return b }

// Func is a function type A -> B.
type Func struct {
	Dom Type
	Cod Type
}

func (Func) kindOf() kind.Kind { return kind.Star{} }
func (f Func) String() string  { return fmt.Sprintf("(%s > %s)", f.Dom, f.Cod) }
func (f Func) Equals(o Type) bool {
	other, ok := o.(Func)
	return ok && f.Dom.Equals(other.Dom) && f.Cod.Equals(other.Cod)
}
func (f Func) substituteVar(index int, repl Type) Type {
	return Func{Dom: f.Dom.substituteVar(index, repl), Cod: f.Cod.substituteVar(index, repl)}
}

// Product is a non-dependent pair type A x B.
type Product struct {
	Left  Type
	Right Type
}

func (Product) kindOf() kind.Kind { return kind.Star{} }
func (p Product) String() string  { return fmt.Sprintf("(%s * %s)", p.Left, p.Right) }
func (p Product) Equals(o Type) bool {
	other, ok := o.(Product)
	return ok && p.Left.Equals(other.Left) && p.Right.Equals(other.Right)
}
func (p Product) substituteVar(index int, repl Type) Type {
	return Product{Left: p.Left.substituteVar(index, repl), Right: p.Right.substituteVar(index, repl)}
}

// Sum is a disjoint union type A + B.
type Sum struct {
	Left  Type
	Right Type
}

func (Sum) kindOf() kind.Kind { return kind.Star{} }
func (s Sum) String() string  { return fmt.Sprintf("(%s + %s)", s.Left, s.Right) }
func (s Sum) Equals(o Type) bool {
	other, ok := o.(Sum)
	return ok && s.Left.Equals(other.Left) && s.Right.Equals(other.Right)
}
func (s Sum) substituteVar(index int, repl Type) Type {
	return Sum{Left: s.Left.substituteVar(index, repl), Right: s.Right.substituteVar(index, repl)}
}

// Var is a free type variable, referenced by de-Bruijn-like index relative
// to the nearest enclosing Forall (0 = bound by the innermost Forall).
type Var struct {
	Index int
}

func (Var) kindOf() kind.Kind { return kind.Star{} }
func (v Var) String() string  { return fmt.Sprintf("T%d", v.Index) }
func (v Var) Equals(o Type) bool {
	other, ok := o.(Var)
	return ok && v.Index == other.Index
}
func (v Var) substituteVar(index int, repl Type) Type {
	if v.Index == index {
		return repl
	}
	return v
}

// Forall is a universally quantified type `∀.T`, binding Var{0} in Body
// (and shifting any Var already present).
type Forall struct {
	Body Type
}

func (Forall) kindOf() kind.Kind { return kind.Star{} }
func (f Forall) String() string  { return fmt.Sprintf("(forall. %s)", f.Body) }
func (f Forall) Equals(o Type) bool {
	other, ok := o.(Forall)
	return ok && f.Body.Equals(other.Body)
}
func (f Forall) substituteVar(index int, repl Type) Type {
	return Forall{Body: f.Body.substituteVar(index+1, repl)}
}

// Kind returns the kind of a type (always Star in this first-order type
// language; kept as a function, not a method, so callers that only hold a
// typ.Type interface value can still ask for its kind).
func Kind(t Type) kind.Kind { return t.kindOf() }

// Decompose splits a (possibly curried) function type into its argument
// types and final result type.
func Decompose(t Type) (args []Type, result Type) {
	for {
		f, ok := t.(Func)
		if !ok {
			return args, t
		}
		args = append(args, f.Dom)
		t = f.Cod
	}
}

// Arity returns the number of arguments a (possibly curried) function type
// takes before reaching a non-function result.
func Arity(t Type) int {
	args, _ := Decompose(t)
	return len(args)
}

// Curry rebuilds a curried function type from argument types and a result.
func Curry(args []Type, result Type) Type {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = Func{Dom: args[i], Cod: t}
	}
	return t
}

// IsPolymorphic reports whether t has a leading universal quantifier.
func IsPolymorphic(t Type) bool {
	_, ok := t.(Forall)
	return ok
}

// Instantiate strips a leading Forall, substituting its bound variable
// with the supplied type (which must not itself be polymorphic at the top
// level once substituted, by construction of callers).
func Instantiate(t Type, with Type) Type {
	f, ok := t.(Forall)
	if !ok {
		return t
	}
	return f.Body.substituteVar(0, with)
}

// Substitute replaces every occurrence of type variable Var{index} with
// replacement throughout t.
func Substitute(t Type, index int, replacement Type) Type {
	return t.substituteVar(index, replacement)
}
