// Package term implements the typed, locally-nameless, spine-form lambda
// term representation that internal/huet and internal/search unify over.
//
// Bound and free (meta) variables share one index space: a Var's Index is
// only "free" relative to a binder depth known to the caller (the number
// of enclosing Abs/TyAbs nodes) — an index greater than that depth denotes
// a free variable, numbered Index-depth in the free-variable namespace
// that internal/fresh allocates into.
package term

import (
	"fmt"
	"strings"

	"github.com/go-tptp/huet/internal/typ"
)

// Key is an opaque reference into the external signature table
// (internal/sig) identifying a constant's symbol. It shares no Go type
// identity with typ.Key by design: from the term algebra's perspective a
// constant reference is just an opaque integer handed back by the
// signature table.
type Key int

// Term is the base interface for all term nodes.
type Term interface {
	String() string
	termNode()
}

// Var is a bound-or-free variable slot: (type, index).
type Var struct {
	Ty    typ.Type
	Index int // de-Bruijn-like index, >= 1
}

func (Var) termNode()      {}
func (v Var) String() string { return fmt.Sprintf("x%d", v.Index) }

// IsFree reports whether this variable is free relative to the given
// binder depth (the number of Abs/TyAbs nodes enclosing it).
func (v Var) IsFree(depth int) bool { return v.Index > depth }

// FreeID returns the free-variable-namespace identifier of v, valid only
// when v.IsFree(depth).
func (v Var) FreeID(depth int) int { return v.Index - depth }

// Const is a reference into the external signature by key.
type Const struct {
	Ty  typ.Type
	Sym Key
}

func (Const) termNode()      {}
func (c Const) String() string { return fmt.Sprintf("c%d", c.Sym) }

// DistinctObject is a leaf referring to a signature constant that is, by
// TPTP convention, distinct from every other distinct object.
type DistinctObject struct {
	Ty  typ.Type
	Sym Key
}

func (DistinctObject) termNode()      {}
func (d DistinctObject) String() string { return fmt.Sprintf("\"d%d\"", d.Sym) }

// Abs is a one-parameter abstraction; n-ary lambdas are nested Abs nodes.
type Abs struct {
	ParamTy typ.Type
	Body    Term
}

func (Abs) termNode() {}
func (a Abs) String() string {
	return fmt.Sprintf("(\\%s. %s)", a.ParamTy, a.Body)
}

// TyAbs is a type abstraction, for polymorphism.
type TyAbs struct {
	Body Term
}

func (TyAbs) termNode()      {}
func (t TyAbs) String() string { return fmt.Sprintf("(/\\. %s)", t.Body) }

// Arg is one spine argument: either a term argument (Term != nil) or a
// type argument (Type != nil), never both.
type Arg struct {
	Term Term
	Type typ.Type
}

// IsType reports whether this argument is a type argument.
func (a Arg) IsType() bool { return a.Type != nil }

func (a Arg) String() string {
	if a.IsType() {
		return a.Type.String()
	}
	return a.Term.String()
}

// App is a spine application: a head (never itself an App — the
// "spine normality" invariant) plus an ordered list of
// term/type arguments.
type App struct {
	Head Term
	Args []Arg
}

func (App) termNode() {}
func (a App) String() string {
	parts := make([]string, len(a.Args))
	for i, arg := range a.Args {
		parts[i] = arg.String()
	}
	if len(parts) == 0 {
		return a.Head.String()
	}
	return fmt.Sprintf("%s(%s)", a.Head, strings.Join(parts, ", "))
}

// Head returns the head of t: for a spine App, its (never-applicative)
// head; for anything else, t itself.
func Head(t Term) Term {
	if a, ok := t.(App); ok {
		return a.Head
	}
	return t
}

// Args returns the argument list of t, or nil if t is not a spine App.
func Args(t Term) []Arg {
	if a, ok := t.(App); ok {
		return a.Args
	}
	return nil
}

// Apply extends a spine: Apply(f, more...) appends more to f's argument
// list if f is already an App with a non-applicative head (preserving
// spine normality), or builds a fresh one-level App otherwise.
func Apply(f Term, more ...Arg) Term {
	if len(more) == 0 {
		return f
	}
	if a, ok := f.(App); ok {
		args := make([]Arg, 0, len(a.Args)+len(more))
		args = append(args, a.Args...)
		args = append(args, more...)
		return App{Head: a.Head, Args: args}
	}
	return App{Head: f, Args: more}
}

// TypeOf computes the type of t from the type annotations already
// carried on its leaves (a Var carries its own type); it does not itself
// verify well-typedness.
func TypeOf(t Term) typ.Type {
	switch n := t.(type) {
	case Var:
		return n.Ty
	case Const:
		return n.Ty
	case DistinctObject:
		return n.Ty
	case Abs:
		return typ.Func{Dom: n.ParamTy, Cod: TypeOf(n.Body)}
	case TyAbs:
		return typ.Forall{Body: TypeOf(n.Body)}
	case App:
		return typeOfApp(n)
	default:
		panic(fmt.Sprintf("term.TypeOf: unknown term node %T", t))
	}
}

func typeOfApp(a App) typ.Type {
	result := TypeOf(a.Head)
	for _, arg := range a.Args {
		if arg.IsType() {
			result = typ.Instantiate(result, arg.Type)
			continue
		}
		f, ok := result.(typ.Func)
		if !ok {
			panic("term.TypeOf: too many arguments for head type")
		}
		result = f.Cod
	}
	return result
}

// Equal reports structural (alpha-equivalence-respecting, since indices
// are already de-Bruijn) equality between two terms without any
// normalisation.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Index == y.Index && x.Ty.Equals(y.Ty)
	case Const:
		y, ok := b.(Const)
		return ok && x.Sym == y.Sym && x.Ty.Equals(y.Ty)
	case DistinctObject:
		y, ok := b.(DistinctObject)
		return ok && x.Sym == y.Sym
	case Abs:
		y, ok := b.(Abs)
		return ok && x.ParamTy.Equals(y.ParamTy) && Equal(x.Body, y.Body)
	case TyAbs:
		y, ok := b.(TyAbs)
		return ok && Equal(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		if !ok || len(x.Args) != len(y.Args) || !Equal(x.Head, y.Head) {
			return false
		}
		for i := range x.Args {
			if x.Args[i].IsType() != y.Args[i].IsType() {
				return false
			}
			if x.Args[i].IsType() {
				if !x.Args[i].Type.Equals(y.Args[i].Type) {
					return false
				}
			} else if !Equal(x.Args[i].Term, y.Args[i].Term) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// LooseIndices returns the set of indices appearing in t that escape the
// given binder depth (i.e. that are free relative to it) — the
// free-variable hygiene an occurs check reads.
func LooseIndices(t Term, depth int) map[int]bool {
	out := make(map[int]bool)
	collectLoose(t, depth, out)
	return out
}

func collectLoose(t Term, depth int, out map[int]bool) {
	switch n := t.(type) {
	case Var:
		if n.IsFree(depth) {
			out[n.Index] = true
		}
	case Const, DistinctObject:
		// no variables
	case Abs:
		collectLoose(n.Body, depth+1, out)
	case TyAbs:
		collectLoose(n.Body, depth+1, out)
	case App:
		collectLoose(n.Head, depth, out)
		for _, arg := range n.Args {
			if !arg.IsType() {
				collectLoose(arg.Term, depth, out)
			}
		}
	}
}

// Occurs reports whether the free variable with the given (depth-relative
// absolute) index occurs anywhere in t, used by Bind's occurs check.
func Occurs(index int, t Term, depth int) bool {
	return LooseIndices(t, depth)[index]
}
