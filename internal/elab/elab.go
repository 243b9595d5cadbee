// Package elab bridges the parsed TPTP surface syntax (internal/ast) into
// the typed term/type values internal/huet and internal/search unify
// over: it registers declared symbols in a internal/sig.Table, turns
// TPTP type expressions into internal/typ.Type, and turns TPTP terms and
// formulas into internal/term.Term.
//
// One Elaborator owns a single signature/fresh-variable scope per
// compilation unit, elaborating surface syntax into typed internal
// values one declaration at a time.
package elab

import (
	"fmt"

	"github.com/go-tptp/huet/internal/ast"
	"github.com/go-tptp/huet/internal/fresh"
	"github.com/go-tptp/huet/internal/huet"
	"github.com/go-tptp/huet/internal/sig"
	"github.com/go-tptp/huet/internal/term"
	"github.com/go-tptp/huet/internal/typ"
)

// Elaborator owns one signature table and free-variable generator for an
// entire TPTP problem file.
type Elaborator struct {
	Table *sig.Table
	Gen   *fresh.Generator
}

// New returns an Elaborator with $o and $i pre-registered (via
// sig.New) and a fresh-variable numbering starting from scratch.
func New() *Elaborator {
	return &Elaborator{Table: sig.New(), Gen: fresh.New(0)}
}

// scope is the lexical environment threaded through ElabTerm/ElabFormula:
// names bound by an enclosing Lambda/quantifier resolve to a bound
// term.Var (de-Bruijn index relative to depth); every other name is a
// schema/free variable, minted from the Elaborator's generator on first
// occurrence and shared within the one formula being elaborated (each
// goal or definition gets a scope of its own), so repeated occurrences of
// the same variable in it resolve to one internal/fresh index.
type scope struct {
	depth int
	bound map[string]int // name -> depth recorded right after opening its binder
	free  map[string]term.Var
}

func newScope(free map[string]term.Var) *scope {
	return &scope{bound: map[string]int{}, free: free}
}

// push returns a child scope with name newly bound at depth+1, shadowing
// any outer binding of the same name.
func (s *scope) push(name string) *scope {
	child := &scope{depth: s.depth + 1, bound: make(map[string]int, len(s.bound)+1), free: s.free}
	for k, v := range s.bound {
		child.bound[k] = v
	}
	child.bound[name] = child.depth
	return child
}

// resolveBound returns the de-Bruijn index for name if it is in the
// bound environment.
func (s *scope) resolveBound(name string) (int, bool) {
	d, ok := s.bound[name]
	if !ok {
		return 0, false
	}
	return s.depth - d + 1, true
}

// ElabType elaborates a TPTP type expression into a internal/typ.Type,
// registering any previously-unseen user type name as a fresh base type
// constructor in the signature table.
func (e *Elaborator) ElabType(t ast.TypeExpr) (typ.Type, error) {
	switch n := t.(type) {
	case *ast.TypeAtom:
		return e.elabTypeAtom(n.Name)

	case *ast.TypeArrow:
		args := make([]typ.Type, len(n.Args))
		for i, a := range n.Args {
			at, err := e.ElabType(a)
			if err != nil {
				return nil, err
			}
			args[i] = at
		}
		result, err := e.ElabType(n.Result)
		if err != nil {
			return nil, err
		}
		return typ.Curry(args, result), nil

	case *ast.TypeUnion:
		if len(n.Elements) == 0 {
			return nil, fmt.Errorf("elab: empty type union")
		}
		result, err := e.ElabType(n.Elements[len(n.Elements)-1])
		if err != nil {
			return nil, err
		}
		for i := len(n.Elements) - 2; i >= 0; i-- {
			left, err := e.ElabType(n.Elements[i])
			if err != nil {
				return nil, err
			}
			result = typ.Sum{Left: left, Right: result}
		}
		return result, nil

	case *ast.TypeForall:
		body, err := e.ElabType(n.Body)
		if err != nil {
			return nil, err
		}
		for range n.Vars {
			body = typ.Forall{Body: body}
		}
		return body, nil

	case *ast.TypeVarExpr:
		return nil, fmt.Errorf("elab: free type variable %q outside a !> binder", n.Name)

	default:
		return nil, fmt.Errorf("elab: unsupported type expression %T", t)
	}
}

func (e *Elaborator) elabTypeAtom(name string) (typ.Type, error) {
	switch name {
	case "$o":
		return typ.Base{Sym: typ.Key(sig.KeyBool), Name: "$o"}, nil
	case "$i":
		return typ.Base{Sym: typ.Key(sig.KeyIndividual), Name: "$i"}, nil
	case "$tType":
		return nil, fmt.Errorf("elab: $tType is kind-level, has no term.Type representation")
	}
	if key, ok := e.Table.Resolve(name); ok {
		entry, _ := e.Table.Lookup(key)
		return entry.Type, nil
	}
	_, ty := e.Table.RegisterType(name)
	return ty, nil
}

// DeclareType elaborates a `type`-role TypeDecl, registering its name in
// the signature table at its elaborated type (a term constant, unless
// the declared type is itself $tType, in which case the name is a fresh
// base type constructor rather than a term constant).
func (e *Elaborator) DeclareType(td *ast.TypeDecl) error {
	if atom, ok := td.Type.(*ast.TypeAtom); ok && atom.Name == "$tType" {
		e.Table.RegisterType(td.Name)
		return nil
	}
	ty, err := e.ElabType(td.Type)
	if err != nil {
		return fmt.Errorf("elab: declaring %q: %w", td.Name, err)
	}
	if _, err := e.Table.Register(td.Name, sig.Uninterpreted, ty, nil); err != nil {
		return fmt.Errorf("elab: %w", err)
	}
	return nil
}

// boolTy and indivTy are the two fixed base types, used as defaults when
// a FOF/CNF symbol's type was never declared by a `type` role input.
func boolTy() typ.Type   { return typ.Base{Sym: typ.Key(sig.KeyBool), Name: "$o"} }
func indivTy() typ.Type  { return typ.Base{Sym: typ.Key(sig.KeyIndividual), Name: "$i"} }

// ElabTerm elaborates a TPTP term into a term.Term under scope s. Every
// symbol not already in the signature table is registered on first use,
// defaulting undeclared argument and result sorts to $i — the only sort
// FOF/CNF ever uses implicitly.
func (e *Elaborator) ElabTerm(t ast.Term, s *scope) (term.Term, error) {
	switch n := t.(type) {
	case *ast.VarRef:
		if idx, ok := s.resolveBound(n.Name); ok {
			return term.Var{Ty: indivTy(), Index: idx}, nil
		}
		if v, ok := s.free[n.Name]; ok {
			return v, nil
		}
		idx := e.Gen.Fresh(indivTy())
		v := term.Var{Ty: indivTy(), Index: idx}
		s.free[n.Name] = v
		return v, nil

	case *ast.ConstRef:
		return e.elabFunctor(n.Name, n.Name, nil, s)

	case *ast.Apply:
		switch head := n.Head.(type) {
		case *ast.ConstRef:
			return e.elabFunctor(head.Name, head.Name, n.Args, s)
		case *ast.VarRef:
			// A variable applied to arguments: the head is a (typically
			// flexible, THF) higher-order variable rather than a
			// signature constant, so it is elaborated like any other
			// term and extended into a spine via term.Apply.
			hv, err := e.ElabTerm(head, s)
			if err != nil {
				return nil, err
			}
			args := make([]term.Arg, len(n.Args))
			for i, a := range n.Args {
				at, err := e.ElabTerm(a, s)
				if err != nil {
					return nil, err
				}
				args[i] = term.Arg{Term: at}
			}
			return term.Apply(hv, args...), nil
		default:
			return nil, fmt.Errorf("elab: application head %T not supported", n.Head)
		}

	case *ast.NumberLit:
		key, err := e.Table.Register("$num:"+n.Text, sig.Uninterpreted, indivTy(), nil)
		if err != nil {
			return nil, err
		}
		return term.Const{Ty: indivTy(), Sym: term.Key(key)}, nil

	case *ast.DistinctObject:
		key, err := e.Table.Register("$do:"+n.Value, sig.Uninterpreted, indivTy(), nil)
		if err != nil {
			return nil, err
		}
		return term.DistinctObject{Ty: indivTy(), Sym: term.Key(key)}, nil

	case *ast.Lambda:
		return e.elabLambda(n, s)

	default:
		return nil, fmt.Errorf("elab: unsupported term node %T", t)
	}
}

func (e *Elaborator) elabLambda(l *ast.Lambda, s *scope) (term.Term, error) {
	child := s
	paramTys := make([]typ.Type, len(l.Vars))
	for i, vb := range l.Vars {
		ty := indivTy()
		if vb.Type != nil {
			elaborated, err := e.ElabType(vb.Type)
			if err != nil {
				return nil, err
			}
			ty = elaborated
		}
		paramTys[i] = ty
		child = child.push(vb.Name)
	}
	body, err := e.ElabTerm(l.Body, child)
	if err != nil {
		return nil, err
	}
	for i := len(paramTys) - 1; i >= 0; i-- {
		body = term.Abs{ParamTy: paramTys[i], Body: body}
	}
	return body, nil
}

// elabFunctor resolves a lower-case/quoted/dollar-word symbol used with
// the given argument list, registering it in the signature table on
// first use (argument and result sorts default to $i, including when the
// symbol is used as an atom; a `type` role that already declared the
// symbol overrides the defaults).
func (e *Elaborator) elabFunctor(regName, display string, args []ast.Term, s *scope) (term.Term, error) {
	elabdArgs := make([]term.Arg, len(args))
	for i, a := range args {
		at, err := e.ElabTerm(a, s)
		if err != nil {
			return nil, err
		}
		elabdArgs[i] = term.Arg{Term: at}
	}

	var ty typ.Type
	if key, ok := e.Table.Resolve(regName); ok {
		entry, _ := e.Table.Lookup(key)
		ty = entry.Type
		return term.Apply(term.Const{Ty: ty, Sym: term.Key(key)}, elabdArgs...), nil
	}

	argTys := make([]typ.Type, len(args))
	for i := range argTys {
		argTys[i] = indivTy()
	}
	ty = typ.Curry(argTys, indivTy())
	key, err := e.Table.Register(regName, sig.Uninterpreted, ty, nil)
	if err != nil {
		return nil, err
	}
	return term.Apply(term.Const{Ty: ty, Sym: term.Key(key)}, elabdArgs...), nil
}

// Goal is one elaborated conjecture/negated-conjecture equation, ready to
// feed into internal/search.
type Goal struct {
	Name string
	Eq   huet.Equation
}

// ElabGoal elaborates an Input's formula into a unification goal: it
// strips any leading quantifiers (binding each quantified variable as a
// fresh free variable rather than a bound one, since this kernel treats
// conjecture variables as the unknowns Huet's search solves for), then
// turns the remaining body into an equation — using the body directly
// if it is already an Equation, or the "formula as a term of type $o"
// convention (atom =? $true, ~atom =? $false) otherwise.
func (e *Elaborator) ElabGoal(in *ast.Input) (Goal, error) {
	s := newScope(map[string]term.Var{})
	body := in.Formula
	negated := false

strip:
	for {
		switch n := body.(type) {
		case *ast.Quantified:
			for _, vb := range n.Vars {
				ty := indivTy()
				if vb.Type != nil {
					elaborated, err := e.ElabType(vb.Type)
					if err != nil {
						return Goal{}, err
					}
					ty = elaborated
				}
				idx := e.Gen.Fresh(ty)
				s.free[vb.Name] = term.Var{Ty: ty, Index: idx}
			}
			body = n.Body
		case *ast.Negation:
			negated = !negated
			body = n.Sub
		default:
			break strip
		}
	}

	if eq, ok := body.(*ast.Equation); ok {
		left, err := e.ElabTerm(eq.Left, s)
		if err != nil {
			return Goal{}, err
		}
		right, err := e.ElabTerm(eq.Right, s)
		if err != nil {
			return Goal{}, err
		}
		if negated != eq.Negated {
			return Goal{}, fmt.Errorf("elab: %s: a disequation is not a unification goal", in.Name)
		}
		return Goal{Name: in.Name, Eq: huet.Equation{Left: left, Right: right}}, nil
	}

	atom, ok := body.(*ast.FormulaAtom)
	if !ok {
		return Goal{}, fmt.Errorf("elab: %s: goal body %T is neither an equation nor an atom", in.Name, body)
	}
	t, err := e.ElabTerm(atom.Term, s)
	if err != nil {
		return Goal{}, err
	}
	target := "$true"
	if negated {
		target = "$false"
	}
	key, err := e.Table.Register(target, sig.Uninterpreted, boolTy(), nil)
	if err != nil {
		return Goal{}, err
	}
	return Goal{Name: in.Name, Eq: huet.Equation{Left: t, Right: term.Const{Ty: boolTy(), Sym: term.Key(key)}}}, nil
}

// DeclareDefinition elaborates a `definition`-role Input — `name = Body`
// or `name(Args) = Body`, the TPTP convention for introducing a defined
// constant — and registers name in the signature table as sig.Defined,
// so internal/normal's delta-expansion can unfold it later. Bare
// parameters on the left (if any) become the definition's own lambda
// prefix rather than call-site arguments, matching how $i -> $o defined
// predicates are written as an equation between a predicate atom and its
// unfolding.
func (e *Elaborator) DeclareDefinition(in *ast.Input) error {
	eq, ok := in.Formula.(*ast.Equation)
	if !ok || eq.Negated {
		return fmt.Errorf("elab: %s: definition role body must be a non-negated equation, got %T", in.Name, in.Formula)
	}

	var name string
	var paramNames []string
	switch head := eq.Left.(type) {
	case *ast.ConstRef:
		name = head.Name
	case *ast.Apply:
		ref, ok := head.Head.(*ast.ConstRef)
		if !ok {
			return fmt.Errorf("elab: %s: definition head %T is not a constant", in.Name, head.Head)
		}
		name = ref.Name
		for _, a := range head.Args {
			v, ok := a.(*ast.VarRef)
			if !ok {
				return fmt.Errorf("elab: %s: definition parameter %T is not a bare variable", in.Name, a)
			}
			paramNames = append(paramNames, v.Name)
		}
	default:
		return fmt.Errorf("elab: %s: definition head %T is not a constant or application", in.Name, eq.Left)
	}

	s := newScope(map[string]term.Var{})
	for _, p := range paramNames {
		s = s.push(p)
	}
	body, err := e.ElabTerm(eq.Right, s)
	if err != nil {
		return fmt.Errorf("elab: %s: %w", in.Name, err)
	}
	resultTy := term.TypeOf(body)

	paramTys := make([]typ.Type, len(paramNames))
	for i := range paramNames {
		paramTys[i] = indivTy()
	}
	for i := len(paramTys) - 1; i >= 0; i-- {
		body = term.Abs{ParamTy: paramTys[i], Body: body}
	}

	ty := typ.Curry(paramTys, resultTy)
	if _, err := e.Table.Register(name, sig.Defined, ty, body); err != nil {
		return fmt.Errorf("elab: %w", err)
	}
	return nil
}
