// Package ast defines the TPTP parse-tree node types and source positions
// shared by the lexer, parser, signature table, and structured error reports.
package ast

import (
	"fmt"
	"strings"
)

// Node is the base interface for all AST nodes.
type Node interface {
	String() string
	Position() Pos
}

// Pos represents a position in the source code.
type Pos struct {
	Line   int
	Column int
	File   string
	Offset int
}

// Span represents a range in source code.
type Span struct {
	Start Pos
	End   Pos
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// File represents a complete TPTP source file: a sequence of include
// directives and annotated-formula inputs, in the order they appeared.
type File struct {
	Path     string
	Includes []*Include
	Inputs   []*Input
	Pos      Pos
}

func (f *File) String() string {
	parts := make([]string, 0, len(f.Includes)+len(f.Inputs))
	for _, inc := range f.Includes {
		parts = append(parts, inc.String())
	}
	for _, in := range f.Inputs {
		parts = append(parts, in.String())
	}
	return strings.Join(parts, "\n")
}
func (f *File) Position() Pos { return f.Pos }

// Include represents an `include('filename', [name, ...]).` directive.
type Include struct {
	Path      string
	Selection []string // empty means "import everything"
	Pos       Pos
	Span      Span
}

func (i *Include) String() string {
	if len(i.Selection) > 0 {
		return fmt.Sprintf("include('%s', [%s])", i.Path, strings.Join(i.Selection, ", "))
	}
	return fmt.Sprintf("include('%s')", i.Path)
}
func (i *Include) Position() Pos { return i.Pos }

// Role is the role of an annotated formula (type, definition, axiom, ...).
type Role string

const (
	RoleType              Role = "type"
	RoleDefinition         Role = "definition"
	RoleAxiom              Role = "axiom"
	RoleHypothesis         Role = "hypothesis"
	RoleConjecture         Role = "conjecture"
	RoleNegatedConjecture  Role = "negated_conjecture"
	RoleLemma              Role = "lemma"
	RolePlainRole          Role = "plain"
	RoleUnknownRole        Role = "unknown"
)

// Input represents one `<lang>(name, role, formula, annotations).` statement.
// Language is one of "thf", "tff", "fof", "tcf", "cnf", "tpi".
type Input struct {
	Language    string
	Name        string
	RoleName    Role
	Formula     Formula
	Annotations *Annotation
	Pos         Pos
	Span        Span
}

func (in *Input) String() string {
	ann := ""
	if in.Annotations != nil {
		ann = ", " + in.Annotations.String()
	}
	return fmt.Sprintf("%s(%s, %s, %s%s).", in.Language, in.Name, in.RoleName, in.Formula, ann)
}
func (in *Input) Position() Pos { return in.Pos }

// Annotation carries the optional (source, [info, ...]) tuple following a formula.
type Annotation struct {
	Source Term
	Info   []Term
	Pos    Pos
}

func (a *Annotation) String() string {
	if len(a.Info) == 0 {
		return a.Source.String()
	}
	infos := make([]string, len(a.Info))
	for i, t := range a.Info {
		infos[i] = t.String()
	}
	return fmt.Sprintf("%s, [%s]", a.Source, strings.Join(infos, ", "))
}
func (a *Annotation) Position() Pos { return a.Pos }

// Formula is the base interface for logical formula nodes.
type Formula interface {
	Node
	formulaNode()
}

// FormulaAtom wraps a Term used in formula (predicate/propositional) position.
type FormulaAtom struct {
	Term Term
	Pos  Pos
}

func (f *FormulaAtom) formulaNode()   {}
func (f *FormulaAtom) String() string { return f.Term.String() }
func (f *FormulaAtom) Position() Pos  { return f.Pos }

// Negation represents `~ Formula`.
type Negation struct {
	Sub Formula
	Pos Pos
}

func (n *Negation) formulaNode()   {}
func (n *Negation) String() string { return fmt.Sprintf("~ %s", n.Sub) }
func (n *Negation) Position() Pos  { return n.Pos }

// BinaryConnective represents a binary connective application.
// Op is one of: "|", "&", "=>", "<=", "<=>", "<~>", "~|", "~&".
type BinaryConnective struct {
	Left  Formula
	Op    string
	Right Formula
	Pos   Pos
}

func (b *BinaryConnective) formulaNode() {}
func (b *BinaryConnective) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}
func (b *BinaryConnective) Position() Pos { return b.Pos }

// VarBinding is a quantified or lambda-bound variable, with an optional
// explicit type annotation (as written in THF/TFF source).
type VarBinding struct {
	Name string
	Type TypeExpr // nil if untyped (FOF/CNF)
	Pos  Pos
}

func (v *VarBinding) String() string {
	if v.Type != nil {
		return fmt.Sprintf("%s: %s", v.Name, v.Type)
	}
	return v.Name
}
func (v *VarBinding) Position() Pos { return v.Pos }

// Quantified represents `! [X,Y] : Body`, `? [X] : Body`, or a THF
// lambda/Pi binder `^ [X] : Body`, `!> [X] : Body`.
type Quantified struct {
	Kind string // "!", "?", "^", "!>", "?*"
	Vars []*VarBinding
	Body Formula
	Pos  Pos
}

func (q *Quantified) formulaNode() {}
func (q *Quantified) String() string {
	vars := make([]string, len(q.Vars))
	for i, v := range q.Vars {
		vars[i] = v.String()
	}
	return fmt.Sprintf("%s [%s] : %s", q.Kind, strings.Join(vars, ","), q.Body)
}
func (q *Quantified) Position() Pos { return q.Pos }

// Equation represents `Left = Right` or `Left != Right`.
type Equation struct {
	Left, Right Term
	Negated     bool
	Pos         Pos
}

func (e *Equation) formulaNode() {}
func (e *Equation) String() string {
	op := "="
	if e.Negated {
		op = "!="
	}
	return fmt.Sprintf("%s %s %s", e.Left, op, e.Right)
}
func (e *Equation) Position() Pos { return e.Pos }

// TypeDecl represents a `type` role annotated formula's body: `name :
// Type`. It is a Formula (so it can sit in Input.Formula alongside
// ordinary logical formulas) but is interpreted by the signature
// table as a declaration, never evaluated as a proposition.
type TypeDecl struct {
	Name string
	Type TypeExpr
	Pos  Pos
}

func (t *TypeDecl) formulaNode()   {}
func (t *TypeDecl) String() string { return fmt.Sprintf("%s: %s", t.Name, t.Type) }
func (t *TypeDecl) Position() Pos  { return t.Pos }

// Term is the base interface for first-order/higher-order term nodes
// appearing inside formulas (as written in source, before elaboration
// into the internal term representation).
type Term interface {
	Node
	termNode()
}

// VarRef is an upper-case variable reference.
type VarRef struct {
	Name string
	Pos  Pos
}

func (v *VarRef) termNode()    {}
func (v *VarRef) String() string { return v.Name }
func (v *VarRef) Position() Pos  { return v.Pos }

// Apply is a function/predicate application `f(a1, ..., an)`, or (THF)
// a curried higher-order application `f @ a`. A zero-argument Apply is a
// bare constant reference.
type Apply struct {
	Head Term
	Args []Term
	Pos  Pos
}

func (a *Apply) termNode() {}
func (a *Apply) String() string {
	if len(a.Args) == 0 {
		return a.Head.String()
	}
	args := make([]string, len(a.Args))
	for i, arg := range a.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", a.Head, strings.Join(args, ", "))
}
func (a *Apply) Position() Pos { return a.Pos }

// ConstRef is a lower-case or single-quoted atom used as a constant/functor name.
type ConstRef struct {
	Name string
	Pos  Pos
}

func (c *ConstRef) termNode()    {}
func (c *ConstRef) String() string { return c.Name }
func (c *ConstRef) Position() Pos  { return c.Pos }

// DistinctObject is a double-quoted literal, distinct from every other
// distinct object and every non-distinct-object term.
type DistinctObject struct {
	Value string
	Pos   Pos
}

func (d *DistinctObject) termNode()    {}
func (d *DistinctObject) String() string { return fmt.Sprintf("%q", d.Value) }
func (d *DistinctObject) Position() Pos  { return d.Pos }

// NumberKind distinguishes the three TPTP numeric literal forms.
type NumberKind int

const (
	IntegerNumber NumberKind = iota
	RationalNumber
	RealNumber
)

// NumberLit is an integer, rational (`n/d`), or real literal.
type NumberLit struct {
	Kind NumberKind
	Text string // verbatim source text
	Pos  Pos
}

func (n *NumberLit) termNode()    {}
func (n *NumberLit) String() string { return n.Text }
func (n *NumberLit) Position() Pos  { return n.Pos }

// Lambda is a THF lambda abstraction `^ [X: ty, ...] : Body`, used in
// term position (as opposed to Quantified's formula-position `^`).
type Lambda struct {
	Vars []*VarBinding
	Body Term
	Pos  Pos
}

func (l *Lambda) termNode() {}
func (l *Lambda) String() string {
	vars := make([]string, len(l.Vars))
	for i, v := range l.Vars {
		vars[i] = v.String()
	}
	return fmt.Sprintf("^[%s] : %s", strings.Join(vars, ","), l.Body)
}
func (l *Lambda) Position() Pos { return l.Pos }

// TypeExpr is the base interface for type expressions as written in source
// (`$i`, `$o`, `$i > $o`, `$tType`, product/union types, `!>` polymorphism).
type TypeExpr interface {
	Node
	typeExprNode()
}

// TypeAtom is a base type reference: `$i`, `$o`, `$tType`, or a user type name.
type TypeAtom struct {
	Name string
	Pos  Pos
}

func (t *TypeAtom) typeExprNode()  {}
func (t *TypeAtom) String() string { return t.Name }
func (t *TypeAtom) Position() Pos  { return t.Pos }

// TypeVarExpr is a type variable occurring in a `!>` polymorphic type.
type TypeVarExpr struct {
	Name string
	Pos  Pos
}

func (t *TypeVarExpr) typeExprNode()  {}
func (t *TypeVarExpr) String() string { return t.Name }
func (t *TypeVarExpr) Position() Pos  { return t.Pos }

// TypeArrow is a (possibly curried) function type `A1 * ... * An > B`.
type TypeArrow struct {
	Args   []TypeExpr
	Result TypeExpr
	Pos    Pos
}

func (t *TypeArrow) typeExprNode() {}
func (t *TypeArrow) String() string {
	args := make([]string, len(t.Args))
	for i, a := range t.Args {
		args[i] = a.String()
	}
	if len(args) == 0 {
		return t.Result.String()
	}
	return fmt.Sprintf("(%s) > %s", strings.Join(args, " * "), t.Result)
}
func (t *TypeArrow) Position() Pos { return t.Pos }

// TypeUnion is a THF sum type `A + B`.
type TypeUnion struct {
	Elements []TypeExpr
	Pos      Pos
}

func (t *TypeUnion) typeExprNode() {}
func (t *TypeUnion) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, " + ")
}
func (t *TypeUnion) Position() Pos { return t.Pos }

// TypeForall is a THF `!> [X: $tType, ...] : Body` polymorphic type.
type TypeForall struct {
	Vars []*VarBinding
	Body TypeExpr
	Pos  Pos
}

func (t *TypeForall) typeExprNode() {}
func (t *TypeForall) String() string {
	vars := make([]string, len(t.Vars))
	for i, v := range t.Vars {
		vars[i] = v.String()
	}
	return fmt.Sprintf("!>[%s] : %s", strings.Join(vars, ","), t.Body)
}
func (t *TypeForall) Position() Pos { return t.Pos }
