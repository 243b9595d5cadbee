package parser

import (
	"github.com/go-tptp/huet/internal/ast"
	"github.com/go-tptp/huet/internal/errors"
	"github.com/go-tptp/huet/internal/lexer"
)

// parseFormula parses a full logic formula: a chain of unitary formulas
// joined by a single kind of associative connective (| or &), or a
// single non-associative binary connective (=>, <=, <=>, <~>, ~|, ~&)
// applied once, per the TPTP grammar's assoc/nonassoc split.
func (p *Parser) parseFormula() ast.Formula {
	left := p.parseUnitaryFormula()
	if !p.curToken.IsConnective() {
		return left
	}
	op := p.curToken
	switch op.Type {
	case lexer.VLINE, lexer.AMP:
		lit := op.Literal
		for p.curToken.Type == op.Type {
			start := p.pos()
			p.advance()
			right := p.parseUnitaryFormula()
			left = &ast.BinaryConnective{Left: left, Op: lit, Right: right, Pos: start}
		}
		return left
	case lexer.IMPLIES, lexer.IMPLIED, lexer.IFF, lexer.XOR, lexer.NOR, lexer.NAND:
		start := p.pos()
		p.advance()
		right := p.parseUnitaryFormula()
		return &ast.BinaryConnective{Left: left, Op: op.Type.String(), Right: right, Pos: start}
	}
	return left
}

// parseUnitaryFormula parses a quantified formula, a negation, a
// parenthesised formula, or an atomic formula (predicate application or
// equation).
func (p *Parser) parseUnitaryFormula() ast.Formula {
	switch p.curToken.Type {
	case lexer.FORALL, lexer.EXISTS:
		return p.parseQuantifiedFormula()
	case lexer.NOT:
		start := p.pos()
		p.advance()
		return &ast.Negation{Sub: p.parseUnitaryFormula(), Pos: start}
	case lexer.LPAREN:
		start := p.pos()
		p.advance()
		f := p.parseFormula()
		p.expect(lexer.RPAREN)
		// A parenthesised term on the left of `=`/`!=`, as in
		// `(^ [X: $i] : p @ X) = q`, is the left side of an equation.
		if atom, ok := f.(*ast.FormulaAtom); ok && (p.curIs(lexer.EQUALS) || p.curIs(lexer.NOTEQUALS)) {
			neg := p.curIs(lexer.NOTEQUALS)
			p.advance()
			right := p.parseTerm()
			return &ast.Equation{Left: atom.Term, Right: right, Negated: neg, Pos: start}
		}
		return f
	default:
		return p.parseAtomicFormula()
	}
}

// parseQuantifiedFormula parses `! [X, Y: ty, ...] : Body` or the
// existential/THF equivalents.
func (p *Parser) parseQuantifiedFormula() ast.Formula {
	start := p.pos()
	kind := p.curToken.Literal
	p.advance()
	if !p.expect(lexer.LBRACKET) {
		return &ast.FormulaAtom{Term: &ast.ConstRef{Name: "<error>", Pos: start}, Pos: start}
	}
	var vars []*ast.VarBinding
	for !p.curIs(lexer.RBRACKET) && !p.curIs(lexer.EOF) {
		vars = append(vars, p.parseVarBinding())
		if p.curIs(lexer.COMMA) {
			p.advance()
		} else {
			break
		}
	}
	if len(vars) == 0 {
		p.errorf(errors.PAR007, "quantifier binding list must not be empty")
	}
	if !p.expect(lexer.RBRACKET) {
		return &ast.FormulaAtom{Term: &ast.ConstRef{Name: "<error>", Pos: start}, Pos: start}
	}
	if !p.expect(lexer.COLON) {
		return &ast.FormulaAtom{Term: &ast.ConstRef{Name: "<error>", Pos: start}, Pos: start}
	}
	body := p.parseUnitaryFormula()
	return &ast.Quantified{Kind: kind, Vars: vars, Body: body, Pos: start}
}

// parseVarBinding parses `X` or, in THF/TFF, `X : Type`.
func (p *Parser) parseVarBinding() *ast.VarBinding {
	start := p.pos()
	if !p.curIs(lexer.UPPER_WORD) {
		p.errorf(errors.PAR007, "expected variable in quantifier list, got %s", p.curToken.Type)
		name := p.curToken.Literal
		p.advance()
		return &ast.VarBinding{Name: name, Pos: start}
	}
	name := p.curToken.Literal
	p.advance()
	var ty ast.TypeExpr
	if p.curIs(lexer.COLON) {
		p.advance()
		ty = p.parseTypeExpr()
	}
	return &ast.VarBinding{Name: name, Type: ty, Pos: start}
}

// parseAtomicFormula parses an equation, a defined/plain atom, or a
// predicate application.
func (p *Parser) parseAtomicFormula() ast.Formula {
	start := p.pos()
	if p.curIs(lexer.DOLLAR_WORD) && (p.curToken.Literal == "$true" || p.curToken.Literal == "$false") {
		name := p.curToken.Literal
		p.advance()
		return &ast.FormulaAtom{Term: &ast.ConstRef{Name: name, Pos: start}, Pos: start}
	}

	left := p.parseTerm()

	switch p.curToken.Type {
	case lexer.EQUALS, lexer.NOTEQUALS:
		neg := p.curToken.Type == lexer.NOTEQUALS
		p.advance()
		right := p.parseTerm()
		return &ast.Equation{Left: left, Right: right, Negated: neg, Pos: start}
	}
	return &ast.FormulaAtom{Term: left, Pos: start}
}
