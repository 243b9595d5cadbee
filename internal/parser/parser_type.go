package parser

import (
	"github.com/go-tptp/huet/internal/ast"
	"github.com/go-tptp/huet/internal/errors"
	"github.com/go-tptp/huet/internal/lexer"
)

// parseTypeExpr parses a TPTP type expression: a base type ($i, $o,
// $tType, or a user name), a product `A * B`, a union `A + B`, a
// (possibly curried) function type `(A * B) > C`, or a `!> [X:$tType] :
// Body` polymorphic type.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	left := p.parseTypeUnary()
	switch p.curToken.Type {
	case lexer.STAR:
		// Product: left is the first argument of a (possibly
		// multi-argument) function-type argument tuple; collect the
		// full product chain then fold into TypeArrow if '>' follows.
		args := []ast.TypeExpr{left}
		for p.curIs(lexer.STAR) {
			p.advance()
			args = append(args, p.parseTypeUnary())
		}
		if p.curIs(lexer.GENTYPE) {
			start := p.pos()
			p.advance()
			result := p.parseTypeExpr()
			return &ast.TypeArrow{Args: args, Result: result, Pos: start}
		}
		start := args[0].Position()
		return &ast.TypeUnion{Elements: args, Pos: start} // degenerate: bare product without '>' treated as union-shaped list
	case lexer.PLUS:
		start := p.pos()
		elems := []ast.TypeExpr{left}
		for p.curIs(lexer.PLUS) {
			p.advance()
			elems = append(elems, p.parseTypeUnary())
		}
		return &ast.TypeUnion{Elements: elems, Pos: start}
	case lexer.GENTYPE:
		start := p.pos()
		p.advance()
		result := p.parseTypeExpr()
		// `A > B > C` folds into one curried arrow with Args [A, B].
		if r, ok := result.(*ast.TypeArrow); ok {
			return &ast.TypeArrow{Args: append([]ast.TypeExpr{left}, r.Args...), Result: r.Result, Pos: start}
		}
		return &ast.TypeArrow{Args: []ast.TypeExpr{left}, Result: result, Pos: start}
	}
	return left
}

func (p *Parser) parseTypeUnary() ast.TypeExpr {
	start := p.pos()
	switch p.curToken.Type {
	case lexer.TYFORALL:
		p.advance()
		if !p.expect(lexer.LBRACKET) {
			return &ast.TypeAtom{Name: "$error", Pos: start}
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
		p.expect(lexer.RBRACKET)
		p.expect(lexer.COLON)
		body := p.parseTypeExpr()
		return &ast.TypeForall{Vars: vars, Body: body, Pos: start}

	case lexer.LPAREN:
		p.advance()
		t := p.parseTypeExpr()
		p.expect(lexer.RPAREN)
		return t

	case lexer.DOLLAR_WORD, lexer.LOWER_WORD, lexer.SINGLE_QUOTED:
		name := p.curToken.Literal
		p.advance()
		return &ast.TypeAtom{Name: name, Pos: start}

	case lexer.UPPER_WORD:
		name := p.curToken.Literal
		p.advance()
		return &ast.TypeVarExpr{Name: name, Pos: start}

	default:
		p.errorf(errors.PAR001, "expected type expression, got %s (%q)", p.curToken.Type, p.curToken.Literal)
		lit := p.curToken.Literal
		p.advance()
		return &ast.TypeAtom{Name: lit, Pos: start}
	}
}
