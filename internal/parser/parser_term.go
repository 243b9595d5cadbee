package parser

import (
	"github.com/go-tptp/huet/internal/ast"
	"github.com/go-tptp/huet/internal/errors"
	"github.com/go-tptp/huet/internal/lexer"
)

// parseTerm parses a term: a variable, a (possibly applied) constant or
// functor, a numeric or distinct-object literal, a THF lambda, a
// bracketed list, or a parenthesised term — then folds in any trailing THF curried
// applications (`@`, `@+`, `@-`, `@@+`, `@@-`, `@@=`).
func (p *Parser) parseTerm() ast.Term {
	t := p.parsePrimaryTerm()
	for p.curToken.Type == lexer.APPLY || p.curToken.Type == lexer.ATPLUS ||
		p.curToken.Type == lexer.ATMINUS || p.curToken.Type == lexer.APPLY2 ||
		p.curToken.Type == lexer.APPLY2M || p.curToken.Type == lexer.APPLY2E {
		start := p.pos()
		p.advance()
		arg := p.parsePrimaryTerm()
		t = &ast.Apply{Head: t, Args: []ast.Term{arg}, Pos: start}
	}
	return t
}

func (p *Parser) parsePrimaryTerm() ast.Term {
	start := p.pos()
	switch p.curToken.Type {
	case lexer.UPPER_WORD:
		name := p.curToken.Literal
		p.advance()
		return &ast.VarRef{Name: name, Pos: start}

	case lexer.LOWER_WORD, lexer.SINGLE_QUOTED, lexer.DOLLAR_WORD, lexer.DOLLAR_DOLLAR_WORD:
		name := p.curToken.Literal
		p.advance()
		if p.curIs(lexer.LPAREN) {
			p.advance()
			var args []ast.Term
			for !p.curIs(lexer.RPAREN) && !p.curIs(lexer.EOF) {
				args = append(args, p.parseTerm())
				if p.curIs(lexer.COMMA) {
					p.advance()
				} else {
					break
				}
			}
			p.expect(lexer.RPAREN)
			return &ast.Apply{Head: &ast.ConstRef{Name: name, Pos: start}, Args: args, Pos: start}
		}
		return &ast.ConstRef{Name: name, Pos: start}

	case lexer.INTEGER, lexer.RATIONAL, lexer.REAL:
		kind := ast.IntegerNumber
		switch p.curToken.Type {
		case lexer.RATIONAL:
			kind = ast.RationalNumber
		case lexer.REAL:
			kind = ast.RealNumber
		}
		lit := p.curToken.Literal
		p.advance()
		return &ast.NumberLit{Kind: kind, Text: lit, Pos: start}

	case lexer.DISTINCT_OBJECT:
		v := p.curToken.Literal
		p.advance()
		return &ast.DistinctObject{Value: v, Pos: start}

	case lexer.LAMBDA:
		return p.parseLambda()

	case lexer.LBRACKET:
		// A general list `[t1, ..., tn]` (as in annotations) is an Apply
		// whose head is the constant "[]".
		p.advance()
		var elems []ast.Term
		for !p.curIs(lexer.RBRACKET) && !p.curIs(lexer.EOF) {
			elems = append(elems, p.parseTerm())
			if p.curIs(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		p.expect(lexer.RBRACKET)
		return &ast.Apply{Head: &ast.ConstRef{Name: "[]", Pos: start}, Args: elems, Pos: start}

	case lexer.LPAREN:
		p.advance()
		t := p.parseTerm()
		p.expect(lexer.RPAREN)
		return t

	default:
		p.errorf(errors.PAR001, "expected term, got %s (%q)", p.curToken.Type, p.curToken.Literal)
		lit := p.curToken.Literal
		p.advance()
		return &ast.ConstRef{Name: lit, Pos: start}
	}
}

// parseLambda parses a THF lambda abstraction `^ [X: ty, ...] : Body`.
func (p *Parser) parseLambda() ast.Term {
	start := p.pos()
	p.advance() // consume '^'
	if !p.expect(lexer.LBRACKET) {
		return &ast.ConstRef{Name: "<error>", Pos: start}
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
	body := p.parseTerm()
	return &ast.Lambda{Vars: vars, Body: body, Pos: start}
}
