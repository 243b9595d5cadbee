// Package parser implements a recursive-descent parser for TPTP input
// files: a sequence of `include(...)` directives and `<lang>(name, role,
// formula, annotations).` statements across the six TPTP dialects (THF,
// TFF, FOF, TCF, CNF, TPI). It produces an *ast.File for downstream
// elaboration into internal/term via internal/sig.
//
// The parser keeps a two-token (current/peek) lookahead buffer, an
// expect-and-advance helper, and parses a connective chain as one
// repeated associative connective (| or &) or a single application of a
// non-associative one.
package parser

import (
	"fmt"

	"github.com/go-tptp/huet/internal/ast"
	"github.com/go-tptp/huet/internal/errors"
	"github.com/go-tptp/huet/internal/lexer"
)

// dialects is the set of recognised annotated-formula language keywords.
var dialects = map[string]bool{
	"thf": true, "tff": true, "fof": true, "tcf": true, "cnf": true, "tpi": true,
}

// Parser holds parse state: the lexer, the current and lookahead token,
// and the source file name used for position reporting.
type Parser struct {
	l    *lexer.Lexer
	file string

	curToken  lexer.Token
	peekToken lexer.Token

	errs []*errors.Report
}

// New creates a Parser reading from l, attributing positions to file.
func New(l *lexer.Lexer, file string) *Parser {
	p := &Parser{l: l, file: file}
	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) pos() ast.Pos {
	return ast.Pos{Line: p.curToken.Line, Column: p.curToken.Column, File: p.file}
}

func (p *Parser) curIs(tt lexer.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekIs(tt lexer.TokenType) bool { return p.peekToken.Type == tt }

// expect requires the current token to have type tt, recording a
// structured PAR001 error and returning false if not; otherwise it
// advances past it and returns true.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if !p.curIs(tt) {
		p.errorf(errors.PAR001, "expected %s, got %s (%q)", tt, p.curToken.Type, p.curToken.Literal)
		return false
	}
	p.advance()
	return true
}

func (p *Parser) errorf(code, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	span := &ast.Span{Start: p.pos(), End: p.pos()}
	p.errs = append(p.errs, errors.New(code, msg, span))
}

// Errors returns all structured errors accumulated during parsing.
func (p *Parser) Errors() []*errors.Report { return p.errs }

// ParseFile parses the whole token stream into an *ast.File. Parsing
// continues past a malformed statement (skipping to the next `.`) so
// that a single error does not hide the rest of the file's diagnostics;
// callers should check Errors() after ParseFile returns.
func (p *Parser) ParseFile() *ast.File {
	f := &ast.File{Path: p.file, Pos: p.pos()}
	for !p.curIs(lexer.EOF) {
		switch {
		case p.curIs(lexer.LOWER_WORD) && p.curToken.Literal == "include":
			if inc := p.parseInclude(); inc != nil {
				f.Includes = append(f.Includes, inc)
			}
		case p.curIs(lexer.LOWER_WORD) && dialects[p.curToken.Literal]:
			if in := p.parseInput(); in != nil {
				f.Inputs = append(f.Inputs, in)
			}
		default:
			p.errorf(errors.PAR006, "expected include or annotated-formula statement, got %s (%q)", p.curToken.Type, p.curToken.Literal)
			p.skipToNextStatement()
		}
	}
	return f
}

// skipToNextStatement advances until just past the next top-level '.',
// the TPTP statement terminator, or EOF. Used for error recovery so one
// malformed statement does not abort the whole file.
func (p *Parser) skipToNextStatement() {
	for !p.curIs(lexer.DOT) && !p.curIs(lexer.EOF) {
		p.advance()
	}
	if p.curIs(lexer.DOT) {
		p.advance()
	}
}

// parseInclude parses `include('path', [name, ...]).`.
func (p *Parser) parseInclude() *ast.Include {
	start := p.pos()
	p.advance() // consume 'include'
	if !p.expect(lexer.LPAREN) {
		p.skipToNextStatement()
		return nil
	}
	if !p.curIs(lexer.SINGLE_QUOTED) {
		p.errorf(errors.PAR004, "include directive requires a single-quoted file name, got %s", p.curToken.Type)
		p.skipToNextStatement()
		return nil
	}
	path := p.curToken.Literal
	p.advance()

	var selection []string
	if p.curIs(lexer.COMMA) {
		p.advance()
		if !p.expect(lexer.LBRACKET) {
			p.skipToNextStatement()
			return nil
		}
		for !p.curIs(lexer.RBRACKET) {
			if !p.curIs(lexer.LOWER_WORD) && !p.curIs(lexer.SINGLE_QUOTED) {
				p.errorf(errors.PAR004, "expected formula name in include selection, got %s", p.curToken.Type)
				break
			}
			selection = append(selection, p.curToken.Literal)
			p.advance()
			if p.curIs(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		if !p.expect(lexer.RBRACKET) {
			p.skipToNextStatement()
			return nil
		}
	}
	if !p.expect(lexer.RPAREN) {
		p.skipToNextStatement()
		return nil
	}
	if !p.expect(lexer.DOT) {
		p.skipToNextStatement()
		return nil
	}
	return &ast.Include{Path: path, Selection: selection, Pos: start, Span: ast.Span{Start: start, End: p.pos()}}
}

// parseInput parses `<lang>(name, role, formula, annotations).`.
func (p *Parser) parseInput() *ast.Input {
	start := p.pos()
	lang := p.curToken.Literal
	p.advance()
	if !p.expect(lexer.LPAREN) {
		p.skipToNextStatement()
		return nil
	}

	if !p.curIs(lexer.LOWER_WORD) && !p.curIs(lexer.UPPER_WORD) && !p.curIs(lexer.SINGLE_QUOTED) && !p.curIs(lexer.INTEGER) {
		p.errorf(errors.PAR003, "expected formula name, got %s", p.curToken.Type)
		p.skipToNextStatement()
		return nil
	}
	name := p.curToken.Literal
	p.advance()
	if !p.expect(lexer.COMMA) {
		p.skipToNextStatement()
		return nil
	}

	if !p.curIs(lexer.LOWER_WORD) {
		p.errorf(errors.PAR003, "expected role keyword, got %s", p.curToken.Type)
		p.skipToNextStatement()
		return nil
	}
	role := ast.Role(p.curToken.Literal)
	p.advance()
	if !p.expect(lexer.COMMA) {
		p.skipToNextStatement()
		return nil
	}

	var formula ast.Formula
	if lang == "tff" && role == ast.RoleType {
		formula = p.parseTypeDeclarationFormula()
	} else if lang == "thf" && role == ast.RoleType {
		formula = p.parseTypeDeclarationFormula()
	} else {
		formula = p.parseFormula()
	}

	var ann *ast.Annotation
	if p.curIs(lexer.COMMA) {
		p.advance()
		ann = p.parseAnnotation()
	}

	if !p.expect(lexer.RPAREN) {
		p.skipToNextStatement()
		return nil
	}
	if !p.expect(lexer.DOT) {
		p.skipToNextStatement()
		return nil
	}

	return &ast.Input{
		Language: lang, Name: name, RoleName: role,
		Formula: formula, Annotations: ann,
		Pos: start, Span: ast.Span{Start: start, End: p.pos()},
	}
}

// parseTypeDeclarationFormula parses a `type` role's body: `name : Type`,
// optionally parenthesised, into an *ast.TypeDecl, matching how TPTP
// treats `type` annotated formulas as signature declarations, not
// propositions. On a malformed body it records an error and returns a
// FormulaAtom placeholder.
func (p *Parser) parseTypeDeclarationFormula() ast.Formula {
	start := p.pos()
	if p.curIs(lexer.LPAREN) {
		// `tff(foo_type, type, (f : ty)).` — parenthesised form.
		p.advance()
		f := p.parseTypeDeclarationFormula()
		p.expect(lexer.RPAREN)
		return f
	}
	var nameTok lexer.Token
	switch {
	case p.curIs(lexer.LOWER_WORD), p.curIs(lexer.SINGLE_QUOTED):
		nameTok = p.curToken
		p.advance()
	default:
		p.errorf(errors.PAR003, "expected constant name in type declaration, got %s", p.curToken.Type)
		return &ast.FormulaAtom{Term: &ast.ConstRef{Name: "<error>", Pos: start}, Pos: start}
	}
	if !p.expect(lexer.COLON) {
		return &ast.FormulaAtom{Term: &ast.ConstRef{Name: nameTok.Literal, Pos: start}, Pos: start}
	}
	ty := p.parseTypeExpr()
	return &ast.TypeDecl{Name: nameTok.Literal, Type: ty, Pos: start}
}

// parseAnnotation parses `source` or `source, [info, ...]`.
func (p *Parser) parseAnnotation() *ast.Annotation {
	start := p.pos()
	if p.curIs(lexer.DOLLAR_WORD) && p.curToken.Literal == "$nil" {
		p.advance()
		return nil
	}
	source := p.parseTerm()
	ann := &ast.Annotation{Source: source, Pos: start}
	if p.curIs(lexer.COMMA) {
		p.advance()
		if !p.expect(lexer.LBRACKET) {
			return ann
		}
		for !p.curIs(lexer.RBRACKET) && !p.curIs(lexer.EOF) {
			ann.Info = append(ann.Info, p.parseTerm())
			if p.curIs(lexer.COMMA) {
				p.advance()
			} else {
				break
			}
		}
		p.expect(lexer.RBRACKET)
	}
	return ann
}

// ParseString is a convenience entry point used by tests and callers
// that already hold the source text in memory.
func ParseString(src, file string) (*ast.File, []*errors.Report) {
	l := lexer.New(src, file)
	p := New(l, file)
	f := p.ParseFile()
	return f, p.Errors()
}
