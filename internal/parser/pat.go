package parser

import (
	"strconv"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parsePatAlternatives parses `p | q | r`.
func (p *Parser) parsePatAlternatives() (ast.Punctuated[ast.Pat], bool) {
	var pats ast.Punctuated[ast.Pat]
	for {
		pat, ok := p.parsePat()
		if !ok {
			return pats, false
		}
		pats.Push(pat)
		if !p.at(token.Pipe) {
			return pats, true
		}
		p.advance()
		pats.PushPunct(ast.PunctOr)
	}
}

// parsePat parses a single pattern without top-level alternatives.
func (p *Parser) parsePat() (ast.Pat, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.Underscore:
		p.advance()
		return &ast.PatWild{}, true

	case token.Amp, token.AndAnd:
		double := tok.Kind == token.AndAnd
		p.eatAmp()
		if double {
			inner, ok := p.parsePat()
			if !ok {
				return nil, false
			}
			return &ast.PatRef{Pat: inner}, true
		}
		mut := p.eat(token.KwMut)
		inner, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		return &ast.PatRef{Mut: mut, Pat: inner}, true

	case token.LParen:
		tuple, ok := p.parsePatTuple()
		if !ok {
			return nil, false
		}
		return tuple, true

	case token.KwRef, token.KwMut:
		return p.parsePatIdent()

	case token.Minus:
		return p.parsePatLit()
	}

	if tok.IsLiteral() {
		return p.parsePatLit()
	}
	if !p.atPathStart() {
		p.err(diag.SynExpectPattern, "expected pattern, got "+describe(tok))
		return nil, false
	}

	if tok.Kind == token.Ident && !p.continuesPath(1) {
		return p.parsePatIdent()
	}

	path, ok := p.parsePath(pathExpr)
	if !ok {
		return nil, false
	}
	switch p.peek().Kind {
	case token.LParen:
		tuple, ok := p.parsePatTuple()
		if !ok {
			return nil, false
		}
		return &ast.PatTupleStruct{Path: path, Tuple: tuple}, true
	case token.LBrace:
		return p.parsePatStruct(path)
	case token.DotDot, token.DotDotEq, token.DotDotDot:
		return p.parsePatRange(&ast.ExprPath{Path: path})
	}
	return &ast.PatPath{Path: path}, true
}

// continuesPath reports whether the token n ahead makes the preceding
// identifier part of a longer pattern form.
func (p *Parser) continuesPath(n int) bool {
	switch p.peekN(n).Kind {
	case token.ColonColon, token.LParen, token.LBrace, token.DotDot, token.DotDotEq, token.DotDotDot:
		return true
	default:
		return false
	}
}

// parsePatIdent parses `ref mut name @ sub`.
func (p *Parser) parsePatIdent() (ast.Pat, bool) {
	pat := &ast.PatIdent{}
	pat.ByRef = p.eat(token.KwRef)
	pat.Mut = p.eat(token.KwMut)
	ident, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	pat.Ident = ident
	if p.eat(token.At) {
		sub, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		pat.Subpat = sub
	}
	return pat, true
}

// parsePatTuple parses `(a, b, .., z)`.
func (p *Parser) parsePatTuple() (*ast.PatTuple, bool) {
	p.advance() // '('
	tuple := &ast.PatTuple{}
	for !p.atOr(token.RParen, token.EOF) {
		if p.at(token.DotDot) {
			if tuple.Rest {
				p.err(diag.SynUnexpectedToken, "'..' can only be used once per tuple pattern")
				return nil, false
			}
			p.advance()
			tuple.Rest = true
			tuple.RestIndex = tuple.Elems.Len()
		} else {
			pat, ok := p.parsePat()
			if !ok {
				return nil, false
			}
			tuple.Elems.Push(pat)
		}
		if !p.eat(token.Comma) {
			break
		}
		tuple.Elems.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close tuple pattern"); !ok {
		return nil, false
	}
	return tuple, true
}

func (p *Parser) parsePatStruct(path ast.Path) (ast.Pat, bool) {
	p.advance() // '{'
	pat := &ast.PatStruct{Path: path}
	for !p.atOr(token.RBrace, token.EOF) {
		if p.eat(token.DotDot) {
			pat.Dot2 = true
			break
		}
		fp, ok := p.parseFieldPat()
		if !ok {
			return nil, false
		}
		pat.Fields.Push(fp)
		if !p.eat(token.Comma) {
			break
		}
		pat.Fields.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct pattern"); !ok {
		return nil, false
	}
	return pat, true
}

func (p *Parser) parseFieldPat() (*ast.FieldPat, bool) {
	tok := p.peek()
	if tok.Kind == token.IntLit {
		p.advance()
		idx, err := strconv.ParseUint(tok.Text, 10, 32)
		if err != nil {
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "invalid field index "+strconv.Quote(tok.Text))
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after numeric field"); !ok {
			return nil, false
		}
		sub, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		return &ast.FieldPat{Member: ast.Member{Index: uint32(idx), Unnamed: true}, Colon: true, Pat: sub}, true
	}
	if tok.Kind == token.Ident && p.peekN(1).Kind == token.Colon {
		p.advance()
		p.advance()
		sub, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		return &ast.FieldPat{Member: ast.Member{Ident: tok.Text}, Colon: true, Pat: sub}, true
	}
	sub, ok := p.parsePatIdent()
	if !ok {
		return nil, false
	}
	return &ast.FieldPat{Member: ast.Member{Ident: sub.(*ast.PatIdent).Ident}, Pat: sub}, true
}

// parsePatLit parses a literal pattern, optionally negated, and a range
// that starts with it.
func (p *Parser) parsePatLit() (ast.Pat, bool) {
	neg := p.eat(token.Minus)
	lit, ok := p.parseLit()
	if !ok {
		return nil, false
	}
	var e ast.Expr = &ast.ExprLit{Lit: lit}
	if neg {
		e = &ast.ExprUnary{Op: ast.UnNeg, X: e}
	}
	if p.atOr(token.DotDot, token.DotDotEq, token.DotDotDot) {
		return p.parsePatRange(e)
	}
	return &ast.PatLit{Expr: e}, true
}

func (p *Parser) parsePatRange(lo ast.Expr) (ast.Pat, bool) {
	rng := &ast.PatRange{Lo: lo}
	if p.advance().Kind != token.DotDot {
		rng.Limits = ast.RangeClosed
	}
	neg := p.eat(token.Minus)
	var hi ast.Expr
	switch {
	case p.peek().IsLiteral():
		lit, ok := p.parseLit()
		if !ok {
			return nil, false
		}
		hi = &ast.ExprLit{Lit: lit}
	case !neg && p.atPathStart():
		path, ok := p.parsePath(pathExpr)
		if !ok {
			return nil, false
		}
		hi = &ast.ExprPath{Path: path}
	default:
		p.err(diag.SynExpectPattern, "expected range end, got "+describe(p.peek()))
		return nil, false
	}
	if neg {
		hi = &ast.ExprUnary{Op: ast.UnNeg, X: hi}
	}
	rng.Hi = hi
	return rng, true
}
