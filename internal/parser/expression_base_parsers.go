package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parsePrimaryExpr parses atoms: literals, paths, macros, struct literals,
// groups, tuples, arrays and the block-like forms.
func (p *Parser) parsePrimaryExpr(r restrictions) (ast.Expr, bool) {
	tok := p.peek()
	switch {
	case tok.IsLiteral():
		lit, ok := p.parseLit()
		if !ok {
			return nil, false
		}
		return &ast.ExprLit{Lit: lit}, true

	case tok.Kind == token.LParen:
		return p.parseParenExpr()

	case tok.Kind == token.LBracket:
		return p.parseArrayExpr()

	case tok.Kind == token.Lt:
		qself, path, ok := p.parseQSelf(pathExpr)
		if !ok {
			return nil, false
		}
		return &ast.ExprPath{QSelf: qself, Path: path}, true

	case p.atPathStart():
		return p.parsePathExpr(r)

	case tok.Kind == token.KwReturn:
		p.advance()
		ret := &ast.ExprReturn{}
		if p.atExprStart(r) {
			x, ok := p.parseExpr(r)
			if !ok {
				return nil, false
			}
			ret.X = x
		}
		return ret, true

	case tok.Kind == token.KwBreak:
		p.advance()
		brk := &ast.ExprBreak{}
		if p.at(token.Lifetime) {
			brk.Label = p.parseLifetime()
		}
		if p.atExprStart(r) {
			x, ok := p.parseExpr(r)
			if !ok {
				return nil, false
			}
			brk.X = x
		}
		return brk, true

	case tok.Kind == token.KwContinue:
		p.advance()
		cont := &ast.ExprContinue{}
		if p.at(token.Lifetime) {
			cont.Label = p.parseLifetime()
		}
		return cont, true

	case tok.Kind == token.Pipe, tok.Kind == token.OrOr, tok.Kind == token.KwMove:
		p.err(diag.SynUnexpectedToken, "closures are not supported")
		return nil, false

	default:
		if p.atBlockLikeStart() {
			return p.parseBlockLikeExpr()
		}
		p.err(diag.SynExpectExpression, "expected expression, got "+describe(tok))
		return nil, false
	}
}

// parsePathExpr parses a path and what it introduces: a macro call, a
// struct literal or a plain path.
func (p *Parser) parsePathExpr(r restrictions) (ast.Expr, bool) {
	path, ok := p.parsePath(pathExpr)
	if !ok {
		return nil, false
	}
	if p.at(token.Bang) && isMacroOpener(p.peekN(1).Kind) {
		p.advance()
		mac, ok := p.parseMacroBody(path)
		if !ok {
			return nil, false
		}
		return &ast.ExprMacro{Mac: mac}, true
	}
	if p.at(token.LBrace) && !r.noStruct() {
		return p.parseStructLiteral(path)
	}
	return &ast.ExprPath{Path: path}, true
}

// parseParenExpr parses `()`, `(e)` and `(a, b)`.
func (p *Parser) parseParenExpr() (ast.Expr, bool) {
	p.advance() // '('
	var elems ast.Punctuated[ast.Expr]
	for !p.atOr(token.RParen, token.EOF) {
		e, ok := p.parseExpr(restrictNone)
		if !ok {
			return nil, false
		}
		elems.Push(e)
		if !p.eat(token.Comma) {
			break
		}
		elems.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return nil, false
	}
	if elems.Len() == 1 && !elems.Trailing() {
		return &ast.ExprParen{X: elems.Pairs[0].Value}, true
	}
	return &ast.ExprTuple{Elems: elems}, true
}

// parseArrayExpr parses `[a, b]`. The repeat form `[x; n]` is rejected.
func (p *Parser) parseArrayExpr() (ast.Expr, bool) {
	p.advance() // '['
	var elems ast.Punctuated[ast.Expr]
	for !p.atOr(token.RBracket, token.EOF) {
		e, ok := p.parseExpr(restrictNone)
		if !ok {
			return nil, false
		}
		elems.Push(e)
		if p.at(token.Semicolon) && elems.Len() == 1 {
			p.err(diag.SynUnexpectedToken, "array repeat expressions are not supported")
			return nil, false
		}
		if !p.eat(token.Comma) {
			break
		}
		elems.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']'"); !ok {
		return nil, false
	}
	return &ast.ExprArray{Elems: elems}, true
}
