package parser

import (
	"strconv"
	"strings"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parsePostfixExpr parses a primary expression followed by calls, field
// accesses, method calls, indexing and `?`.
func (p *Parser) parsePostfixExpr(r restrictions) (ast.Expr, bool) {
	expr, ok := p.parsePrimaryExpr(r)
	if !ok {
		return nil, false
	}
	return p.parsePostfixRest(expr)
}

func (p *Parser) parsePostfixRest(expr ast.Expr) (ast.Expr, bool) {
	for {
		switch p.peek().Kind {
		case token.LParen:
			args, ok := p.parseCallArgs()
			if !ok {
				return nil, false
			}
			expr = &ast.ExprCall{Func: expr, Args: args}

		case token.LBracket:
			p.advance()
			idx, ok := p.parseExpr(restrictNone)
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' after index"); !ok {
				return nil, false
			}
			expr = &ast.ExprIndex{X: expr, Index: idx}

		case token.Question:
			p.advance()
			expr = &ast.ExprTry{X: expr}

		case token.Dot:
			p.advance()
			next, ok := p.parseDotSuffix(expr)
			if !ok {
				return nil, false
			}
			expr = next

		default:
			return expr, true
		}
	}
}

// parseDotSuffix parses what follows `.`: a field, a tuple index or a method
// call with an optional turbofish.
func (p *Parser) parseDotSuffix(base ast.Expr) (ast.Expr, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		idx, err := strconv.ParseUint(tok.Text, 10, 32)
		if err != nil {
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "invalid tuple index "+strconv.Quote(tok.Text))
			return nil, false
		}
		return &ast.ExprField{Base: base, Member: ast.Member{Index: uint32(idx), Unnamed: true}}, true

	case token.FloatLit:
		// `t.0.1` lexes the indices as one float.
		p.advance()
		first, second, found := strings.Cut(tok.Text, ".")
		a, errA := strconv.ParseUint(first, 10, 32)
		b, errB := strconv.ParseUint(second, 10, 32)
		if !found || errA != nil || errB != nil {
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "invalid tuple index "+strconv.Quote(tok.Text))
			return nil, false
		}
		inner := &ast.ExprField{Base: base, Member: ast.Member{Index: uint32(a), Unnamed: true}}
		return &ast.ExprField{Base: inner, Member: ast.Member{Index: uint32(b), Unnamed: true}}, true

	case token.Ident:
		name := p.advance().Text
		var turbofish *ast.AngleBracketedArgs
		if p.at(token.ColonColon) && p.peekN(1).Kind == token.Lt {
			p.advance()
			args, ok := p.parseAngleArgs(true)
			if !ok {
				return nil, false
			}
			turbofish = args
		}
		if p.at(token.LParen) {
			args, ok := p.parseCallArgs()
			if !ok {
				return nil, false
			}
			return &ast.ExprMethodCall{Receiver: base, Method: name, Turbofish: turbofish, Args: args}, true
		}
		if turbofish != nil {
			p.err(diag.SynUnexpectedToken, "expected '(' after method turbofish, got "+describe(p.peek()))
			return nil, false
		}
		return &ast.ExprField{Base: base, Member: ast.Member{Ident: name}}, true

	default:
		p.err(diag.SynExpectIdentifier, "expected field name or tuple index after '.', got "+describe(tok))
		return nil, false
	}
}

// parseCallArgs parses `(a, b, c)`.
func (p *Parser) parseCallArgs() (ast.Punctuated[ast.Expr], bool) {
	return p.parseExprList(token.LParen, token.RParen)
}

// parseExprList parses open expr, expr close with an optional trailing comma.
func (p *Parser) parseExprList(open, close token.Kind) (ast.Punctuated[ast.Expr], bool) {
	var list ast.Punctuated[ast.Expr]
	if _, ok := p.expect(open, diag.SynUnexpectedToken, "expected '"+open.String()+"'"); !ok {
		return list, false
	}
	for !p.atOr(close, token.EOF) {
		e, ok := p.parseExpr(restrictNone)
		if !ok {
			return list, false
		}
		list.Push(e)
		if !p.eat(token.Comma) {
			break
		}
		list.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(close, diag.SynUnclosedDelimiter, "expected '"+close.String()+"'"); !ok {
		return list, false
	}
	return list, true
}
