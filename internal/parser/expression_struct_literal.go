package parser

import (
	"strconv"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseStructLiteral parses `Path { a: x, b, ..base }` after the path.
func (p *Parser) parseStructLiteral(path ast.Path) (ast.Expr, bool) {
	p.advance() // '{'
	lit := &ast.ExprStruct{Path: path}
	for !p.atOr(token.RBrace, token.EOF) {
		if p.eat(token.DotDot) {
			lit.Dot2 = true
			rest, ok := p.parseExpr(restrictNone)
			if !ok {
				return nil, false
			}
			lit.Rest = rest
			break
		}
		fv, ok := p.parseFieldValue()
		if !ok {
			return nil, false
		}
		lit.Fields.Push(fv)
		if !p.eat(token.Comma) {
			break
		}
		lit.Fields.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct literal"); !ok {
		return nil, false
	}
	return lit, true
}

func (p *Parser) parseFieldValue() (*ast.FieldValue, bool) {
	fv := &ast.FieldValue{Attrs: p.parseOuterAttrs()}
	tok := p.peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		fv.Member = ast.Member{Ident: tok.Text}
	case token.IntLit:
		p.advance()
		idx, err := strconv.ParseUint(tok.Text, 10, 32)
		if err != nil {
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "invalid field index "+strconv.Quote(tok.Text))
			return nil, false
		}
		fv.Member = ast.Member{Index: uint32(idx), Unnamed: true}
	default:
		p.err(diag.SynExpectIdentifier, "expected field name, got "+describe(tok))
		return nil, false
	}
	if !p.eat(token.Colon) {
		if fv.Member.Unnamed {
			p.err(diag.SynExpectColon, "expected ':' after numeric field")
			return nil, false
		}
		fv.Expr = &ast.ExprPath{Path: ast.NewPath(fv.Member.Ident)}
		return fv, true
	}
	fv.Colon = true
	e, ok := p.parseExpr(restrictNone)
	if !ok {
		return nil, false
	}
	fv.Expr = e
	return fv, true
}
