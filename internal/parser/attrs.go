package parser

import (
	"strings"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseOuterAttrs parses `#[..]` attributes and `///` doc comments.
func (p *Parser) parseOuterAttrs() []*ast.Attribute {
	var attrs []*ast.Attribute
	for {
		switch {
		case p.at(token.DocOuter):
			tok := p.advance()
			attrs = append(attrs, ast.NewDoc(ast.AttrOuter, strings.TrimPrefix(tok.Text, "///")))
		case p.at(token.Hash) && p.peekN(1).Kind == token.LBracket:
			p.advance()
			if attr, ok := p.parseAttrBody(ast.AttrOuter); ok {
				attrs = append(attrs, attr)
			}
		default:
			return attrs
		}
	}
}

// parseInnerAttrs parses `#![..]` attributes and `//!` doc comments.
func (p *Parser) parseInnerAttrs() []*ast.Attribute {
	var attrs []*ast.Attribute
	for {
		switch {
		case p.at(token.DocInner):
			tok := p.advance()
			attrs = append(attrs, ast.NewDoc(ast.AttrInner, strings.TrimPrefix(tok.Text, "//!")))
		case p.at(token.Hash) && p.peekN(1).Kind == token.Bang && p.peekN(2).Kind == token.LBracket:
			p.advance()
			p.advance()
			if attr, ok := p.parseAttrBody(ast.AttrInner); ok {
				attrs = append(attrs, attr)
			}
		default:
			return attrs
		}
	}
}

// rejectInnerAttrs reports inner attributes where none are allowed and
// consumes them.
func (p *Parser) rejectInnerAttrs() {
	if p.at(token.DocInner) || (p.at(token.Hash) && p.peekN(1).Kind == token.Bang) {
		p.err(diag.SynInnerAttrPosition, "inner attributes are not permitted here")
		p.parseInnerAttrs()
	}
}

// parseAttrBody parses `[meta]` after the `#` or `#!`.
func (p *Parser) parseAttrBody(style ast.AttrStyle) (*ast.Attribute, bool) {
	if _, ok := p.expect(token.LBracket, diag.SynBadAttribute, "expected '['"); !ok {
		return nil, false
	}
	meta, ok := p.parseMeta()
	if !ok {
		p.skipUntilCloser(token.RBracket)
		return nil, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynBadAttribute, "expected ']' to close attribute"); !ok {
		p.skipUntilCloser(token.RBracket)
		return nil, false
	}
	return &ast.Attribute{Style: style, Meta: meta}, true
}

// parseMeta parses `name`, `name(nested, ..)` or `name = lit`.
func (p *Parser) parseMeta() (ast.Meta, bool) {
	path, ok := p.parseModPath()
	if !ok {
		return nil, false
	}
	switch {
	case p.eat(token.LParen):
		list := &ast.MetaList{Path: path}
		for !p.at(token.RParen) {
			nested, ok := p.parseNestedMeta()
			if !ok {
				return nil, false
			}
			list.Nested.Push(nested)
			if !p.eat(token.Comma) {
				break
			}
			list.Nested.PushPunct(ast.PunctComma)
		}
		if _, ok := p.expect(token.RParen, diag.SynBadAttribute, "expected ')' in attribute"); !ok {
			return nil, false
		}
		return list, true
	case p.eat(token.Assign):
		lit, ok := p.parseLit()
		if !ok {
			return nil, false
		}
		return &ast.MetaNameValue{Path: path, Lit: lit}, true
	default:
		return &ast.MetaWord{Path: path}, true
	}
}

func (p *Parser) parseNestedMeta() (ast.NestedMeta, bool) {
	if p.peek().IsLiteral() {
		lit, ok := p.parseLit()
		if !ok {
			return nil, false
		}
		return &ast.NestedLit{Lit: lit}, true
	}
	meta, ok := p.parseMeta()
	if !ok {
		return nil, false
	}
	nested, _ := meta.(ast.NestedMeta)
	return nested, true
}

// parseModPath parses a `::` separated path of plain identifiers, as used by
// attributes and macro names.
func (p *Parser) parseModPath() (ast.Path, bool) {
	var path ast.Path
	path.LeadingColon = p.eat(token.ColonColon)
	for {
		tok := p.peek()
		if tok.Kind != token.Ident && !isPathKeyword(tok.Kind) && !tok.IsKeyword() {
			p.err(diag.SynExpectIdentifier, "expected identifier, got "+describe(tok))
			return path, false
		}
		p.advance()
		path.Segments.Push(&ast.PathSegment{Ident: tok.Text})
		if !p.at(token.ColonColon) {
			return path, true
		}
		p.advance()
		path.Segments.PushPunct(ast.PunctColon2)
	}
}

// skipUntilCloser skips tokens up to and including the closer, stepping over
// nested groups.
func (p *Parser) skipUntilCloser(closer token.Kind) {
	for !p.at(token.EOF) {
		switch p.peek().Kind {
		case closer:
			p.advance()
			return
		case token.LParen, token.LBracket, token.LBrace:
			p.skipBalanced()
		case token.RParen, token.RBracket, token.RBrace:
			return
		default:
			p.advance()
		}
	}
}
