package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseStructItem parses unit, named and tuple structs.
func (p *Parser) parseStructItem(attrs []*ast.Attribute, vis ast.Visibility) (ast.Item, bool) {
	p.advance() // struct
	ident, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	item := &ast.ItemStruct{Attrs: attrs, Vis: vis, Ident: ident}
	if item.Generics, ok = p.parseGenerics(); !ok {
		return nil, false
	}

	if p.at(token.LParen) {
		fields, ok := p.parseTupleFields()
		if !ok {
			return nil, false
		}
		item.Fields = fields
		if item.Generics.Where, ok = p.parseWhereClause(); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after tuple struct"); !ok {
			return nil, false
		}
		item.Semi = true
		return item, true
	}

	if item.Generics.Where, ok = p.parseWhereClause(); !ok {
		return nil, false
	}
	switch {
	case p.eat(token.Semicolon):
		item.Fields = ast.Fields{Kind: ast.FieldsUnit}
		item.Semi = true
		return item, true
	case p.at(token.LBrace):
		fields, ok := p.parseNamedFields()
		if !ok {
			return nil, false
		}
		item.Fields = fields
		return item, true
	}
	p.err(diag.SynExpectBlock, "expected '{', '(' or ';' after struct name, got "+describe(p.peek()))
	return nil, false
}

// parseNamedFields parses `{ a: A, pub b: B }`.
func (p *Parser) parseNamedFields() (ast.Fields, bool) {
	fields := ast.Fields{Kind: ast.FieldsNamed}
	p.advance() // '{'
	for !p.atOr(token.RBrace, token.EOF) {
		field := &ast.Field{Attrs: p.parseOuterAttrs()}
		vis, ok := p.parseVisibility()
		if !ok {
			return fields, false
		}
		field.Vis = vis
		if field.Ident, ok = p.parseIdent(); !ok {
			return fields, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name"); !ok {
			return fields, false
		}
		field.Colon = true
		if field.Ty, ok = p.parseType(); !ok {
			return fields, false
		}
		fields.List.Push(field)
		if !p.eat(token.Comma) {
			break
		}
		fields.List.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct fields"); !ok {
		return fields, false
	}
	return fields, true
}

// parseTupleFields parses `(A, pub B)`.
func (p *Parser) parseTupleFields() (ast.Fields, bool) {
	fields := ast.Fields{Kind: ast.FieldsUnnamed}
	p.advance() // '('
	for !p.atOr(token.RParen, token.EOF) {
		field := &ast.Field{Attrs: p.parseOuterAttrs()}
		vis, ok := p.parseVisibility()
		if !ok {
			return fields, false
		}
		field.Vis = vis
		if field.Ty, ok = p.parseType(); !ok {
			return fields, false
		}
		fields.List.Push(field)
		if !p.eat(token.Comma) {
			break
		}
		fields.List.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close tuple fields"); !ok {
		return fields, false
	}
	return fields, true
}
