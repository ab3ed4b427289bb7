package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseUseItem parses `use ::a::b::{c, d as e, *};`.
func (p *Parser) parseUseItem(attrs []*ast.Attribute, vis ast.Visibility) (ast.Item, bool) {
	p.advance() // use
	item := &ast.ItemUse{Attrs: attrs, Vis: vis}
	item.LeadingColon = p.eat(token.ColonColon)
	tree, ok := p.parseUseTree()
	if !ok {
		return nil, false
	}
	item.Tree = tree
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after use declaration"); !ok {
		return nil, false
	}
	return item, true
}

func (p *Parser) parseUseTree() (ast.UseTree, bool) {
	tok := p.peek()
	switch {
	case tok.Kind == token.Star:
		p.advance()
		return &ast.UseGlob{}, true

	case tok.Kind == token.LBrace:
		p.advance()
		group := &ast.UseGroup{}
		for !p.atOr(token.RBrace, token.EOF) {
			sub, ok := p.parseUseTree()
			if !ok {
				return nil, false
			}
			group.Items.Push(sub)
			if !p.eat(token.Comma) {
				break
			}
			group.Items.PushPunct(ast.PunctComma)
		}
		if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close use group"); !ok {
			return nil, false
		}
		return group, true

	case tok.Kind == token.Ident || isPathKeyword(tok.Kind):
		p.advance()
		if p.eat(token.ColonColon) {
			sub, ok := p.parseUseTree()
			if !ok {
				return nil, false
			}
			return &ast.UsePath{Ident: tok.Text, Tree: sub}, true
		}
		if p.eat(token.KwAs) {
			if p.at(token.Underscore) {
				return &ast.UseRename{Ident: tok.Text, Rename: p.advance().Text}, true
			}
			rename, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			return &ast.UseRename{Ident: tok.Text, Rename: rename}, true
		}
		return &ast.UseName{Ident: tok.Text}, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, '*' or '{' in use tree, got "+describe(tok))
	return nil, false
}
