package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseImplItem parses inherent and trait impls. Inner attributes of the
// body are appended to the item attributes.
func (p *Parser) parseImplItem(attrs []*ast.Attribute, vis ast.Visibility) (ast.Item, bool) {
	if vis.Kind != ast.VisInherited {
		p.err(diag.SynBadVisibility, "impl blocks cannot have a visibility")
		return nil, false
	}
	item := &ast.ItemImpl{Attrs: attrs}
	if p.isContextual("default") {
		p.advance()
		item.Default = true
	}
	item.Unsafe = p.eat(token.KwUnsafe)
	p.advance() // impl

	var ok bool
	if p.at(token.Lt) {
		if item.Generics, ok = p.parseGenerics(); !ok {
			return nil, false
		}
	}

	negative := p.eat(token.Bang)
	ty, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if p.eat(token.KwFor) {
		tp, isPath := ty.(*ast.TypePath)
		if !isPath || tp.QSelf != nil {
			p.err(diag.SynExpectType, "expected trait path before 'for'")
			return nil, false
		}
		item.Trait = &ast.ImplTrait{Negative: negative, Path: tp.Path}
		if ty, ok = p.parseType(); !ok {
			return nil, false
		}
	} else if negative {
		p.err(diag.SynUnexpectedToken, "negative impls require a trait")
		return nil, false
	}
	item.SelfTy = ty

	if item.Generics.Where, ok = p.parseWhereClause(); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' to open impl body"); !ok {
		return nil, false
	}
	item.Attrs = append(item.Attrs, p.parseInnerAttrs()...)
	for !p.atOr(token.RBrace, token.EOF) && !p.opts.Enough() {
		member, ok := p.parseImplMember()
		if !ok {
			p.resyncItem(true)
			continue
		}
		item.Items = append(item.Items, member)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close impl body"); !ok {
		return nil, false
	}
	return item, true
}

// parseImplMember parses a method, associated constant, associated type or
// macro invocation.
func (p *Parser) parseImplMember() (ast.ImplItem, bool) {
	attrs := p.parseOuterAttrs()
	vis, ok := p.parseVisibility()
	if !ok {
		return nil, false
	}
	dflt := false
	if p.isContextual("default") && p.peekN(1).Kind != token.Bang {
		p.advance()
		dflt = true
	}

	switch k := p.peek().Kind; {
	case k == token.KwConst && p.peekN(1).Kind != token.KwFn && p.peekN(1).Kind != token.KwUnsafe:
		ident, ty, expr, ok := p.parseConstTail()
		if !ok {
			return nil, false
		}
		return &ast.ImplItemConst{Attrs: attrs, Vis: vis, Ident: ident, Ty: ty, Expr: expr}, true

	case k == token.KwType:
		p.advance()
		ident, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		member := &ast.ImplItemType{Attrs: attrs, Vis: vis, Ident: ident}
		if member.Generics, ok = p.parseGenerics(); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in associated type"); !ok {
			return nil, false
		}
		if member.Ty, ok = p.parseType(); !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after associated type"); !ok {
			return nil, false
		}
		return member, true

	case k == token.KwFn || k == token.KwConst || k == token.KwUnsafe || k == token.KwAsync || k == token.KwExtern:
		sig, ok := p.parseSignature()
		if !ok {
			return nil, false
		}
		body, inner, ok := p.parseFnBody()
		if !ok {
			return nil, false
		}
		return &ast.ImplItemMethod{Attrs: append(attrs, inner...), Vis: vis, Default: dflt, Sig: sig, Block: body}, true

	case k == token.Ident && (p.peekN(1).Kind == token.Bang || p.peekN(1).Kind == token.ColonColon):
		item, ok := p.parseItemMacro(attrs)
		if !ok {
			return nil, false
		}
		mac := item.(*ast.ItemMacro)
		return &ast.ImplItemMacro{Attrs: attrs, Mac: mac.Mac, Semi: mac.Semi}, true
	}
	p.err(diag.SynExpectItem, "expected impl member, got "+describe(p.peek()))
	return nil, false
}
