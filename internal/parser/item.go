package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseItem parses outer attributes and one item.
func (p *Parser) parseItem() (ast.Item, bool) {
	attrs := p.parseOuterAttrs()
	return p.parseItemAfterAttrs(attrs)
}

// parseItemAfterAttrs dispatches on the item keyword.
func (p *Parser) parseItemAfterAttrs(attrs []*ast.Attribute) (ast.Item, bool) {
	if p.isContextual("macro_rules") && p.peekN(1).Kind == token.Bang {
		return p.parseItemMacro(attrs)
	}

	vis, ok := p.parseVisibility()
	if !ok {
		return nil, false
	}

	tok := p.peek()
	switch tok.Kind {
	case token.KwUse:
		return p.parseUseItem(attrs, vis)
	case token.KwStruct:
		return p.parseStructItem(attrs, vis)
	case token.KwMod:
		return p.parseModItem(attrs, vis)
	case token.KwImpl:
		return p.parseImplItem(attrs, vis)
	case token.KwFn, token.KwAsync, token.KwExtern:
		return p.parseFnItem(attrs, vis)
	case token.KwUnsafe:
		if p.peekN(1).Kind == token.KwImpl {
			return p.parseImplItem(attrs, vis)
		}
		return p.parseFnItem(attrs, vis)
	case token.KwConst:
		if k := p.peekN(1).Kind; k == token.KwFn || k == token.KwUnsafe || k == token.KwAsync || k == token.KwExtern {
			return p.parseFnItem(attrs, vis)
		}
		return p.parseConstItem(attrs, vis)
	case token.Ident:
		if p.isContextual("default") && p.peekN(1).Kind == token.KwImpl ||
			p.isContextual("default") && p.peekN(1).Kind == token.KwUnsafe && p.peekN(2).Kind == token.KwImpl {
			return p.parseImplItem(attrs, vis)
		}
		if p.peekN(1).Kind == token.Bang || p.peekN(1).Kind == token.ColonColon {
			if vis.Kind != ast.VisInherited {
				p.err(diag.SynBadVisibility, "macro invocations cannot have a visibility")
				return nil, false
			}
			return p.parseItemMacro(attrs)
		}
	case token.KwEnum, token.KwTrait, token.KwStatic, token.KwType:
		p.err(diag.SynExpectItem, "'"+tok.Text+"' items are not supported")
		return nil, false
	}
	p.err(diag.SynExpectItem, "expected item, got "+describe(tok))
	return nil, false
}

// parseVisibility parses `pub`, `pub(crate)`, `pub(self)`, `pub(super)`,
// `pub(in path)` and the bare `crate` modifier.
func (p *Parser) parseVisibility() (ast.Visibility, bool) {
	if p.at(token.KwCrate) && p.peekN(1).Kind != token.ColonColon {
		p.advance()
		return ast.Visibility{Kind: ast.VisCrate}, true
	}
	if !p.eat(token.KwPub) {
		return ast.Visibility{}, true
	}
	if !p.at(token.LParen) {
		return ast.Visibility{Kind: ast.VisPublic}, true
	}

	next := p.peekN(1).Kind
	switch {
	case (next == token.KwCrate || next == token.KwSelfValue || next == token.KwSuper) && p.peekN(2).Kind == token.RParen:
		p.advance()
		seg := p.advance()
		p.advance()
		path := ast.NewPath(seg.Text)
		return ast.Visibility{Kind: ast.VisRestricted, Path: &path}, true
	case next == token.KwIn:
		p.advance()
		p.advance()
		path, ok := p.parseModPath()
		if !ok {
			return ast.Visibility{}, false
		}
		if _, ok := p.expect(token.RParen, diag.SynBadVisibility, "expected ')' after visibility path"); !ok {
			return ast.Visibility{}, false
		}
		return ast.Visibility{Kind: ast.VisRestricted, In: true, Path: &path}, true
	}
	// `pub (A, B)` in a tuple struct: the parenthesis belongs to the field.
	return ast.Visibility{Kind: ast.VisPublic}, true
}

// parseItemMacro parses `path! (..);`, `path! [..];`, `path! {..}` and
// `macro_rules! name {..}`.
func (p *Parser) parseItemMacro(attrs []*ast.Attribute) (ast.Item, bool) {
	path, ok := p.parseModPath()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Bang, diag.SynUnexpectedToken, "expected '!' after macro path"); !ok {
		return nil, false
	}
	item := &ast.ItemMacro{Attrs: attrs}
	if p.at(token.Ident) {
		item.Ident = p.advance().Text
	}
	if !isMacroOpener(p.peek().Kind) {
		p.err(diag.SynUnexpectedToken, "expected macro delimiter, got "+describe(p.peek()))
		return nil, false
	}
	mac, ok := p.parseMacroBody(path)
	if !ok {
		return nil, false
	}
	item.Mac = mac
	item.Semi = p.eat(token.Semicolon)
	if !item.Semi && mac.Delimiter != ast.DelimBrace {
		p.err(diag.SynExpectSemicolon, "expected ';' after macro invocation, got "+describe(p.peek()))
		return nil, false
	}
	return item, true
}

// parseModItem parses `mod name;` or `mod name { items }`.
func (p *Parser) parseModItem(attrs []*ast.Attribute, vis ast.Visibility) (ast.Item, bool) {
	p.advance() // mod
	ident, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	mod := &ast.ItemMod{Attrs: attrs, Vis: vis, Ident: ident}
	if p.eat(token.Semicolon) {
		return mod, true
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected ';' or '{' after module name"); !ok {
		return nil, false
	}
	mod.Inline = true
	mod.Attrs = append(mod.Attrs, p.parseInnerAttrs()...)
	for !p.atOr(token.RBrace, token.EOF) && !p.opts.Enough() {
		item, ok := p.parseItem()
		if !ok {
			p.resyncItem(true)
			continue
		}
		mod.Items = append(mod.Items, item)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close module"); !ok {
		return nil, false
	}
	return mod, true
}

// parseConstItem parses `const NAME: Ty = expr;`.
func (p *Parser) parseConstItem(attrs []*ast.Attribute, vis ast.Visibility) (ast.Item, bool) {
	ident, ty, expr, ok := p.parseConstTail()
	if !ok {
		return nil, false
	}
	return &ast.ItemConst{Attrs: attrs, Vis: vis, Ident: ident, Ty: ty, Expr: expr}, true
}

// parseConstTail parses everything from `const` through `;`.
func (p *Parser) parseConstTail() (string, ast.Type, ast.Expr, bool) {
	p.advance() // const
	var ident string
	if p.at(token.Underscore) {
		ident = p.advance().Text
	} else {
		var ok bool
		if ident, ok = p.parseIdent(); !ok {
			return "", nil, nil, false
		}
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after constant name"); !ok {
		return "", nil, nil, false
	}
	ty, ok := p.parseType()
	if !ok {
		return "", nil, nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in constant"); !ok {
		return "", nil, nil, false
	}
	expr, ok := p.parseExpr(restrictNone)
	if !ok {
		return "", nil, nil, false
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after constant"); !ok {
		return "", nil, nil, false
	}
	return ident, ty, expr, true
}
