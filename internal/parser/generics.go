package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseGenerics parses an optional `<...>` parameter list. The where clause
// is parsed separately because its position depends on the item.
func (p *Parser) parseGenerics() (ast.Generics, bool) {
	var g ast.Generics
	if !p.at(token.Lt) {
		return g, true
	}
	p.advance()
	for !p.atOr(token.Gt, token.Shr, token.EOF) {
		param, ok := p.parseGenericParam()
		if !ok {
			return g, false
		}
		g.Params.Push(param)
		if !p.eat(token.Comma) {
			break
		}
		g.Params.PushPunct(ast.PunctComma)
	}
	if !p.eatGt() {
		p.err(diag.SynUnclosedDelimiter, "expected '>' to close generic parameters, got "+describe(p.peek()))
		return g, false
	}
	return g, true
}

func (p *Parser) parseGenericParam() (ast.GenericParam, bool) {
	attrs := p.parseOuterAttrs()
	switch {
	case p.at(token.Lifetime):
		def := &ast.LifetimeDef{Attrs: attrs, Lifetime: p.parseLifetime()}
		if p.eat(token.Colon) {
			def.Colon = true
			def.Bounds = p.parseLifetimeBounds()
		}
		return def, true

	case p.eat(token.KwConst):
		ident, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after const parameter"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		param := &ast.ConstParam{Attrs: attrs, Ident: ident, Ty: ty}
		if p.eat(token.Assign) {
			param.Eq = true
			def, ok := p.parseUnaryExpr(restrictNone)
			if !ok {
				return nil, false
			}
			param.Default = def
		}
		return param, true
	}

	ident, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	param := &ast.TypeParam{Attrs: attrs, Ident: ident}
	if p.eat(token.Colon) {
		param.Colon = true
		if !p.atOr(token.Comma, token.Gt, token.Shr, token.Assign) {
			bounds, ok := p.parseBounds()
			if !ok {
				return nil, false
			}
			param.Bounds = bounds
		}
	}
	if p.eat(token.Assign) {
		param.Eq = true
		def, ok := p.parseType()
		if !ok {
			return nil, false
		}
		param.Default = def
	}
	return param, true
}

func (p *Parser) parseLifetimeBounds() ast.Punctuated[*ast.Lifetime] {
	var bounds ast.Punctuated[*ast.Lifetime]
	for p.at(token.Lifetime) {
		bounds.Push(p.parseLifetime())
		if !p.eat(token.Plus) {
			break
		}
		bounds.PushPunct(ast.PunctPlus)
	}
	return bounds
}

// parseBounds parses `A + 'a + ?Sized`.
func (p *Parser) parseBounds() (ast.Punctuated[ast.TypeParamBound], bool) {
	var bounds ast.Punctuated[ast.TypeParamBound]
	for {
		bound, ok := p.parseBound()
		if !ok {
			return bounds, false
		}
		bounds.Push(bound)
		if !p.at(token.Plus) {
			return bounds, true
		}
		p.advance()
		bounds.PushPunct(ast.PunctPlus)
		if !p.atBoundStart() {
			return bounds, true
		}
	}
}

func (p *Parser) atBoundStart() bool {
	return p.atPathStart() || p.atOr(token.Lifetime, token.Question, token.LParen, token.KwFor)
}

func (p *Parser) parseBound() (ast.TypeParamBound, bool) {
	if p.at(token.Lifetime) {
		return p.parseLifetime(), true
	}
	bound := &ast.TraitBound{}
	if p.eat(token.LParen) {
		bound.Paren = true
	}
	if p.at(token.KwFor) {
		lts, ok := p.parseForLifetimes()
		if !ok {
			return nil, false
		}
		bound.Lifetimes = lts
	}
	if p.eat(token.Question) {
		bound.Modifier = ast.ModifierMaybe
	}
	path, ok := p.parsePath(pathType)
	if !ok {
		return nil, false
	}
	bound.Path = path
	if bound.Paren {
		if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after bound"); !ok {
			return nil, false
		}
	}
	return bound, true
}

// parseForLifetimes parses the `for<'a, 'b>` binder.
func (p *Parser) parseForLifetimes() ([]*ast.LifetimeDef, bool) {
	p.advance() // for
	if _, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<' after 'for'"); !ok {
		return nil, false
	}
	var defs []*ast.LifetimeDef
	for p.at(token.Lifetime) {
		defs = append(defs, &ast.LifetimeDef{Lifetime: p.parseLifetime()})
		if !p.eat(token.Comma) {
			break
		}
	}
	if !p.eatGt() {
		p.err(diag.SynUnclosedDelimiter, "expected '>' to close lifetime binder")
		return nil, false
	}
	return defs, true
}

// parseWhereClause parses an optional where clause up to the body opener.
func (p *Parser) parseWhereClause() (*ast.WhereClause, bool) {
	if !p.eat(token.KwWhere) {
		return nil, true
	}
	wc := &ast.WhereClause{}
	for !p.atOr(token.LBrace, token.Semicolon, token.EOF) {
		pred, ok := p.parseWherePredicate()
		if !ok {
			return nil, false
		}
		wc.Predicates.Push(pred)
		if !p.eat(token.Comma) {
			break
		}
		wc.Predicates.PushPunct(ast.PunctComma)
	}
	return wc, true
}

func (p *Parser) parseWherePredicate() (ast.WherePredicate, bool) {
	if p.at(token.Lifetime) {
		pred := &ast.PredicateLifetime{Lifetime: p.parseLifetime()}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in lifetime predicate"); !ok {
			return nil, false
		}
		pred.Bounds = p.parseLifetimeBounds()
		return pred, true
	}
	var lts []*ast.LifetimeDef
	if p.at(token.KwFor) {
		var ok bool
		if lts, ok = p.parseForLifetimes(); !ok {
			return nil, false
		}
	}
	ty, ok := p.parseType()
	if !ok {
		return nil, false
	}
	if p.eat(token.Assign) {
		rhs, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.PredicateEq{Lhs: ty, Rhs: rhs}, true
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' in where predicate"); !ok {
		return nil, false
	}
	pred := &ast.PredicateType{Lifetimes: lts, BoundedTy: ty}
	if !p.atOr(token.Comma, token.LBrace, token.Semicolon) {
		bounds, ok := p.parseBounds()
		if !ok {
			return nil, false
		}
		pred.Bounds = bounds
	}
	return pred, true
}
