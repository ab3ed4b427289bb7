package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseFnItem parses a free function with a body.
func (p *Parser) parseFnItem(attrs []*ast.Attribute, vis ast.Visibility) (ast.Item, bool) {
	sig, ok := p.parseSignature()
	if !ok {
		return nil, false
	}
	body, inner, ok := p.parseFnBody()
	if !ok {
		return nil, false
	}
	return &ast.ItemFn{Attrs: append(attrs, inner...), Vis: vis, Sig: sig, Block: body}, true
}

// parseSignature parses the qualifiers, name, generics, inputs, return type
// and where clause of a function.
func (p *Parser) parseSignature() (ast.Signature, bool) {
	var sig ast.Signature
	sig.Const = p.eat(token.KwConst)
	sig.Async = p.eat(token.KwAsync)
	sig.Unsafe = p.eat(token.KwUnsafe)
	if p.eat(token.KwExtern) {
		sig.Abi = &ast.Abi{}
		if p.at(token.StringLit) || p.at(token.RawStringLit) {
			lit, ok := p.parseLit()
			if !ok {
				return sig, false
			}
			sig.Abi.Name = lit.(*ast.LitStr)
		}
	}
	if _, ok := p.expect(token.KwFn, diag.SynUnexpectedToken, "expected 'fn'"); !ok {
		return sig, false
	}
	ident, ok := p.parseIdent()
	if !ok {
		return sig, false
	}
	sig.Ident = ident
	if sig.Generics, ok = p.parseGenerics(); !ok {
		return sig, false
	}
	if !p.parseFnParams(&sig) {
		return sig, false
	}
	if p.eat(token.Arrow) {
		out, ok := p.parseType()
		if !ok {
			return sig, false
		}
		sig.Output = out
	}
	if sig.Generics.Where, ok = p.parseWhereClause(); !ok {
		return sig, false
	}
	return sig, true
}

// parseFnParams parses `(self, a: A, ...)` into sig.
func (p *Parser) parseFnParams(sig *ast.Signature) bool {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return false
	}
	for !p.atOr(token.RParen, token.EOF) {
		p.parseOuterAttrs()
		if p.eat(token.DotDotDot) {
			sig.Variadic = true
			break
		}
		arg, ok := p.parseFnArg(sig.Inputs.Empty())
		if !ok {
			return false
		}
		sig.Inputs.Push(arg)
		if !p.eat(token.Comma) {
			break
		}
		sig.Inputs.PushPunct(ast.PunctComma)
	}
	_, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parameters")
	return ok
}

// parseFnArg parses one input. The receiver forms are only recognised in
// the first position.
func (p *Parser) parseFnArg(first bool) (ast.FnArg, bool) {
	if first {
		if arg, ok := p.parseSelfArg(); ok {
			return arg, true
		}
	}
	pat, ok := p.parsePat()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter pattern"); !ok {
		return nil, false
	}
	ty, ok := p.parseType()
	if !ok {
		return nil, false
	}
	return &ast.ArgCaptured{Pat: pat, Ty: ty}, true
}

// parseSelfArg consumes a receiver if one starts here. `self: Type` is
// returned as a captured argument.
func (p *Parser) parseSelfArg() (ast.FnArg, bool) {
	k0, k1, k2 := p.peek().Kind, p.peekN(1).Kind, p.peekN(2).Kind
	switch {
	case k0 == token.KwSelfValue:
		p.advance()
		if p.eat(token.Colon) {
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			return &ast.ArgCaptured{Pat: &ast.PatIdent{Ident: "self"}, Ty: ty}, true
		}
		return &ast.ArgSelf{}, true
	case k0 == token.KwMut && k1 == token.KwSelfValue:
		p.advance()
		p.advance()
		if p.eat(token.Colon) {
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			return &ast.ArgCaptured{Pat: &ast.PatIdent{Mut: true, Ident: "self"}, Ty: ty}, true
		}
		return &ast.ArgSelf{Mut: true}, true
	case k0 == token.Amp && k1 == token.KwSelfValue:
		p.advance()
		p.advance()
		return &ast.ArgSelfRef{}, true
	case k0 == token.Amp && k1 == token.KwMut && k2 == token.KwSelfValue:
		p.advance()
		p.advance()
		p.advance()
		return &ast.ArgSelfRef{Mut: true}, true
	case k0 == token.Amp && k1 == token.Lifetime:
		k3 := p.peekN(3).Kind
		if k2 != token.KwSelfValue && (k2 != token.KwMut || k3 != token.KwSelfValue) {
			return nil, false
		}
		p.advance()
		arg := &ast.ArgSelfRef{Lifetime: p.parseLifetime()}
		arg.Mut = p.eat(token.KwMut)
		p.advance() // self
		return arg, true
	}
	return nil, false
}
