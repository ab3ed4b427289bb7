package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseType parses one type.
func (p *Parser) parseType() (ast.Type, bool) {
	switch tok := p.peek(); tok.Kind {
	case token.Amp, token.AndAnd:
		p.eatAmp()
		ref := &ast.TypeReference{}
		if p.at(token.Lifetime) {
			ref.Lifetime = p.parseLifetime()
		}
		ref.Mut = p.eat(token.KwMut)
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		ref.Elem = elem
		return ref, true

	case token.Star:
		p.advance()
		ptr := &ast.TypePtr{}
		switch {
		case p.eat(token.KwMut):
			ptr.Mut = true
		case p.eat(token.KwConst):
		default:
			p.err(diag.SynExpectType, "expected 'mut' or 'const' after '*' in type")
			return nil, false
		}
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		ptr.Elem = elem
		return ptr, true

	case token.LBracket:
		p.advance()
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		if p.eat(token.Semicolon) {
			n, ok := p.parseExpr(restrictNone)
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' after array length"); !ok {
				return nil, false
			}
			return &ast.TypeArray{Elem: elem, Len: n}, true
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' after slice element type"); !ok {
			return nil, false
		}
		return &ast.TypeSlice{Elem: elem}, true

	case token.LParen:
		return p.parseTupleType()

	case token.Bang:
		p.advance()
		return &ast.TypeNever{}, true

	case token.Underscore:
		p.advance()
		return &ast.TypeInfer{}, true

	case token.KwImpl:
		p.advance()
		bounds, ok := p.parseBounds()
		if !ok {
			return nil, false
		}
		return &ast.TypeImplTrait{Bounds: bounds}, true

	case token.KwDyn:
		p.advance()
		bounds, ok := p.parseBounds()
		if !ok {
			return nil, false
		}
		return &ast.TypeTraitObject{Dyn: true, Bounds: bounds}, true

	case token.KwFn, token.KwUnsafe:
		return p.parseBareFnType()

	case token.Lt:
		qself, path, ok := p.parseQSelf(pathType)
		if !ok {
			return nil, false
		}
		return &ast.TypePath{QSelf: qself, Path: path}, true

	case token.Question:
		bounds, ok := p.parseBounds()
		if !ok {
			return nil, false
		}
		return &ast.TypeTraitObject{Bounds: bounds}, true

	default:
		if !p.atPathStart() {
			p.err(diag.SynExpectType, "expected type, got "+describe(tok))
			return nil, false
		}
		path, ok := p.parsePath(pathType)
		if !ok {
			return nil, false
		}
		return &ast.TypePath{Path: path}, true
	}
}

// parseTupleType parses `()`, `(T)` and `(A, B)`.
func (p *Parser) parseTupleType() (ast.Type, bool) {
	p.advance() // '('
	var elems ast.Punctuated[ast.Type]
	for !p.at(token.RParen) {
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		elems.Push(ty)
		if !p.eat(token.Comma) {
			break
		}
		elems.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close tuple type"); !ok {
		return nil, false
	}
	if elems.Len() == 1 && !elems.Trailing() {
		return &ast.TypeParen{Elem: elems.Pairs[0].Value}, true
	}
	return &ast.TypeTuple{Elems: elems}, true
}

func (p *Parser) parseBareFnType() (ast.Type, bool) {
	fn := &ast.TypeBareFn{Unsafe: p.eat(token.KwUnsafe)}
	if _, ok := p.expect(token.KwFn, diag.SynExpectType, "expected 'fn'"); !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LParen, diag.SynExpectType, "expected '(' in function type"); !ok {
		return nil, false
	}
	for !p.at(token.RParen) {
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		fn.Inputs.Push(ty)
		if !p.eat(token.Comma) {
			break
		}
		fn.Inputs.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' in function type"); !ok {
		return nil, false
	}
	if p.eat(token.Arrow) {
		out, ok := p.parseType()
		if !ok {
			return nil, false
		}
		fn.Output = out
	}
	return fn, true
}
