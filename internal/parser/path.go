package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// pathStyle controls how generic arguments are recognised in a path.
type pathStyle uint8

const (
	// pathType allows `Vec<T>`, `Vec::<T>` and `Fn(A) -> B`.
	pathType pathStyle = iota
	// pathExpr only allows the turbofish `Vec::<T>`.
	pathExpr
)

func isPathKeyword(k token.Kind) bool {
	switch k {
	case token.KwSelfValue, token.KwSelfType, token.KwSuper, token.KwCrate:
		return true
	default:
		return false
	}
}

// atPathStart reports whether a path (optionally rooted) begins here.
func (p *Parser) atPathStart() bool {
	k := p.peek().Kind
	return k == token.Ident || isPathKeyword(k) || (k == token.ColonColon && p.peekN(1).Kind == token.Ident)
}

// parsePath parses a plain path in the given style.
func (p *Parser) parsePath(style pathStyle) (ast.Path, bool) {
	var path ast.Path
	path.LeadingColon = p.eat(token.ColonColon)
	for {
		seg, ok := p.parsePathSegment(style)
		if !ok {
			return path, false
		}
		path.Segments.Push(seg)
		if !p.at(token.ColonColon) {
			return path, true
		}
		// `a::<T>` was consumed by the segment; a `::` here starts a new segment
		// unless it introduces a turbofish or a use-style `{`/`*`.
		next := p.peekN(1).Kind
		if next != token.Ident && !isPathKeyword(next) {
			return path, true
		}
		p.advance()
		path.Segments.PushPunct(ast.PunctColon2)
	}
}

func (p *Parser) parsePathSegment(style pathStyle) (*ast.PathSegment, bool) {
	tok := p.peek()
	if tok.Kind != token.Ident && !isPathKeyword(tok.Kind) {
		p.err(diag.SynExpectIdentifier, "expected path segment, got "+describe(tok))
		return nil, false
	}
	p.advance()
	seg := &ast.PathSegment{Ident: tok.Text}

	switch {
	case p.at(token.ColonColon) && p.peekN(1).Kind == token.Lt:
		p.advance()
		args, ok := p.parseAngleArgs(true)
		if !ok {
			return nil, false
		}
		seg.Args = args
	case style == pathType && p.at(token.Lt):
		args, ok := p.parseAngleArgs(false)
		if !ok {
			return nil, false
		}
		seg.Args = args
	case style == pathType && p.at(token.LParen) && isFnTrait(tok.Text):
		args, ok := p.parseParenthesizedArgs()
		if !ok {
			return nil, false
		}
		seg.Args = args
	}
	return seg, true
}

func isFnTrait(name string) bool {
	return name == "Fn" || name == "FnMut" || name == "FnOnce"
}

// parseAngleArgs parses `<A, 'a, Item = B>` with the `<` under the cursor.
func (p *Parser) parseAngleArgs(colon2 bool) (*ast.AngleBracketedArgs, bool) {
	p.advance() // '<'
	args := &ast.AngleBracketedArgs{Colon2: colon2}
	for !p.atOr(token.Gt, token.Shr, token.GtEq, token.ShrAssign, token.EOF) {
		arg, ok := p.parseGenericArgument()
		if !ok {
			return nil, false
		}
		args.Args.Push(arg)
		if !p.eat(token.Comma) {
			break
		}
		args.Args.PushPunct(ast.PunctComma)
	}
	if !p.eatGt() {
		p.err(diag.SynUnclosedDelimiter, "expected '>' to close generic arguments, got "+describe(p.peek()))
		return nil, false
	}
	return args, true
}

func (p *Parser) parseGenericArgument() (ast.GenericArgument, bool) {
	switch {
	case p.at(token.Lifetime):
		return p.parseLifetime(), true
	case p.at(token.Ident) && p.peekN(1).Kind == token.Assign:
		ident := p.advance().Text
		p.advance()
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.ArgBinding{Ident: ident, Ty: ty}, true
	case p.at(token.LBrace):
		blk, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.ArgConst{Expr: &ast.ExprBlock{Block: blk}}, true
	case p.peek().IsLiteral() || p.at(token.Minus):
		e, ok := p.parseUnaryExpr(restrictNone)
		if !ok {
			return nil, false
		}
		return &ast.ArgConst{Expr: e}, true
	}
	ty, ok := p.parseType()
	if !ok {
		return nil, false
	}
	return &ast.ArgType{Ty: ty}, true
}

// parseParenthesizedArgs parses `(A, B) -> C` for the Fn traits.
func (p *Parser) parseParenthesizedArgs() (*ast.ParenthesizedArgs, bool) {
	p.advance() // '('
	args := &ast.ParenthesizedArgs{}
	for !p.at(token.RParen) {
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args.Inputs.Push(ty)
		if !p.eat(token.Comma) {
			break
		}
		args.Inputs.PushPunct(ast.PunctComma)
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')'"); !ok {
		return nil, false
	}
	if p.eat(token.Arrow) {
		out, ok := p.parseType()
		if !ok {
			return nil, false
		}
		args.Output = out
	}
	return args, true
}

// parseQSelf parses `<T as Trait>::rest` and returns the qualified path.
func (p *Parser) parseQSelf(style pathStyle) (*ast.QSelf, ast.Path, bool) {
	p.advance() // '<'
	ty, ok := p.parseType()
	if !ok {
		return nil, ast.Path{}, false
	}
	qself := &ast.QSelf{Ty: ty}
	var path ast.Path
	if p.eat(token.KwAs) {
		trait, ok := p.parsePath(pathType)
		if !ok {
			return nil, ast.Path{}, false
		}
		qself.As = true
		qself.Position = trait.Segments.Len()
		path = trait
	}
	if !p.eatGt() {
		p.err(diag.SynUnclosedDelimiter, "expected '>' after qualified self type")
		return nil, ast.Path{}, false
	}
	if _, ok := p.expect(token.ColonColon, diag.SynUnexpectedToken, "expected '::' after qualified self type"); !ok {
		return nil, ast.Path{}, false
	}
	path.Segments.PushPunct(ast.PunctColon2)
	rest, ok := p.parsePath(style)
	if !ok {
		return nil, ast.Path{}, false
	}
	path.Segments.Pairs = append(path.Segments.Pairs, rest.Segments.Pairs...)
	return qself, path, true
}

func (p *Parser) parseLifetime() *ast.Lifetime {
	tok := p.advance()
	return &ast.Lifetime{Name: tok.Text[1:]}
}
