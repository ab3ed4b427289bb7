package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// atBlockLikeStart reports whether an expression that ends in a block
// starts here.
func (p *Parser) atBlockLikeStart() bool {
	switch p.peek().Kind {
	case token.LBrace, token.KwIf, token.KwMatch, token.KwFor, token.KwWhile, token.KwLoop:
		return true
	case token.KwUnsafe:
		return p.peekN(1).Kind == token.LBrace
	case token.Lifetime:
		return p.peekN(1).Kind == token.Colon
	default:
		return false
	}
}

// parseBlockLikeExpr parses blocks, unsafe blocks, conditionals, matches
// and loops, with an optional label.
func (p *Parser) parseBlockLikeExpr() (ast.Expr, bool) {
	var label *ast.Lifetime
	if p.at(token.Lifetime) {
		label = p.parseLifetime()
		p.advance() // ':'
		if !p.atOr(token.LBrace, token.KwFor, token.KwWhile, token.KwLoop) {
			p.err(diag.SynUnexpectedToken, "expected loop or block after label, got "+describe(p.peek()))
			return nil, false
		}
	}

	switch p.peek().Kind {
	case token.LBrace:
		blk, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.ExprBlock{Label: label, Block: blk}, true

	case token.KwUnsafe:
		p.advance()
		blk, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.ExprUnsafe{Block: blk}, true

	case token.KwIf:
		return p.parseIfExpr()

	case token.KwMatch:
		return p.parseMatchExpr()

	case token.KwFor:
		p.advance()
		pat, ok := p.parsePat()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in' after for pattern"); !ok {
			return nil, false
		}
		x, ok := p.parseExpr(restrictNoStruct)
		if !ok {
			return nil, false
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.ExprForLoop{Label: label, Pat: pat, X: x, Body: body}, true

	case token.KwWhile:
		p.advance()
		if p.at(token.KwLet) {
			p.err(diag.SynUnexpectedToken, "'while let' is not supported")
			return nil, false
		}
		cond, ok := p.parseExpr(restrictNoStruct)
		if !ok {
			return nil, false
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.ExprWhile{Label: label, Cond: cond, Body: body}, true

	case token.KwLoop:
		p.advance()
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		return &ast.ExprLoop{Label: label, Body: body}, true
	}

	p.err(diag.SynExpectExpression, "expected expression, got "+describe(p.peek()))
	return nil, false
}

// parseIfExpr parses `if cond {..} else if .. else {..}`.
func (p *Parser) parseIfExpr() (ast.Expr, bool) {
	p.advance() // if
	if p.at(token.KwLet) {
		p.err(diag.SynUnexpectedToken, "'if let' is not supported")
		return nil, false
	}
	cond, ok := p.parseExpr(restrictNoStruct)
	if !ok {
		return nil, false
	}
	then, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	expr := &ast.ExprIf{Cond: cond, Then: then}
	if !p.eat(token.KwElse) {
		return expr, true
	}
	switch p.peek().Kind {
	case token.KwIf:
		els, ok := p.parseIfExpr()
		if !ok {
			return nil, false
		}
		expr.Else = els
	case token.LBrace:
		blk, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		expr.Else = &ast.ExprBlock{Block: blk}
	default:
		p.err(diag.SynExpectBlock, "expected '{' or 'if' after 'else', got "+describe(p.peek()))
		return nil, false
	}
	return expr, true
}

// parseMatchExpr parses `match x { arms }`.
func (p *Parser) parseMatchExpr() (ast.Expr, bool) {
	p.advance() // match
	x, ok := p.parseExpr(restrictNoStruct)
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' after match scrutinee"); !ok {
		return nil, false
	}
	p.rejectInnerAttrs()
	m := &ast.ExprMatch{X: x}
	for !p.atOr(token.RBrace, token.EOF) {
		arm, ok := p.parseArm()
		if !ok {
			return nil, false
		}
		m.Arms = append(m.Arms, arm)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close match"); !ok {
		return nil, false
	}
	return m, true
}

// parseArm parses `attrs | pat | pat if guard => body,`. The comma is
// optional after a block-like body and before the closing brace.
func (p *Parser) parseArm() (*ast.Arm, bool) {
	arm := &ast.Arm{Attrs: p.parseOuterAttrs()}
	arm.LeadingVert = p.eat(token.Pipe)
	pats, ok := p.parsePatAlternatives()
	if !ok {
		return nil, false
	}
	arm.Pats = pats
	if p.eat(token.KwIf) {
		guard, ok := p.parseExpr(restrictNone)
		if !ok {
			return nil, false
		}
		arm.Guard = guard
	}
	if _, ok := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' in match arm"); !ok {
		return nil, false
	}
	body, ok := p.parseStmtLikeExpr()
	if !ok {
		return nil, false
	}
	arm.Body = body
	arm.Comma = p.eat(token.Comma)
	if !arm.Comma && !ast.IsBlockLike(body) && !p.at(token.RBrace) {
		p.err(diag.SynUnexpectedToken, "expected ',' after match arm, got "+describe(p.peek()))
		return nil, false
	}
	return arm, true
}

// parseStmtLikeExpr parses an expression where a leading block-like form
// ends the expression unless a method call, field access or `?` follows.
func (p *Parser) parseStmtLikeExpr() (ast.Expr, bool) {
	if !p.atBlockLikeStart() {
		return p.parseExpr(restrictNone)
	}
	expr, ok := p.parseBlockLikeExpr()
	if !ok {
		return nil, false
	}
	if !p.atOr(token.Dot, token.Question) {
		return expr, true
	}
	expr, ok = p.parsePostfixRest(expr)
	if !ok {
		return nil, false
	}
	return p.parseBinaryRest(expr, 0, restrictNone)
}
