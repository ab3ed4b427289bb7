package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// restrictions narrow what an expression may contain in its context.
type restrictions uint8

const (
	restrictNone restrictions = 0
	// restrictNoStruct forbids `Path {` struct literals so that the brace
	// of an if, while, match or for body is not taken as one.
	restrictNoStruct restrictions = 1 << iota
)

func (r restrictions) noStruct() bool {
	return r&restrictNoStruct != 0
}

// parseExpr is the entry point for expressions.
func (p *Parser) parseExpr(r restrictions) (ast.Expr, bool) {
	return p.parseBinaryExpr(0, r)
}

// parseBinaryExpr implements precedence climbing over the operator table.
// Ranges and casts are handled here because their operands differ.
func (p *Parser) parseBinaryExpr(minPrec int, r restrictions) (ast.Expr, bool) {
	var left ast.Expr
	if p.atOr(token.DotDot, token.DotDotEq) {
		rng, ok := p.parseRangeTail(nil, r)
		if !ok {
			return nil, false
		}
		left = rng
	} else {
		var ok bool
		if left, ok = p.parseUnaryExpr(r); !ok {
			return nil, false
		}
	}
	return p.parseBinaryRest(left, minPrec, r)
}

// parseBinaryRest continues a binary expression whose left operand is
// already parsed.
func (p *Parser) parseBinaryRest(left ast.Expr, minPrec int, r restrictions) (ast.Expr, bool) {
	for {
		tok := p.peek()
		prec, rightAssoc := getBinaryOperatorPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			return left, true
		}

		switch tok.Kind {
		case token.KwAs:
			p.advance()
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			left = &ast.ExprCast{X: left, Ty: ty}
			continue
		case token.DotDot, token.DotDotEq:
			rng, ok := p.parseRangeTail(left, r)
			if !ok {
				return nil, false
			}
			left = rng
			continue
		}

		opTok := p.advance()
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right, ok := p.parseBinaryExpr(next, r)
		if !ok {
			return nil, false
		}
		op, _ := tokenKindToBinaryOp(opTok.Kind)
		left = &ast.ExprBinary{Left: left, Op: op, Right: right}
	}
}

// parseRangeTail parses `..` or `..=` and the optional upper bound.
func (p *Parser) parseRangeTail(from ast.Expr, r restrictions) (ast.Expr, bool) {
	rng := &ast.ExprRange{From: from}
	if p.advance().Kind == token.DotDotEq {
		rng.Limits = ast.RangeClosed
	}
	if p.atExprStart(r) {
		to, ok := p.parseBinaryExpr(precRange+1, r)
		if !ok {
			return nil, false
		}
		rng.To = to
	} else if rng.Limits == ast.RangeClosed {
		p.err(diag.SynExpectExpression, "expected upper bound after '..='")
		return nil, false
	}
	return rng, true
}

// atExprStart reports whether the current token can begin an expression.
func (p *Parser) atExprStart(r restrictions) bool {
	switch tok := p.peek(); tok.Kind {
	case token.LBrace:
		return !r.noStruct()
	case token.Ident, token.Lifetime, token.LParen, token.LBracket, token.Minus,
		token.Bang, token.Star, token.Amp, token.AndAnd, token.Lt, token.ColonColon,
		token.KwIf, token.KwMatch, token.KwFor, token.KwWhile, token.KwLoop,
		token.KwUnsafe, token.KwReturn, token.KwBreak, token.KwContinue,
		token.KwSelfValue, token.KwSelfType, token.KwSuper, token.KwCrate:
		return true
	default:
		return tok.IsLiteral()
	}
}

// parseUnaryExpr parses prefix operators and then a postfix expression.
func (p *Parser) parseUnaryExpr(r restrictions) (ast.Expr, bool) {
	if p.atOr(token.Amp, token.AndAnd) {
		// `&&x` is a reference to a reference.
		double := p.at(token.AndAnd)
		p.eatAmp()
		if double {
			inner, ok := p.parseUnaryExpr(r)
			if !ok {
				return nil, false
			}
			return &ast.ExprReference{X: inner}, true
		}
		mut := p.eat(token.KwMut)
		x, ok := p.parseUnaryExpr(r)
		if !ok {
			return nil, false
		}
		return &ast.ExprReference{Mut: mut, X: x}, true
	}
	if op, ok := getUnaryOperator(p.peek().Kind); ok {
		p.advance()
		x, ok := p.parseUnaryExpr(r)
		if !ok {
			return nil, false
		}
		return &ast.ExprUnary{Op: op, X: x}, true
	}
	return p.parsePostfixExpr(r)
}
