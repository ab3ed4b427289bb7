package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// parseBlock parses `{ stmts }`.
func (p *Parser) parseBlock() (*ast.Block, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{'"); !ok {
		return nil, false
	}
	p.rejectInnerAttrs()
	return p.parseBlockRest()
}

// parseFnBody parses a function body. Inner attributes at its start are
// returned separately; they belong to the function item.
func (p *Parser) parseFnBody() (*ast.Block, []*ast.Attribute, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{'"); !ok {
		return nil, nil, false
	}
	inner := p.parseInnerAttrs()
	blk, ok := p.parseBlockRest()
	return blk, inner, ok
}

// parseBlockRest parses the statements and closing brace of a block whose
// `{` is already consumed.
func (p *Parser) parseBlockRest() (*ast.Block, bool) {
	blk := &ast.Block{}
	for !p.atOr(token.RBrace, token.EOF) {
		if p.eat(token.Semicolon) {
			continue
		}
		stmt, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			if p.opts.Enough() {
				return nil, false
			}
			continue
		}
		blk.Stmts = append(blk.Stmts, stmt)
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block"); !ok {
		return nil, false
	}
	return blk, true
}

// resyncStmt skips to just past the next `;` or to the closing brace of the
// current block.
func (p *Parser) resyncStmt() {
	for !p.atOr(token.EOF, token.RBrace) {
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.LBrace, token.LParen, token.LBracket:
			p.skipBalanced()
		default:
			p.advance()
		}
	}
}

// parseStmt parses one statement inside a block.
func (p *Parser) parseStmt() (ast.Stmt, bool) {
	attrs := p.parseOuterAttrs()

	if p.at(token.KwLet) {
		return p.parseLetStmt(attrs)
	}
	if p.atItemStart() {
		item, ok := p.parseItemAfterAttrs(attrs)
		if !ok {
			return nil, false
		}
		return &ast.StmtItem{Item: item}, true
	}

	blockLike := p.atBlockLikeStart()
	expr, ok := p.parseStmtLikeExpr()
	if !ok {
		return nil, false
	}
	if p.eat(token.Semicolon) {
		return &ast.StmtSemi{Attrs: attrs, Expr: expr}, true
	}
	if p.at(token.RBrace) || (blockLike && ast.IsBlockLike(expr)) || isBraceMacro(expr) {
		return &ast.StmtExpr{Attrs: attrs, Expr: expr}, true
	}
	p.err(diag.SynExpectSemicolon, "expected ';' after expression, got "+describe(p.peek()))
	return nil, false
}

func isBraceMacro(e ast.Expr) bool {
	m, ok := e.(*ast.ExprMacro)
	return ok && m.Mac.Delimiter == ast.DelimBrace
}

// atItemStart reports whether an item begins here inside a block.
func (p *Parser) atItemStart() bool {
	switch p.peek().Kind {
	case token.KwUse, token.KwStruct, token.KwImpl, token.KwMod, token.KwFn,
		token.KwPub, token.KwExtern:
		return true
	case token.KwConst:
		return p.peekN(1).Kind != token.LBrace
	case token.KwUnsafe:
		next := p.peekN(1).Kind
		return next == token.KwFn || next == token.KwImpl
	case token.KwAsync:
		return p.peekN(1).Kind == token.KwFn
	case token.Ident:
		return p.isContextual("macro_rules") && p.peekN(1).Kind == token.Bang
	default:
		return false
	}
}

// parseLetStmt parses `let pats: Ty = init;`.
func (p *Parser) parseLetStmt(attrs []*ast.Attribute) (ast.Stmt, bool) {
	p.advance() // let
	local := &ast.Local{Attrs: attrs}
	pats, ok := p.parsePatAlternatives()
	if !ok {
		return nil, false
	}
	local.Pats = pats
	if p.eat(token.Colon) {
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		local.Ty = ty
	}
	if p.eat(token.Assign) {
		init, ok := p.parseExpr(restrictNone)
		if !ok {
			return nil, false
		}
		local.Init = init
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after let statement"); !ok {
		return nil, false
	}
	return local, true
}
