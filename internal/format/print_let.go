package format

import (
	"github.com/carllerche/minifmt/internal/ast"
)

// printBlockStmts renders the statements of a block. A statement that
// follows a nested item is separated from it by a blank line.
func (p *printer) printBlockStmts(b *ast.Block) {
	if b == nil {
		return
	}
	afterItem := false
	for _, stmt := range b.Stmts {
		_, isItem := stmt.(*ast.StmtItem)
		if afterItem && !isItem {
			p.w.WriteString("\n")
		}
		p.printStmt(stmt)
		afterItem = isItem
	}
}

func (p *printer) printStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.Local:
		p.printLocal(stmt)
	case *ast.StmtItem:
		p.printItem(stmt.Item)
	case *ast.StmtExpr:
		p.printAttrs(stmt.Attrs, attrsAll)
		p.printExpr(stmt.Expr)
		p.w.WriteString("\n")
	case *ast.StmtSemi:
		p.printAttrs(stmt.Attrs, attrsAll)
		p.printExpr(stmt.Expr)
		p.w.WriteString(";\n")
	default:
		unsupported("unsupported statement %T", stmt)
	}
}

func (p *printer) printLocal(local *ast.Local) {
	p.printAttrs(local.Attrs, attrsAll)
	p.w.WriteString("let ")
	printPunctuated(p, local.Pats, SpaceBoth, p.printPat)
	if local.Ty != nil {
		p.w.WriteString(": ")
		p.printType(local.Ty)
	}
	if local.Init != nil {
		p.w.WriteString(" = ")
		p.printExpr(local.Init)
	}
	p.w.WriteString(";\n")
}
