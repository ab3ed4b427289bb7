package format

import (
	"github.com/carllerche/minifmt/internal/ast"
)

func (p *printer) printExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.ExprCall:
		p.printExpr(e.Func)
		p.printArgs(e.Args)
	case *ast.ExprMethodCall:
		if e.Turbofish != nil {
			unsupported("unsupported turbofish on method %s", e.Method)
		}
		p.printExpr(e.Receiver)
		p.w.WriteString(".")
		p.w.WriteString(e.Method)
		p.printArgs(e.Args)
	case *ast.ExprBinary:
		p.printExpr(e.Left)
		p.w.WriteString(" ")
		p.w.WriteString(e.Op.String())
		p.w.WriteString(" ")
		p.printExpr(e.Right)
	case *ast.ExprUnary:
		p.w.WriteString(e.Op.String())
		p.printExpr(e.X)
	case *ast.ExprLit:
		p.printLit(e.Lit)
	case *ast.ExprPath:
		if e.QSelf != nil {
			unsupported("unsupported qualified path %s", e.Path)
		}
		p.printPath(e.Path)
	case *ast.ExprField:
		if e.Member.Unnamed {
			unsupported("unsupported tuple index .%d", e.Member.Index)
		}
		p.printExpr(e.Base)
		p.w.WriteString(".")
		p.w.WriteString(e.Member.Ident)
	case *ast.ExprIf:
		p.printIf(e)
	case *ast.ExprMatch:
		p.w.WriteString("match ")
		p.printExpr(e.X)
		p.blockNoNL(func() {
			for _, arm := range e.Arms {
				p.printArm(arm)
			}
		})
	case *ast.ExprStruct:
		p.printStructLiteral(e)
	case *ast.ExprBlock:
		if e.Label != nil {
			unsupported("unsupported labeled block '%s", e.Label.Name)
		}
		p.blockNoNL(func() { p.printBlockStmts(e.Block) })
	case *ast.ExprReference:
		p.w.WriteString("&")
		if e.Mut {
			p.w.WriteString("mut ")
		}
		p.printExpr(e.X)
	case *ast.ExprForLoop:
		if e.Label != nil {
			unsupported("unsupported labeled loop '%s", e.Label.Name)
		}
		p.w.WriteString("for ")
		p.printPat(e.Pat)
		p.w.WriteString(" in ")
		p.printExpr(e.X)
		p.blockNoNL(func() { p.printBlockStmts(e.Body) })
	case *ast.ExprMacro:
		p.printMacro(e.Mac)
	case *ast.ExprParen:
		p.w.WriteString("(")
		p.printExpr(e.X)
		p.w.WriteString(")")
	case *ast.ExprTuple:
		p.w.WriteString("(")
		printPunctuated(p, e.Elems, SpaceRight, p.printExpr)
		p.w.WriteString(")")
	case *ast.ExprReturn:
		p.w.WriteString("return")
		if e.X != nil {
			p.w.WriteString(" ")
			p.printExpr(e.X)
		}
	default:
		unsupported("unsupported expression %T", e)
	}
}

func (p *printer) printArgs(args ast.Punctuated[ast.Expr]) {
	p.w.WriteString("(")
	printPunctuated(p, args, SpaceRight, p.printExpr)
	p.w.WriteString(")")
}

func (p *printer) printIf(e *ast.ExprIf) {
	p.w.WriteString("if ")
	p.printExpr(e.Cond)
	p.blockNoNL(func() { p.printBlockStmts(e.Then) })
	if e.Else != nil {
		p.w.WriteString(" else ")
		p.printExpr(e.Else)
	}
}

func (p *printer) printArm(arm *ast.Arm) {
	p.printAttrs(arm.Attrs, attrsAll)
	if arm.LeadingVert {
		p.w.WriteString("| ")
	}
	printPunctuated(p, arm.Pats, SpaceBoth, p.printPat)
	if arm.Guard != nil {
		p.w.WriteString(" if ")
		p.printExpr(arm.Guard)
	}
	p.w.WriteString(" => ")
	p.printExpr(arm.Body)
	if arm.Comma {
		p.w.WriteString(",")
	}
	p.w.WriteString("\n")
}

func (p *printer) printStructLiteral(e *ast.ExprStruct) {
	p.printPath(e.Path)
	p.blockNoNL(func() {
		printPunctuated(p, e.Fields, NewLine, p.printFieldValue)
		if e.Dot2 {
			p.w.WriteString("..")
			if e.Rest != nil {
				p.printExpr(e.Rest)
			}
		}
	})
}

func (p *printer) printFieldValue(fv *ast.FieldValue) {
	if fv.Member.Unnamed {
		unsupported("unsupported numeric field %d in struct literal", fv.Member.Index)
	}
	p.printAttrs(fv.Attrs, attrsAll)
	p.w.WriteString(fv.Member.Ident)
	if fv.Colon {
		p.w.WriteString(": ")
		p.printExpr(fv.Expr)
	}
}
