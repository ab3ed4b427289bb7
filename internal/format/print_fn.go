package format

import (
	"github.com/carllerche/minifmt/internal/ast"
)

func (p *printer) printFn(item *ast.ItemFn) {
	p.printAttrs(item.Attrs, attrsOuter)
	p.printVisibility(item.Vis)
	p.printSignature(item.Sig)
	p.blockNoNL(func() {
		p.printAttrs(item.Attrs, attrsInner)
		p.printBlockStmts(item.Block)
	})
	p.w.WriteString("\n")
}

func (p *printer) printSignature(sig ast.Signature) {
	switch {
	case sig.Const:
		unsupported("unsupported const fn %s", sig.Ident)
	case sig.Abi != nil:
		unsupported("unsupported extern fn %s", sig.Ident)
	case sig.Variadic:
		unsupported("unsupported variadic fn %s", sig.Ident)
	}
	if sig.Unsafe {
		p.w.WriteString("unsafe ")
	}
	if sig.Async {
		p.w.WriteString("async ")
	}
	p.w.WriteString("fn ")
	p.w.WriteString(sig.Ident)
	p.printGenerics(sig.Generics)
	p.w.WriteString("(")
	printPunctuated(p, sig.Inputs, SpaceRight, p.printFnArg)
	p.w.WriteString(")")
	if sig.Output != nil {
		p.w.WriteString(" -> ")
		p.printType(sig.Output)
	}
	p.printWhereClause(sig.Generics.Where)
}

func (p *printer) printFnArg(arg ast.FnArg) {
	switch arg := arg.(type) {
	case *ast.ArgSelf:
		if arg.Mut {
			p.w.WriteString("mut ")
		}
		p.w.WriteString("self")
	case *ast.ArgSelfRef:
		p.w.WriteString("&")
		if arg.Lifetime != nil {
			p.printLifetime(arg.Lifetime)
			p.w.WriteString(" ")
		}
		if arg.Mut {
			p.w.WriteString("mut ")
		}
		p.w.WriteString("self")
	case *ast.ArgCaptured:
		p.printPat(arg.Pat)
		p.w.WriteString(": ")
		p.printType(arg.Ty)
	default:
		unsupported("unsupported fn argument %T", arg)
	}
}
