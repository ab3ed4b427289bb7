package format

import (
	"github.com/carllerche/minifmt/internal/ast"
)

func (p *printer) printType(ty ast.Type) {
	switch ty := ty.(type) {
	case *ast.TypePath:
		if ty.QSelf != nil {
			unsupported("unsupported qualified path type %s", ty.Path)
		}
		p.printPath(ty.Path)
	case *ast.TypeReference:
		p.w.WriteString("&")
		if ty.Lifetime != nil {
			p.printLifetime(ty.Lifetime)
			p.w.WriteString(" ")
		}
		if ty.Mut {
			p.w.WriteString("mut ")
		}
		p.printType(ty.Elem)
	case *ast.TypeArray:
		p.w.WriteString("[")
		p.printType(ty.Elem)
		p.w.WriteString("; ")
		p.printExpr(ty.Len)
		p.w.WriteString("]")
	case *ast.TypeSlice:
		p.w.WriteString("[")
		p.printType(ty.Elem)
		p.w.WriteString("]")
	case *ast.TypeTuple:
		p.w.WriteString("(")
		printPunctuated(p, ty.Elems, SpaceRight, p.printType)
		p.w.WriteString(")")
	default:
		unsupported("unsupported type %T", ty)
	}
}

func (p *printer) printGenerics(g ast.Generics) {
	if g.Params.Empty() {
		return
	}
	p.w.WriteString("<")
	printPunctuated(p, g.Params, SpaceRight, p.printGenericParam)
	p.w.WriteString(">")
}

func (p *printer) printGenericParam(param ast.GenericParam) {
	switch param := param.(type) {
	case *ast.TypeParam:
		if len(param.Attrs) > 0 {
			unsupported("unsupported attributes on type parameter %s", param.Ident)
		}
		p.w.WriteString(param.Ident)
		if param.Colon {
			p.w.WriteString(": ")
			p.printBounds(param.Bounds)
		} else if !param.Bounds.Empty() {
			unsupported("type parameter %s has bounds without a colon", param.Ident)
		}
		if param.Default != nil {
			if !param.Eq {
				unsupported("type parameter %s has a default without '='", param.Ident)
			}
			p.w.WriteString(" = ")
			p.printType(param.Default)
		}
	case *ast.LifetimeDef:
		if len(param.Attrs) > 0 {
			unsupported("unsupported attributes on lifetime parameter '%s", param.Lifetime.Name)
		}
		p.printLifetime(param.Lifetime)
		if param.Colon {
			p.w.WriteString(": ")
			printPunctuated(p, param.Bounds, SpaceBoth, p.printLifetime)
		}
	default:
		unsupported("unsupported generic parameter %T", param)
	}
}

func (p *printer) printBounds(bounds ast.Punctuated[ast.TypeParamBound]) {
	printPunctuated(p, bounds, SpaceBoth, p.printBound)
}

func (p *printer) printBound(b ast.TypeParamBound) {
	switch b := b.(type) {
	case *ast.TraitBound:
		if b.Paren {
			unsupported("unsupported parenthesized bound %s", b.Path)
		}
		if b.Lifetimes != nil {
			unsupported("unsupported higher-ranked bound %s", b.Path)
		}
		if b.Modifier == ast.ModifierMaybe {
			p.w.WriteString("?")
		}
		p.printPath(b.Path)
	case *ast.Lifetime:
		p.printLifetime(b)
	default:
		unsupported("unsupported bound %T", b)
	}
}

// printWhereClause renders the clause on its own lines and leaves the
// writer at the start of a line, so a following body opens there.
func (p *printer) printWhereClause(wc *ast.WhereClause) {
	if wc == nil {
		return
	}
	p.w.Newline()
	p.w.WriteString("where\n")
	p.indent(func() {
		printPunctuated(p, wc.Predicates, NewLine, p.printWherePredicate)
	})
	p.w.Newline()
}

func (p *printer) printWherePredicate(pred ast.WherePredicate) {
	switch pred := pred.(type) {
	case *ast.PredicateType:
		if pred.Lifetimes != nil {
			unsupported("unsupported higher-ranked where predicate")
		}
		p.printType(pred.BoundedTy)
		p.w.WriteString(": ")
		p.printBounds(pred.Bounds)
	default:
		unsupported("unsupported where predicate %T", pred)
	}
}
