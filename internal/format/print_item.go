package format

import (
	"github.com/carllerche/minifmt/internal/ast"
)

func (p *printer) printFile(file *ast.File) {
	p.printAttrs(file.Attrs, attrsAll)
	for _, item := range file.Items {
		p.printItem(item)
	}
}

func (p *printer) printItem(item ast.Item) {
	switch item := item.(type) {
	case *ast.ItemStruct:
		p.printStruct(item)
	case *ast.ItemImpl:
		p.printImpl(item)
	case *ast.ItemMod:
		p.printMod(item)
	case *ast.ItemUse:
		p.printUse(item)
	case *ast.ItemFn:
		p.printFn(item)
	default:
		unsupported("unsupported item %T", item)
	}
}

func (p *printer) printStruct(item *ast.ItemStruct) {
	p.printAttrs(item.Attrs, attrsAll)
	p.printVisibility(item.Vis)
	p.w.WriteString("struct ")
	p.w.WriteString(item.Ident)
	p.printGenerics(item.Generics)

	switch item.Fields.Kind {
	case ast.FieldsNamed:
		p.printWhereClause(item.Generics.Where)
		p.block(func() {
			printPunctuated(p, item.Fields.List, NewLine, p.printField)
		})
	case ast.FieldsUnit:
		if item.Generics.Where != nil {
			unsupported("unsupported where clause on unit struct %s", item.Ident)
		}
		p.w.WriteString(";\n")
	default:
		unsupported("unsupported tuple struct %s", item.Ident)
	}
}

func (p *printer) printField(f *ast.Field) {
	if f.Ident == "" {
		unsupported("unsupported unnamed field")
	}
	p.printAttrs(f.Attrs, attrsAll)
	p.printVisibility(f.Vis)
	p.w.WriteString(f.Ident)
	p.w.WriteString(": ")
	p.printType(f.Ty)
}

func (p *printer) printImpl(item *ast.ItemImpl) {
	if item.Trait != nil {
		unsupported("unsupported trait impl of %s", item.Trait.Path)
	}
	if item.Default {
		unsupported("unsupported default impl")
	}
	p.printAttrs(item.Attrs, attrsOuter)
	if item.Unsafe {
		p.w.WriteString("unsafe ")
	}
	p.w.WriteString("impl")
	p.printGenerics(item.Generics)
	p.w.WriteString(" ")
	p.printType(item.SelfTy)
	p.printWhereClause(item.Generics.Where)
	p.block(func() {
		p.printAttrs(item.Attrs, attrsInner)
		for i, member := range item.Items {
			p.printImplItem(member)
			p.w.WriteString("\n")
			if i+1 < len(item.Items) {
				p.w.WriteString("\n")
			}
		}
	})
}

func (p *printer) printImplItem(member ast.ImplItem) {
	switch member := member.(type) {
	case *ast.ImplItemMethod:
		if member.Default {
			unsupported("unsupported default method %s", member.Sig.Ident)
		}
		p.printAttrs(member.Attrs, attrsOuter)
		p.printVisibility(member.Vis)
		p.printSignature(member.Sig)
		p.blockNoNL(func() {
			p.printAttrs(member.Attrs, attrsInner)
			p.printBlockStmts(member.Block)
		})
	default:
		unsupported("unsupported impl member %T", member)
	}
}

func (p *printer) printMod(item *ast.ItemMod) {
	p.printAttrs(item.Attrs, attrsOuter)
	p.printVisibility(item.Vis)
	p.w.WriteString("mod ")
	p.w.WriteString(item.Ident)
	if !item.Inline {
		p.w.WriteString(";\n")
		return
	}
	p.block(func() {
		p.printAttrs(item.Attrs, attrsInner)
		for _, child := range item.Items {
			p.printItem(child)
		}
	})
}
