package format

import (
	"github.com/carllerche/minifmt/internal/ast"
)

func (p *printer) printUse(item *ast.ItemUse) {
	p.printAttrs(item.Attrs, attrsAll)
	p.printVisibility(item.Vis)
	p.w.WriteString("use ")
	if item.LeadingColon {
		p.w.WriteString("::")
	}
	p.printUseTree(item.Tree)
	p.w.WriteString(";\n")
}

func (p *printer) printUseTree(tree ast.UseTree) {
	switch tree := tree.(type) {
	case *ast.UsePath:
		p.w.WriteString(tree.Ident)
		p.w.WriteString("::")
		p.printUseTree(tree.Tree)
	case *ast.UseName:
		p.w.WriteString(tree.Ident)
	case *ast.UseRename:
		p.w.WriteString(tree.Ident)
		p.w.WriteString(" as ")
		p.w.WriteString(tree.Rename)
	case *ast.UseGlob:
		p.w.WriteString("*")
	case *ast.UseGroup:
		p.w.WriteString("{")
		printPunctuated(p, tree.Items, SpaceRight, p.printUseTree)
		p.w.WriteString("}")
	default:
		unsupported("unsupported use tree %T", tree)
	}
}
