package format

import (
	"strings"

	"github.com/carllerche/minifmt/internal/ast"
)

// attrFilter selects which attributes of a node are printed.
type attrFilter uint8

const (
	attrsAll attrFilter = iota
	attrsOuter
	attrsInner
)

func (f attrFilter) keep(a *ast.Attribute) bool {
	switch f {
	case attrsOuter:
		return a.Style == ast.AttrOuter
	case attrsInner:
		return a.Style == ast.AttrInner
	default:
		return true
	}
}

func (p *printer) printAttrs(attrs []*ast.Attribute, filter attrFilter) {
	for _, a := range attrs {
		if filter.keep(a) {
			p.printAttr(a)
		}
	}
}

func (p *printer) printAttr(a *ast.Attribute) {
	if text, ok := docText(a); ok {
		if a.Style == ast.AttrInner {
			p.w.WriteString("//!")
		} else {
			p.w.WriteString("///")
		}
		p.w.WriteString(text)
		p.w.WriteString("\n")
		return
	}
	if a.Style == ast.AttrInner {
		p.w.WriteString("#![")
	} else {
		p.w.WriteString("#[")
	}
	p.printMeta(a.Meta)
	p.w.WriteString("]\n")
}

// docText returns the comment text of a `doc = "..."` attribute. Text that
// spans lines keeps the bracket form.
func docText(a *ast.Attribute) (string, bool) {
	nv, ok := a.Meta.(*ast.MetaNameValue)
	if !ok || !nv.Path.IsIdent("doc") {
		return "", false
	}
	s, ok := nv.Lit.(*ast.LitStr)
	if !ok || strings.ContainsAny(s.Value, "\r\n") {
		return "", false
	}
	return s.Value, true
}

func (p *printer) printMeta(m ast.Meta) {
	switch m := m.(type) {
	case *ast.MetaWord:
		p.printPath(m.Path)
	case *ast.MetaList:
		p.printPath(m.Path)
		p.w.WriteString("(")
		printPunctuated(p, m.Nested, SpaceRight, p.printNestedMeta)
		p.w.WriteString(")")
	case *ast.MetaNameValue:
		p.printPath(m.Path)
		p.w.WriteString(" = ")
		p.printLit(m.Lit)
	default:
		unsupported("unsupported meta %T", m)
	}
}

func (p *printer) printNestedMeta(m ast.NestedMeta) {
	switch m := m.(type) {
	case *ast.NestedLit:
		p.printLit(m.Lit)
	case ast.Meta:
		p.printMeta(m)
	default:
		unsupported("unsupported nested meta %T", m)
	}
}
