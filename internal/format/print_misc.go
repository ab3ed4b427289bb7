package format

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/carllerche/minifmt/internal/ast"
)

func (p *printer) printLit(lit ast.Lit) {
	switch lit := lit.(type) {
	case *ast.LitInt:
		p.w.WriteString(lit.Decimal())
		p.w.WriteString(lit.Suffix.String())
	case *ast.LitStr:
		p.w.WriteString(quoteDebug(lit.Value))
	case *ast.LitBool:
		p.w.WriteString(strconv.FormatBool(lit.Value))
	default:
		unsupported("unsupported literal %T", lit)
	}
}

// quoteDebug quotes s the way Rust's Debug impl for str does: `"` and `\`
// are escaped, common control characters use their short escapes, and
// anything else that is not graphic becomes `\u{..}`.
func quoteDebug(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if unicode.IsGraphic(r) {
				sb.WriteRune(r)
				continue
			}
			sb.WriteString(`\u{`)
			sb.WriteString(strconv.FormatInt(int64(r), 16))
			sb.WriteByte('}')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func (p *printer) printLifetime(lt *ast.Lifetime) {
	p.w.WriteString("'")
	p.w.WriteString(lt.Name)
}

func (p *printer) printVisibility(v ast.Visibility) {
	switch v.Kind {
	case ast.VisInherited:
	case ast.VisPublic:
		p.w.WriteString("pub ")
	case ast.VisCrate:
		p.w.WriteString("crate ")
	case ast.VisRestricted:
		if v.Path == nil {
			unsupported("restricted visibility without a path")
		}
		p.w.WriteString("pub(")
		if v.In {
			p.w.WriteString("in ")
		}
		p.printPath(*v.Path)
		p.w.WriteString(") ")
	default:
		unsupported("unsupported visibility %s", v)
	}
}

func (p *printer) printPath(path ast.Path) {
	if path.LeadingColon {
		p.w.WriteString("::")
	}
	printPunctuated(p, path.Segments, NoSpace, p.printPathSegment)
}

func (p *printer) printPathSegment(seg *ast.PathSegment) {
	p.w.WriteString(seg.Ident)
	switch args := seg.Args.(type) {
	case nil:
	case *ast.AngleBracketedArgs:
		p.printAngleArgs(args)
	default:
		unsupported("unsupported path arguments %T on %s", args, seg.Ident)
	}
}

func (p *printer) printAngleArgs(args *ast.AngleBracketedArgs) {
	if args.Colon2 {
		p.w.WriteString("::")
	}
	p.w.WriteString("<")
	printPunctuated(p, args.Args, SpaceRight, p.printGenericArgument)
	p.w.WriteString(">")
}

func (p *printer) printGenericArgument(arg ast.GenericArgument) {
	switch arg := arg.(type) {
	case *ast.ArgType:
		p.printType(arg.Ty)
	case *ast.Lifetime:
		p.printLifetime(arg)
	default:
		unsupported("unsupported generic argument %T", arg)
	}
}

func (p *printer) printPat(pat ast.Pat) {
	switch pat := pat.(type) {
	case *ast.PatIdent:
		if pat.Subpat != nil {
			unsupported("unsupported sub-pattern on binding %s", pat.Ident)
		}
		if pat.ByRef {
			p.w.WriteString("ref ")
		}
		if pat.Mut {
			p.w.WriteString("mut ")
		}
		p.w.WriteString(pat.Ident)
	case *ast.PatWild:
		p.w.WriteString("_")
	case *ast.PatTuple:
		p.printPatTuple(pat)
	case *ast.PatTupleStruct:
		p.printPath(pat.Path)
		p.printPatTuple(pat.Tuple)
	default:
		unsupported("unsupported pattern %T", pat)
	}
}

func (p *printer) printPatTuple(pat *ast.PatTuple) {
	if pat.Rest {
		unsupported("unsupported rest pattern in tuple")
	}
	p.w.WriteString("(")
	printPunctuated(p, pat.Elems, SpaceRight, p.printPat)
	p.w.WriteString(")")
}
