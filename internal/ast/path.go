package ast

import "strings"

// Path is a `::` separated sequence of segments, optionally rooted (`::std`).
type Path struct {
	LeadingColon bool
	Segments     Punctuated[*PathSegment]
}

// PathSegment is one identifier of a path plus its generic arguments.
type PathSegment struct {
	Ident string
	Args  PathArguments // nil when the segment has no arguments
}

// NewPath builds an unrooted path without generic arguments.
func NewPath(idents ...string) Path {
	segs := make([]*PathSegment, len(idents))
	for i, id := range idents {
		segs[i] = &PathSegment{Ident: id}
	}
	return Path{Segments: NewPunctuated(PunctColon2, false, segs...)}
}

// IsIdent reports whether p is exactly the single bare identifier name.
func (p Path) IsIdent(name string) bool {
	if p.LeadingColon || p.Segments.Len() != 1 {
		return false
	}
	seg := p.Segments.Pairs[0].Value
	return seg.Ident == name && seg.Args == nil
}

// String renders the path names without generic arguments, for messages.
func (p Path) String() string {
	var sb strings.Builder
	if p.LeadingColon {
		sb.WriteString("::")
	}
	for i, seg := range p.Segments.Values() {
		if i > 0 {
			sb.WriteString("::")
		}
		sb.WriteString(seg.Ident)
	}
	return sb.String()
}

// PathArguments are the generic arguments of a path segment.
type PathArguments interface {
	pathArgsNode()
}

// AngleBracketedArgs is `<A, B>` or the turbofish `::<A, B>`.
type AngleBracketedArgs struct {
	Colon2 bool
	Args   Punctuated[GenericArgument]
}

// ParenthesizedArgs is the `Fn(A, B) -> C` sugar.
type ParenthesizedArgs struct {
	Inputs Punctuated[Type]
	Output Type // nil for the default `()` return
}

func (*AngleBracketedArgs) pathArgsNode() {}
func (*ParenthesizedArgs) pathArgsNode()  {}

// GenericArgument is one element of an angle-bracketed argument list.
type GenericArgument interface {
	genericArgumentNode()
}

// ArgType is a type argument: `Vec<u8>`.
type ArgType struct {
	Ty Type
}

// ArgBinding is an associated type binding: `Iterator<Item = u8>`.
type ArgBinding struct {
	Ident string
	Ty    Type
}

// ArgConst is a braced const argument: `Foo<{ N + 1 }>`.
type ArgConst struct {
	Expr Expr
}

func (*ArgType) genericArgumentNode()    {}
func (*ArgBinding) genericArgumentNode() {}
func (*ArgConst) genericArgumentNode()   {}
func (*Lifetime) genericArgumentNode()   {}

// QSelf is the `<T as Trait>` prefix of a qualified path.
type QSelf struct {
	Ty Type
	// Position is the number of leading segments of the path that belong to
	// the trait; zero when there is no `as` clause.
	Position int
	As       bool
}
