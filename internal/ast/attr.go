package ast

// AttrStyle tells outer (#[..]) from inner (#![..]) attributes.
type AttrStyle uint8

const (
	AttrOuter AttrStyle = iota
	AttrInner
)

// Attribute is an annotation. Doc comments are stored as `doc = "text"`
// attributes with Sugared set.
type Attribute struct {
	Style   AttrStyle
	Meta    Meta
	Sugared bool
}

// NewDoc builds the attribute a `///` or `//!` comment turns into.
func NewDoc(style AttrStyle, text string) *Attribute {
	return &Attribute{
		Style:   style,
		Sugared: true,
		Meta: &MetaNameValue{
			Path: NewPath("doc"),
			Lit:  &LitStr{Value: text},
		},
	}
}

// Meta is the body of an attribute.
type Meta interface {
	metaNode()
}

// MetaWord is a bare name: `#[test]`.
type MetaWord struct {
	Path Path
}

// MetaList is a call form: `#[derive(Debug, Clone)]`.
type MetaList struct {
	Path   Path
	Nested Punctuated[NestedMeta]
}

// MetaNameValue is `#[name = "lit"]`.
type MetaNameValue struct {
	Path Path
	Lit  Lit
}

// NestedMeta is an element of a MetaList: another meta or a literal.
type NestedMeta interface {
	nestedMetaNode()
}

// NestedLit is a literal inside a MetaList: `#[foo("bar")]`.
type NestedLit struct {
	Lit Lit
}

func (*MetaWord) metaNode()      {}
func (*MetaList) metaNode()      {}
func (*MetaNameValue) metaNode() {}

func (*MetaWord) nestedMetaNode()      {}
func (*MetaList) nestedMetaNode()      {}
func (*MetaNameValue) nestedMetaNode() {}
func (*NestedLit) nestedMetaNode()     {}
