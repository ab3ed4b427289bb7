package ast

// Item is a top-level or nested declaration.
type Item interface {
	itemNode()
}

// FieldsKind tells the three struct shapes apart.
type FieldsKind uint8

const (
	FieldsUnit    FieldsKind = iota // struct S;
	FieldsNamed                     // struct S { a: A }
	FieldsUnnamed                   // struct S(A);
)

// Fields is the body of a struct.
type Fields struct {
	Kind FieldsKind
	List Punctuated[*Field]
}

// Field is a struct field. Ident is empty for tuple struct fields.
type Field struct {
	Attrs []*Attribute
	Vis   Visibility
	Ident string
	Colon bool
	Ty    Type
}

// ItemStruct is a struct declaration.
type ItemStruct struct {
	Attrs    []*Attribute
	Vis      Visibility
	Ident    string
	Generics Generics
	Fields   Fields
	Semi     bool
}

// ImplTrait is the `Trait for` part of a trait impl.
type ImplTrait struct {
	Negative bool
	Path     Path
}

// ItemImpl is an impl block. Attrs holds both the outer attributes and
// the inner attributes written inside the braces.
type ItemImpl struct {
	Attrs    []*Attribute
	Default  bool
	Unsafe   bool
	Generics Generics
	Trait    *ImplTrait // nil for inherent impls
	SelfTy   Type
	Items    []ImplItem
}

// ItemMod is a module. Inline is set when the body is written in braces.
type ItemMod struct {
	Attrs  []*Attribute
	Vis    Visibility
	Ident  string
	Inline bool
	Items  []Item
}

// ItemUse is a use declaration.
type ItemUse struct {
	Attrs        []*Attribute
	Vis          Visibility
	LeadingColon bool
	Tree         UseTree
}

// ItemFn is a free function.
type ItemFn struct {
	Attrs []*Attribute
	Vis   Visibility
	Sig   Signature
	Block *Block
}

// ItemConst is `const NAME: T = expr;`.
type ItemConst struct {
	Attrs []*Attribute
	Vis   Visibility
	Ident string
	Ty    Type
	Expr  Expr
}

// ItemMacro is an item position macro invocation, including macro_rules!.
type ItemMacro struct {
	Attrs []*Attribute
	Ident string // name after macro_rules!, empty otherwise
	Mac   *Macro
	Semi  bool
}

func (*ItemStruct) itemNode() {}
func (*ItemImpl) itemNode()   {}
func (*ItemMod) itemNode()    {}
func (*ItemUse) itemNode()    {}
func (*ItemFn) itemNode()     {}
func (*ItemConst) itemNode()  {}
func (*ItemMacro) itemNode()  {}

// ImplItem is a member of an impl block.
type ImplItem interface {
	implItemNode()
}

// ImplItemMethod is a method with a body.
type ImplItemMethod struct {
	Attrs   []*Attribute
	Vis     Visibility
	Default bool
	Sig     Signature
	Block   *Block
}

// ImplItemConst is an associated constant.
type ImplItemConst struct {
	Attrs []*Attribute
	Vis   Visibility
	Ident string
	Ty    Type
	Expr  Expr
}

// ImplItemType is an associated type.
type ImplItemType struct {
	Attrs    []*Attribute
	Vis      Visibility
	Ident    string
	Generics Generics
	Ty       Type
}

// ImplItemMacro is a macro invocation inside an impl block.
type ImplItemMacro struct {
	Attrs []*Attribute
	Mac   *Macro
	Semi  bool
}

func (*ImplItemMethod) implItemNode() {}
func (*ImplItemConst) implItemNode()  {}
func (*ImplItemType) implItemNode()   {}
func (*ImplItemMacro) implItemNode()  {}

// Abi is `extern "C"`. Name is nil for a bare `extern`.
type Abi struct {
	Name *LitStr
}

// Signature is the header of a function or method.
type Signature struct {
	Const    bool
	Unsafe   bool
	Async    bool
	Abi      *Abi
	Ident    string
	Generics Generics
	Inputs   Punctuated[FnArg]
	Variadic bool
	Output   Type // nil for the default `()` return
}

// FnArg is one function input.
type FnArg interface {
	fnArgNode()
}

// ArgSelf is `self` or `mut self`.
type ArgSelf struct {
	Mut bool
}

// ArgSelfRef is `&self`, `&mut self`, `&'a self` or `&'a mut self`.
type ArgSelfRef struct {
	Lifetime *Lifetime
	Mut      bool
}

// ArgCaptured is `pat: Type`.
type ArgCaptured struct {
	Pat Pat
	Ty  Type
}

func (*ArgSelf) fnArgNode()     {}
func (*ArgSelfRef) fnArgNode()  {}
func (*ArgCaptured) fnArgNode() {}

// UseTree is the tree of a use declaration.
type UseTree interface {
	useTreeNode()
}

// UsePath is `ident::tree`.
type UsePath struct {
	Ident string
	Tree  UseTree
}

// UseName is a leaf `ident`.
type UseName struct {
	Ident string
}

// UseRename is `ident as rename`.
type UseRename struct {
	Ident  string
	Rename string
}

// UseGlob is `*`.
type UseGlob struct{}

// UseGroup is `{a, b::c}`.
type UseGroup struct {
	Items Punctuated[UseTree]
}

func (*UsePath) useTreeNode()   {}
func (*UseName) useTreeNode()   {}
func (*UseRename) useTreeNode() {}
func (*UseGlob) useTreeNode()   {}
func (*UseGroup) useTreeNode()  {}
