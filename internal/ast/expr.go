package ast

// Expr is an expression.
type Expr interface {
	exprNode()
}

// Member is the right side of a field access: a name or a tuple index.
type Member struct {
	Ident   string
	Index   uint32
	Unnamed bool
}

// ExprCall is `f(a, b)`.
type ExprCall struct {
	Func Expr
	Args Punctuated[Expr]
}

// ExprMethodCall is `recv.method::<T>(args)`.
type ExprMethodCall struct {
	Receiver  Expr
	Method    string
	Turbofish *AngleBracketedArgs
	Args      Punctuated[Expr]
}

// ExprBinary is `a op b`, assignment forms included.
type ExprBinary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// ExprUnary is `*a`, `!a` or `-a`.
type ExprUnary struct {
	Op UnaryOp
	X  Expr
}

// ExprLit is a literal.
type ExprLit struct {
	Lit Lit
}

// ExprPath is a possibly qualified path.
type ExprPath struct {
	QSelf *QSelf
	Path  Path
}

// ExprField is `base.member`.
type ExprField struct {
	Base   Expr
	Member Member
}

// ExprIf is `if cond { .. } else ..`. Else is nil, *ExprIf or *ExprBlock.
type ExprIf struct {
	Cond Expr
	Then *Block
	Else Expr
}

// Arm is one arm of a match.
type Arm struct {
	Attrs       []*Attribute
	LeadingVert bool
	Pats        Punctuated[Pat]
	Guard       Expr // nil when absent
	Body        Expr
	Comma       bool
}

// ExprMatch is `match x { arms }`.
type ExprMatch struct {
	X    Expr
	Arms []*Arm
}

// FieldValue is one field of a struct literal. Colon is false for the
// shorthand `Foo { a }`.
type FieldValue struct {
	Attrs  []*Attribute
	Member Member
	Colon  bool
	Expr   Expr
}

// ExprStruct is `Path { a: 1, ..base }`.
type ExprStruct struct {
	Path   Path
	Fields Punctuated[*FieldValue]
	Dot2   bool
	Rest   Expr
}

// ExprBlock is a block expression with an optional label.
type ExprBlock struct {
	Label *Lifetime
	Block *Block
}

// ExprUnsafe is `unsafe { .. }`.
type ExprUnsafe struct {
	Block *Block
}

// ExprReference is `&e` or `&mut e`.
type ExprReference struct {
	Mut bool
	X   Expr
}

// ExprForLoop is `for pat in expr { .. }`.
type ExprForLoop struct {
	Label *Lifetime
	Pat   Pat
	X     Expr
	Body  *Block
}

// ExprWhile is `while cond { .. }`.
type ExprWhile struct {
	Label *Lifetime
	Cond  Expr
	Body  *Block
}

// ExprLoop is `loop { .. }`.
type ExprLoop struct {
	Label *Lifetime
	Body  *Block
}

// ExprMacro is a macro invocation in expression position.
type ExprMacro struct {
	Mac *Macro
}

// ExprParen is `(e)`.
type ExprParen struct {
	X Expr
}

// ExprTuple is `(a, b)`. A one element tuple keeps its trailing comma.
type ExprTuple struct {
	Elems Punctuated[Expr]
}

// ExprReturn is `return` with an optional value.
type ExprReturn struct {
	X Expr
}

// ExprArray is `[a, b]`.
type ExprArray struct {
	Elems Punctuated[Expr]
}

// ExprIndex is `x[i]`.
type ExprIndex struct {
	X     Expr
	Index Expr
}

// ExprCast is `x as T`.
type ExprCast struct {
	X  Expr
	Ty Type
}

// RangeLimits tells `..` from `..=`.
type RangeLimits uint8

const (
	RangeHalfOpen RangeLimits = iota
	RangeClosed
)

// ExprRange is `a..b`; either side may be nil.
type ExprRange struct {
	From   Expr
	Limits RangeLimits
	To     Expr
}

// ExprBreak is `break 'label value`.
type ExprBreak struct {
	Label *Lifetime
	X     Expr
}

// ExprContinue is `continue 'label`.
type ExprContinue struct {
	Label *Lifetime
}

// ExprTry is `x?`.
type ExprTry struct {
	X Expr
}

func (*ExprCall) exprNode()       {}
func (*ExprMethodCall) exprNode() {}
func (*ExprBinary) exprNode()     {}
func (*ExprUnary) exprNode()      {}
func (*ExprLit) exprNode()        {}
func (*ExprPath) exprNode()       {}
func (*ExprField) exprNode()      {}
func (*ExprIf) exprNode()         {}
func (*ExprMatch) exprNode()      {}
func (*ExprStruct) exprNode()     {}
func (*ExprBlock) exprNode()      {}
func (*ExprUnsafe) exprNode()     {}
func (*ExprReference) exprNode()  {}
func (*ExprForLoop) exprNode()    {}
func (*ExprWhile) exprNode()      {}
func (*ExprLoop) exprNode()       {}
func (*ExprMacro) exprNode()      {}
func (*ExprParen) exprNode()      {}
func (*ExprTuple) exprNode()      {}
func (*ExprReturn) exprNode()     {}
func (*ExprArray) exprNode()      {}
func (*ExprIndex) exprNode()      {}
func (*ExprCast) exprNode()       {}
func (*ExprRange) exprNode()      {}
func (*ExprBreak) exprNode()      {}
func (*ExprContinue) exprNode()   {}
func (*ExprTry) exprNode()        {}

// IsBlockLike reports whether e ends in a block and may stand as a
// statement without a semicolon.
func IsBlockLike(e Expr) bool {
	switch e := e.(type) {
	case *ExprIf, *ExprMatch, *ExprBlock, *ExprUnsafe, *ExprForLoop, *ExprWhile, *ExprLoop:
		return true
	case *ExprMacro:
		return e.Mac.Delimiter == DelimBrace
	default:
		return false
	}
}
