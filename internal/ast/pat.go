package ast

// Pat is a pattern.
type Pat interface {
	patNode()
}

// PatIdent is `ref mut name @ subpat`.
type PatIdent struct {
	ByRef  bool
	Mut    bool
	Ident  string
	Subpat Pat // nil when absent
}

// PatWild is `_`.
type PatWild struct{}

// PatTuple is `(a, b)`. Rest marks a `..` element at RestIndex.
type PatTuple struct {
	Elems     Punctuated[Pat]
	Rest      bool
	RestIndex int
}

// PatTupleStruct is `Path(a, b)`.
type PatTupleStruct struct {
	Path  Path
	Tuple *PatTuple
}

// PatPath is a bare path such as `None` or `Ordering::Less`.
type PatPath struct {
	Path Path
}

// PatLit is a literal pattern, possibly negated.
type PatLit struct {
	Expr Expr
}

// PatRef is `&pat` or `&mut pat`.
type PatRef struct {
	Mut bool
	Pat Pat
}

// FieldPat is one field of a struct pattern.
type FieldPat struct {
	Member Member
	Colon  bool
	Pat    Pat
}

// PatStruct is `Path { a, b: c, .. }`.
type PatStruct struct {
	Path   Path
	Fields Punctuated[*FieldPat]
	Dot2   bool
}

// PatRange is `lo..=hi`.
type PatRange struct {
	Lo     Expr
	Limits RangeLimits
	Hi     Expr
}

func (*PatIdent) patNode()       {}
func (*PatWild) patNode()        {}
func (*PatTuple) patNode()       {}
func (*PatTupleStruct) patNode() {}
func (*PatPath) patNode()        {}
func (*PatLit) patNode()         {}
func (*PatRef) patNode()         {}
func (*PatStruct) patNode()      {}
func (*PatRange) patNode()       {}
