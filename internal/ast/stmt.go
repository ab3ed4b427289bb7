package ast

// Block is a braced statement list.
type Block struct {
	Stmts []Stmt
}

// Stmt is one statement of a block.
type Stmt interface {
	stmtNode()
}

// Local is `let pats: Ty = init;`.
type Local struct {
	Attrs []*Attribute
	Pats  Punctuated[Pat]
	Ty    Type // nil when absent
	Init  Expr // nil when absent
}

// StmtItem is an item declared inside a block.
type StmtItem struct {
	Item Item
}

// StmtExpr is an expression without a trailing semicolon.
type StmtExpr struct {
	Attrs []*Attribute
	Expr  Expr
}

// StmtSemi is an expression followed by `;`.
type StmtSemi struct {
	Attrs []*Attribute
	Expr  Expr
}

func (*Local) stmtNode()    {}
func (*StmtItem) stmtNode() {}
func (*StmtExpr) stmtNode() {}
func (*StmtSemi) stmtNode() {}
