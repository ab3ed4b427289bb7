package ast

// BinaryOp enumerates binary and assignment operators.
type BinaryOp uint8

const (
	// Arithmetic

	// BinAdd represents the addition operator (+).
	BinAdd BinaryOp = iota
	// BinSub represents the subtraction operator (-).
	BinSub
	// BinMul represents the multiplication operator (*).
	BinMul
	// BinDiv represents the division operator (/).
	BinDiv
	// BinRem represents the remainder operator (%).
	BinRem

	// Logical

	// BinAnd represents the lazy boolean AND operator (&&).
	BinAnd
	// BinOr represents the lazy boolean OR operator (||).
	BinOr

	// Bitwise

	BinBitXor
	BinBitAnd
	BinBitOr
	BinShl
	BinShr

	// Comparison

	BinEq
	BinLt
	BinLe
	BinNe
	BinGe
	BinGt

	// Assignment

	BinAssign
	BinAddAssign
	BinSubAssign
	BinMulAssign
	BinDivAssign
	BinRemAssign
	BinBitXorAssign
	BinBitAndAssign
	BinBitOrAssign
	BinShlAssign
	BinShrAssign
)

var binaryOpText = [...]string{
	BinAdd:          "+",
	BinSub:          "-",
	BinMul:          "*",
	BinDiv:          "/",
	BinRem:          "%",
	BinAnd:          "&&",
	BinOr:           "||",
	BinBitXor:       "^",
	BinBitAnd:       "&",
	BinBitOr:        "|",
	BinShl:          "<<",
	BinShr:          ">>",
	BinEq:           "==",
	BinLt:           "<",
	BinLe:           "<=",
	BinNe:           "!=",
	BinGe:           ">=",
	BinGt:           ">",
	BinAssign:       "=",
	BinAddAssign:    "+=",
	BinSubAssign:    "-=",
	BinMulAssign:    "*=",
	BinDivAssign:    "/=",
	BinRemAssign:    "%=",
	BinBitXorAssign: "^=",
	BinBitAndAssign: "&=",
	BinBitOrAssign:  "|=",
	BinShlAssign:    "<<=",
	BinShrAssign:    ">>=",
}

// String returns the operator token.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

// IsAssign reports whether op is `=` or a compound assignment.
func (op BinaryOp) IsAssign() bool {
	return op >= BinAssign && op <= BinShrAssign
}

// UnaryOp enumerates prefix operators.
type UnaryOp uint8

const (
	UnDeref UnaryOp = iota // *
	UnNot                  // !
	UnNeg                  // -
)

func (op UnaryOp) String() string {
	switch op {
	case UnDeref:
		return "*"
	case UnNot:
		return "!"
	case UnNeg:
		return "-"
	default:
		return "?"
	}
}
