package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/token"
)

// Binary operator precedence. Higher binds tighter.
const (
	precAssignment     = 1  // = += -= ...
	precRange          = 2  // .. ..=
	precLogicalOr      = 3  // ||
	precLogicalAnd     = 4  // &&
	precComparison     = 5  // == != < <= > >=
	precBitwiseOr      = 6  // |
	precBitwiseXor     = 7  // ^
	precBitwiseAnd     = 8  // &
	precShift          = 9  // << >>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * / %
	precCast           = 12 // as
)

// getBinaryOperatorPrec returns the precedence of kind and whether it is
// right associative. A negative precedence means kind is not an operator.
func getBinaryOperatorPrec(kind token.Kind) (int, bool) {
	switch kind {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.CaretAssign, token.AmpAssign,
		token.PipeAssign, token.ShlAssign, token.ShrAssign:
		return precAssignment, true
	case token.DotDot, token.DotDotEq:
		return precRange, false
	case token.OrOr:
		return precLogicalOr, false
	case token.AndAnd:
		return precLogicalAnd, false
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precComparison, false
	case token.Pipe:
		return precBitwiseOr, false
	case token.Caret:
		return precBitwiseXor, false
	case token.Amp:
		return precBitwiseAnd, false
	case token.Shl, token.Shr:
		return precShift, false
	case token.Plus, token.Minus:
		return precAdditive, false
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative, false
	case token.KwAs:
		return precCast, false
	default:
		return -1, false
	}
}

var binaryOps = map[token.Kind]ast.BinaryOp{
	token.Plus:          ast.BinAdd,
	token.Minus:         ast.BinSub,
	token.Star:          ast.BinMul,
	token.Slash:         ast.BinDiv,
	token.Percent:       ast.BinRem,
	token.AndAnd:        ast.BinAnd,
	token.OrOr:          ast.BinOr,
	token.Caret:         ast.BinBitXor,
	token.Amp:           ast.BinBitAnd,
	token.Pipe:          ast.BinBitOr,
	token.Shl:           ast.BinShl,
	token.Shr:           ast.BinShr,
	token.EqEq:          ast.BinEq,
	token.Lt:            ast.BinLt,
	token.LtEq:          ast.BinLe,
	token.BangEq:        ast.BinNe,
	token.GtEq:          ast.BinGe,
	token.Gt:            ast.BinGt,
	token.Assign:        ast.BinAssign,
	token.PlusAssign:    ast.BinAddAssign,
	token.MinusAssign:   ast.BinSubAssign,
	token.StarAssign:    ast.BinMulAssign,
	token.SlashAssign:   ast.BinDivAssign,
	token.PercentAssign: ast.BinRemAssign,
	token.CaretAssign:   ast.BinBitXorAssign,
	token.AmpAssign:     ast.BinBitAndAssign,
	token.PipeAssign:    ast.BinBitOrAssign,
	token.ShlAssign:     ast.BinShlAssign,
	token.ShrAssign:     ast.BinShrAssign,
}

// tokenKindToBinaryOp maps an operator token to its tree operator.
func tokenKindToBinaryOp(kind token.Kind) (ast.BinaryOp, bool) {
	op, ok := binaryOps[kind]
	return op, ok
}

// getUnaryOperator returns the prefix operator for kind. References are
// handled separately because of `&mut`.
func getUnaryOperator(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.UnNeg, true
	case token.Bang:
		return ast.UnNot, true
	case token.Star:
		return ast.UnDeref, true
	default:
		return 0, false
	}
}
