package lexer

import (
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// scanNumber handles 0, 1_000, 0b.., 0o.., 0x.., 1.0, 1e-3, 1.0e+10 and a
// trailing type suffix (u8, i64, f32, ...). The suffix stays in Token.Text.
// `1.` is only a float when no identifier or second dot follows, so `1..2`
// and `1.max(2)` lex as integers.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'b':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		case 'o':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'x':
			digit = isHex
		}
		if digit != nil {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n := 0
			for digit(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				if lx.cursor.Bump() != '_' {
					n++
				}
			}
			if n == 0 {
				lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "missing digits after integer base prefix")
			}
			lx.scanSuffix()
			return lx.emit(start, kind)
		}
	}

	lx.bumpDecimals()

	if lx.cursor.Peek() == '.' {
		next := lx.cursor.PeekAt(1)
		if next != '.' && !isIdentStartByte(next) && next < utf8RuneSelf {
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.bumpDecimals()
		}
	}

	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		off := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			off = 2
		}
		if isDec(lx.cursor.PeekAt(off)) {
			kind = token.FloatLit
			for range off {
				lx.cursor.Bump()
			}
			lx.bumpDecimals()
		} else if off == 2 {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start), "expected digit after exponent")
			return lx.emit(start, token.Invalid)
		}
	}

	lx.scanSuffix()
	return lx.emit(start, kind)
}

func (lx *Lexer) bumpDecimals() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) scanSuffix() {
	if isIdentStartByte(lx.cursor.Peek()) {
		lx.bumpIdentContinue()
	}
}
