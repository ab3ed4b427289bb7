package lexer

import (
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// scanString scans "..." after a prefix of prefixLen bytes (b for byte strings).
// Strings may span lines. Escapes are validated here and decoded by the parser.
func (lx *Lexer) scanString(prefixLen int, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	for range prefixLen {
		lx.cursor.Bump()
	}
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(start, kind)
		case '\\':
			lx.scanEscape()
		default:
			lx.cursor.Bump()
		}
	}
	lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated string literal")
	return lx.emit(start, token.Invalid)
}

// isRawStringStart reports whether r#*" begins at offset `at` (the byte after r).
func (lx *Lexer) isRawStringStart(at uint32) bool {
	for {
		switch lx.cursor.PeekAt(at) {
		case '#':
			at++
		case '"':
			return true
		default:
			return false
		}
	}
}

// scanRawString scans r#"..."#. The closing quote must be followed by as
// many hashes as the opening one.
func (lx *Lexer) scanRawString(prefixLen int, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	for range prefixLen {
		lx.cursor.Bump()
	}
	hashes := 0
	for lx.cursor.Eat('#') {
		hashes++
	}
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() != '"' {
			continue
		}
		n := 0
		for n < hashes && lx.cursor.Peek() == '#' {
			lx.cursor.Bump()
			n++
		}
		if n == hashes {
			return lx.emit(start, kind)
		}
	}
	lx.errLex(diag.LexUnterminatedString, lx.cursor.SpanFrom(start), "unterminated raw string literal")
	return lx.emit(start, token.Invalid)
}

// scanQuote tells a char literal from a lifetime: 'a' is a char, 'a is a lifetime.
func (lx *Lexer) scanQuote() token.Token {
	if lx.cursor.PeekAt(1) == '\\' {
		return lx.scanChar(0, token.CharLit)
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	r, sz := lx.peekRune()
	if sz == 0 {
		lx.errLex(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
		return lx.emit(start, token.Invalid)
	}
	lx.bumpRune()
	if lx.cursor.Eat('\'') {
		return lx.emit(start, token.CharLit)
	}
	if r == '_' || (r < utf8RuneSelf && isIdentStartByte(byte(r))) || (r >= utf8RuneSelf && isIdentStartRune(r)) {
		lx.bumpIdentContinue()
		return lx.emit(start, token.Lifetime)
	}
	lx.errLex(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
	return lx.emit(start, token.Invalid)
}

func (lx *Lexer) scanChar(prefixLen int, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	for range prefixLen {
		lx.cursor.Bump()
	}
	lx.cursor.Bump() // opening '\''
	if lx.cursor.Peek() == '\\' {
		lx.scanEscape()
	} else {
		lx.bumpRune()
	}
	if !lx.cursor.Eat('\'') {
		lx.errLex(diag.LexUnterminatedChar, lx.cursor.SpanFrom(start), "unterminated character literal")
		return lx.emit(start, token.Invalid)
	}
	return lx.emit(start, kind)
}

// scanEscape consumes one escape sequence starting at '\'.
func (lx *Lexer) scanEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	switch lx.cursor.Bump() {
	case 'n', 'r', 't', '\\', '0', '\'', '"', '\n':
	case 'x':
		for range 2 {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid \\x escape")
				return
			}
			lx.cursor.Bump()
		}
	case 'u':
		if !lx.cursor.Eat('{') {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "expected '{' in unicode escape")
			return
		}
		n := 0
		for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
			n++
		}
		if !lx.cursor.Eat('}') || n == 0 || n > 6 {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "invalid unicode escape")
		}
	default:
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "unknown character escape")
	}
}
