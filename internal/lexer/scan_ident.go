package lexer

import (
	"golang.org/x/text/unicode/norm"

	"github.com/carllerche/minifmt/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and classifies it with LookupKeyword.
// A lone `_` is the Underscore token. Token.Text is the source slice, in NFC
// when it contains non-ASCII runes.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emit(start, token.Invalid)
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		ascii = false
	}
	if !lx.bumpIdentContinue() {
		ascii = false
	}

	tok := lx.emit(start, token.Ident)
	if !ascii {
		tok.Text = norm.NFC.String(tok.Text)
	}
	if tok.Text == "_" {
		tok.Kind = token.Underscore
		return tok
	}
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// bumpIdentContinue consumes identifier continuation runes and reports
// whether all of them were ASCII.
func (lx *Lexer) bumpIdentContinue() (ascii bool) {
	ascii = true
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			return ascii
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				return ascii
			}
			lx.cursor.Bump()
			continue
		}
		if !isIdentContinueRune(r) {
			return ascii
		}
		lx.bumpRune()
		ascii = false
	}
}
