package lexer

import (
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// skipTrivia consumes whitespace, line comments and nested block comments.
// It stops in front of a doc comment so Next can emit it as a token.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			lx.cursor.Bump()
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			if lx.docKind() != token.Invalid {
				return
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			lx.skipBlockComment()
		default:
			return
		}
	}
}

// docKind classifies a `//` comment under the cursor. `////` and longer
// runs are plain comments.
func (lx *Lexer) docKind() token.Kind {
	if lx.cursor.PeekAt(0) != '/' || lx.cursor.PeekAt(1) != '/' {
		return token.Invalid
	}
	switch lx.cursor.PeekAt(2) {
	case '/':
		if lx.cursor.PeekAt(3) == '/' {
			return token.Invalid
		}
		return token.DocOuter
	case '!':
		return token.DocInner
	}
	return token.Invalid
}

// scanDocComment emits a doc comment token running to the end of the line.
func (lx *Lexer) scanDocComment() (token.Token, bool) {
	kind := lx.docKind()
	if kind == token.Invalid {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	tok := lx.emit(start, kind)
	if n := len(tok.Text); n > 0 && tok.Text[n-1] == '\r' {
		tok.Text = tok.Text[:n-1]
	}
	return tok, true
}

func (lx *Lexer) skipBlockComment() {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	depth := 1
	for !lx.cursor.EOF() && depth > 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok {
			if b0 == '/' && b1 == '*' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth++
				continue
			}
			if b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				depth--
				continue
			}
		}
		lx.cursor.Bump()
	}
	if depth > 0 {
		lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
	}
}
