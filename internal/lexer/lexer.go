package lexer

import (
	"github.com/carllerche/minifmt/internal/source"
	"github.com/carllerche/minifmt/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. Whitespace and plain comments
// are skipped; doc comments come back as DocOuter or DocInner.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '/':
		if tok, ok := lx.scanDocComment(); ok {
			return tok
		}
		return lx.scanOperatorOrPunct()

	case ch == 'r' && lx.isRawStringStart(1):
		return lx.scanRawString(1, token.RawStringLit)

	case ch == 'b' && lx.cursor.PeekAt(1) == 'r' && lx.isRawStringStart(2):
		return lx.scanRawString(2, token.ByteStringLit)

	case ch == 'b' && lx.cursor.PeekAt(1) == '"':
		return lx.scanString(1, token.ByteStringLit)

	case ch == 'b' && lx.cursor.PeekAt(1) == '\'':
		return lx.scanChar(1, token.ByteLit)

	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString(0, token.StringLit)

	case ch == '\'':
		return lx.scanQuote()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All lexes the remaining input. The returned slice always ends with EOF.
func (lx *Lexer) All() []token.Token {
	toks := make([]token.Token, 0, len(lx.file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(start Mark, k token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
