package token

import (
	"github.com/carllerche/minifmt/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, character or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, RawStringLit, ByteStringLit, CharLit, ByteLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAs && t.Kind <= KwWhile
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsDoc reports whether the token is a doc comment.
func (t Token) IsDoc() bool { return t.Kind == DocOuter || t.Kind == DocInner }
