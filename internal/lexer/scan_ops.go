package lexer

import (
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// scanOperatorOrPunct is greedy: three byte operators first, then two, then one.
// `>>` and `>>=` are split back into `>` by the parser inside generics.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('.', '.', '='):
		return lx.emit(start, token.DotDotEq)
	case lx.try3('.', '.', '.'):
		return lx.emit(start, token.DotDotDot)
	case lx.try3('<', '<', '='):
		return lx.emit(start, token.ShlAssign)
	case lx.try3('>', '>', '='):
		return lx.emit(start, token.ShrAssign)
	case lx.try2('.', '.'):
		return lx.emit(start, token.DotDot)
	case lx.try2(':', ':'):
		return lx.emit(start, token.ColonColon)
	case lx.try2('-', '>'):
		return lx.emit(start, token.Arrow)
	case lx.try2('=', '>'):
		return lx.emit(start, token.FatArrow)
	case lx.try2('&', '&'):
		return lx.emit(start, token.AndAnd)
	case lx.try2('|', '|'):
		return lx.emit(start, token.OrOr)
	case lx.try2('=', '='):
		return lx.emit(start, token.EqEq)
	case lx.try2('!', '='):
		return lx.emit(start, token.BangEq)
	case lx.try2('<', '='):
		return lx.emit(start, token.LtEq)
	case lx.try2('>', '='):
		return lx.emit(start, token.GtEq)
	case lx.try2('<', '<'):
		return lx.emit(start, token.Shl)
	case lx.try2('>', '>'):
		return lx.emit(start, token.Shr)
	case lx.try2('+', '='):
		return lx.emit(start, token.PlusAssign)
	case lx.try2('-', '='):
		return lx.emit(start, token.MinusAssign)
	case lx.try2('*', '='):
		return lx.emit(start, token.StarAssign)
	case lx.try2('/', '='):
		return lx.emit(start, token.SlashAssign)
	case lx.try2('%', '='):
		return lx.emit(start, token.PercentAssign)
	case lx.try2('^', '='):
		return lx.emit(start, token.CaretAssign)
	case lx.try2('&', '='):
		return lx.emit(start, token.AmpAssign)
	case lx.try2('|', '='):
		return lx.emit(start, token.PipeAssign)
	}

	var k token.Kind
	switch lx.cursor.Bump() {
	case '+':
		k = token.Plus
	case '-':
		k = token.Minus
	case '*':
		k = token.Star
	case '/':
		k = token.Slash
	case '%':
		k = token.Percent
	case '=':
		k = token.Assign
	case '!':
		k = token.Bang
	case '<':
		k = token.Lt
	case '>':
		k = token.Gt
	case '&':
		k = token.Amp
	case '|':
		k = token.Pipe
	case '^':
		k = token.Caret
	case '?':
		k = token.Question
	case ':':
		k = token.Colon
	case ';':
		k = token.Semicolon
	case ',':
		k = token.Comma
	case '.':
		k = token.Dot
	case '(':
		k = token.LParen
	case ')':
		k = token.RParen
	case '{':
		k = token.LBrace
	case '}':
		k = token.RBrace
	case '[':
		k = token.LBracket
	case ']':
		k = token.RBracket
	case '@':
		k = token.At
	case '#':
		k = token.Hash
	case '$':
		k = token.Dollar
	default:
		lx.cursor.Reset(start)
		lx.bumpRune()
		if lx.cursor.Off == uint32(start) {
			lx.cursor.Bump()
		}
		tok := lx.emit(start, token.Invalid)
		lx.errLex(diag.LexUnknownChar, tok.Span, "unknown character")
		return tok
	}
	return lx.emit(start, k)
}
