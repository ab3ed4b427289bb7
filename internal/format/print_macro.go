package format

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/token"
)

func (p *printer) printMacro(mac *ast.Macro) {
	p.printPath(mac.Path)
	p.w.WriteString("!")
	switch mac.Delimiter {
	case ast.DelimParen:
		p.w.WriteString("(")
		p.printTokens(mac.Tokens)
		p.w.WriteString(")")
	case ast.DelimBracket:
		p.w.WriteString("[")
		p.printTokens(mac.Tokens)
		p.w.WriteString("]")
	case ast.DelimBrace:
		p.blockNoNL(func() { p.printTokens(mac.Tokens) })
	default:
		unsupported("unsupported macro delimiter %d on %s", mac.Delimiter, mac.Path)
	}
}

// printTokens renders a macro body on one line with compact spacing.
func (p *printer) printTokens(toks []token.Token) {
	prev2, prev := token.Invalid, token.Invalid
	var prevText string
	for i, tok := range toks {
		if tok.IsDoc() {
			unsupported("unsupported doc comment inside macro body")
		}
		if i > 0 && (spaceBetween(prev2, prev, tok.Kind) || wouldMerge(prevText, tok.Text)) {
			p.w.WriteString(" ")
		}
		p.w.WriteVerbatim(tok.Text)
		prev2, prev, prevText = prev, tok.Kind, tok.Text
	}
}

func spaceBetween(prev2, prev, cur token.Kind) bool {
	switch cur {
	case token.Comma, token.Semicolon, token.Dot, token.RParen, token.RBracket,
		token.Question, token.Colon, token.ColonColon:
		return false
	}
	switch prev {
	case token.LParen, token.LBracket, token.Dot, token.ColonColon, token.Hash, token.Dollar:
		return false
	case token.Bang:
		if prev2 == token.Ident {
			return cur == token.LBrace
		}
		return !startsOperand(cur)
	case token.Amp, token.Star, token.Minus:
		if endsOperand(prev2) {
			return true
		}
		return !startsOperand(cur)
	}
	switch cur {
	case token.LParen, token.LBracket:
		return !endsOperand(prev) || prev == token.RBrace || isLiteralKind(prev)
	case token.Bang:
		return prev != token.Ident
	}
	return true
}

func endsOperand(k token.Kind) bool {
	switch k {
	case token.Ident, token.KwSelfValue, token.KwSelfType, token.RParen, token.RBracket,
		token.RBrace, token.Question:
		return true
	}
	return isLiteralKind(k)
}

func startsOperand(k token.Kind) bool {
	switch k {
	case token.Ident, token.Lifetime, token.LParen, token.LBracket, token.KwSelfValue,
		token.KwSelfType, token.KwMut:
		return true
	}
	return isLiteralKind(k)
}

func isLiteralKind(k token.Kind) bool {
	return token.Token{Kind: k}.IsLiteral()
}

var mergingPairs = map[string]struct{}{
	"::": {}, "->": {}, "=>": {}, "==": {}, "!=": {}, "<=": {}, ">=": {},
	"&&": {}, "||": {}, "<<": {}, ">>": {}, "+=": {}, "-=": {}, "*=": {},
	"/=": {}, "%=": {}, "^=": {}, "&=": {}, "|=": {}, "..": {}, "//": {},
	"/*": {}, "*/": {},
}

// wouldMerge reports whether writing b right after a lexes differently.
func wouldMerge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	_, ok := mergingPairs[string([]byte{a[len(a)-1], b[0]})]
	return ok
}
