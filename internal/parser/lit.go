package parser

import (
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

// maxIntLitBits is the width of the largest integer type, u128.
const maxIntLitBits = 128

// parseLit consumes one literal token and decodes it.
func (p *Parser) parseLit() (ast.Lit, bool) {
	tok := p.peek()
	switch tok.Kind {
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.LitBool{Value: tok.Kind == token.KwTrue}, true
	case token.IntLit:
		p.advance()
		return p.decodeInt(tok)
	case token.FloatLit:
		p.advance()
		return &ast.LitFloat{Text: tok.Text}, true
	case token.StringLit:
		p.advance()
		return &ast.LitStr{Value: decodeCooked(tok.Text[1 : len(tok.Text)-1])}, true
	case token.RawStringLit:
		p.advance()
		return &ast.LitStr{Value: rawBody(tok.Text[1:])}, true
	case token.ByteStringLit:
		p.advance()
		body := tok.Text[1:]
		if strings.HasPrefix(body, "r") {
			return &ast.LitByteStr{Value: []byte(rawBody(body[1:]))}, true
		}
		return &ast.LitByteStr{Value: []byte(decodeCooked(body[1 : len(body)-1]))}, true
	case token.CharLit:
		p.advance()
		r, _ := utf8.DecodeRuneInString(decodeCooked(tok.Text[1 : len(tok.Text)-1]))
		return &ast.LitChar{Value: r}, true
	case token.ByteLit:
		p.advance()
		s := decodeCooked(tok.Text[2 : len(tok.Text)-1])
		var b byte
		if len(s) > 0 {
			b = s[0]
		}
		return &ast.LitByte{Value: b}, true
	default:
		p.err(diag.SynExpectExpression, "expected literal, got "+describe(tok))
		return nil, false
	}
}

// decodeInt splits the digits from the suffix and parses the value.
// A decimal literal with an f32/f64 suffix is a float.
func (p *Parser) decodeInt(tok token.Token) (ast.Lit, bool) {
	text := tok.Text
	base := 10
	digits := text
	if len(text) > 2 && text[0] == '0' {
		switch text[1] {
		case 'x':
			base = 16
		case 'o':
			base = 8
		case 'b':
			base = 2
		}
		if base != 10 {
			digits = text[2:]
		}
	}
	end := 0
	for end < len(digits) && isDigitInBase(digits[end], base) {
		end++
	}
	suffixText := digits[end:]
	digits = strings.ReplaceAll(digits[:end], "_", "")

	if base == 10 && (suffixText == "f32" || suffixText == "f64") {
		return &ast.LitFloat{Text: text}, true
	}
	suffix, ok := ast.LookupIntSuffix(suffixText)
	if !ok {
		p.report(diag.SynBadIntSuffix, diag.SevError, tok.Span, "invalid suffix \""+suffixText+"\" for integer literal")
		return nil, false
	}
	value, ok := new(big.Int).SetString(digits, base)
	if !ok {
		p.report(diag.LexBadNumber, diag.SevError, tok.Span, "invalid integer literal")
		return nil, false
	}
	if value.BitLen() > maxIntLitBits {
		p.report(diag.LexBadNumber, diag.SevError, tok.Span, "integer literal is too large")
		return nil, false
	}
	return &ast.LitInt{Value: value, Suffix: suffix}, true
}

func isDigitInBase(b byte, base int) bool {
	if b == '_' {
		return true
	}
	switch base {
	case 2:
		return b == '0' || b == '1'
	case 8:
		return b >= '0' && b <= '7'
	case 16:
		return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	default:
		return b >= '0' && b <= '9'
	}
}

// rawBody strips the hashes and quotes of `#"..."#`.
func rawBody(s string) string {
	hashes := 0
	for hashes < len(s) && s[hashes] == '#' {
		hashes++
	}
	if len(s) < 2*hashes+2 {
		return ""
	}
	return s[hashes+1 : len(s)-hashes-1]
}

// decodeCooked resolves escape sequences. The lexer already validated them;
// malformed input decodes leniently.
func decodeCooked(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '0':
			sb.WriteByte(0)
		case '\\', '\'', '"':
			sb.WriteByte(s[i])
		case '\n':
			for i+1 < len(s) && (s[i+1] == ' ' || s[i+1] == '\t' || s[i+1] == '\n' || s[i+1] == '\r') {
				i++
			}
		case 'x':
			if i+2 < len(s) {
				if v, err := strconv.ParseUint(s[i+1:i+3], 16, 8); err == nil {
					sb.WriteByte(byte(v))
					i += 2
					continue
				}
			}
			sb.WriteString(`\x`)
		case 'u':
			closeIdx := strings.IndexByte(s[i:], '}')
			if i+1 < len(s) && s[i+1] == '{' && closeIdx > 0 {
				hex := strings.ReplaceAll(s[i+2:i+closeIdx], "_", "")
				if v, err := strconv.ParseUint(hex, 16, 32); err == nil && utf8.ValidRune(rune(v)) {
					sb.WriteRune(rune(v))
					i += closeIdx
					continue
				}
			}
			sb.WriteString(`\u`)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
