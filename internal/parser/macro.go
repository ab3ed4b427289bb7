package parser

import (
	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/token"
)

func isMacroOpener(k token.Kind) bool {
	return k == token.LParen || k == token.LBracket || k == token.LBrace
}

func closerOf(k token.Kind) token.Kind {
	switch k {
	case token.LParen:
		return token.RParen
	case token.LBracket:
		return token.RBracket
	default:
		return token.RBrace
	}
}

// parseMacroBody parses a delimited token tree after `path!`. The outer
// delimiters are not kept in Tokens.
func (p *Parser) parseMacroBody(path ast.Path) (*ast.Macro, bool) {
	open := p.advance()
	mac := &ast.Macro{Path: path}
	switch open.Kind {
	case token.LParen:
		mac.Delimiter = ast.DelimParen
	case token.LBracket:
		mac.Delimiter = ast.DelimBracket
	default:
		mac.Delimiter = ast.DelimBrace
	}

	stack := []token.Kind{closerOf(open.Kind)}
	for {
		tok := p.peek()
		switch tok.Kind {
		case token.EOF:
			p.report(diag.SynUnclosedDelimiter, diag.SevError, open.Span, "unclosed macro delimiter "+open.Text)
			return nil, false
		case token.LParen, token.LBracket, token.LBrace:
			stack = append(stack, closerOf(tok.Kind))
		case token.RParen, token.RBracket, token.RBrace:
			want := stack[len(stack)-1]
			if tok.Kind != want {
				p.err(diag.SynUnclosedDelimiter, "mismatched delimiter in macro body: expected '"+want.String()+"', got "+describe(tok))
				return nil, false
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				p.advance()
				return mac, true
			}
		}
		mac.Tokens = append(mac.Tokens, p.advance())
	}
}
