package parser

import (
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/source"
	"github.com/carllerche/minifmt/internal/token"
)

// advance consumes the current token. EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
		p.lastSpan = tok.Span
	}
	return tok
}

// eat consumes the current token if it has kind k.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// getDiagnosticSpan returns the best span to blame: the current token, or
// the end of the previous one at EOF.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expect consumes a token of kind k or reports msg.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg+", got "+describe(p.peek()))
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.peek().Text}, false
}

// err reports an error at the current token.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil {
		return false
	}
	if p.opts.MaxErrors != 0 && p.opts.CurrentErrors > p.opts.MaxErrors {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil)
	return true
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident:
		return "identifier \"" + tok.Text + "\""
	default:
		return "\"" + tok.Text + "\""
	}
}

// parseIdent expects an identifier and returns its text.
func (p *Parser) parseIdent() (string, bool) {
	if p.at(token.Ident) {
		return p.advance().Text, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+describe(p.peek()))
	return "", false
}

// eatGt consumes one `>`, splitting `>>`, `>=` and `>>=` in place so nested
// generic lists close correctly.
func (p *Parser) eatGt() bool {
	tok := &p.toks[p.pos]
	var rest token.Kind
	switch tok.Kind {
	case token.Gt:
		p.advance()
		return true
	case token.Shr:
		rest = token.Gt
	case token.GtEq:
		rest = token.Assign
	case token.ShrAssign:
		rest = token.GtEq
	default:
		return false
	}
	p.lastSpan = source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1}
	tok.Kind = rest
	tok.Text = tok.Text[1:]
	tok.Span.Start++
	return true
}

// eatAmp consumes one `&`, splitting `&&` in place.
func (p *Parser) eatAmp() bool {
	tok := &p.toks[p.pos]
	switch tok.Kind {
	case token.Amp:
		p.advance()
		return true
	case token.AndAnd:
		p.lastSpan = source.Span{File: tok.Span.File, Start: tok.Span.Start, End: tok.Span.Start + 1}
		tok.Kind = token.Amp
		tok.Text = "&"
		tok.Span.Start++
		return true
	}
	return false
}

// eatPipe consumes one `|`, splitting `||` in place.
func (p *Parser) eatPipe() bool {
	tok := &p.toks[p.pos]
	switch tok.Kind {
	case token.Pipe:
		p.advance()
		return true
	case token.OrOr:
		tok.Kind = token.Pipe
		tok.Text = "|"
		tok.Span.Start++
		return true
	}
	return false
}

// skipBalanced consumes a delimited group starting at the current opener.
func (p *Parser) skipBalanced() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LParen, token.LBracket, token.LBrace:
			depth++
		case token.RParen, token.RBracket, token.RBrace:
			depth--
		}
		if depth <= 0 {
			return
		}
	}
}

// isContextual reports whether the current token is the identifier kw.
func (p *Parser) isContextual(kw string) bool {
	tok := p.peek()
	return tok.Kind == token.Ident && tok.Text == kw
}
