package parser

import (
	"slices"

	"github.com/carllerche/minifmt/internal/ast"
	"github.com/carllerche/minifmt/internal/diag"
	"github.com/carllerche/minifmt/internal/lexer"
	"github.com/carllerche/minifmt/internal/source"
	"github.com/carllerche/minifmt/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File *ast.File
	Bag  *diag.Bag
}

// Parser holds the state for parsing one file.
type Parser struct {
	toks     []token.Token
	pos      int
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics
}

// ParseFile lexes and parses one file. The returned tree is partial when
// errors were reported; callers check the reporter before using it.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		toks: lx.All(),
		opts: opts,
	}

	file := p.parseFile()
	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = br.Bag
	case diag.BagReporter:
		bag = br.Bag
	}
	return Result{
		File: file,
		Bag:  bag,
	}
}

// ParseSource is a convenience wrapper that registers src as a virtual file
// and collects diagnostics into a fresh bag.
func ParseSource(fs *source.FileSet, name string, src []byte, maxErrors uint) (Result, *source.File) {
	file := fs.Get(fs.AddVirtual(name, src))
	bag := diag.NewBag(int(min(maxErrors, 0xFFFF)))
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := ParseFile(lx, Options{MaxErrors: maxErrors, Reporter: reporter})
	res.Bag = bag
	return res, file
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

// peekN looks n tokens ahead; EOF past the end.
func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(k token.Kind) bool {
	return p.peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.peek().Kind)
}

func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// parseFile parses inner attributes and then items until EOF.
func (p *Parser) parseFile() *ast.File {
	file := &ast.File{}
	file.Attrs = p.parseInnerAttrs()
	for !p.at(token.EOF) && !p.opts.Enough() {
		item, ok := p.parseItem()
		if !ok {
			p.resyncItem(false)
			continue
		}
		file.Items = append(file.Items, item)
	}
	return file
}

// resyncItem skips to the next item starter after an error at item level,
// stepping over balanced delimiters. Inside a module body the closing brace
// is left for the caller.
func (p *Parser) resyncItem(nested bool) {
	start := p.pos
	for !p.at(token.EOF) {
		if p.pos > start && isItemStarter(p.peek().Kind) {
			return
		}
		switch p.peek().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.LBrace, token.LParen, token.LBracket:
			p.skipBalanced()
			if p.pos > start && p.peekN(-1).Kind == token.RBrace {
				return
			}
		case token.RBrace:
			if nested {
				return
			}
			p.advance()
			return
		default:
			p.advance()
		}
	}
}

// isItemStarter reports whether k can begin an item.
func isItemStarter(k token.Kind) bool {
	switch k {
	case token.KwUse, token.KwStruct, token.KwImpl, token.KwMod, token.KwFn,
		token.KwConst, token.KwPub, token.KwUnsafe, token.KwAsync, token.KwExtern,
		token.Hash, token.DocOuter:
		return true
	default:
		return false
	}
}
