package ast

import "github.com/carllerche/minifmt/internal/token"

// MacroDelimiter is the bracket kind around a macro body.
type MacroDelimiter uint8

const (
	DelimParen   MacroDelimiter = iota // m!(..)
	DelimBracket                       // m![..]
	DelimBrace                         // m! {..}
)

// Macro is `path!(tokens)`. Tokens is the raw body without the outer
// delimiters; nested delimiters stay balanced.
type Macro struct {
	Path      Path
	Delimiter MacroDelimiter
	Tokens    []token.Token
}
