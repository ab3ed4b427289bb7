package format

import (
	"github.com/carllerche/minifmt/internal/ast"
)

// Spacing controls the whitespace printed around a sequence separator.
type Spacing uint8

const (
	NoSpace    Spacing = iota // a::b
	SpaceBoth                 // A + B
	SpaceRight                // a, b
	NewLine                   // a,\n
)

func (s Spacing) surround() (before, after string) {
	switch s {
	case SpaceBoth:
		return " ", " "
	case SpaceRight:
		return "", " "
	case NewLine:
		return "", "\n"
	default:
		return "", ""
	}
}

// printPunctuated renders every element of seq with each. A present
// separator, trailing or not, is written with the spacing of sp.
func printPunctuated[T any](p *printer, seq ast.Punctuated[T], sp Spacing, each func(T)) {
	before, after := sp.surround()
	for _, pair := range seq.Pairs {
		each(pair.Value)
		if pair.Punct == ast.PunctNone {
			continue
		}
		p.w.WriteString(before)
		p.w.WriteString(pair.Punct.String())
		p.w.WriteString(after)
	}
}
