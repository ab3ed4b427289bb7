package ast

// Punct is the separator token between elements of a Punctuated sequence.
type Punct uint8

const (
	PunctNone   Punct = iota
	PunctComma        // ,
	PunctColon2       // ::
	PunctPlus         // +
	PunctOr           // |
)

func (p Punct) String() string {
	switch p {
	case PunctComma:
		return ","
	case PunctColon2:
		return "::"
	case PunctPlus:
		return "+"
	case PunctOr:
		return "|"
	default:
		return ""
	}
}

// Pair is one element of a Punctuated sequence and the separator after it.
type Pair[T any] struct {
	Value T
	Punct Punct
}

// Punctuated is a separator-delimited sequence. Every pair except the last
// carries a separator; the last one carries it only when the source had a
// trailing separator.
type Punctuated[T any] struct {
	Pairs []Pair[T]
}

// NewPunctuated separates values with sep. trailing controls whether the
// last value keeps a separator.
func NewPunctuated[T any](sep Punct, trailing bool, values ...T) Punctuated[T] {
	p := Punctuated[T]{Pairs: make([]Pair[T], len(values))}
	for i, v := range values {
		p.Pairs[i].Value = v
		if i+1 < len(values) || trailing {
			p.Pairs[i].Punct = sep
		}
	}
	return p
}

// Push appends v without a separator.
func (p *Punctuated[T]) Push(v T) {
	p.Pairs = append(p.Pairs, Pair[T]{Value: v})
}

// PushPunct sets the separator after the last element.
func (p *Punctuated[T]) PushPunct(sep Punct) {
	if len(p.Pairs) == 0 {
		return
	}
	p.Pairs[len(p.Pairs)-1].Punct = sep
}

func (p Punctuated[T]) Len() int { return len(p.Pairs) }

func (p Punctuated[T]) Empty() bool { return len(p.Pairs) == 0 }

// Values returns the elements without separators.
func (p Punctuated[T]) Values() []T {
	out := make([]T, len(p.Pairs))
	for i := range p.Pairs {
		out[i] = p.Pairs[i].Value
	}
	return out
}

// Trailing reports whether the last element is followed by a separator.
func (p Punctuated[T]) Trailing() bool {
	return len(p.Pairs) > 0 && p.Pairs[len(p.Pairs)-1].Punct != PunctNone
}
