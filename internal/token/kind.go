package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a lifetime or label such as 'a.
	Lifetime
	// DocOuter represents a `///` doc comment.
	DocOuter
	// DocInner represents a `//!` doc comment.
	DocInner

	// Keywords. KwAs must stay first and KwWhile last, IsKeyword relies on it.
	KwAs
	KwAsync
	KwBreak
	KwConst
	KwContinue
	KwCrate
	KwDyn
	KwElse
	KwEnum
	KwExtern
	KwFalse
	KwFn
	KwFor
	KwIf
	KwImpl
	KwIn
	KwLet
	KwLoop
	KwMatch
	KwMod
	KwMove
	KwMut
	KwPub
	KwRef
	KwReturn
	KwSelfValue // self
	KwSelfType  // Self
	KwStatic
	KwStruct
	KwSuper
	KwTrait
	KwTrue
	KwType
	KwUnsafe
	KwUse
	KwWhere
	KwWhile

	// IntLit represents an integer literal, suffix included.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents a "..." string literal.
	StringLit
	// RawStringLit represents an r#"..."# string literal.
	RawStringLit
	// ByteStringLit represents a b"..." literal.
	ByteStringLit
	// CharLit represents a 'c' literal.
	CharLit
	// ByteLit represents a b'c' literal.
	ByteLit

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Caret         // ^
	Bang          // !
	Amp           // &
	Pipe          // |
	AndAnd        // &&
	OrOr          // ||
	Shl           // <<
	Shr           // >>
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	CaretAssign   // ^=
	AmpAssign     // &=
	PipeAssign    // |=
	ShlAssign     // <<=
	ShrAssign     // >>=
	Assign        // =
	EqEq          // ==
	BangEq        // !=
	Gt            // >
	Lt            // <
	GtEq          // >=
	LtEq          // <=
	At            // @
	Underscore    // _
	Dot           // .
	DotDot        // ..
	DotDotDot     // ...
	DotDotEq      // ..=
	Comma         // ,
	Semicolon     // ;
	Colon         // :
	ColonColon    // ::
	Arrow         // ->
	FatArrow      // =>
	Hash          // #
	Dollar        // $
	Question      // ?
	LParen        // (
	RParen        // )
	LBrace        // {
	RBrace        // }
	LBracket      // [
	RBracket      // ]
)

var kindNames = map[Kind]string{
	Invalid:       "invalid",
	EOF:           "end of file",
	Ident:         "identifier",
	Lifetime:      "lifetime",
	DocOuter:      "doc comment",
	DocInner:      "inner doc comment",
	IntLit:        "integer literal",
	FloatLit:      "float literal",
	StringLit:     "string literal",
	RawStringLit:  "raw string literal",
	ByteStringLit: "byte string literal",
	CharLit:       "char literal",
	ByteLit:       "byte literal",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Caret:         "^",
	Bang:          "!",
	Amp:           "&",
	Pipe:          "|",
	AndAnd:        "&&",
	OrOr:          "||",
	Shl:           "<<",
	Shr:           ">>",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	CaretAssign:   "^=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	Assign:        "=",
	EqEq:          "==",
	BangEq:        "!=",
	Gt:            ">",
	Lt:            "<",
	GtEq:          ">=",
	LtEq:          "<=",
	At:            "@",
	Underscore:    "_",
	Dot:           ".",
	DotDot:        "..",
	DotDotDot:     "...",
	DotDotEq:      "..=",
	Comma:         ",",
	Semicolon:     ";",
	Colon:         ":",
	ColonColon:    "::",
	Arrow:         "->",
	FatArrow:      "=>",
	Hash:          "#",
	Dollar:        "$",
	Question:      "?",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
}

// String returns the punctuation text or a readable name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	for text, kw := range keywords {
		if kw == k {
			return text
		}
	}
	return "unknown"
}
