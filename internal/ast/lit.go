package ast

import "math/big"

// Lit is a literal value.
type Lit interface {
	litNode()
}

// IntSuffix is the optional type suffix of an integer literal.
type IntSuffix uint8

const (
	SuffixNone IntSuffix = iota
	SuffixI8
	SuffixI16
	SuffixI32
	SuffixI64
	SuffixI128
	SuffixIsize
	SuffixU8
	SuffixU16
	SuffixU32
	SuffixU64
	SuffixU128
	SuffixUsize
)

var intSuffixText = [...]string{
	SuffixNone:  "",
	SuffixI8:    "i8",
	SuffixI16:   "i16",
	SuffixI32:   "i32",
	SuffixI64:   "i64",
	SuffixI128:  "i128",
	SuffixIsize: "isize",
	SuffixU8:    "u8",
	SuffixU16:   "u16",
	SuffixU32:   "u32",
	SuffixU64:   "u64",
	SuffixU128:  "u128",
	SuffixUsize: "usize",
}

// String returns the suffix as written, empty for SuffixNone.
func (s IntSuffix) String() string {
	if int(s) < len(intSuffixText) {
		return intSuffixText[s]
	}
	return ""
}

// LookupIntSuffix maps suffix text to an IntSuffix.
func LookupIntSuffix(text string) (IntSuffix, bool) {
	for i, s := range intSuffixText {
		if s == text {
			return IntSuffix(i), true
		}
	}
	return SuffixNone, false
}

// LitInt is an integer literal. Value is the decoded magnitude, up to
// 128 bits.
type LitInt struct {
	Value  *big.Int
	Suffix IntSuffix
}

// NewLitInt returns a literal with magnitude v.
func NewLitInt(v uint64, suffix IntSuffix) *LitInt {
	return &LitInt{Value: new(big.Int).SetUint64(v), Suffix: suffix}
}

// Decimal returns the magnitude in base 10. A nil Value is zero.
func (l *LitInt) Decimal() string {
	if l.Value == nil {
		return "0"
	}
	return l.Value.String()
}

// LitStr is a string literal. Value is the decoded content.
type LitStr struct {
	Value string
}

// LitBool is `true` or `false`.
type LitBool struct {
	Value bool
}

// LitFloat is a floating point literal kept as written.
type LitFloat struct {
	Text string
}

// LitChar is a character literal.
type LitChar struct {
	Value rune
}

// LitByte is b'x'.
type LitByte struct {
	Value byte
}

// LitByteStr is b"..".
type LitByteStr struct {
	Value []byte
}

func (*LitInt) litNode()     {}
func (*LitStr) litNode()     {}
func (*LitBool) litNode()    {}
func (*LitFloat) litNode()   {}
func (*LitChar) litNode()    {}
func (*LitByte) litNode()    {}
func (*LitByteStr) litNode() {}
