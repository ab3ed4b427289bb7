package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexUnterminatedChar         Code = 1005
	LexBadEscape                Code = 1006

	// Syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynExpectSemicolon   Code = 2003
	SynExpectIdentifier  Code = 2004
	SynExpectType        Code = 2005
	SynExpectExpression  Code = 2006
	SynExpectPattern     Code = 2007
	SynExpectItem        Code = 2008
	SynExpectColon       Code = 2009
	SynExpectBlock       Code = 2010
	SynBadAttribute      Code = 2011
	SynBadVisibility     Code = 2012
	SynBadIntSuffix      Code = 2013
	SynInnerAttrPosition Code = 2014

	// Formatter
	FmtUnsupported   Code = 3000
	FmtNotIdempotent Code = 3001

	// IO
	IOLoadFileError Code = 4001
	IOWriteError    Code = 4002
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number literal",
		LexUnterminatedChar:         "Unterminated character literal",
		LexBadEscape:                "Invalid escape sequence",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnclosedDelimiter:        "Unclosed delimiter",
		SynExpectSemicolon:          "Missing semicolon",
		SynExpectIdentifier:         "Expected identifier",
		SynExpectType:               "Expected type",
		SynExpectExpression:         "Expected expression",
		SynExpectPattern:            "Expected pattern",
		SynExpectItem:               "Expected item",
		SynExpectColon:              "Expected colon",
		SynExpectBlock:              "Expected block",
		SynBadAttribute:             "Malformed attribute",
		SynBadVisibility:            "Malformed visibility",
		SynBadIntSuffix:             "Unknown integer suffix",
		SynInnerAttrPosition:        "Inner attribute not permitted here",
		FmtUnsupported:              "Construct not supported by the formatter",
		FmtNotIdempotent:            "Formatted output does not re-format to itself",
		IOLoadFileError:             "Failed to load file",
		IOWriteError:                "Failed to write file",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("FMT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
