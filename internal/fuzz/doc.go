// Package fuzztests houses Go fuzz harnesses that push arbitrary bytes
// through the lexer, the parser and the formatter. They guard against
// panics, hangs and formatter output that does not re-format to itself.
package fuzztests
