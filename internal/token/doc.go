// Package token defines lexical token kinds for minifmt.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Comments are dropped by the lexer; doc comments (/// and //!) are
//     tokens of their own (DocOuter, DocInner) whose Text is the full comment.
//   - Lifetimes are single tokens including the leading quote ('a).
//   - Integer suffixes (u8, i64, ...) stay in IntLit.Text and are split by the parser.
package token
