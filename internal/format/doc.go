// Package format renders a parsed syntax tree back into canonical source text.
//
// The printer walks the tree with one method per syntactic category. Each
// method is a type switch whose default arm aborts with an unsupported
// construct; the entry points recover that abort into ErrFormat so callers
// never see partial output.
//
// Dependencies: internal/ast; the convenience entry points also use
// internal/lexer, internal/parser, internal/diag and internal/source.
package format
