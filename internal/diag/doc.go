// Package diag defines the diagnostic model shared by the lexer, the parser,
// the formatter and the driver.
//
// A Diagnostic carries a Severity, a numeric Code with a stable string form,
// a short message, the primary source.Span and optional notes. Producers emit
// through a Reporter; BagReporter collects into a Bag, which supports sorting
// and deduplication so output is deterministic.
//
// Rendering lives in internal/diagfmt. This package performs no IO.
package diag
