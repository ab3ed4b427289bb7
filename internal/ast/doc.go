// Package ast defines the syntax tree consumed by the formatter.
//
// Every syntactic category (Item, ImplItem, Stmt, Expr, Pat, Type, Lit, Meta,
// NestedMeta, GenericParam, GenericArgument, TypeParamBound, WherePredicate,
// FnArg, UseTree, PathArguments) is an interface sealed with an unexported
// marker method, so the set of variants is closed to this package. Variants
// are pointer types. The tree carries no trivia: comments are gone, only doc
// comments survive as `doc` attributes.
//
// The parser produces variants the formatter has no rendering rule for
// (trait impls, casts, ranges, raw pointers, ...). They exist so the
// formatter can reject them explicitly instead of the parser failing.
package ast
