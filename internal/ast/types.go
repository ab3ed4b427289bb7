package ast

// Type is a type expression.
type Type interface {
	typeNode()
}

// TypePath is `std::vec::Vec<T>` or `<T as Trait>::Assoc`.
type TypePath struct {
	QSelf *QSelf
	Path  Path
}

// TypeReference is `&'a mut T`.
type TypeReference struct {
	Lifetime *Lifetime
	Mut      bool
	Elem     Type
}

// TypeArray is `[T; N]`.
type TypeArray struct {
	Elem Type
	Len  Expr
}

// TypeSlice is `[T]`.
type TypeSlice struct {
	Elem Type
}

// TypeTuple is `(A, B)`; the unit type has no elements.
type TypeTuple struct {
	Elems Punctuated[Type]
}

// TypeParen is `(T)`.
type TypeParen struct {
	Elem Type
}

// TypePtr is `*const T` or `*mut T`.
type TypePtr struct {
	Mut  bool
	Elem Type
}

// TypeNever is `!`.
type TypeNever struct{}

// TypeInfer is `_`.
type TypeInfer struct{}

// TypeImplTrait is `impl A + B`.
type TypeImplTrait struct {
	Bounds Punctuated[TypeParamBound]
}

// TypeTraitObject is `dyn A + B`, or the bare form without `dyn`.
type TypeTraitObject struct {
	Dyn    bool
	Bounds Punctuated[TypeParamBound]
}

// TypeBareFn is `fn(A, B) -> C`.
type TypeBareFn struct {
	Unsafe bool
	Inputs Punctuated[Type]
	Output Type
}

func (*TypePath) typeNode()        {}
func (*TypeReference) typeNode()   {}
func (*TypeArray) typeNode()       {}
func (*TypeSlice) typeNode()       {}
func (*TypeTuple) typeNode()       {}
func (*TypeParen) typeNode()       {}
func (*TypePtr) typeNode()         {}
func (*TypeNever) typeNode()       {}
func (*TypeInfer) typeNode()       {}
func (*TypeImplTrait) typeNode()   {}
func (*TypeTraitObject) typeNode() {}
func (*TypeBareFn) typeNode()      {}
