package ast

// Lifetime is a named lifetime such as 'a. Name excludes the quote.
type Lifetime struct {
	Name string
}

// Generics holds the parameter list of an item and its where clause.
type Generics struct {
	Params Punctuated[GenericParam]
	Where  *WhereClause
}

// WhereClause is `where T: A, U: B`.
type WhereClause struct {
	Predicates Punctuated[WherePredicate]
}

// GenericParam is one parameter in `<...>`.
type GenericParam interface {
	genericParamNode()
}

// TypeParam is `T: Bound + Other = Default`.
type TypeParam struct {
	Attrs   []*Attribute
	Ident   string
	Colon   bool
	Bounds  Punctuated[TypeParamBound]
	Eq      bool
	Default Type
}

// LifetimeDef is `'a: 'b + 'c`.
type LifetimeDef struct {
	Attrs    []*Attribute
	Lifetime *Lifetime
	Colon    bool
	Bounds   Punctuated[*Lifetime]
}

// ConstParam is `const N: usize = 3`.
type ConstParam struct {
	Attrs   []*Attribute
	Ident   string
	Ty      Type
	Eq      bool
	Default Expr
}

func (*TypeParam) genericParamNode()   {}
func (*LifetimeDef) genericParamNode() {}
func (*ConstParam) genericParamNode()  {}

// TypeParamBound is a trait or lifetime bound.
type TypeParamBound interface {
	boundNode()
}

// TraitBoundModifier is `?` in `?Sized`.
type TraitBoundModifier uint8

const (
	ModifierNone TraitBoundModifier = iota
	ModifierMaybe
)

// TraitBound is `for<'a> ?Trait<'a>` optionally in parentheses.
type TraitBound struct {
	Paren     bool
	Modifier  TraitBoundModifier
	Lifetimes []*LifetimeDef // for<'a> binder, nil when absent
	Path      Path
}

func (*TraitBound) boundNode() {}
func (*Lifetime) boundNode()   {}

// WherePredicate is one predicate of a where clause.
type WherePredicate interface {
	wherePredicateNode()
}

// PredicateType is `for<'a> T: A + B`.
type PredicateType struct {
	Lifetimes []*LifetimeDef
	BoundedTy Type
	Bounds    Punctuated[TypeParamBound]
}

// PredicateLifetime is `'a: 'b`.
type PredicateLifetime struct {
	Lifetime *Lifetime
	Bounds   Punctuated[*Lifetime]
}

// PredicateEq is `T = U`.
type PredicateEq struct {
	Lhs Type
	Rhs Type
}

func (*PredicateType) wherePredicateNode()     {}
func (*PredicateLifetime) wherePredicateNode() {}
func (*PredicateEq) wherePredicateNode()       {}
