package ast

// VisKind enumerates visibility forms.
type VisKind uint8

const (
	VisInherited  VisKind = iota // no modifier
	VisPublic                    // pub
	VisCrate                     // crate
	VisRestricted                // pub(crate), pub(super), pub(in path)
)

// Visibility describes the accessibility of an item or field.
type Visibility struct {
	Kind VisKind
	// In is set for the `pub(in path)` form.
	In   bool
	Path *Path
}

func (v Visibility) String() string {
	switch v.Kind {
	case VisPublic:
		return "public"
	case VisCrate:
		return "crate"
	case VisRestricted:
		return "restricted"
	default:
		return "inherited"
	}
}
