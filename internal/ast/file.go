package ast

// File is one parsed compilation unit.
type File struct {
	Attrs []*Attribute
	Items []Item
}
