package decl

import (
	"fmt"
	"go/token"
)

// Kind is the category of a declaration.
type Kind int

const (
	_ Kind = iota
	Package
	Class
	Function
	Variable
	Property
	PropertyAccessor
)

func (k Kind) String() string {
	switch k {
	case Package:
		return "package"
	case Class:
		return "class"
	case Function:
		return "function"
	case Variable:
		return "variable"
	case Property:
		return "property"
	case PropertyAccessor:
		return "accessor"
	default:
		return fmt.Sprintf("kind-invalid(%d)", int(k))
	}
}

// Decl is a declaration symbol. Two Decls are the same symbol iff they are
// the same pointer.
type Decl struct {
	ID     int
	Kind   Kind
	Name   string
	Parent *Decl
	Pos    token.Pos

	// HasReceiverParam marks functions taking their receiver as an explicit
	// parameter (method expressions). They never imply an enclosing instance.
	HasReceiverParam bool

	// HasDispatchReceiver marks methods: calling them needs an instance of
	// the parent class.
	HasDispatchReceiver bool
}

func (d *Decl) String() string {
	if d == nil {
		return "<nil>"
	}
	return d.Kind.String() + " " + d.QualifiedName()
}

// QualifiedName joins the names of d and its non-package ancestors with dots.
func (d *Decl) QualifiedName() string {
	if d.Parent == nil || d.Parent.Kind == Package {
		return d.Name
	}
	return d.Parent.QualifiedName() + "." + d.Name
}

// IsContainer reports whether d may own member declarations.
func (d *Decl) IsContainer() bool {
	return d.Kind == Package || d.Kind == Class
}

// IsAncestor reports whether ancestor contains d. When strict is false, a
// declaration is considered its own ancestor.
func IsAncestor(ancestor, d *Decl, strict bool) bool {
	if ancestor == nil || d == nil {
		return false
	}
	if strict {
		d = d.Parent
	}
	for ; d != nil; d = d.Parent {
		if d == ancestor {
			return true
		}
	}
	return false
}

// Table allocates declarations.
type Table struct {
	next int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{}
}

// New creates a declaration. Parent must be nil only for packages.
func (t *Table) New(kind Kind, name string, parent *Decl, pos token.Pos) *Decl {
	if parent == nil && kind != Package {
		panic(fmt.Sprintf("decl: %s %q has no parent", kind, name))
	}
	if parent != nil && parent.Kind != Package && parent.Kind != Class && parent.Kind != Function {
		panic(fmt.Sprintf("decl: %s cannot contain %s %q", parent, kind, name))
	}
	d := &Decl{
		ID:     t.next,
		Kind:   kind,
		Name:   name,
		Parent: parent,
		Pos:    pos,
	}
	t.next++
	return d
}
