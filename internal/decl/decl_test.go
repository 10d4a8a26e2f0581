package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAncestor(t *testing.T) {
	tab := NewTable()
	pkg := tab.New(Package, "p", nil, 0)
	class := tab.New(Class, "T", pkg, 0)
	method := tab.New(Function, "M", class, 0)
	lit := tab.New(Function, "func1", method, 0)
	v := tab.New(Variable, "v", lit, 0)
	other := tab.New(Function, "other", pkg, 0)

	tests := []struct {
		name     string
		ancestor *Decl
		d        *Decl
		strict   bool
		want     bool
	}{
		{name: "parent", ancestor: lit, d: v, strict: true, want: true},
		{name: "grandparent", ancestor: class, d: v, strict: true, want: true},
		{name: "package contains all", ancestor: pkg, d: v, strict: true, want: true},
		{name: "self strict", ancestor: v, d: v, strict: true, want: false},
		{name: "self non-strict", ancestor: v, d: v, strict: false, want: true},
		{name: "descendant is not ancestor", ancestor: v, d: lit, strict: true, want: false},
		{name: "sibling", ancestor: other, d: v, strict: true, want: false},
		{name: "nil ancestor", ancestor: nil, d: v, strict: true, want: false},
		{name: "nil decl", ancestor: pkg, d: nil, strict: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAncestor(tt.ancestor, tt.d, tt.strict))
		})
	}
}

func TestTableAssignsSequentialIDs(t *testing.T) {
	tab := NewTable()
	pkg := tab.New(Package, "p", nil, 0)
	fn := tab.New(Function, "f", pkg, 0)

	assert.Equal(t, 0, pkg.ID)
	assert.Equal(t, 1, fn.ID)
	assert.Equal(t, 2, tab.New(Class, "T", pkg, 0).ID)
}

func TestTableRejectsMalformedTrees(t *testing.T) {
	tab := NewTable()
	pkg := tab.New(Package, "p", nil, 0)
	v := tab.New(Variable, "v", tab.New(Function, "f", pkg, 0), 0)

	assert.Panics(t, func() { tab.New(Function, "orphan", nil, 0) })
	assert.Panics(t, func() { tab.New(Variable, "nested", v, 0) })
}

func TestQualifiedName(t *testing.T) {
	tab := NewTable()
	pkg := tab.New(Package, "p", nil, 0)
	class := tab.New(Class, "Server", pkg, 0)
	field := tab.New(Property, "addr", class, 0)

	assert.Equal(t, "Server.addr", field.QualifiedName())
	assert.Equal(t, "property Server.addr", field.String())
	assert.Equal(t, "Server", class.QualifiedName())
	assert.True(t, class.IsContainer())
	assert.False(t, field.IsContainer())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "accessor", PropertyAccessor.String())
	assert.Equal(t, "kind-invalid(42)", Kind(42).String())
}
