package typeutil

import (
	"go/types"
)

// UnwrapPointer returns the element type if t is a pointer, otherwise returns t.
func UnwrapPointer(t types.Type) types.Type {
	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// NamedOf returns the origin of the named type behind t, looking through
// aliases and one level of pointer.
func NamedOf(t types.Type) *types.Named {
	if t == nil {
		return nil
	}

	named, ok := types.Unalias(UnwrapPointer(t)).(*types.Named)
	if !ok {
		return nil
	}

	return named.Origin()
}

// ReceiverNamed returns the named type a method is declared on, or nil for
// plain functions and methods of unnamed interfaces.
func ReceiverNamed(fn *types.Func) *types.Named {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil
	}

	return NamedOf(sig.Recv().Type())
}

// OriginFunc returns the generic function fn was instantiated from.
func OriginFunc(fn *types.Func) *types.Func {
	return fn.Origin()
}

// OriginTypeName returns the type name of the origin of a named type, or obj
// itself for anything else.
func OriginTypeName(obj *types.TypeName) *types.TypeName {
	if named := NamedOf(obj.Type()); named != nil {
		return named.Obj()
	}

	return obj
}

// IsPackageLevel reports whether obj is declared in its package scope.
func IsPackageLevel(obj types.Object) bool {
	pkg := obj.Pkg()
	if pkg == nil {
		return false
	}

	return obj.Parent() == pkg.Scope()
}
