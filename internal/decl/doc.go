// Package decl models the declarations a closure can refer to.
//
// # Overview
//
// Every declaration the capture analysis cares about is a [Decl]: a node in
// a containment tree rooted at a package. The tree is what "ancestor scope"
// means throughout the module:
//
//	package main                 // Package
//	type Server struct{ n int }  // Class        (parent: package)
//	                             //   n: Property (parent: Server)
//	func (s *Server) Run() {     // Function     (parent: Server)
//	    x := 1                   // Variable     (parent: Run)
//	    go func() {              // Function     (parent: Run)
//	        _ = x + s.n
//	    }()
//	}
//
// # Kinds
//
// [Kind] is a closed set. Consumers switch on it exhaustively instead of
// type-asserting:
//
//	switch d.Kind {
//	case decl.Property, decl.PropertyAccessor:
//	case decl.Variable:
//	case decl.Function:
//	case decl.Class:
//	}
//
// # Ancestry
//
// [IsAncestor] walks the parent chain. With strict=false a declaration is its
// own ancestor:
//
//	decl.IsAncestor(run, x, true)   // true: x is declared inside Run
//	decl.IsAncestor(lit, x, true)   // false: x is declared outside the literal
//
// # Allocation
//
// Declarations are created through a [Table], which assigns stable IDs in
// creation order. IDs make output deterministic; identity is still the
// pointer.
package decl
