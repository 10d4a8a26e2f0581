// Package lower computes, for every function literal in a package, how it
// would be lowered into a function without lexical closures.
//
// # Overview
//
// [Build] walks the package once. Each FuncDecl and FuncLit gets a tracker;
// every identifier and selector inside them is classified and fed to the
// innermost tracker:
//
//	func (s *Server) Serve(addr string) {
//	    retry := 3
//	    go func() {                  // Plan: outer=Server captures=addr,retry
//	        s.log(addr, retry)
//	    }()
//	}
//
// # Mapping
//
//	┌──────────────────────────────┬──────────────────────────────────────┐
//	│  Go reference                │  Declaration                          │
//	├──────────────────────────────┼──────────────────────────────────────┤
//	│  local variable / parameter  │  Variable (parent: declaring func)   │
//	│  f := func(){} (never reset) │  Function (the literal itself)       │
//	│  method receiver s           │  PropertyAccessor "this" of s's type │
//	│  s.field on the receiver     │  Property of s's type                │
//	│  s.Method() on the receiver  │  Function with dispatch receiver     │
//	│  T.Method (method expr)      │  Function with receiver parameter    │
//	│  package-level var           │  Property of the package             │
//	│  package-level func          │  Function of the package             │
//	│  named type                  │  Class                               │
//	└──────────────────────────────┴──────────────────────────────────────┘
//
// Constants, labels, builtins and imported package names are never
// captured and are not classified.
//
// # Watching Receiver Types
//
// A method's tracker watches its receiver type. When the method body, or
// any closure in it, mentions that type (composite literal, conversion, type
// assertion), [Func.ReceiverTypeUsed] is set.
package lower
