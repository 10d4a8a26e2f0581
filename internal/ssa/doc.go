// Package ssa cross-checks closure captures against SSA free variables.
//
// # Overview
//
// The SSA builder in golang.org/x/tools computes, for every anonymous
// function, the variables it closes over (ssa.Function.FreeVars). Those are
// exactly the variables a closure lowering must pass explicitly, with one
// difference: SSA treats the method receiver as an ordinary free variable,
// while the capture tracker reports it as the outer instance.
//
//	func (s *Server) Run(addr string) {
//	    go func() {          // SSA FreeVars: s, addr
//	        s.dial(addr)     // tracker:      outer=Server captures=addr
//	    }()
//	}
//
// # Program Building
//
// [Build] wraps the buildssa result of a pass:
//
//	prog := ssa.Build(pass)
//	fn := prog.FindFuncLit(lit)
//
// # Comparison
//
// [Diff] reports free variables the tracker missed and captures SSA does not
// know about:
//
//	missing, extra := ssa.Diff(fn, captured, receiverName)
package ssa
