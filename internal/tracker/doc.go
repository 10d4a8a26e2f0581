// Package tracker records, per nested declaration, which enclosing-scope
// symbols it uses.
//
// # Overview
//
// A tracker exists for every function being lowered. Trackers form a tree that
// mirrors declaration nesting and live in an [Arena]:
//
//	func (s *Server) Run() {        // tracker 0 (owner: Run, watched: Server)
//	    x := 1
//	    go func() {                 // tracker 1 (parent: 0)
//	        defer func() {          // tracker 2 (parent: 1)
//	            _ = x + s.n
//	        }()
//	    }()
//	}
//
// While the body of a declaration is traversed, every referenced symbol is
// fed to [Arena.TriggerUsed] against the innermost tracker. Afterwards the
// code generator queries the tree:
//
//	arena.OuterClass(1)                  // Server (found on tracker 2)
//	arena.HasCaptured(1)                 // true
//	arena.ForEachCaptured(1, lit, visit) // visits x once
//
// # Classification
//
//	┌────────────────────────────┬──────────────────────────────────────────┐
//	│  Referenced declaration    │  Effect on the active tracker            │
//	├────────────────────────────┼──────────────────────────────────────────┤
//	│  Property / accessor       │  outer class := declaring class (once)   │
//	│  Variable                  │  captured unless declared inside owner   │
//	│  Method                    │  outer class := class (once, see below)  │
//	│  Local function            │  captured unless declared inside owner   │
//	│  Receiver-param function   │  ignored                                 │
//	│  Class                     │  usage flag of the watching tracker      │
//	└────────────────────────────┴──────────────────────────────────────────┘
//
// A method fixes the outer class only if it needs no instance, or if its
// class encloses the owner. Calls such as x.String() on an unrelated value
// do not make the closure depend on an outer instance.
//
// # Aggregation
//
// [Arena.ForEachCaptured] visits a tracker's own captures first and then
// each child subtree in creation order. Symbols are visited once per call,
// and symbols declared inside the requestor are skipped.
package tracker
