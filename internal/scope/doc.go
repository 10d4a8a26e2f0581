// Package scope tracks the chain of functions enclosing the node being
// visited.
//
// # Overview
//
// The lowering pass walks a file once. Every FuncDecl and FuncLit it enters
// becomes a [Frame] on a [Stack]; the frame is popped on exit:
//
//	func outer() {          // [outer]
//	    x := 1
//	    f := func() {       // [outer, outer.func1]
//	        _ = x
//	    }
//	}                       // []
//
// # Finding the Declaring Function
//
// go/types does not record which function declares a local object. Use
// [Stack.Enclosing] with the object's position to find it:
//
//	frame := stack.Enclosing(obj.Pos())
//	// frame.Decl is the innermost function whose syntax contains obj
//
// An object referenced from inside a literal but declared outside it is
// always found further down the stack, because Go requires declaration
// before use in function bodies.
package scope
