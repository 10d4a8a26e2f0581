// Package plan contains test fixtures for closure lowering plans.
// Every closure that needs an outer instance or captured symbols is reported
// with the parameters it would receive.
package plan

import "fmt"

type Server struct {
	addr  string
	retry int
}

//vt:helper
func (s *Server) log(msg string) { fmt.Println(s.addr, msg) }

// ===== SHOULD REPORT =====

// [REPORT]: Receiver and parameter
//
// The receiver becomes the outer instance, the parameter a capture.
func (s *Server) Serve(prefix string) {
	go func() { // want `closure lowering: outer=Server captures=prefix`
		s.log(prefix)
	}()
}

// [REPORT]: Receiver field only
func (s *Server) Retries() func() int {
	return func() int { // want `closure lowering: outer=Server`
		return s.retry
	}
}

// [REPORT]: Nested closures
//
// The outer literal needs what the inner one captures.
func nested(a, b int) func() func() int {
	return func() func() int { // want `closure lowering: captures=a,b`
		return func() int { // want `closure lowering: captures=a,b`
			return a + b
		}
	}
}

// [REPORT]: Local declared inside the outer closure
//
// y is local to the outer literal, so only the inner one captures it.
func partlyLocal(x int) func() func() int {
	return func() func() int { // want `closure lowering: captures=x$`
		y := x * 2
		return func() int { // want `closure lowering: captures=x,y`
			return x + y
		}
	}
}

// [REPORT]: Local function
//
// double is never reassigned, so it is captured as a local function.
func localFunc(n int) int {
	double := func(v int) int { return v * 2 }
	apply := func() int { // want `closure lowering: captures=double,n`
		return double(n)
	}
	return apply()
}

var counter int

// [REPORT]: Package-level state is not captured
func pkgState(step int) func() {
	return func() { // want `closure lowering: captures=step`
		counter += step
	}
}

// ===== SHOULD NOT REPORT =====

// [OK]: No captures
func noCapture() func() int {
	return func() int { return 42 }
}

// [OK]: Method expression takes its receiver explicitly
func methodExpr() func() {
	return func() {
		f := (*Server).log
		_ = f
	}
}

// [OK]: Suppressed with directive
func ignored(x int) func() int {
	//capturelint:ignore plan
	return func() int { return x }
}

// [OK]: Package-level closure
var handler = func() int { return counter }

// ===== DIRECTIVES =====

// [REPORT]: Directive without a matching diagnostic
func unusedDirective() func() int {
	//capturelint:ignore plan // want `unused capturelint:ignore directive for checker\(s\): plan`
	return func() int { return 1 }
}

// [REPORT]: Directive naming an unknown checker
func unknownChecker() func() int {
	//capturelint:ignore plna // want `unknown checker\(s\) in capturelint:ignore directive: plna`
	return func() int { return 1 }
}
