// Package captures contains test fixtures for the capture limit (-max-captures=2).
package captures

// [REPORT]: Three parameters captured
func tooMany(a, b, c int) func() int {
	return func() int { // want `closure captures 3 symbols, limit is 2: a, b, c`
		return a + b + c
	}
}

// [REPORT]: Captures of nested closures count
func nestedTooMany(a, b int) func() func() int {
	c := a * b
	return func() func() int { // want `closure captures 3 symbols, limit is 2: a, b, c`
		return func() int { // want `closure captures 3 symbols, limit is 2: a, b, c`
			return a + b + c
		}
	}
}

// [OK]: Within limit
func withinLimit(a, b int) func() int {
	return func() int { return a + b }
}

// [OK]: Repeated uses count once
func repeated(a int) func() int {
	return func() int { return a + a*a }
}

// [OK]: Suppressed on the same line
func ignoredLimit(a, b, c int) func() int {
	return func() int { //capturelint:ignore captures - reviewed
		return a + b + c
	}
}
